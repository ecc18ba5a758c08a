package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus indicates the state of a cash shift (turno).
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "OPEN"
	ShiftClosed ShiftStatus = "CLOSED"
)

// Shift represents one bounded cash-handling session opened by a user at a
// branch. A shift is opened with a declared opening balance and closed exactly
// once with a declared final count; there is no reopen path.
type Shift struct {
	ShiftID        string           `json:"shiftID"`  // Primary Key (UUID)
	BranchID       string           `json:"branchID"` // FK -> branches
	OpenedByUserID string           `json:"openedByUserID"`
	ClosedByUserID *string          `json:"closedByUserID,omitempty"`
	Status         ShiftStatus      `json:"status"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	FixedFloat     decimal.Decimal  `json:"fixedFloat"` // minimum cash that must stay in the drawer
	OpenedAt       time.Time        `json:"openedAt"`
	OpeningComment string           `json:"openingComment"`
	ClosedAt       *time.Time       `json:"closedAt,omitempty"`
	ClosingComment string           `json:"closingComment"`
	ClosingBalance *decimal.Decimal `json:"closingBalance,omitempty"` // cashier-declared count at close
	AuditFields
}

// IsOpen reports whether the shift can still receive cash movements.
func (s *Shift) IsOpen() bool {
	return s.Status == ShiftOpen
}

// ShiftBalances is the derived balance snapshot of an open shift.
// CashOnHand = OpeningBalance + SUM(cash_delta) over the shift's movements.
type ShiftBalances struct {
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	FixedFloat      decimal.Decimal `json:"fixedFloat"`
	CashOnHand      decimal.Decimal `json:"cashOnHand"`
	OperableCash    decimal.Decimal `json:"operableCash"`    // max(CashOnHand, 0)
	MaxWithdrawable decimal.Decimal `json:"maxWithdrawable"` // max(CashOnHand - FixedFloat, 0)
}
