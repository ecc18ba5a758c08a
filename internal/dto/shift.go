package dto

import (
	"time"

	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenShiftRequest is the payload for opening a cash shift.
type OpenShiftRequest struct {
	BranchID       string          `json:"branchID" binding:"required"`
	OpeningBalance decimal.Decimal `json:"openingBalance" binding:"gte=0"`
	FixedFloat     decimal.Decimal `json:"fixedFloat" binding:"gte=0"`
	Comment        string          `json:"comment"`
}

// CloseShiftRequest is the payload for closing a shift. The id lists re-parent
// pending deposit/expense movements and sale rows to the closing shift.
type CloseShiftRequest struct {
	ClosingBalance decimal.Decimal `json:"closingBalance" binding:"gte=0"`
	Comment        string          `json:"comment"`
	DepositIDs     []string        `json:"depositIDs"`
	ExpenseIDs     []string        `json:"expenseIDs"`
	SaleIDs        []string        `json:"saleIDs"`
}

// ShiftResponse is the transport representation of a shift.
type ShiftResponse struct {
	ShiftID        string           `json:"shiftID"`
	BranchID       string           `json:"branchID"`
	OpenedByUserID string           `json:"openedByUserID"`
	ClosedByUserID *string          `json:"closedByUserID,omitempty"`
	Status         string           `json:"status"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	FixedFloat     decimal.Decimal  `json:"fixedFloat"`
	OpenedAt       time.Time        `json:"openedAt"`
	OpeningComment string           `json:"openingComment,omitempty"`
	ClosedAt       *time.Time       `json:"closedAt,omitempty"`
	ClosingComment string           `json:"closingComment,omitempty"`
	ClosingBalance *decimal.Decimal `json:"closingBalance,omitempty"`
}

// ToShiftResponse converts a domain shift to its response representation.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:        s.ShiftID,
		BranchID:       s.BranchID,
		OpenedByUserID: s.OpenedByUserID,
		ClosedByUserID: s.ClosedByUserID,
		Status:         string(s.Status),
		OpeningBalance: s.OpeningBalance,
		FixedFloat:     s.FixedFloat,
		OpenedAt:       s.OpenedAt,
		OpeningComment: s.OpeningComment,
		ClosedAt:       s.ClosedAt,
		ClosingComment: s.ClosingComment,
		ClosingBalance: s.ClosingBalance,
	}
}

// ShiftBalancesResponse is the derived balance snapshot of a shift.
type ShiftBalancesResponse struct {
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	FixedFloat      decimal.Decimal `json:"fixedFloat"`
	CashOnHand      decimal.Decimal `json:"cashOnHand"`
	OperableCash    decimal.Decimal `json:"operableCash"`
	MaxWithdrawable decimal.Decimal `json:"maxWithdrawable"`
}

// ToShiftBalancesResponse converts domain balances to their response representation.
func ToShiftBalancesResponse(b domain.ShiftBalances) ShiftBalancesResponse {
	return ShiftBalancesResponse{
		OpeningBalance:  b.OpeningBalance,
		FixedFloat:      b.FixedFloat,
		CashOnHand:      b.CashOnHand,
		OperableCash:    b.OperableCash,
		MaxWithdrawable: b.MaxWithdrawable,
	}
}
