package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus indicates the state of a cash shift row.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "OPEN"
	ShiftClosed ShiftStatus = "CLOSED"
)

// Shift maps the shifts table.
type Shift struct {
	ShiftID        string           `json:"shiftID"`
	BranchID       string           `json:"branchID"`
	OpenedByUserID string           `json:"openedByUserID"`
	ClosedByUserID *string          `json:"closedByUserID"`
	Status         ShiftStatus      `json:"status"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	FixedFloat     decimal.Decimal  `json:"fixedFloat"`
	OpenedAt       time.Time        `json:"openedAt"`
	OpeningComment string           `json:"openingComment"`
	ClosedAt       *time.Time       `json:"closedAt"`
	ClosingComment string           `json:"closingComment"`
	ClosingBalance *decimal.Decimal `json:"closingBalance"`
	AuditFields
}
