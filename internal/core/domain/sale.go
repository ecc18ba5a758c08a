package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the slice of a sale row the ledger cares about: its total and the
// shift it is linked to. Sale creation itself happens upstream.
type Sale struct {
	SaleID    string          `json:"saleID"` // Primary Key (UUID)
	BranchID  string          `json:"branchID"`
	ShiftID   *string         `json:"shiftID,omitempty"` // assigned at shift close
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
