package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale maps the subset of the sales table the ledger touches.
type Sale struct {
	SaleID    string          `json:"saleID"`
	BranchID  string          `json:"branchID"`
	ShiftID   *string         `json:"shiftID"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
