package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailcore/cashdesk/internal/core/domain"
)

// SaleResponse is the transport representation of a sale row linked to a shift.
type SaleResponse struct {
	SaleID    string          `json:"saleID"`
	BranchID  string          `json:"branchID"`
	ShiftID   *string         `json:"shiftID,omitempty"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToSaleResponses converts domain sales to their response representation.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, SaleResponse{
			SaleID:    s.SaleID,
			BranchID:  s.BranchID,
			ShiftID:   s.ShiftID,
			Total:     s.Total,
			CreatedAt: s.CreatedAt,
		})
	}
	return out
}
