package mapping

import (
	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/retailcore/cashdesk/internal/models"
)

// ToDomainSalesGoal converts a model sales goal to its domain representation.
func ToDomainSalesGoal(m models.SalesGoal) domain.SalesGoal {
	return domain.SalesGoal{
		GoalID:            m.GoalID,
		UserID:            m.UserID,
		TargetAmount:      m.TargetAmount,
		AccumulatedAmount: m.AccumulatedAmount,
		Status:            domain.SalesGoalStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSale converts a model sale to its domain representation.
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:    m.SaleID,
		BranchID:  m.BranchID,
		ShiftID:   m.ShiftID,
		Total:     m.Total,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainSaleSlice converts a slice of model sales.
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	out := make([]domain.Sale, len(ms))
	for i, m := range ms {
		out[i] = ToDomainSale(m)
	}
	return out
}
