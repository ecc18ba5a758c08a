package mapping

import (
	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/retailcore/cashdesk/internal/models"
)

// ToModelMovement converts a domain movement to its model representation.
func ToModelMovement(d domain.FinancialMovement) models.FinancialMovement {
	return models.FinancialMovement{
		MovementID:        d.MovementID,
		BranchID:          d.BranchID,
		ShiftID:           d.ShiftID,
		Classification:    string(d.Classification),
		Motive:            string(d.Motive),
		PaymentMethod:     string(d.PaymentMethod),
		CashDelta:         d.CashDelta,
		BankDelta:         d.BankDelta,
		BankAccountID:     d.BankAccountID,
		SupplierID:        d.SupplierID,
		Description:       d.Description,
		Reference:         d.Reference,
		IsClosingDeposit:  d.IsClosingDeposit,
		IsSupplierDeposit: d.IsSupplierDeposit,
		AffectsInventory:  d.AffectsInventory,
		CreatedBy:         d.CreatedBy,
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainMovement converts a model movement to its domain representation.
func ToDomainMovement(m models.FinancialMovement) domain.FinancialMovement {
	return domain.FinancialMovement{
		MovementID:        m.MovementID,
		BranchID:          m.BranchID,
		ShiftID:           m.ShiftID,
		Classification:    domain.MovementClassification(m.Classification),
		Motive:            domain.MovementMotive(m.Motive),
		PaymentMethod:     domain.PaymentMethod(m.PaymentMethod),
		CashDelta:         m.CashDelta,
		BankDelta:         m.BankDelta,
		BankAccountID:     m.BankAccountID,
		SupplierID:        m.SupplierID,
		Description:       m.Description,
		Reference:         m.Reference,
		IsClosingDeposit:  m.IsClosingDeposit,
		IsSupplierDeposit: m.IsSupplierDeposit,
		AffectsInventory:  m.AffectsInventory,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
}

// ToDomainMovementSlice converts a slice of model movements.
func ToDomainMovementSlice(ms []models.FinancialMovement) []domain.FinancialMovement {
	out := make([]domain.FinancialMovement, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMovement(m)
	}
	return out
}
