package mapping

import (
	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/retailcore/cashdesk/internal/models"
)

// ToDomainBankAccount converts a model bank account to its domain representation.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		BranchID:      m.BranchID,
		BankName:      m.BankName,
		Alias:         m.Alias,
		MaskedNumber:  m.MaskedNumber,
	}
}

// ToDomainBankAccountSlice converts a slice of model bank accounts.
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	out := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		out[i] = ToDomainBankAccount(m)
	}
	return out
}
