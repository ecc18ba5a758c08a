package repositories

import (
	"context"

	"github.com/retailcore/cashdesk/internal/core/domain"
)

// BankAccountReader defines read operations for the bank account directory.
// The ledger never mutates bank accounts.
type BankAccountReader interface {
	// FindBankAccountByID retrieves a bank account by its unique identifier.
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccountsByBranch retrieves the bank accounts of a branch.
	ListBankAccountsByBranch(ctx context.Context, branchID string) ([]domain.BankAccount, error)
}

// BankAccountRepositoryFacade is the full bank account repository surface.
type BankAccountRepositoryFacade interface {
	BankAccountReader
}
