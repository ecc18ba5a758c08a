package services

import (
	"context"
	"fmt"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
)

// bankAccountService serves the read-only bank account directory.
type bankAccountService struct {
	bankRepo portsrepo.BankAccountRepositoryFacade
}

// NewBankAccountService creates a new bank account service.
func NewBankAccountService(bankRepo portsrepo.BankAccountRepositoryFacade) portssvc.BankAccountSvcFacade {
	return &bankAccountService{bankRepo: bankRepo}
}

var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

func (s *bankAccountService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	if bankAccountID == "" {
		return nil, fmt.Errorf("%w: bank account id is required", apperrors.ErrValidation)
	}
	return s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
}

func (s *bankAccountService) ListBankAccountsByBranch(ctx context.Context, branchID string) ([]domain.BankAccount, error) {
	if branchID == "" {
		return nil, fmt.Errorf("%w: branch id is required", apperrors.ErrValidation)
	}
	return s.bankRepo.ListBankAccountsByBranch(ctx, branchID)
}
