package services

import (
	"context"

	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/retailcore/cashdesk/internal/dto"
)

// MovementSvcFacade orchestrates the movement-creation protocol and listings.
type MovementSvcFacade interface {
	// CreateMovement validates, resolves effects, locks the shift, guards the
	// balance and persists the movement in one serializable transaction.
	CreateMovement(ctx context.Context, req dto.CreateMovementRequest, userID string) (*domain.FinancialMovement, error)

	// ListMovements retrieves a filtered, token-paginated movement page.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)
}

// BankAccountSvcFacade exposes the read-only bank account directory.
type BankAccountSvcFacade interface {
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccountsByBranch(ctx context.Context, branchID string) ([]domain.BankAccount, error)
}
