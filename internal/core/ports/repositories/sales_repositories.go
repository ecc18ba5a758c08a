package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleRepositoryFacade exposes the slice of sale data the shift close needs.
type SaleRepositoryFacade interface {
	// AssignSalesToShift re-parents the given sales to a shift within a transaction.
	AssignSalesToShift(ctx context.Context, tx pgx.Tx, saleIDs []string, shiftID string) error

	// SumSaleTotals aggregates SUM(total) over the given sales.
	SumSaleTotals(ctx context.Context, q Querier, saleIDs []string) (decimal.Decimal, error)

	// ListSalesByShift retrieves the sales linked to a shift.
	ListSalesByShift(ctx context.Context, shiftID string) ([]domain.Sale, error)
}

// SalesGoalRepositoryFacade exposes sales goal lookups and progress updates.
type SalesGoalRepositoryFacade interface {
	// FindLatestGoalForUser retrieves the user's most recent
	// ACTIVE-or-COMPLETED goal. Returns apperrors.ErrNotFound when absent.
	FindLatestGoalForUser(ctx context.Context, q Querier, userID string) (*domain.SalesGoal, error)

	// UpdateGoalProgress writes the goal's accumulated amount and status
	// within a transaction.
	UpdateGoalProgress(ctx context.Context, tx pgx.Tx, goal domain.SalesGoal) error
}
