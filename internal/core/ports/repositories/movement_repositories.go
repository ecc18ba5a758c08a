package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementFilters narrows movement listings.
type MovementFilters struct {
	BranchID       string
	ShiftID        *string
	Motive         *domain.MovementMotive
	Classification *domain.MovementClassification
}

// MovementReader defines read operations for movement data.
type MovementReader interface {
	// FindMovementByID retrieves a movement by its unique identifier.
	FindMovementByID(ctx context.Context, movementID string) (*domain.FinancialMovement, error)

	// SumCashDeltasByShift aggregates SUM(cash_delta) over all movements
	// referencing the shift. Runs on the given querier so callers can read
	// their own uncommitted writes inside a transaction.
	SumCashDeltasByShift(ctx context.Context, q Querier, shiftID string) (decimal.Decimal, error)

	// ListMovements retrieves a paginated list of movements using token-based
	// pagination. It returns the movements, a token for the next page, and an error.
	ListMovements(ctx context.Context, filters MovementFilters, limit int, nextToken *string) ([]domain.FinancialMovement, *string, error)
}

// MovementWriter defines write operations for movement data. Movements are
// append-only; the only mutation is shift re-parenting at close time.
type MovementWriter interface {
	// SaveMovement inserts a movement row within a transaction.
	SaveMovement(ctx context.Context, tx pgx.Tx, movement domain.FinancialMovement) error

	// ReassignMovementsToShift re-parents the given movements to a shift
	// within a transaction, as part of the shift close linkage.
	ReassignMovementsToShift(ctx context.Context, tx pgx.Tx, movementIDs []string, shiftID string) error
}

// MovementRepositoryFacade combines all movement repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
