package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/retailcore/cashdesk/internal/core/domain"
)

// ShiftReader defines read operations for shift data.
type ShiftReader interface {
	// FindShiftByID retrieves a shift by its unique identifier.
	FindShiftByID(ctx context.Context, q Querier, shiftID string) (*domain.Shift, error)

	// FindOpenShift retrieves the most recently opened OPEN shift for the
	// given branch and user. Returns apperrors.ErrNoOpenShift when absent.
	FindOpenShift(ctx context.Context, branchID, userID string) (*domain.Shift, error)
}

// ShiftWriter defines write and locking operations for shift data.
type ShiftWriter interface {
	// SaveShift persists a newly opened shift.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// LockShift takes an exclusive row lock on the shift with NOWAIT
	// semantics and returns the locked row. Must be called within a
	// transaction. Lock contention surfaces as apperrors.ErrShiftBusy.
	LockShift(ctx context.Context, tx pgx.Tx, shiftID string) (*domain.Shift, error)

	// LockOpenShift locks the most recently opened OPEN shift for the given
	// branch and user, NOWAIT. Returns apperrors.ErrNoOpenShift when absent.
	LockOpenShift(ctx context.Context, tx pgx.Tx, branchID, userID string) (*domain.Shift, error)

	// CloseShift writes the closing fields of a shift within a transaction.
	CloseShift(ctx context.Context, tx pgx.Tx, shift domain.Shift) error
}

// ShiftRepositoryFacade combines all shift repository interfaces.
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}

// ShiftRepositoryWithTx extends ShiftRepositoryFacade with transaction capabilities.
type ShiftRepositoryWithTx interface {
	ShiftRepositoryFacade
	TransactionManager
}
