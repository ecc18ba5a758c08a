package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	"github.com/retailcore/cashdesk/internal/models"
	"github.com/retailcore/cashdesk/internal/utils/mapping"
)

const shiftColumns = `shift_id, branch_id, opened_by_user_id, closed_by_user_id, status, opening_balance, fixed_float, opened_at, opening_comment, closed_at, closing_comment, closing_balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxShiftRepository struct {
	BaseRepository
	lockTimeout time.Duration
}

// newPgxShiftRepository creates a new repository for shift data. lockTimeout
// bounds how long a row lock acquisition may block before the protocol gives
// up with a busy error.
func newPgxShiftRepository(pool *pgxpool.Pool, lockTimeout time.Duration) portsrepo.ShiftRepositoryWithTx {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}, lockTimeout: lockTimeout}
}

var _ portsrepo.ShiftRepositoryWithTx = (*PgxShiftRepository)(nil)

func scanShift(row pgx.Row) (*models.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.BranchID,
		&m.OpenedByUserID,
		&m.ClosedByUserID,
		&m.Status,
		&m.OpeningBalance,
		&m.FixedFloat,
		&m.OpenedAt,
		&m.OpeningComment,
		&m.ClosedAt,
		&m.ClosingComment,
		&m.ClosingBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveShift inserts a newly opened shift. The partial unique index on
// (branch_id, opened_by_user_id) WHERE status = 'OPEN' enforces the
// one-open-shift rule; its violation surfaces as ErrShiftAlreadyOpen.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)

	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShiftID,
		m.BranchID,
		m.OpenedByUserID,
		m.ClosedByUserID,
		m.Status,
		m.OpeningBalance,
		m.FixedFloat,
		m.OpenedAt,
		m.OpeningComment,
		m.ClosedAt,
		m.ClosingComment,
		m.ClosingBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation {
			return fmt.Errorf("%w: branch %s, user %s", apperrors.ErrShiftAlreadyOpen, m.BranchID, m.OpenedByUserID)
		}
		return fmt.Errorf("failed to save shift %s: %w", m.ShiftID, err)
	}
	return nil
}

// FindShiftByID retrieves a shift by id. A nil querier reads from the pool.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, q portsrepo.Querier, shiftID string) (*domain.Shift, error) {
	if q == nil {
		q = r.Pool
	}

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`
	m, err := scanShift(q.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, shiftID)
		}
		return nil, fmt.Errorf("failed to find shift %s: %w", shiftID, err)
	}

	shift := mapping.ToDomainShift(*m)
	return &shift, nil
}

// FindOpenShift retrieves the most recently opened OPEN shift for the branch
// and user.
func (r *PgxShiftRepository) FindOpenShift(ctx context.Context, branchID, userID string) (*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE branch_id = $1 AND opened_by_user_id = $2 AND status = 'OPEN'
		ORDER BY opened_at DESC
		LIMIT 1;
	`
	m, err := scanShift(r.Pool.QueryRow(ctx, query, branchID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoOpenShift
		}
		return nil, fmt.Errorf("failed to find open shift for branch %s: %w", branchID, err)
	}

	shift := mapping.ToDomainShift(*m)
	return &shift, nil
}

// setLockTimeout bounds lock waits inside the transaction. SET LOCAL does not
// take bind parameters; the interval is formatted from a trusted duration.
func (r *PgxShiftRepository) setLockTimeout(ctx context.Context, tx pgx.Tx) error {
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms';", r.lockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}
	return nil
}

// LockShift takes an exclusive row lock on the shift, NOWAIT. Contention maps
// to ErrShiftBusy so the caller can retry instead of queueing.
func (r *PgxShiftRepository) LockShift(ctx context.Context, tx pgx.Tx, shiftID string) (*domain.Shift, error) {
	if err := r.setLockTimeout(ctx, tx); err != nil {
		return nil, err
	}

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1 FOR UPDATE NOWAIT;`
	m, err := scanShift(tx.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, shiftID)
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to lock shift %s: %w", shiftID, err)
	}

	shift := mapping.ToDomainShift(*m)
	return &shift, nil
}

// LockOpenShift locks the most recently opened OPEN shift for the branch and
// user, NOWAIT.
func (r *PgxShiftRepository) LockOpenShift(ctx context.Context, tx pgx.Tx, branchID, userID string) (*domain.Shift, error) {
	if err := r.setLockTimeout(ctx, tx); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE branch_id = $1 AND opened_by_user_id = $2 AND status = 'OPEN'
		ORDER BY opened_at DESC
		LIMIT 1
		FOR UPDATE NOWAIT;
	`
	m, err := scanShift(tx.QueryRow(ctx, query, branchID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoOpenShift
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to lock open shift for branch %s: %w", branchID, err)
	}

	shift := mapping.ToDomainShift(*m)
	return &shift, nil
}

// CloseShift writes the closing fields of a locked shift.
func (r *PgxShiftRepository) CloseShift(ctx context.Context, tx pgx.Tx, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)

	query := `
		UPDATE shifts
		SET status = $2,
		    closed_by_user_id = $3,
		    closed_at = $4,
		    closing_comment = $5,
		    closing_balance = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE shift_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.ShiftID,
		m.Status,
		m.ClosedByUserID,
		m.ClosedAt,
		m.ClosingComment,
		m.ClosingBalance,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to close shift %s: %w", m.ShiftID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, m.ShiftID)
	}
	return nil
}
