package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	"github.com/retailcore/cashdesk/internal/models"
	"github.com/retailcore/cashdesk/internal/utils/mapping"
	"github.com/retailcore/cashdesk/internal/utils/pagination"
)

const movementColumns = `movement_id, branch_id, shift_id, classification, motive, payment_method, cash_delta, bank_delta, bank_account_id, supplier_id, description, reference, is_closing_deposit, is_supplier_deposit, affects_inventory, created_by, created_at`

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for movement data.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

func scanMovement(row pgx.Row) (*models.FinancialMovement, error) {
	var m models.FinancialMovement
	err := row.Scan(
		&m.MovementID,
		&m.BranchID,
		&m.ShiftID,
		&m.Classification,
		&m.Motive,
		&m.PaymentMethod,
		&m.CashDelta,
		&m.BankDelta,
		&m.BankAccountID,
		&m.SupplierID,
		&m.Description,
		&m.Reference,
		&m.IsClosingDeposit,
		&m.IsSupplierDeposit,
		&m.AffectsInventory,
		&m.CreatedBy,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMovement inserts a movement row within the caller's transaction.
// Movements are append-only; there is no update path.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, tx pgx.Tx, movement domain.FinancialMovement) error {
	m := mapping.ToModelMovement(movement)

	query := `
		INSERT INTO financial_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, query,
		m.MovementID,
		m.BranchID,
		m.ShiftID,
		m.Classification,
		m.Motive,
		m.PaymentMethod,
		m.CashDelta,
		m.BankDelta,
		m.BankAccountID,
		m.SupplierID,
		m.Description,
		m.Reference,
		m.IsClosingDeposit,
		m.IsSupplierDeposit,
		m.AffectsInventory,
		m.CreatedBy,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save movement %s: %w", m.MovementID, mapPgError(err))
	}
	return nil
}

// FindMovementByID retrieves a movement by id.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.FinancialMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM financial_movements WHERE movement_id = $1;`
	m, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: movement %s", apperrors.ErrNotFound, movementID)
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}

	movement := mapping.ToDomainMovement(*m)
	return &movement, nil
}

// SumCashDeltasByShift aggregates SUM(cash_delta) over the shift's movements.
// Runs on the given querier so a transaction sees its own uncommitted rows.
func (r *PgxMovementRepository) SumCashDeltasByShift(ctx context.Context, q portsrepo.Querier, shiftID string) (decimal.Decimal, error) {
	if q == nil {
		q = r.Pool
	}

	query := `SELECT COALESCE(SUM(cash_delta), 0) FROM financial_movements WHERE shift_id = $1;`
	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, shiftID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum cash deltas for shift %s: %w", shiftID, err)
	}
	return sum, nil
}

// ReassignMovementsToShift re-parents the given movements to a shift as part
// of the shift close linkage.
func (r *PgxMovementRepository) ReassignMovementsToShift(ctx context.Context, tx pgx.Tx, movementIDs []string, shiftID string) error {
	if len(movementIDs) == 0 {
		return nil
	}

	query := `UPDATE financial_movements SET shift_id = $1 WHERE movement_id = ANY($2);`
	tag, err := tx.Exec(ctx, query, shiftID, movementIDs)
	if err != nil {
		return fmt.Errorf("failed to reassign movements to shift %s: %w", shiftID, mapPgError(err))
	}
	if int(tag.RowsAffected()) != len(movementIDs) {
		return fmt.Errorf("%w: %d of %d movements not found for shift linkage", apperrors.ErrNotFound, len(movementIDs)-int(tag.RowsAffected()), len(movementIDs))
	}
	return nil
}

// ListMovements retrieves a paginated list of movements using token-based
// pagination. It returns the movements, a token for the next page, and an error.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filters portsrepo.MovementFilters, limit int, nextToken *string) ([]domain.FinancialMovement, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row decides whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + movementColumns + ` FROM financial_movements WHERE branch_id = $1`
	args := []interface{}{filters.BranchID}

	if filters.ShiftID != nil && *filters.ShiftID != "" {
		args = append(args, *filters.ShiftID)
		baseQuery += ` AND shift_id = $` + strconv.Itoa(len(args))
	}
	if filters.Motive != nil {
		args = append(args, string(*filters.Motive))
		baseQuery += ` AND motive = $` + strconv.Itoa(len(args))
	}
	if filters.Classification != nil {
		args = append(args, string(*filters.Classification))
		baseQuery += ` AND classification = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		// Tuple comparison keeps the cursor stable on the (created_at, id) order.
		args = append(args, lastCreatedAt, lastID)
		baseQuery += ` AND (created_at, movement_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + ` ORDER BY created_at DESC, movement_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query movements for branch %s: %w", filters.BranchID, err)
	}
	defer rows.Close()

	results := make([]models.FinancialMovement, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanMovement(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan movement row: %w", scanErr)
		}
		results = append(results, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating movement rows for branch %s: %w", filters.BranchID, err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.MovementID)
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainMovementSlice(results), nextTokenVal, nil
}
