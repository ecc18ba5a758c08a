package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	"github.com/retailcore/cashdesk/internal/models"
	"github.com/retailcore/cashdesk/internal/utils/mapping"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for the slice of sale data
// the shift close touches. Sale creation lives upstream.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// AssignSalesToShift re-parents the given sales to a shift.
func (r *PgxSaleRepository) AssignSalesToShift(ctx context.Context, tx pgx.Tx, saleIDs []string, shiftID string) error {
	if len(saleIDs) == 0 {
		return nil
	}

	query := `UPDATE sales SET shift_id = $1 WHERE sale_id = ANY($2);`
	tag, err := tx.Exec(ctx, query, shiftID, saleIDs)
	if err != nil {
		return fmt.Errorf("failed to assign sales to shift %s: %w", shiftID, mapPgError(err))
	}
	if int(tag.RowsAffected()) != len(saleIDs) {
		return fmt.Errorf("%w: %d of %d sales not found for shift linkage", apperrors.ErrNotFound, len(saleIDs)-int(tag.RowsAffected()), len(saleIDs))
	}
	return nil
}

// SumSaleTotals aggregates SUM(total) over the given sales.
func (r *PgxSaleRepository) SumSaleTotals(ctx context.Context, q portsrepo.Querier, saleIDs []string) (decimal.Decimal, error) {
	if q == nil {
		q = r.Pool
	}
	if len(saleIDs) == 0 {
		return decimal.Zero, nil
	}

	query := `SELECT COALESCE(SUM(total), 0) FROM sales WHERE sale_id = ANY($1);`
	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, saleIDs).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sale totals: %w", err)
	}
	return sum, nil
}

// ListSalesByShift retrieves the sales linked to a shift.
func (r *PgxSaleRepository) ListSalesByShift(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	query := `SELECT sale_id, branch_id, shift_id, total, created_at FROM sales WHERE shift_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales for shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0)
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(&m.SaleID, &m.BranchID, &m.ShiftID, &m.Total, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows for shift %s: %w", shiftID, err)
	}

	return mapping.ToDomainSaleSlice(sales), nil
}
