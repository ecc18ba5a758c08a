package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	"github.com/retailcore/cashdesk/internal/models"
	"github.com/retailcore/cashdesk/internal/utils/mapping"
)

type PgxSalesGoalRepository struct {
	BaseRepository
}

// newPgxSalesGoalRepository creates a new repository for sales goal data.
func newPgxSalesGoalRepository(pool *pgxpool.Pool) portsrepo.SalesGoalRepositoryFacade {
	return &PgxSalesGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalesGoalRepositoryFacade = (*PgxSalesGoalRepository)(nil)

// FindLatestGoalForUser retrieves the user's most recent ACTIVE-or-COMPLETED
// goal. A nil querier reads from the pool.
func (r *PgxSalesGoalRepository) FindLatestGoalForUser(ctx context.Context, q portsrepo.Querier, userID string) (*domain.SalesGoal, error) {
	if q == nil {
		q = r.Pool
	}

	query := `
		SELECT goal_id, user_id, target_amount, accumulated_amount, status, created_at, created_by, last_updated_at, last_updated_by
		FROM sales_goals
		WHERE user_id = $1 AND status IN ('ACTIVE', 'COMPLETED')
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var m models.SalesGoal
	err := q.QueryRow(ctx, query, userID).Scan(
		&m.GoalID,
		&m.UserID,
		&m.TargetAmount,
		&m.AccumulatedAmount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sales goal for user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find sales goal for user %s: %w", userID, err)
	}

	goal := mapping.ToDomainSalesGoal(m)
	return &goal, nil
}

// UpdateGoalProgress writes the goal's accumulated amount and status.
func (r *PgxSalesGoalRepository) UpdateGoalProgress(ctx context.Context, tx pgx.Tx, goal domain.SalesGoal) error {
	query := `
		UPDATE sales_goals
		SET accumulated_amount = $2,
		    status = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE goal_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		goal.GoalID,
		goal.AccumulatedAmount,
		string(goal.Status),
		goal.LastUpdatedAt,
		goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update sales goal %s: %w", goal.GoalID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: sales goal %s", apperrors.ErrNotFound, goal.GoalID)
	}
	return nil
}
