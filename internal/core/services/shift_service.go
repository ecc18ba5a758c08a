package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
	"github.com/retailcore/cashdesk/internal/dto"
	"github.com/retailcore/cashdesk/internal/middleware"
)

// shiftService owns the shift (turno) lifecycle: open, resolve, close.
type shiftService struct {
	shiftRepo    portsrepo.ShiftRepositoryWithTx
	movementRepo portsrepo.MovementRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	goalRepo     portsrepo.SalesGoalRepositoryFacade
	guard        *BalanceGuard
}

// NewShiftService creates a new shift service.
func NewShiftService(
	shiftRepo portsrepo.ShiftRepositoryWithTx,
	movementRepo portsrepo.MovementRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	goalRepo portsrepo.SalesGoalRepositoryFacade,
	guard *BalanceGuard,
) portssvc.ShiftSvcFacade {
	return &shiftService{
		shiftRepo:    shiftRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
		goalRepo:     goalRepo,
		guard:        guard,
	}
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// OpenShift opens a new cash shift for the user at the branch.
func (s *shiftService) OpenShift(ctx context.Context, req dto.OpenShiftRequest, userID string) (*domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.BranchID == "" || userID == "" {
		return nil, fmt.Errorf("%w: branch id and user id are required to open a shift", apperrors.ErrValidation)
	}
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}
	if req.FixedFloat.IsNegative() {
		return nil, fmt.Errorf("%w: fixed float cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	shift := domain.Shift{
		ShiftID:        uuid.NewString(),
		BranchID:       req.BranchID,
		OpenedByUserID: userID,
		Status:         domain.ShiftOpen,
		OpeningBalance: req.OpeningBalance,
		FixedFloat:     req.FixedFloat,
		OpenedAt:       now,
		OpeningComment: req.Comment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		if errors.Is(err, apperrors.ErrShiftAlreadyOpen) {
			logger.Warn("User already has an open shift at branch", slog.String("branch_id", req.BranchID))
			return nil, err
		}
		logger.Error("Failed to save shift", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to open shift: %w", err)
	}

	logger.Info("Shift opened", slog.String("shift_id", shift.ShiftID), slog.String("branch_id", shift.BranchID))
	return &shift, nil
}

// FindOpenShift resolves the user's currently open shift at the branch.
func (s *shiftService) FindOpenShift(ctx context.Context, branchID, userID string) (*domain.Shift, error) {
	if branchID == "" || userID == "" {
		return nil, fmt.Errorf("%w: branch id and user id are required", apperrors.ErrValidation)
	}
	return s.shiftRepo.FindOpenShift(ctx, branchID, userID)
}

// ShiftBalances returns the derived balance snapshot of an open shift.
func (s *shiftService) ShiftBalances(ctx context.Context, shiftID string) (*domain.ShiftBalances, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, nil, shiftID)
	if err != nil {
		return nil, err
	}

	state, err := s.guard.CurrentState(ctx, nil, shift)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// ListShiftSales returns the sale rows linked to a shift, for close previews.
func (s *shiftService) ListShiftSales(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	if shiftID == "" {
		return nil, fmt.Errorf("%w: shift id is required", apperrors.ErrValidation)
	}
	if _, err := s.shiftRepo.FindShiftByID(ctx, nil, shiftID); err != nil {
		return nil, err
	}
	return s.saleRepo.ListSalesByShift(ctx, shiftID)
}

// CloseShift closes a shift exactly once. In one transaction it writes the
// closing fields, re-parents the given deposit/expense movements and sale
// rows, and increments the opening user's sales goal by the linked sales
// total. A missing goal is logged and skipped, never fatal.
func (s *shiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, userID string) (*domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if shiftID == "" || userID == "" {
		return nil, fmt.Errorf("%w: shift id and user id are required to close a shift", apperrors.ErrValidation)
	}

	tx, err := s.shiftRepo.BeginSerializable(ctx)
	if err != nil {
		return nil, err
	}
	defer s.shiftRepo.Rollback(ctx, tx)

	// Lock the shift so closing cannot interleave with movement creation.
	shift, err := s.shiftRepo.LockShift(ctx, tx, shiftID)
	if err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, apperrors.ErrShiftNotOpen
	}

	now := time.Now().UTC()
	closingBalance := req.ClosingBalance
	shift.Status = domain.ShiftClosed
	shift.ClosedAt = &now
	shift.ClosedByUserID = &userID
	shift.ClosingBalance = &closingBalance
	shift.ClosingComment = req.Comment
	shift.LastUpdatedAt = now
	shift.LastUpdatedBy = userID

	if err := s.shiftRepo.CloseShift(ctx, tx, *shift); err != nil {
		logger.Error("Failed to write shift close", slog.String("error", err.Error()), slog.String("shift_id", shiftID))
		return nil, fmt.Errorf("failed to close shift %s: %w", shiftID, err)
	}

	// Re-parent pending deposit and expense movements to the closing shift.
	movementIDs := make([]string, 0, len(req.DepositIDs)+len(req.ExpenseIDs))
	movementIDs = append(movementIDs, req.DepositIDs...)
	movementIDs = append(movementIDs, req.ExpenseIDs...)
	if len(movementIDs) > 0 {
		if err := s.movementRepo.ReassignMovementsToShift(ctx, tx, movementIDs, shiftID); err != nil {
			logger.Error("Failed to re-parent movements at close", slog.String("error", err.Error()), slog.String("shift_id", shiftID))
			return nil, fmt.Errorf("failed to link movements to shift %s: %w", shiftID, err)
		}
	}

	if len(req.SaleIDs) > 0 {
		if err := s.saleRepo.AssignSalesToShift(ctx, tx, req.SaleIDs, shiftID); err != nil {
			logger.Error("Failed to re-parent sales at close", slog.String("error", err.Error()), slog.String("shift_id", shiftID))
			return nil, fmt.Errorf("failed to link sales to shift %s: %w", shiftID, err)
		}

		salesTotal, err := s.saleRepo.SumSaleTotals(ctx, tx, req.SaleIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to sum linked sales for shift %s: %w", shiftID, err)
		}

		if err := s.incrementSalesGoal(ctx, tx, shift.OpenedByUserID, salesTotal, userID, now); err != nil {
			return nil, err
		}
	}

	if err := s.shiftRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Shift closed", slog.String("shift_id", shiftID), slog.Int("linked_sales", len(req.SaleIDs)))
	return shift, nil
}

// incrementSalesGoal adds the sales total to the opening user's most recent
// active-or-completed goal, flipping it to COMPLETED when the target is met.
func (s *shiftService) incrementSalesGoal(ctx context.Context, tx pgx.Tx, openedByUserID string, salesTotal decimal.Decimal, updatedBy string, now time.Time) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if salesTotal.IsZero() {
		return nil
	}

	goal, err := s.goalRepo.FindLatestGoalForUser(ctx, tx, openedByUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("No sales goal for user, skipping goal increment", slog.String("user_id", openedByUserID))
			return nil
		}
		return fmt.Errorf("failed to find sales goal for user %s: %w", openedByUserID, err)
	}

	goal.AccumulatedAmount = goal.AccumulatedAmount.Add(salesTotal)
	if goal.AccumulatedAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.Status = domain.GoalCompleted
	}
	goal.LastUpdatedAt = now
	goal.LastUpdatedBy = updatedBy

	if err := s.goalRepo.UpdateGoalProgress(ctx, tx, *goal); err != nil {
		return fmt.Errorf("failed to update sales goal %s: %w", goal.GoalID, err)
	}

	logger.Info("Sales goal incremented",
		slog.String("goal_id", goal.GoalID),
		slog.String("added", salesTotal.String()),
		slog.String("status", string(goal.Status)))
	return nil
}
