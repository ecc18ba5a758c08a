package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
	"github.com/retailcore/cashdesk/internal/dto"
	"github.com/retailcore/cashdesk/internal/middleware"
)

// Motives whose payment method defaults to TRANSFER because they always
// touch a bank account.
var bankSideMotives = map[domain.MovementMotive]bool{
	domain.MotiveClosingDeposit:      true,
	domain.MotiveBankSupplierPayment: true,
	domain.MotiveBankToCash:          true,
}

// movementService orchestrates movement creation. One movement attempt is a
// single SERIALIZABLE transaction: resolve and lock the shift, run the
// balance guards, persist, re-check, commit. Any failure rolls the whole
// thing back; no partial writes are observable. Transient aborts (shift
// busy, serialization) are surfaced to the caller for retry.
type movementService struct {
	shiftRepo    portsrepo.ShiftRepositoryWithTx
	movementRepo portsrepo.MovementRepositoryFacade
	bankRepo     portsrepo.BankAccountRepositoryFacade
	guard        *BalanceGuard
}

// NewMovementService creates a new movement service.
func NewMovementService(
	shiftRepo portsrepo.ShiftRepositoryWithTx,
	movementRepo portsrepo.MovementRepositoryFacade,
	bankRepo portsrepo.BankAccountRepositoryFacade,
	guard *BalanceGuard,
) portssvc.MovementSvcFacade {
	return &movementService{
		shiftRepo:    shiftRepo,
		movementRepo: movementRepo,
		bankRepo:     bankRepo,
		guard:        guard,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// defaultPaymentMethod fills an absent payment method: TRANSFER for
// bank-side motives, TRANSFER when a bank account was supplied, CASH otherwise.
func defaultPaymentMethod(motive domain.MovementMotive, req dto.CreateMovementRequest) domain.PaymentMethod {
	if req.PaymentMethod != nil && *req.PaymentMethod != "" {
		return domain.PaymentMethod(*req.PaymentMethod)
	}
	if bankSideMotives[motive] {
		return domain.PaymentTransfer
	}
	if req.BankAccountID != nil && *req.BankAccountID != "" {
		return domain.PaymentTransfer
	}
	return domain.PaymentCash
}

// validateEffectConsistency rejects payment-method/effect combinations that
// make no physical sense, before any I/O happens.
func validateEffectConsistency(motive domain.MovementMotive, method domain.PaymentMethod, effect domain.MovementEffect, req dto.CreateMovementRequest) error {
	hasBankAccount := req.BankAccountID != nil && *req.BankAccountID != ""

	if method.IsCash() && effect.AffectsBank() {
		return fmt.Errorf("%w: a CASH movement cannot affect a bank account", apperrors.ErrValidation)
	}
	if !method.IsCash() && effect.AffectsCash() && !(motive == domain.MotiveClosingDeposit || motive == domain.MotiveBankToCash) {
		return fmt.Errorf("%w: a non-CASH movement cannot affect the drawer for motive %s", apperrors.ErrValidation, motive)
	}
	if effect.AffectsBank() && !hasBankAccount {
		return fmt.Errorf("%w: bank-affecting movements require a bank account id", apperrors.ErrValidation)
	}
	if !effect.AffectsBank() && hasBankAccount {
		return fmt.Errorf("%w: a bank account id was supplied for a movement that does not affect any bank account", apperrors.ErrValidation)
	}

	switch motive {
	case domain.MotiveClosingDeposit:
		if !effect.CashDelta.IsNegative() || !effect.BankDelta.IsPositive() {
			return fmt.Errorf("%w: a closing deposit must move cash out of the drawer into a bank account", apperrors.ErrValidation)
		}
	case domain.MotiveBankToCash:
		if !effect.CashDelta.IsPositive() || !effect.BankDelta.IsNegative() {
			return fmt.Errorf("%w: a bank-to-cash transfer must move money out of a bank account into the drawer", apperrors.ErrValidation)
		}
	case domain.MotiveSupplierDeposit:
		if !effect.AffectsCash() || !effect.CashDelta.IsNegative() || effect.AffectsBank() || effect.Classification != domain.ClassificationCostOfSale {
			return fmt.Errorf("%w: a supplier deposit must be a cash-only cost-of-sale egress", apperrors.ErrValidation)
		}
	}

	return nil
}

// CreateMovement records one immutable ledger entry.
func (s *movementService) CreateMovement(ctx context.Context, req dto.CreateMovementRequest, userID string) (*domain.FinancialMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// VALIDATING: local fast-fail checks, no I/O beyond the directory lookup.
	if req.BranchID == "" || userID == "" {
		return nil, fmt.Errorf("%w: branch id and user id are required", apperrors.ErrValidation)
	}

	motive := domain.MovementMotive(req.Motive)
	method := defaultPaymentMethod(motive, req)

	effect, err := ResolveEffect(motive, method, req.Amount)
	if err != nil {
		return nil, err
	}
	if !effect.AffectsCash() && !effect.AffectsBank() {
		return nil, fmt.Errorf("%w: movement affects neither cash nor bank", apperrors.ErrValidation)
	}

	if err := validateEffectConsistency(motive, method, effect, req); err != nil {
		return nil, err
	}

	if effect.AffectsBank() {
		if _, err := s.bankRepo.FindBankAccountByID(ctx, *req.BankAccountID); err != nil {
			return nil, fmt.Errorf("bank account %s: %w", *req.BankAccountID, err)
		}
	}

	// LOCKING: everything from here to commit shares one serializable tx.
	tx, err := s.shiftRepo.BeginSerializable(ctx)
	if err != nil {
		return nil, err
	}
	defer s.shiftRepo.Rollback(ctx, tx)

	var shift *domain.Shift
	if effect.AffectsCash() {
		shift, err = s.resolveShiftForUpdate(ctx, tx, req, userID)
		if err != nil {
			return nil, err
		}
	} else if req.ShiftID != nil && *req.ShiftID != "" {
		return nil, fmt.Errorf("%w: bank-only movements must not attach a shift", apperrors.ErrValidation)
	}

	// Pre-guards against the locked snapshot.
	if shift != nil {
		if err := s.guard.AssertCashMovementAllowed(ctx, tx, shift, effect.CashDelta); err != nil {
			return nil, err
		}
		if motive == domain.MotiveClosingDeposit {
			if err := s.guard.AssertClosingDepositAllowed(ctx, tx, shift, effect.CashDelta.Abs()); err != nil {
				return nil, err
			}
		}
	}

	// PERSISTING
	now := time.Now().UTC()
	movement := domain.FinancialMovement{
		MovementID:        uuid.NewString(),
		BranchID:          req.BranchID,
		Classification:    effect.Classification,
		Motive:            motive,
		PaymentMethod:     method,
		CashDelta:         effect.CashDelta,
		BankDelta:         effect.BankDelta,
		BankAccountID:     req.BankAccountID,
		SupplierID:        req.SupplierID,
		Description:       req.Description,
		Reference:         req.Reference,
		IsClosingDeposit:  req.IsClosingDeposit || motive == domain.MotiveClosingDeposit,
		IsSupplierDeposit: req.IsSupplierDeposit || motive == domain.MotiveSupplierDeposit,
		AffectsInventory:  AffectsInventory(motive),
		CreatedBy:         userID,
		CreatedAt:         now,
	}
	if shift != nil {
		movement.ShiftID = &shift.ShiftID
	}

	if err := s.movementRepo.SaveMovement(ctx, tx, movement); err != nil {
		logger.Error("Failed to persist movement", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist movement: %w", err)
	}

	// POST_CHECKING: recompute cash on hand including the new row. Negative
	// means the guards failed us; abort everything rather than absorb it.
	if shift != nil {
		sum, err := s.movementRepo.SumCashDeltasByShift(ctx, tx, shift.ShiftID)
		if err != nil {
			return nil, fmt.Errorf("post-check aggregation failed for shift %s: %w", shift.ShiftID, err)
		}
		if shift.OpeningBalance.Add(sum).IsNegative() {
			logger.Error("Post-check found negative cash on hand, aborting transaction",
				slog.String("shift_id", shift.ShiftID),
				slog.String("cash_on_hand", shift.OpeningBalance.Add(sum).String()))
			return nil, apperrors.ErrConsistency
		}
	}

	// COMMITTED
	if err := s.shiftRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Movement created",
		slog.String("movement_id", movement.MovementID),
		slog.String("motive", string(movement.Motive)),
		slog.String("cash_delta", movement.CashDelta.String()),
		slog.String("bank_delta", movement.BankDelta.String()))
	return &movement, nil
}

// resolveShiftForUpdate locks the target shift for a cash-affecting movement:
// the explicit shift id when given (validated OPEN, same branch, same user
// unless the override flag permits a foreign shift), otherwise the caller's
// open shift at the branch.
func (s *movementService) resolveShiftForUpdate(ctx context.Context, tx pgx.Tx, req dto.CreateMovementRequest, userID string) (*domain.Shift, error) {
	if req.ShiftID != nil && *req.ShiftID != "" {
		shift, err := s.shiftRepo.LockShift(ctx, tx, *req.ShiftID)
		if err != nil {
			return nil, err
		}
		if !shift.IsOpen() {
			return nil, apperrors.ErrShiftNotOpen
		}
		if shift.BranchID != req.BranchID {
			return nil, fmt.Errorf("%w: shift %s belongs to another branch", apperrors.ErrValidation, shift.ShiftID)
		}
		if shift.OpenedByUserID != userID && !req.AllowForeignShift {
			return nil, fmt.Errorf("%w: shift %s was opened by another user", apperrors.ErrValidation, shift.ShiftID)
		}
		return shift, nil
	}

	return s.shiftRepo.LockOpenShift(ctx, tx, req.BranchID, userID)
}
// ListMovements retrieves a filtered, token-paginated page of movements.
func (s *movementService) ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	if params.BranchID == "" {
		return nil, fmt.Errorf("%w: branch id is required", apperrors.ErrValidation)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20 // Default limit
	}

	filters := portsrepo.MovementFilters{
		BranchID: params.BranchID,
		ShiftID:  params.ShiftID,
	}
	if params.Motive != nil && *params.Motive != "" {
		m := domain.MovementMotive(*params.Motive)
		filters.Motive = &m
	}
	if params.Classification != nil && *params.Classification != "" {
		c := domain.MovementClassification(*params.Classification)
		filters.Classification = &c
	}

	movements, nextToken, err := s.movementRepo.ListMovements(ctx, filters, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve movements: %w", err)
	}

	return &dto.ListMovementsResponse{
		Movements: dto.ToMovementResponses(movements),
		NextToken: nextToken,
	}, nil
}
