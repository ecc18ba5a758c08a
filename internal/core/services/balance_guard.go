package services

import (
	"context"
	"fmt"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// BalanceGuard derives a shift's balances from its persisted movements and
// validates proposed deltas against them. It is read-only: callers run it
// before and after mutating, inside the same transaction as the write when a
// write is involved.
type BalanceGuard struct {
	movementRepo portsrepo.MovementReader
}

// NewBalanceGuard creates a BalanceGuard over the given movement reader.
func NewBalanceGuard(movementRepo portsrepo.MovementReader) *BalanceGuard {
	return &BalanceGuard{movementRepo: movementRepo}
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CurrentState computes the derived balance snapshot of an open shift.
// Passing a nil querier reads committed state; passing the caller's tx reads
// its own uncommitted writes too.
func (g *BalanceGuard) CurrentState(ctx context.Context, q portsrepo.Querier, shift *domain.Shift) (domain.ShiftBalances, error) {
	if !shift.IsOpen() {
		return domain.ShiftBalances{}, apperrors.ErrShiftNotOpen
	}

	sum, err := g.movementRepo.SumCashDeltasByShift(ctx, q, shift.ShiftID)
	if err != nil {
		return domain.ShiftBalances{}, fmt.Errorf("failed to aggregate cash deltas for shift %s: %w", shift.ShiftID, err)
	}

	cashOnHand := shift.OpeningBalance.Add(sum)
	return domain.ShiftBalances{
		OpeningBalance:  shift.OpeningBalance,
		FixedFloat:      shift.FixedFloat,
		CashOnHand:      cashOnHand,
		OperableCash:    maxZero(cashOnHand),
		MaxWithdrawable: maxZero(cashOnHand.Sub(shift.FixedFloat)),
	}, nil
}

// AssertCashMovementAllowed rejects a proposed cash delta that would drive
// the shift's cash on hand negative. The returned error carries the maximum
// egress currently possible.
func (g *BalanceGuard) AssertCashMovementAllowed(ctx context.Context, q portsrepo.Querier, shift *domain.Shift, proposedCashDelta decimal.Decimal) error {
	state, err := g.CurrentState(ctx, q, shift)
	if err != nil {
		return err
	}

	if state.CashOnHand.Add(proposedCashDelta).IsNegative() {
		return &apperrors.InsufficientFundsError{MaxEgress: state.OperableCash}
	}
	return nil
}

// AssertClosingDepositAllowed rejects a closing deposit larger than the
// withdrawable cash; the fixed float must stay in the drawer.
func (g *BalanceGuard) AssertClosingDepositAllowed(ctx context.Context, q portsrepo.Querier, shift *domain.Shift, amount decimal.Decimal) error {
	state, err := g.CurrentState(ctx, q, shift)
	if err != nil {
		return err
	}

	if amount.GreaterThan(state.MaxWithdrawable) {
		return &apperrors.DepositExceedsAvailableError{MaxDeposit: state.MaxWithdrawable}
	}
	return nil
}
