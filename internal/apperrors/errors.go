package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrShiftNotOpen indicates the targeted shift is not in OPEN status.
var ErrShiftNotOpen = errors.New("shift is not open")

// ErrShiftAlreadyOpen indicates the user already has an open shift at the branch.
var ErrShiftAlreadyOpen = errors.New("an open shift already exists for this user at this branch")

// ErrNoOpenShift indicates no open shift could be resolved for the caller.
// Cash movements require one; the cashier must open a shift first.
var ErrNoOpenShift = errors.New("no open shift found for this user at this branch")

// ErrShiftBusy indicates the shift row lock could not be acquired immediately.
// Transient: safe to retry after a short delay. Never retried internally.
var ErrShiftBusy = errors.New("shift is busy, try again")

// ErrTxSerialization indicates the datastore aborted the transaction because
// it could not be serialized against a concurrent one. Transient, caller retries.
var ErrTxSerialization = errors.New("transaction could not be serialized, try again")

// ErrConsistency indicates the post-persist check found a negative cash
// balance. It signals a guard defect, not a user error, and always rolls the
// whole transaction back.
var ErrConsistency = errors.New("consistency violation: shift cash balance would go negative")

// InsufficientFundsError rejects a cash egress larger than the shift's cash
// on hand. MaxEgress is the largest amount the caller could move right now.
type InsufficientFundsError struct {
	MaxEgress decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient cash in shift: maximum egress currently possible is %s", e.MaxEgress.String())
}

// DepositExceedsAvailableError rejects a closing deposit larger than the
// withdrawable cash (cash on hand minus the fixed float).
type DepositExceedsAvailableError struct {
	MaxDeposit decimal.Decimal
}

func (e *DepositExceedsAvailableError) Error() string {
	return fmt.Sprintf("deposit exceeds available cash: maximum deposit currently possible is %s", e.MaxDeposit.String())
}
