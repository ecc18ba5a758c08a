package services

import (
	"context"

	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/retailcore/cashdesk/internal/dto"
)

// ShiftSvcFacade owns the shift (turno) lifecycle.
type ShiftSvcFacade interface {
	// OpenShift opens a new cash shift for the user at the branch.
	OpenShift(ctx context.Context, req dto.OpenShiftRequest, userID string) (*domain.Shift, error)

	// FindOpenShift resolves the caller's currently open shift at the branch.
	FindOpenShift(ctx context.Context, branchID, userID string) (*domain.Shift, error)

	// CloseShift closes a shift, re-parents the given deposit/expense/sale
	// rows to it, and increments the opening user's sales goal.
	CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, userID string) (*domain.Shift, error)

	// ShiftBalances returns the derived balance snapshot of an open shift.
	ShiftBalances(ctx context.Context, shiftID string) (*domain.ShiftBalances, error)

	// ListShiftSales returns the sale rows linked to a shift, for close previews.
	ListShiftSales(ctx context.Context, shiftID string) ([]domain.Sale, error)
}

// SalesGoalSvcFacade exposes goal reads for the UI.
type SalesGoalSvcFacade interface {
	// CurrentGoal returns the user's most recent active-or-completed goal.
	CurrentGoal(ctx context.Context, userID string) (*domain.SalesGoal, error)
}
