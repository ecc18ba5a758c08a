package services

import (
	"context"
	"fmt"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
)

// salesGoalService exposes goal reads. Goal progress is written only by the
// shift close flow.
type salesGoalService struct {
	goalRepo portsrepo.SalesGoalRepositoryFacade
}

// NewSalesGoalService creates a new sales goal service.
func NewSalesGoalService(goalRepo portsrepo.SalesGoalRepositoryFacade) portssvc.SalesGoalSvcFacade {
	return &salesGoalService{goalRepo: goalRepo}
}

var _ portssvc.SalesGoalSvcFacade = (*salesGoalService)(nil)

// CurrentGoal returns the user's most recent active-or-completed goal.
func (s *salesGoalService) CurrentGoal(ctx context.Context, userID string) (*domain.SalesGoal, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	return s.goalRepo.FindLatestGoalForUser(ctx, nil, userID)
}
