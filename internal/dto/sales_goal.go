package dto

import (
	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesGoalResponse is the transport representation of a sales goal.
type SalesGoalResponse struct {
	GoalID            string          `json:"goalID"`
	UserID            string          `json:"userID"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	AccumulatedAmount decimal.Decimal `json:"accumulatedAmount"`
	Status            string          `json:"status"`
}

// ToSalesGoalResponse converts a domain sales goal to its response representation.
func ToSalesGoalResponse(g *domain.SalesGoal) SalesGoalResponse {
	return SalesGoalResponse{
		GoalID:            g.GoalID,
		UserID:            g.UserID,
		TargetAmount:      g.TargetAmount,
		AccumulatedAmount: g.AccumulatedAmount,
		Status:            string(g.Status),
	}
}
