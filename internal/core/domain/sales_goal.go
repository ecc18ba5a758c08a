package domain

import "github.com/shopspring/decimal"

// SalesGoalStatus indicates the state of a sales goal.
type SalesGoalStatus string

const (
	GoalActive    SalesGoalStatus = "ACTIVE"
	GoalCompleted SalesGoalStatus = "COMPLETED"
)

// SalesGoal tracks a user's sales target. Closing a shift adds the total of
// the linked sales to the user's most recent active-or-completed goal.
type SalesGoal struct {
	GoalID            string          `json:"goalID"` // Primary Key (UUID)
	UserID            string          `json:"userID"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	AccumulatedAmount decimal.Decimal `json:"accumulatedAmount"`
	Status            SalesGoalStatus `json:"status"`
	AuditFields
}
