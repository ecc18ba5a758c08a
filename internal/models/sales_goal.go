package models

import "github.com/shopspring/decimal"

// SalesGoalStatus indicates the state of a sales goal row.
type SalesGoalStatus string

const (
	GoalActive    SalesGoalStatus = "ACTIVE"
	GoalCompleted SalesGoalStatus = "COMPLETED"
)

// SalesGoal maps the sales_goals table.
type SalesGoal struct {
	GoalID            string          `json:"goalID"`
	UserID            string          `json:"userID"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	AccumulatedAmount decimal.Decimal `json:"accumulatedAmount"`
	Status            SalesGoalStatus `json:"status"`
	AuditFields
}
