package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Shift       ShiftSvcFacade
	Movement    MovementSvcFacade
	BankAccount BankAccountSvcFacade
	SalesGoal   SalesGoalSvcFacade
}
