package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	ShiftRepo       ShiftRepositoryWithTx
	MovementRepo    MovementRepositoryFacade
	BankAccountRepo BankAccountRepositoryFacade
	SaleRepo        SaleRepositoryFacade
	SalesGoalRepo   SalesGoalRepositoryFacade
}
