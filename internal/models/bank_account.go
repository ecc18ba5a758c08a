package models

// BankAccount maps the bank_accounts table. Read-only from this service.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"`
	BranchID      string `json:"branchID"`
	BankName      string `json:"bankName"`
	Alias         string `json:"alias"`
	MaskedNumber  string `json:"maskedNumber"`
}
