package domain

// BankAccount is a reference entity; the ledger only reads it to validate
// that bank-affecting movements point at a real account.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"` // Primary Key (UUID)
	BranchID      string `json:"branchID"`
	BankName      string `json:"bankName"`
	Alias         string `json:"alias"`
	MaskedNumber  string `json:"maskedNumber"`
}
