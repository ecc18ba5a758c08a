package dto

import "github.com/retailcore/cashdesk/internal/core/domain"

// BankAccountResponse is the transport representation of a bank account.
type BankAccountResponse struct {
	BankAccountID string `json:"bankAccountID"`
	BranchID      string `json:"branchID"`
	BankName      string `json:"bankName"`
	Alias         string `json:"alias"`
	MaskedNumber  string `json:"maskedNumber"`
}

// ToBankAccountResponse converts a domain bank account to its response representation.
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: a.BankAccountID,
		BranchID:      a.BranchID,
		BankName:      a.BankName,
		Alias:         a.Alias,
		MaskedNumber:  a.MaskedNumber,
	}
}

// ToBankAccountResponses converts a slice of domain bank accounts.
func ToBankAccountResponses(as []domain.BankAccount) []BankAccountResponse {
	out := make([]BankAccountResponse, len(as))
	for i := range as {
		out[i] = ToBankAccountResponse(&as[i])
	}
	return out
}
