package dto

import (
	"time"

	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest is the payload for recording a financial movement.
// Amount is always positive; direction comes from the motive.
type CreateMovementRequest struct {
	BranchID          string          `json:"branchID" binding:"required"`
	Motive            string          `json:"motive" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"gt=0"`
	PaymentMethod     *string         `json:"paymentMethod,omitempty"`
	BankAccountID     *string         `json:"bankAccountID,omitempty"`
	ShiftID           *string         `json:"shiftID,omitempty"`
	SupplierID        *string         `json:"supplierID,omitempty"`
	Description       string          `json:"description"`
	Reference         string          `json:"reference"`
	IsClosingDeposit  bool            `json:"isClosingDeposit"`
	IsSupplierDeposit bool            `json:"isSupplierDeposit"`
	// AllowForeignShift permits attaching the movement to a shift opened by
	// another user (supervisor flows). Branch and OPEN checks still apply.
	AllowForeignShift bool `json:"allowForeignShift"`
}

// MovementResponse is the transport representation of a movement.
type MovementResponse struct {
	MovementID        string          `json:"movementID"`
	BranchID          string          `json:"branchID"`
	ShiftID           *string         `json:"shiftID,omitempty"`
	Classification    string          `json:"classification"`
	Motive            string          `json:"motive"`
	PaymentMethod     string          `json:"paymentMethod"`
	CashDelta         decimal.Decimal `json:"cashDelta"`
	BankDelta         decimal.Decimal `json:"bankDelta"`
	BankAccountID     *string         `json:"bankAccountID,omitempty"`
	SupplierID        *string         `json:"supplierID,omitempty"`
	Description       string          `json:"description,omitempty"`
	Reference         string          `json:"reference,omitempty"`
	IsClosingDeposit  bool            `json:"isClosingDeposit"`
	IsSupplierDeposit bool            `json:"isSupplierDeposit"`
	AffectsInventory  bool            `json:"affectsInventory"`
	CreatedBy         string          `json:"createdBy"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToMovementResponse converts a domain movement to its response representation.
func ToMovementResponse(m *domain.FinancialMovement) MovementResponse {
	return MovementResponse{
		MovementID:        m.MovementID,
		BranchID:          m.BranchID,
		ShiftID:           m.ShiftID,
		Classification:    string(m.Classification),
		Motive:            string(m.Motive),
		PaymentMethod:     string(m.PaymentMethod),
		CashDelta:         m.CashDelta,
		BankDelta:         m.BankDelta,
		BankAccountID:     m.BankAccountID,
		SupplierID:        m.SupplierID,
		Description:       m.Description,
		Reference:         m.Reference,
		IsClosingDeposit:  m.IsClosingDeposit,
		IsSupplierDeposit: m.IsSupplierDeposit,
		AffectsInventory:  m.AffectsInventory,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
}

// ToMovementResponses converts a slice of domain movements.
func ToMovementResponses(ms []domain.FinancialMovement) []MovementResponse {
	out := make([]MovementResponse, len(ms))
	for i := range ms {
		out[i] = ToMovementResponse(&ms[i])
	}
	return out
}

// ListMovementsParams holds filters for listing movements.
type ListMovementsParams struct {
	BranchID       string  `form:"branchID" binding:"required"`
	ShiftID        *string `form:"shiftID"`
	Motive         *string `form:"motive"`
	Classification *string `form:"classification"`
	Limit          int     `form:"limit"`
	NextToken      *string `form:"nextToken"`
}

// ListMovementsResponse is a page of movements plus the next-page token.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}
