package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialMovement maps the financial_movements table. Rows are append-only.
type FinancialMovement struct {
	MovementID        string          `json:"movementID"`
	BranchID          string          `json:"branchID"`
	ShiftID           *string         `json:"shiftID"`
	Classification    string          `json:"classification"`
	Motive            string          `json:"motive"`
	PaymentMethod     string          `json:"paymentMethod"`
	CashDelta         decimal.Decimal `json:"cashDelta"`
	BankDelta         decimal.Decimal `json:"bankDelta"`
	BankAccountID     *string         `json:"bankAccountID"`
	SupplierID        *string         `json:"supplierID"`
	Description       string          `json:"description"`
	Reference         string          `json:"reference"`
	IsClosingDeposit  bool            `json:"isClosingDeposit"`
	IsSupplierDeposit bool            `json:"isSupplierDeposit"`
	AffectsInventory  bool            `json:"affectsInventory"`
	CreatedBy         string          `json:"createdBy"`
	CreatedAt         time.Time       `json:"createdAt"`
}
