package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the instrument used to settle a movement.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCard     PaymentMethod = "CARD"
)

// IsCash reports whether the method settles against the drawer.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentCash
}

// MovementMotive is the business reason for a movement. The motive is the
// sole driver of its accounting effect.
type MovementMotive string

const (
	MotiveSale                MovementMotive = "SALE"
	MotiveCreditCollection    MovementMotive = "CREDIT_COLLECTION"
	MotiveBankToCash          MovementMotive = "BANK_TO_CASH"
	MotiveOtherIncome         MovementMotive = "OTHER_INCOME"
	MotiveOperatingExpense    MovementMotive = "OPERATING_EXPENSE"
	MotiveMerchandisePurchase MovementMotive = "MERCHANDISE_PURCHASE"
	MotiveAssociatedCost      MovementMotive = "ASSOCIATED_COST"
	MotiveClosingDeposit      MovementMotive = "CLOSING_DEPOSIT"
	MotiveSupplierDeposit     MovementMotive = "SUPPLIER_DEPOSIT"
	MotiveBankSupplierPayment MovementMotive = "BANK_SUPPLIER_PAYMENT"
	MotiveSurplusAdjustment   MovementMotive = "SURPLUS_ADJUSTMENT"
	MotiveShortageAdjustment  MovementMotive = "SHORTAGE_ADJUSTMENT"
	MotiveRefund              MovementMotive = "REFUND"
	MotiveCreditPayment       MovementMotive = "CREDIT_PAYMENT"
)

// MovementClassification is the accounting bucket a motive maps to.
type MovementClassification string

const (
	ClassificationIncome           MovementClassification = "INCOME"
	ClassificationOperatingExpense MovementClassification = "OPERATING_EXPENSE"
	ClassificationCostOfSale       MovementClassification = "COST_OF_SALE"
	ClassificationTransfer         MovementClassification = "TRANSFER"
	ClassificationAdjustment       MovementClassification = "ADJUSTMENT"
	ClassificationCounterSale      MovementClassification = "COUNTER_SALE"
)

// MovementEffect is the accounting effect derived from a motive, payment
// method and amount: the classification plus signed cash and bank deltas.
type MovementEffect struct {
	Classification MovementClassification
	CashDelta      decimal.Decimal
	BankDelta      decimal.Decimal
}

// AffectsCash reports whether the effect changes the drawer balance.
func (e MovementEffect) AffectsCash() bool {
	return !e.CashDelta.IsZero()
}

// AffectsBank reports whether the effect changes a bank account balance.
func (e MovementEffect) AffectsBank() bool {
	return !e.BankDelta.IsZero()
}

// FinancialMovement is one immutable ledger entry. Movements are never
// updated or deleted; corrections are new offsetting movements.
type FinancialMovement struct {
	MovementID        string                 `json:"movementID"` // Primary Key (UUID)
	BranchID          string                 `json:"branchID"`
	ShiftID           *string                `json:"shiftID,omitempty"` // nil only for bank-only movements
	Classification    MovementClassification `json:"classification"`
	Motive            MovementMotive         `json:"motive"`
	PaymentMethod     PaymentMethod          `json:"paymentMethod"`
	CashDelta         decimal.Decimal        `json:"cashDelta"`
	BankDelta         decimal.Decimal        `json:"bankDelta"`
	BankAccountID     *string                `json:"bankAccountID,omitempty"`
	SupplierID        *string                `json:"supplierID,omitempty"`
	Description       string                 `json:"description"`
	Reference         string                 `json:"reference"`
	IsClosingDeposit  bool                   `json:"isClosingDeposit"`
	IsSupplierDeposit bool                   `json:"isSupplierDeposit"`
	AffectsInventory  bool                   `json:"affectsInventory"`
	CreatedBy         string                 `json:"createdBy"`
	CreatedAt         time.Time              `json:"createdAt"`
}
