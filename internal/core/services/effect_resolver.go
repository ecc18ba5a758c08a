package services

import (
	"fmt"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// effectFn computes the signed cash and bank deltas for a positive amount.
type effectFn func(method domain.PaymentMethod, amount decimal.Decimal) (cash, bank decimal.Decimal)

// ingress routes incoming money: to the drawer for CASH, to the bank otherwise.
func ingress(method domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if method.IsCash() {
		return amount, decimal.Zero
	}
	return decimal.Zero, amount
}

// egress routes outgoing money, mirroring ingress with negated deltas.
func egress(method domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	cash, bank := ingress(method, amount)
	return cash.Neg(), bank.Neg()
}

// Fixed-direction effects for motives whose routing ignores the payment method.
func cashIngress(_ domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return amount, decimal.Zero
}

func cashEgress(_ domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return amount.Neg(), decimal.Zero
}

func bankEgress(_ domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return decimal.Zero, amount.Neg()
}

func bankToCash(_ domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return amount, amount.Neg()
}

func cashToBank(_ domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return amount.Neg(), amount
}

type effectRule struct {
	classification domain.MovementClassification
	effect         effectFn
}

// effectRules is the full motive taxonomy. A motive absent from this table is
// unsupported and rejected outright.
var effectRules = map[domain.MovementMotive]effectRule{
	domain.MotiveSale:                {domain.ClassificationIncome, ingress},
	domain.MotiveCreditCollection:    {domain.ClassificationIncome, ingress},
	domain.MotiveBankToCash:          {domain.ClassificationTransfer, bankToCash},
	domain.MotiveOtherIncome:         {domain.ClassificationIncome, ingress},
	domain.MotiveOperatingExpense:    {domain.ClassificationOperatingExpense, egress},
	domain.MotiveMerchandisePurchase: {domain.ClassificationCostOfSale, egress},
	domain.MotiveAssociatedCost:      {domain.ClassificationCostOfSale, egress},
	domain.MotiveClosingDeposit:      {domain.ClassificationTransfer, cashToBank},
	domain.MotiveSupplierDeposit:     {domain.ClassificationCostOfSale, cashEgress},
	domain.MotiveBankSupplierPayment: {domain.ClassificationCostOfSale, bankEgress},
	domain.MotiveSurplusAdjustment:   {domain.ClassificationAdjustment, cashIngress},
	domain.MotiveShortageAdjustment:  {domain.ClassificationAdjustment, cashEgress},
	domain.MotiveRefund:              {domain.ClassificationCounterSale, egress},
	domain.MotiveCreditPayment:       {domain.ClassificationCostOfSale, egress},
}

// ResolveEffect maps a proposed movement to its accounting effect. Pure: no
// I/O, no state. The amount must be positive.
func ResolveEffect(motive domain.MovementMotive, method domain.PaymentMethod, amount decimal.Decimal) (domain.MovementEffect, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.MovementEffect{}, fmt.Errorf("%w: movement amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}

	rule, ok := effectRules[motive]
	if !ok {
		return domain.MovementEffect{}, fmt.Errorf("%w: unsupported movement motive %q", apperrors.ErrValidation, motive)
	}

	cash, bank := rule.effect(method, amount)
	return domain.MovementEffect{
		Classification: rule.classification,
		CashDelta:      cash,
		BankDelta:      bank,
	}, nil
}

// AffectsInventory reports whether a motive consumes or adds stock.
// Only merchandise purchases do.
func AffectsInventory(motive domain.MovementMotive) bool {
	return motive == domain.MotiveMerchandisePurchase
}
