package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseType distinguishes user expenses from the expenses that the ledger
// computes from other collections.
type ExpenseType string

const (
	ExpenseStandard        ExpenseType = "STANDARD"
	ExpenseTithe           ExpenseType = "TITHE"
	ExpenseInvestmentTotal ExpenseType = "INVESTMENT_TOTAL"
	ExpenseMiscTotal       ExpenseType = "MISC_TOTAL"
)

// SyntheticTypes lists the computed expense types.
var SyntheticTypes = []ExpenseType{ExpenseTithe, ExpenseInvestmentTotal, ExpenseMiscTotal}

// Valid reports if the type is one of the known expense types.
func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseStandard, ExpenseTithe, ExpenseInvestmentTotal, ExpenseMiscTotal:
		return true
	}
	return false
}

// Synthetic reports if expenses of the type are computed by the ledger.
func (t ExpenseType) Synthetic() bool {
	switch t {
	case ExpenseTithe, ExpenseInvestmentTotal, ExpenseMiscTotal:
		return true
	case ExpenseStandard:
		return false
	}
	panic(fmt.Sprintf("unknown expense type %q", string(t)))
}

// Order is the reserved order of a computed expense.
func (t ExpenseType) Order() int {
	switch t {
	case ExpenseTithe:
		return 0
	case ExpenseInvestmentTotal:
		return 998
	case ExpenseMiscTotal:
		return 999
	case ExpenseStandard:
	}
	panic(fmt.Sprintf("expense type %q has no reserved order", string(t)))
}

// Description is the description of a computed expense.
func (t ExpenseType) Description() string {
	switch t {
	case ExpenseTithe:
		return "Tithe"
	case ExpenseInvestmentTotal:
		return "Total investments"
	case ExpenseMiscTotal:
		return "Total misc expenses"
	case ExpenseStandard:
	}
	panic(fmt.Sprintf("expense type %q has no fixed description", string(t)))
}

// Source is the item kind a computed expense sums up.
func (t ExpenseType) Source() Kind {
	switch t {
	case ExpenseTithe:
		return KindIncome
	case ExpenseInvestmentTotal:
		return KindInvestment
	case ExpenseMiscTotal:
		return KindMiscExpense
	case ExpenseStandard:
	}
	panic(fmt.Sprintf("expense type %q has no source", string(t)))
}

// SyntheticFor returns the computed expense type that sums up items of the kind.
func SyntheticFor(k Kind) (ExpenseType, bool) {
	switch k {
	case KindIncome:
		return ExpenseTithe, true
	case KindInvestment:
		return ExpenseInvestmentTotal, true
	case KindMiscExpense:
		return ExpenseMiscTotal, true
	case KindExpense:
	}
	return "", false
}

// Expense is a planned expense of a month, either entered by the user or
// computed by the ledger.
type Expense struct {
	Item
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8);not null" example:"1200.00"` // Planned amount
	PaidAmount  decimal.Decimal `json:"paidAmount" gorm:"type:DECIMAL(20,8);not null" example:"600.00"`   // Amount paid so far
	Type        ExpenseType     `json:"type" gorm:"not null;index" example:"STANDARD"`                    // STANDARD for user expenses, the other types are computed
}

func (Expense) Kind() Kind {
	return KindExpense
}

// Value is the planned amount of the expense.
func (e Expense) Value() decimal.Decimal {
	return e.TotalAmount
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Type == "" {
		e.Type = ExpenseStandard
	}

	if !e.Type.Valid() {
		return ErrExpenseTypeInvalid
	}

	if err := e.normalize(); err != nil {
		return err
	}

	roundAmounts(&e.TotalAmount, &e.PaidAmount)
	if e.TotalAmount.IsNegative() || e.PaidAmount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
