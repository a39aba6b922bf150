package models

import (
	"fmt"
)

// Kind is the kind of a line item.
type Kind string

const (
	KindIncome      Kind = "income"
	KindExpense     Kind = "expense"
	KindInvestment  Kind = "investment"
	KindMiscExpense Kind = "misc-expense"
)

// Kinds lists all kinds in display order.
var Kinds = []Kind{KindIncome, KindExpense, KindInvestment, KindMiscExpense}

// ParseKind parses both the singular kind and the plural collection name
// used in URLs.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == string(k) || s == k.Collection() {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: '%s'", ErrKindInvalid, s)
}

// Collection is the plural name of the kind.
func (k Kind) Collection() string {
	return string(k) + "s"
}

// Table returns the database table for items of the kind.
func (k Kind) Table() string {
	switch k {
	case KindIncome:
		return "incomes"
	case KindExpense:
		return "expenses"
	case KindInvestment:
		return "investments"
	case KindMiscExpense:
		return "misc_expenses"
	}

	panic(fmt.Sprintf("unknown item kind %q", string(k)))
}

// FirstOrder is the order that a reorder assigns to the first item. Expenses
// start at 1 so that user rows sort after the tithe.
func (k Kind) FirstOrder() int {
	if k == KindExpense {
		return 1
	}
	return 0
}

// New returns an empty item of the kind.
func (k Kind) New() LineItem {
	switch k {
	case KindIncome:
		return &Income{}
	case KindExpense:
		return &Expense{Type: ExpenseStandard}
	case KindInvestment:
		return &Investment{}
	case KindMiscExpense:
		return &MiscExpense{}
	}

	panic(fmt.Sprintf("unknown item kind %q", string(k)))
}
