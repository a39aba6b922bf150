package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MiscExpense is a one-off expense. Misc expenses are not carried over when
// a month is duplicated.
type MiscExpense struct {
	Item
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"42.90"`
}

func (MiscExpense) Kind() Kind {
	return KindMiscExpense
}

func (m MiscExpense) Value() decimal.Decimal {
	return m.Amount
}

func (m *MiscExpense) BeforeSave(_ *gorm.DB) error {
	if err := m.normalize(); err != nil {
		return err
	}

	roundAmounts(&m.Amount)
	return checkPositive(m.Amount)
}
