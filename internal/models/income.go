package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is money received in a month.
type Income struct {
	Item
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"3500.00"` // Amount received, larger than zero
}

func (Income) Kind() Kind {
	return KindIncome
}

func (i Income) Value() decimal.Decimal {
	return i.Amount
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	if err := i.normalize(); err != nil {
		return err
	}

	roundAmounts(&i.Amount)
	return checkPositive(i.Amount)
}
