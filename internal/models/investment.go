package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Investment is money set aside in a month.
type Investment struct {
	Item
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"250.00"`
}

func (Investment) Kind() Kind {
	return KindInvestment
}

func (i Investment) Value() decimal.Decimal {
	return i.Amount
}

func (i *Investment) BeforeSave(_ *gorm.DB) error {
	if err := i.normalize(); err != nil {
		return err
	}

	roundAmounts(&i.Amount)
	return checkPositive(i.Amount)
}
