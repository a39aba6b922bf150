package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/money"
	"github.com/shopspring/decimal"
)

// Item contains the fields that all line items of a month share.
type Item struct {
	DefaultModel
	MonthID     uuid.UUID `json:"monthId" gorm:"type:uuid;not null;index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the month the item belongs to
	Description string    `json:"description" gorm:"not null" example:"Rent"`                                             // Description of the item
	Day         *int      `json:"day" example:"5"`                                                                        // Day of the month, optional
	Order       int       `json:"order" gorm:"column:sort_order;not null" example:"3"`                                    // Position of the item within the month
}

// LineItem is implemented by every item kind.
type LineItem interface {
	Base() *Item
	Kind() Kind

	// Value is the amount that the item contributes to the totals of its kind.
	Value() decimal.Decimal
}

// Base returns the shared fields of the item.
func (i *Item) Base() *Item {
	return i
}

// normalize trims the description and verifies the fields all kinds share.
func (i *Item) normalize() error {
	i.Description = strings.TrimSpace(i.Description)
	if i.Description == "" {
		return ErrDescriptionRequired
	}

	if i.Day != nil && (*i.Day < 1 || *i.Day > 31) {
		return ErrDayOutOfRange
	}

	return nil
}

// checkPositive verifies that a source amount is larger than zero.
func checkPositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	return nil
}

// roundAmounts stores amounts with the two fraction digits of the currency.
func roundAmounts(amounts ...*decimal.Decimal) {
	for _, a := range amounts {
		*a = money.Round(*a)
	}
}
