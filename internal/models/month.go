package models

import (
	"time"

	"github.com/homeledger/backend/internal/types"
	"gorm.io/gorm"
)

// Month is a ledger period of one user. There is at most one Month per
// user, year and month.
type Month struct {
	DefaultModel
	UserID string `json:"userId" gorm:"not null;uniqueIndex:idx_month_user_period" example:"auth0|5f7c8ec7c33c6c004bbafe82"`            // Owner of the month
	Year   int    `json:"year" gorm:"not null;uniqueIndex:idx_month_user_period" example:"2025"`                                        // Calendar year
	Month  int    `json:"month" gorm:"not null;uniqueIndex:idx_month_user_period;check:month_valid,month BETWEEN 1 AND 12" example:"6"` // Calendar month, 1 to 12
	IsOpen bool   `json:"isOpen" example:"true"`                                                                                        // Informational flag, the month is still being worked on

	Incomes      []Income      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Expenses     []Expense     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Investments  []Investment  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MiscExpenses []MiscExpense `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Period returns the calendar month this Month covers.
func (m Month) Period() types.Month {
	return types.NewMonth(m.Year, time.Month(m.Month))
}

// OwnedBy reports if the month belongs to the user.
func (m Month) OwnedBy(userID string) bool {
	return m.UserID == userID
}

func (m *Month) BeforeSave(_ *gorm.DB) error {
	if m.UserID == "" {
		return ErrUserIDRequired
	}

	if m.Year < 1 {
		return ErrYearInvalid
	}

	if m.Month < 1 || m.Month > 12 {
		return ErrMonthOutOfRange
	}

	return nil
}
