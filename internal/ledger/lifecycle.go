package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Direction selects the neighbour in FindAdjacentMonth.
type Direction int

const (
	Previous Direction = iota
	Next
)

// validPeriod verifies year and month numbers supplied by a caller.
func validPeriod(userID string, year, month int) (types.Month, error) {
	if userID == "" {
		return types.Month{}, models.ErrUserIDRequired
	}

	if year < 1 {
		return types.Month{}, models.ErrYearInvalid
	}

	if month < 1 || month > 12 {
		return types.Month{}, models.ErrMonthOutOfRange
	}

	return types.NewMonth(year, time.Month(month)), nil
}

// periodExists reports if the user already has a month for the period.
func periodExists(tx *gorm.DB, userID string, period types.Month) (bool, error) {
	var count int64
	err := tx.Model(&models.Month{}).
		Where("user_id = ? AND year = ? AND month = ?", userID, period.Year(), int(period.Month())).
		Count(&count).Error

	return count > 0, err
}

func createMonth(tx *gorm.DB, userID string, period types.Month) (models.Month, error) {
	exists, err := periodExists(tx, userID, period)
	if err != nil {
		return models.Month{}, err
	}

	if exists {
		return models.Month{}, models.ErrMonthExists
	}

	month := models.Month{
		UserID: userID,
		Year:   period.Year(),
		Month:  int(period.Month()),
		IsOpen: true,
	}

	err = tx.Create(&month).Error
	return month, err
}

// CreateMonth creates an empty, open month for the user.
func (l *Ledger) CreateMonth(ctx context.Context, userID string, year, month int) (models.Month, error) {
	period, err := validPeriod(userID, year, month)
	if err != nil {
		return models.Month{}, err
	}

	var created models.Month
	err = l.transaction(ctx, func(tx *gorm.DB) error {
		created, err = createMonth(tx, userID, period)
		return err
	})

	return created, err
}

// NextMonth is the period after the source month, the default target for
// a duplication.
func NextMonth(source models.Month) types.Month {
	return source.Period().Next()
}

// mapDay moves a day of month onto the target month.
func mapDay(day *int, target types.Month) *int {
	if day == nil {
		return nil
	}

	mapped := target.ClampDay(*day)
	return &mapped
}

// DuplicateMonth creates the target month with copies of the source month's
// incomes, standard expenses and investments.
//
// Computed expenses are not copied, they only appear once the totals are
// synchronized. Misc expenses are one-off and not copied either. Paid
// amounts of copied expenses start at zero.
func (l *Ledger) DuplicateMonth(ctx context.Context, userID string, sourceID uuid.UUID, targetYear, targetMonth int) (models.Month, error) {
	target, err := validPeriod(userID, targetYear, targetMonth)
	if err != nil {
		return models.Month{}, err
	}

	var created models.Month
	err = l.transaction(ctx, func(tx *gorm.DB) error {
		source, err := lockMonth(tx, userID, sourceID)
		if err != nil {
			return err
		}

		created, err = createMonth(tx, userID, target)
		if err != nil {
			return err
		}

		var incomes []models.Income
		err = tx.Where("month_id = ?", source.ID).Order("sort_order").Find(&incomes).Error
		if err != nil {
			return err
		}

		for _, income := range incomes {
			err = tx.Create(&models.Income{
				Item:   copyItem(income.Item, created.ID, target),
				Amount: income.Amount,
			}).Error
			if err != nil {
				return err
			}
		}

		var expenses []models.Expense
		err = tx.Where("month_id = ? AND type = ?", source.ID, models.ExpenseStandard).Order("sort_order").Find(&expenses).Error
		if err != nil {
			return err
		}

		for _, expense := range expenses {
			err = tx.Create(&models.Expense{
				Item:        copyItem(expense.Item, created.ID, target),
				TotalAmount: expense.TotalAmount,
				Type:        models.ExpenseStandard,
			}).Error
			if err != nil {
				return err
			}
		}

		var investments []models.Investment
		err = tx.Where("month_id = ?", source.ID).Order("sort_order").Find(&investments).Error
		if err != nil {
			return err
		}

		for _, investment := range investments {
			err = tx.Create(&models.Investment{
				Item:   copyItem(investment.Item, created.ID, target),
				Amount: investment.Amount,
			}).Error
			if err != nil {
				return err
			}
		}

		log.Debug().
			Str("source", source.Period().String()).
			Str("target", target.String()).
			Int("incomes", len(incomes)).
			Int("expenses", len(expenses)).
			Int("investments", len(investments)).
			Msg("duplicated month")

		return nil
	})

	return created, err
}

func copyItem(item models.Item, monthID uuid.UUID, target types.Month) models.Item {
	return models.Item{
		MonthID:     monthID,
		Description: item.Description,
		Day:         mapDay(item.Day, target),
		Order:       item.Order,
	}
}

// DeleteMonth deletes a month and all of its items. Only months that have
// not started yet can be deleted.
func (l *Ledger) DeleteMonth(ctx context.Context, userID string, id uuid.UUID) error {
	return l.transaction(ctx, func(tx *gorm.DB) error {
		month, err := lockMonth(tx, userID, id)
		if err != nil {
			return err
		}

		if !month.Period().CanDelete(l.clock.Now()) {
			return models.ErrMonthAlreadyStarted
		}

		return tx.Select(clause.Associations).Delete(&month).Error
	})
}

// SetOpen sets the informational open flag of the month.
func (l *Ledger) SetOpen(ctx context.Context, userID string, id uuid.UUID, open bool) (models.Month, error) {
	var month models.Month
	err := l.transaction(ctx, func(tx *gorm.DB) (err error) {
		month, err = lockMonth(tx, userID, id)
		if err != nil {
			return err
		}

		err = tx.Model(&month).Update("is_open", open).Error
		month.IsOpen = open
		return err
	})

	return month, err
}

// ListMonths returns the months of the user, newest first.
func (l *Ledger) ListMonths(ctx context.Context, userID string) ([]models.Month, error) {
	if userID == "" {
		return nil, models.ErrUserIDRequired
	}

	var months []models.Month
	err := l.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&months).Error

	return months, err
}

// GetMonth returns the month of the user for the year and month.
func (l *Ledger) GetMonth(ctx context.Context, userID string, year, month int) (models.Month, error) {
	period, err := validPeriod(userID, year, month)
	if err != nil {
		return models.Month{}, err
	}

	var m models.Month
	err = l.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, period.Year(), int(period.Month())).
		First(&m).Error

	return m, err
}

// MonthByID returns the month with the ID if it belongs to the user.
func (l *Ledger) MonthByID(ctx context.Context, userID string, id uuid.UUID) (models.Month, error) {
	return findMonth(l.db.WithContext(ctx), userID, id)
}

// Bootstrap creates the current month for a user that has no months yet.
// It reports if a month was created.
func (l *Ledger) Bootstrap(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, models.ErrUserIDRequired
	}

	created := false
	err := l.transaction(ctx, func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Month{}).Where("user_id = ?", userID).Count(&count).Error
		if err != nil || count > 0 {
			return err
		}

		_, err = createMonth(tx, userID, types.MonthOf(l.clock.Now()))
		if err != nil {
			return err
		}

		created = true
		return nil
	})

	// A concurrent request created the month first
	if errors.Is(err, models.ErrMonthExists) {
		return false, nil
	}

	if created {
		log.Info().Str("user", userID).Msg("created first month for user")
	}

	return created, err
}

// FindAdjacentMonth returns the month immediately before or after current
// in chronological order. It returns false if there is no such month or if
// current is not one of the months.
func FindAdjacentMonth(direction Direction, current types.Month, all []models.Month) (models.Month, bool) {
	sorted := slices.Clone(all)
	slices.SortStableFunc(sorted, func(a, b models.Month) int {
		return a.Period().Compare(b.Period())
	})

	for i, m := range sorted {
		if !m.Period().Equal(current) {
			continue
		}

		switch direction {
		case Previous:
			if i > 0 {
				return sorted[i-1], true
			}
		case Next:
			if i < len(sorted)-1 {
				return sorted[i+1], true
			}
		}

		return models.Month{}, false
	}

	return models.Month{}, false
}
