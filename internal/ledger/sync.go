package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/money"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var syncCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_synthetic_syncs_total",
		Help: "Number of times a computed expense was synchronized with its source items.",
	},
	[]string{"type"},
)

// Collectors returns the metrics of the ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{syncCounter}
}

// SyncCounter returns the counter of synchronizations of the type.
func SyncCounter(t models.ExpenseType) prometheus.Counter {
	return syncCounter.WithLabelValues(string(t))
}

// SyncTithe sets the tithe of the month to 10% of its incomes. The tithe is
// created if it does not exist, even when the month has no income.
func SyncTithe(tx *gorm.DB, monthID uuid.UUID) (models.Expense, error) {
	return syncExpense(tx, monthID, models.ExpenseTithe, true)
}

// SyncInvestmentTotal sets the investment total of the month to the sum of
// its investments. The expense is only created once the sum is positive.
func SyncInvestmentTotal(tx *gorm.DB, monthID uuid.UUID) (models.Expense, error) {
	return syncExpense(tx, monthID, models.ExpenseInvestmentTotal, false)
}

// SyncMiscTotal sets the misc total of the month to the sum of its misc
// expenses. The expense is only created once the sum is positive.
func SyncMiscTotal(tx *gorm.DB, monthID uuid.UUID) (models.Expense, error) {
	return syncExpense(tx, monthID, models.ExpenseMiscTotal, false)
}

// Sync synchronizes the computed expense of type t.
func Sync(tx *gorm.DB, monthID uuid.UUID, t models.ExpenseType) (models.Expense, error) {
	switch t {
	case models.ExpenseTithe:
		return SyncTithe(tx, monthID)
	case models.ExpenseInvestmentTotal:
		return SyncInvestmentTotal(tx, monthID)
	case models.ExpenseMiscTotal:
		return SyncMiscTotal(tx, monthID)
	case models.ExpenseStandard:
	}

	return models.Expense{}, models.ErrExpenseTypeInvalid
}

// SyncAll synchronizes all computed expenses of the month.
func SyncAll(tx *gorm.DB, monthID uuid.UUID) error {
	for _, t := range models.SyntheticTypes {
		if _, err := Sync(tx, monthID, t); err != nil {
			return err
		}
	}
	return nil
}

// syncExpense recomputes the expense of type t from its source items.
//
// An existing expense is always updated, down to zero if the source is
// empty. It is never deleted. A missing expense is created if the total is
// positive or if createEmpty is set.
func syncExpense(tx *gorm.DB, monthID uuid.UUID, t models.ExpenseType, createEmpty bool) (models.Expense, error) {
	items, err := findItems(tx, t.Source(), monthID)
	if err != nil {
		return models.Expense{}, err
	}

	total := money.SumBy(items, models.LineItem.Value)
	if t == models.ExpenseTithe {
		total = money.Tithe(total)
	} else {
		total = money.Round(total)
	}

	var existing []models.Expense
	err = tx.Where("month_id = ? AND type = ?", monthID, t).Limit(1).Find(&existing).Error
	if err != nil {
		return models.Expense{}, err
	}

	SyncCounter(t).Inc()

	if len(existing) > 0 {
		expense := existing[0]
		expense.TotalAmount = total
		err = tx.Model(&expense).Update("total_amount", total).Error
		return expense, err
	}

	if !total.IsPositive() && !createEmpty {
		return models.Expense{}, nil
	}

	expense := models.Expense{
		Item: models.Item{
			MonthID:     monthID,
			Description: t.Description(),
			Order:       t.Order(),
		},
		TotalAmount: total,
		PaidAmount:  decimal.Zero,
		Type:        t,
	}

	err = tx.Create(&expense).Error
	return expense, err
}

// Resync recomputes the computed expenses of every month. Tithes are only
// created for months with income.
func (l *Ledger) Resync(ctx context.Context) (int, error) {
	var months []models.Month
	err := l.db.WithContext(ctx).Order("year, month").Find(&months).Error
	if err != nil {
		return 0, err
	}

	for _, month := range months {
		err = l.transaction(ctx, func(tx *gorm.DB) error {
			if _, err := lockMonth(tx, month.UserID, month.ID); err != nil {
				return err
			}

			for _, t := range models.SyntheticTypes {
				if _, err := syncExpense(tx, month.ID, t, false); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return 0, err
		}

		log.Debug().Str("month", month.Period().String()).Str("user", month.UserID).Msg("synchronized computed expenses")
	}

	return len(months), nil
}
