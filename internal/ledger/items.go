package ledger

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemFields are the user editable fields of a line item. Nil fields are
// not set.
type ItemFields struct {
	Description *string
	// Amount is the amount of incomes, investments and misc expenses and
	// the total amount of expenses.
	Amount     *decimal.Decimal
	PaidAmount *decimal.Decimal
	// Day is only applied when DaySet is true. A nil Day removes the day.
	Day    *int
	DaySet bool
}

func (f ItemFields) onlyPaymentFields() bool {
	return f.Description == nil && f.Amount == nil
}

// apply sets the fields on the item.
func (f ItemFields) apply(item models.LineItem) {
	base := item.Base()
	if f.Description != nil {
		base.Description = *f.Description
	}

	if f.DaySet {
		base.Day = f.Day
	}

	switch i := item.(type) {
	case *models.Income:
		if f.Amount != nil {
			i.Amount = *f.Amount
		}
	case *models.Investment:
		if f.Amount != nil {
			i.Amount = *f.Amount
		}
	case *models.MiscExpense:
		if f.Amount != nil {
			i.Amount = *f.Amount
		}
	case *models.Expense:
		if f.Amount != nil {
			i.TotalAmount = *f.Amount
		}
		if f.PaidAmount != nil {
			i.PaidAmount = *f.PaidAmount
		}
	}
}

// toLineItems converts a slice of items to LineItems.
func toLineItems[T any, P interface {
	*T
	models.LineItem
}](rows []T) []models.LineItem {
	items := make([]models.LineItem, len(rows))
	for i := range rows {
		items[i] = P(&rows[i])
	}
	return items
}

func findRows[T any, P interface {
	*T
	models.LineItem
}](tx *gorm.DB) ([]models.LineItem, error) {
	var rows []T
	err := tx.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return toLineItems[T, P](rows), nil
}

// findItems returns the items of the kind in the month by order.
func findItems(tx *gorm.DB, kind models.Kind, monthID uuid.UUID) ([]models.LineItem, error) {
	q := tx.Where("month_id = ?", monthID)

	switch kind {
	case models.KindIncome:
		return findRows[models.Income](q.Order("sort_order"))
	case models.KindExpense:
		// The tithe shares order 0 with the first standard expense
		return findRows[models.Expense](q.Order("sort_order, type DESC"))
	case models.KindInvestment:
		return findRows[models.Investment](q.Order("sort_order"))
	case models.KindMiscExpense:
		return findRows[models.MiscExpense](q.Order("sort_order"))
	}

	return nil, models.ErrKindInvalid
}

// nextOrder returns the order for a new item, one after the largest order
// of the kind in the month or the kind's first order for the first item.
// Computed expenses use reserved orders and are ignored for the maximum, so
// standard expenses start after the tithe.
func nextOrder(tx *gorm.DB, kind models.Kind, monthID uuid.UUID) (int, error) {
	q := tx.Table(kind.Table()).Where("month_id = ?", monthID)
	if kind == models.KindExpense {
		q = q.Where("type = ?", models.ExpenseStandard)
	}

	var highest sql.NullInt64
	err := q.Select("MAX(sort_order)").Row().Scan(&highest)
	if err != nil {
		return 0, err
	}

	if !highest.Valid {
		return kind.FirstOrder(), nil
	}

	return max(int(highest.Int64)+1, kind.FirstOrder()), nil
}

// syncFor synchronizes the computed expense that sums up items of the kind.
func syncFor(tx *gorm.DB, kind models.Kind, monthID uuid.UUID) error {
	t, ok := models.SyntheticFor(kind)
	if !ok {
		return nil
	}

	_, err := Sync(tx, monthID, t)
	return err
}

// CreateItem creates an item of the kind at the end of the month's items.
// Expenses created here are always standard expenses.
func (l *Ledger) CreateItem(ctx context.Context, userID string, kind models.Kind, monthID uuid.UUID, fields ItemFields) (models.LineItem, error) {
	if fields.Description == nil || strings.TrimSpace(*fields.Description) == "" {
		return nil, models.ErrDescriptionRequired
	}

	if fields.Amount == nil {
		return nil, models.ErrAmountRequired
	}

	if _, err := models.ParseKind(string(kind)); err != nil {
		return nil, err
	}

	item := kind.New()
	fields.apply(item)

	err := l.transaction(ctx, func(tx *gorm.DB) error {
		month, err := lockMonth(tx, userID, monthID)
		if err != nil {
			return err
		}

		if err := l.checkEditable(month); err != nil {
			return err
		}

		order, err := nextOrder(tx, kind, month.ID)
		if err != nil {
			return err
		}

		base := item.Base()
		base.MonthID = month.ID
		base.Order = order

		err = tx.Create(item).Error
		if err != nil {
			return err
		}

		return syncFor(tx, kind, month.ID)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// findItem loads the item and locks its month.
func (l *Ledger) findItem(tx *gorm.DB, userID string, kind models.Kind, id uuid.UUID) (models.LineItem, models.Month, error) {
	if _, err := models.ParseKind(string(kind)); err != nil {
		return nil, models.Month{}, err
	}

	item := kind.New()
	err := tx.First(item, "id = ?", id).Error
	if err != nil {
		return nil, models.Month{}, err
	}

	month, err := lockMonth(tx, userID, item.Base().MonthID)
	if err != nil {
		return nil, models.Month{}, err
	}

	return item, month, nil
}

// GetItem returns the item of the kind with the ID.
func (l *Ledger) GetItem(ctx context.Context, userID string, kind models.Kind, id uuid.UUID) (models.LineItem, error) {
	if _, err := models.ParseKind(string(kind)); err != nil {
		return nil, err
	}

	db := l.db.WithContext(ctx)
	item := kind.New()
	err := db.First(item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	_, err = findMonth(db, userID, item.Base().MonthID)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem changes the fields of the item that are set. Changing the
// amount of an income, investment or misc expense updates the computed
// expense of its month.
//
// Computed expenses only accept changes to the paid amount and the day.
func (l *Ledger) UpdateItem(ctx context.Context, userID string, kind models.Kind, id uuid.UUID, fields ItemFields) (models.LineItem, error) {
	var item models.LineItem

	err := l.transaction(ctx, func(tx *gorm.DB) (err error) {
		var month models.Month
		item, month, err = l.findItem(tx, userID, kind, id)
		if err != nil {
			return err
		}

		if err := l.checkEditable(month); err != nil {
			return err
		}

		if expense, ok := item.(*models.Expense); ok && expense.Type.Synthetic() && !fields.onlyPaymentFields() {
			return models.ErrSyntheticExpenseReadOnly
		}

		before := item.Value()
		fields.apply(item)

		err = tx.Save(item).Error
		if err != nil {
			return err
		}

		if before.Equal(item.Value()) {
			return nil
		}

		return syncFor(tx, kind, month.ID)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem deletes the item. Deleting an income, investment or misc
// expense updates the computed expense of its month.
func (l *Ledger) DeleteItem(ctx context.Context, userID string, kind models.Kind, id uuid.UUID) error {
	return l.transaction(ctx, func(tx *gorm.DB) error {
		item, month, err := l.findItem(tx, userID, kind, id)
		if err != nil {
			return err
		}

		if err := l.checkEditable(month); err != nil {
			return err
		}

		if expense, ok := item.(*models.Expense); ok && expense.Type.Synthetic() {
			return models.ErrSyntheticExpenseDelete
		}

		err = tx.Delete(item).Error
		if err != nil {
			return err
		}

		return syncFor(tx, kind, month.ID)
	})
}

// ListItems returns the items of the kind in the month by order. If filter
// is not empty, only items with a description matching the glob pattern
// are returned. The match ignores case.
func (l *Ledger) ListItems(ctx context.Context, userID string, kind models.Kind, monthID uuid.UUID, filter string) ([]models.LineItem, error) {
	db := l.db.WithContext(ctx)

	month, err := findMonth(db, userID, monthID)
	if err != nil {
		return nil, err
	}

	items, err := findItems(db, kind, month.ID)
	if err != nil || filter == "" {
		return items, err
	}

	pattern := strings.ToLower(filter)
	matching := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		if glob.Glob(pattern, strings.ToLower(item.Base().Description)) {
			matching = append(matching, item)
		}
	}

	return matching, nil
}

// ReorderItems assigns new orders to the items of the kind in the month in
// the sequence of ids. ids must contain every user item of the kind in the
// month exactly once. Expenses are numbered from 1, the other kinds from 0.
func (l *Ledger) ReorderItems(ctx context.Context, userID string, kind models.Kind, monthID uuid.UUID, ids []uuid.UUID) ([]models.LineItem, error) {
	if _, err := models.ParseKind(string(kind)); err != nil {
		return nil, err
	}

	var reordered []models.LineItem
	err := l.transaction(ctx, func(tx *gorm.DB) error {
		month, err := lockMonth(tx, userID, monthID)
		if err != nil {
			return err
		}

		if err := l.checkEditable(month); err != nil {
			return err
		}

		items, err := findItems(tx, kind, month.ID)
		if err != nil {
			return err
		}

		byID := make(map[uuid.UUID]models.LineItem, len(items))
		for _, item := range items {
			if expense, ok := item.(*models.Expense); ok && expense.Type.Synthetic() {
				continue
			}
			byID[item.Base().ID] = item
		}

		if len(ids) != len(byID) {
			return models.ErrReorderMismatch
		}

		seen := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			if _, ok := byID[id]; !ok || seen[id] {
				return models.ErrReorderMismatch
			}
			seen[id] = true
		}

		// Move all items out of the way first so that no intermediate state
		// violates the unique order of the month
		for i, id := range ids {
			err = tx.Table(kind.Table()).Where("id = ?", id).Update("sort_order", -(i + 1)).Error
			if err != nil {
				return err
			}
		}

		reordered = make([]models.LineItem, 0, len(ids))
		for i, id := range ids {
			item := byID[id]
			item.Base().Order = kind.FirstOrder() + i

			err = tx.Model(item).Update("sort_order", item.Base().Order).Error
			if err != nil {
				return err
			}

			reordered = append(reordered, item)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reordered, nil
}
