// Package ledger implements the monthly ledger of a user: the lifecycle of
// months, their line items, the computed expenses and the summaries.
//
// Every operation that writes runs in a transaction that first locks the
// month it changes. All reads and writes of an operation use that
// transaction.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/clock"
	"github.com/homeledger/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger gives access to the months of all users.
type Ledger struct {
	db    *gorm.DB
	clock clock.Clock
}

// New returns a Ledger that stores data in db and uses c to determine today.
func New(db *gorm.DB, c clock.Clock) *Ledger {
	return &Ledger{db: db, clock: c}
}

// Now returns the current instant of the ledger's clock.
func (l *Ledger) Now() time.Time {
	return l.clock.Now()
}

func (l *Ledger) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return l.db.WithContext(ctx).Transaction(fn)
}

// lockMonth loads the month and locks its row for the rest of the
// transaction. It fails if the month belongs to another user.
func lockMonth(tx *gorm.DB, userID string, id uuid.UUID) (models.Month, error) {
	var month models.Month
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&month, "id = ?", id).Error
	if err != nil {
		return models.Month{}, err
	}

	if !month.OwnedBy(userID) {
		return models.Month{}, models.ErrNotOwner
	}

	return month, nil
}

// findMonth loads the month without locking it.
func findMonth(tx *gorm.DB, userID string, id uuid.UUID) (models.Month, error) {
	var month models.Month
	err := tx.First(&month, "id = ?", id).Error
	if err != nil {
		return models.Month{}, err
	}

	if !month.OwnedBy(userID) {
		return models.Month{}, models.ErrNotOwner
	}

	return month, nil
}

// checkEditable verifies that items of the month may be changed today.
func (l *Ledger) checkEditable(month models.Month) error {
	if !month.Period().IsEditable(l.clock.Now()) {
		return models.ErrMonthNotEditable
	}
	return nil
}
