package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Contents is a month with all of its items.
type Contents struct {
	Month        models.Month         `json:"month"`
	Incomes      []models.Income      `json:"incomes"`
	Expenses     []models.Expense     `json:"expenses"`
	Investments  []models.Investment  `json:"investments"`
	MiscExpenses []models.MiscExpense `json:"miscExpenses"`
}

// MonthTotals are the totals of a month. The balance is based on the paid
// amounts of the expenses.
type MonthTotals struct {
	Income       decimal.Decimal `json:"income" example:"5000"`
	ExpensesPaid decimal.Decimal `json:"expensesPaid" example:"2300"`
	Investments  decimal.Decimal `json:"investments" example:"500"`
	Misc         decimal.Decimal `json:"misc" example:"120.5"`
	Balance      decimal.Decimal `json:"balance" example:"2079.5"`
}

// ExpenseTotals are the totals of the expenses of a month.
type ExpenseTotals struct {
	Planned   decimal.Decimal `json:"planned" example:"3000"`
	Paid      decimal.Decimal `json:"paid" example:"2300"`
	Remaining decimal.Decimal `json:"remaining" example:"700"` // Planned minus paid, never below zero

	// Difference is planned minus paid. It is negative when more was paid
	// than planned.
	Difference decimal.Decimal `json:"difference" example:"700"`
}

// AnnualMonth is one month in an AnnualSummary.
type AnnualMonth struct {
	Month    models.Month    `json:"month"`
	Income   decimal.Decimal `json:"income" example:"5000"`
	Expenses decimal.Decimal `json:"expenses" example:"3000"`
	Balance  decimal.Decimal `json:"balance" example:"2000"`
}

// AnnualSummary sums up the months of a year. Unlike the month balance, it
// uses the planned amounts of the expenses.
type AnnualSummary struct {
	Year     int             `json:"year" example:"2025"`
	Months   []AnnualMonth   `json:"months"`
	Income   decimal.Decimal `json:"income" example:"60000"`
	Expenses decimal.Decimal `json:"expenses" example:"36000"`
	Balance  decimal.Decimal `json:"balance" example:"24000"`
}

// MonthSummary is everything needed to display a month.
type MonthSummary struct {
	Month    models.Month  `json:"month"`
	Totals   MonthTotals   `json:"totals"`
	Expenses ExpenseTotals `json:"expenses"`

	// BalancePercent is the balance as percentage of the income, nil when
	// there is no income.
	BalancePercent *decimal.Decimal `json:"balancePercent" example:"41.6"`
	Editable       bool             `json:"editable" example:"true"`
	Deletable      bool             `json:"deletable" example:"false"`
	Previous       *models.Month    `json:"previous"`
	Next           *models.Month    `json:"next"`
}

func incomeAmount(i models.Income) decimal.Decimal         { return i.Amount }
func investmentAmount(i models.Investment) decimal.Decimal { return i.Amount }
func miscAmount(m models.MiscExpense) decimal.Decimal      { return m.Amount }
func expenseTotalAmount(e models.Expense) decimal.Decimal  { return e.TotalAmount }
func expensePaidAmount(e models.Expense) decimal.Decimal   { return e.PaidAmount }

// CalculateMonthTotals computes the totals of a month from its items.
func CalculateMonthTotals(incomes []models.Income, expenses []models.Expense, investments []models.Investment, misc []models.MiscExpense) MonthTotals {
	totals := MonthTotals{
		Income:       money.Round(money.SumBy(incomes, incomeAmount)),
		ExpensesPaid: money.Round(money.SumBy(expenses, expensePaidAmount)),
		Investments:  money.Round(money.SumBy(investments, investmentAmount)),
		Misc:         money.Round(money.SumBy(misc, miscAmount)),
	}
	totals.Balance = money.Round(totals.Income.Sub(totals.ExpensesPaid).Sub(totals.Investments).Sub(totals.Misc))

	return totals
}

// CalculateExpenseTotals computes the totals of the expenses of a month.
func CalculateExpenseTotals(expenses []models.Expense) ExpenseTotals {
	totals := ExpenseTotals{
		Planned: money.Round(money.SumBy(expenses, expenseTotalAmount)),
		Paid:    money.Round(money.SumBy(expenses, expensePaidAmount)),
	}
	totals.Difference = money.Round(totals.Planned.Sub(totals.Paid))
	totals.Remaining = decimal.Max(totals.Difference, decimal.Zero)

	return totals
}

// CalculateAnnualSummary sums up the months of a year.
func CalculateAnnualSummary(year int, months []Contents) AnnualSummary {
	summary := AnnualSummary{
		Year:     year,
		Months:   make([]AnnualMonth, 0, len(months)),
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	for _, c := range months {
		row := AnnualMonth{
			Month:    c.Month,
			Income:   money.SumBy(c.Incomes, incomeAmount),
			Expenses: money.SumBy(c.Expenses, expenseTotalAmount),
		}
		row.Balance = money.Round(row.Income.Sub(row.Expenses))

		summary.Months = append(summary.Months, row)
		summary.Income = summary.Income.Add(row.Income)
		summary.Expenses = summary.Expenses.Add(row.Expenses)
	}

	summary.Income = money.Round(summary.Income)
	summary.Expenses = money.Round(summary.Expenses)
	summary.Balance = money.Round(summary.Income.Sub(summary.Expenses))

	return summary
}

func ordered(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order")
}

// loadContents loads the months matching the query with all their items.
func loadContents(db *gorm.DB) ([]Contents, error) {
	var months []models.Month
	err := db.
		Preload("Incomes", ordered).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, type DESC") }).
		Preload("Investments", ordered).
		Preload("MiscExpenses", ordered).
		Order("year, month").
		Find(&months).Error
	if err != nil {
		return nil, err
	}

	contents := make([]Contents, len(months))
	for i, m := range months {
		contents[i] = Contents{
			Month:        m,
			Incomes:      nonNil(m.Incomes),
			Expenses:     nonNil(m.Expenses),
			Investments:  nonNil(m.Investments),
			MiscExpenses: nonNil(m.MiscExpenses),
		}
	}

	return contents, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// single returns the only month of contents. The month can be deleted
// between lookup and load, so contents may be empty.
func single(contents []Contents) (Contents, error) {
	if len(contents) == 0 {
		return Contents{}, fmt.Errorf("%w month matching your query", models.ErrResourceNotFound)
	}

	return contents[0], nil
}

// GetMonthSummary computes the summary of the month.
func (l *Ledger) GetMonthSummary(ctx context.Context, userID string, monthID uuid.UUID) (MonthSummary, error) {
	db := l.db.WithContext(ctx)

	month, err := findMonth(db, userID, monthID)
	if err != nil {
		return MonthSummary{}, err
	}

	contents, err := loadContents(db.Where("id = ?", month.ID))
	if err != nil {
		return MonthSummary{}, err
	}

	c, err := single(contents)
	if err != nil {
		return MonthSummary{}, err
	}

	all, err := l.ListMonths(ctx, userID)
	if err != nil {
		return MonthSummary{}, err
	}

	now := l.clock.Now()
	summary := MonthSummary{
		Month:     month,
		Totals:    CalculateMonthTotals(c.Incomes, c.Expenses, c.Investments, c.MiscExpenses),
		Expenses:  CalculateExpenseTotals(c.Expenses),
		Editable:  month.Period().IsEditable(now),
		Deletable: month.Period().CanDelete(now),
	}

	if percent, ok := money.Percent(summary.Totals.Balance, summary.Totals.Income); ok {
		summary.BalancePercent = &percent
	}

	if previous, ok := FindAdjacentMonth(Previous, month.Period(), all); ok {
		summary.Previous = &previous
	}

	if next, ok := FindAdjacentMonth(Next, month.Period(), all); ok {
		summary.Next = &next
	}

	return summary, nil
}

// GetAnnualSummary sums up the months of the user in the year.
func (l *Ledger) GetAnnualSummary(ctx context.Context, userID string, year int) (AnnualSummary, error) {
	if userID == "" {
		return AnnualSummary{}, models.ErrUserIDRequired
	}

	if year < 1 {
		return AnnualSummary{}, models.ErrYearInvalid
	}

	months, err := loadContents(l.db.WithContext(ctx).Where("user_id = ? AND year = ?", userID, year))
	if err != nil {
		return AnnualSummary{}, err
	}

	return CalculateAnnualSummary(year, months), nil
}

// Export returns all months of the user with their items.
func (l *Ledger) Export(ctx context.Context, userID string) ([]Contents, error) {
	if userID == "" {
		return nil, models.ErrUserIDRequired
	}

	return loadContents(l.db.WithContext(ctx).Where("user_id = ?", userID))
}
