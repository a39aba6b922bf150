package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/money"
	"github.com/shopspring/decimal"
)

type SummaryFormatted struct {
	Income         string  `json:"income" example:"R$ 5.000,00"`       // Total income
	ExpensesPaid   string  `json:"expensesPaid" example:"R$ 2.300,00"` // Paid amount of all expenses
	Investments    string  `json:"investments" example:"R$ 500,00"`    // Total investments
	Misc           string  `json:"misc" example:"R$ 120,50"`           // Total misc expenses
	Balance        string  `json:"balance" example:"R$ 2.079,50"`      // Balance of the month
	Planned        string  `json:"planned" example:"R$ 3.000,00"`      // Planned amount of all expenses
	Paid           string  `json:"paid" example:"R$ 2.300,00"`         // Paid amount of all expenses
	Remaining      string  `json:"remaining" example:"R$ 700,00"`      // Amount still to be paid
	BalancePercent *string `json:"balancePercent" example:"41,6%"`     // Balance as share of the income, null without income
}

// Summary contains the computed values of a month.
type Summary struct {
	Month          Month                `json:"month"`                         // The month
	Totals         ledger.MonthTotals   `json:"totals"`                        // Totals of the month
	Expenses       ledger.ExpenseTotals `json:"expenses"`                      // Totals of the expenses
	BalancePercent *decimal.Decimal     `json:"balancePercent" example:"41.6"` // Balance as percentage of the income, null without income
	Previous       *Month               `json:"previous"`                      // The user's month before this one, if any
	Next           *Month               `json:"next"`                          // The user's month after this one, if any
	Formatted      SummaryFormatted     `json:"formatted"`                     // Display strings
}

func (co Controller) newSummary(c *gin.Context, s ledger.MonthSummary, now time.Time) Summary {
	summary := Summary{
		Month:          newMonth(c, s.Month, now),
		Totals:         s.Totals,
		Expenses:       s.Expenses,
		BalancePercent: s.BalancePercent,
		Formatted: SummaryFormatted{
			Income:       co.format(s.Totals.Income),
			ExpensesPaid: co.format(s.Totals.ExpensesPaid),
			Investments:  co.format(s.Totals.Investments),
			Misc:         co.format(s.Totals.Misc),
			Balance:      co.format(s.Totals.Balance),
			Planned:      co.format(s.Expenses.Planned),
			Paid:         co.format(s.Expenses.Paid),
			Remaining:    co.format(s.Expenses.Remaining),
		},
	}

	if s.BalancePercent != nil {
		p := money.FormatPercent(*s.BalancePercent, co.Locale)
		summary.Formatted.BalancePercent = &p
	}

	if s.Previous != nil {
		previous := newMonth(c, *s.Previous, now)
		summary.Previous = &previous
	}

	if s.Next != nil {
		next := newMonth(c, *s.Next, now)
		summary.Next = &next
	}

	return summary
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`                                                          // Data for the summary
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AnnualFormatted struct {
	Income   string `json:"income" example:"R$ 60.000,00"`   // Income
	Expenses string `json:"expenses" example:"R$ 36.000,00"` // Planned expenses
	Balance  string `json:"balance" example:"R$ 24.000,00"`  // Income minus planned expenses
}

type AnnualMonth struct {
	Month     Month           `json:"month"`                   // The month
	Income    decimal.Decimal `json:"income" example:"5000"`   // Income of the month
	Expenses  decimal.Decimal `json:"expenses" example:"3000"` // Planned expenses of the month
	Balance   decimal.Decimal `json:"balance" example:"2000"`  // Income minus planned expenses
	Formatted AnnualFormatted `json:"formatted"`               // Display strings
}

type AnnualSummary struct {
	Year      int             `json:"year" example:"2025"`      // The year
	Months    []AnnualMonth   `json:"months"`                   // The user's months of the year, in chronological order
	Income    decimal.Decimal `json:"income" example:"60000"`   // Income of the year
	Expenses  decimal.Decimal `json:"expenses" example:"36000"` // Planned expenses of the year
	Balance   decimal.Decimal `json:"balance" example:"24000"`  // Income minus planned expenses
	Formatted AnnualFormatted `json:"formatted"`                // Display strings
}

func (co Controller) annualFormatted(income, expenses, balance decimal.Decimal) AnnualFormatted {
	return AnnualFormatted{
		Income:   co.format(income),
		Expenses: co.format(expenses),
		Balance:  co.format(balance),
	}
}

func (co Controller) newAnnualSummary(c *gin.Context, s ledger.AnnualSummary, now time.Time) AnnualSummary {
	summary := AnnualSummary{
		Year:      s.Year,
		Months:    make([]AnnualMonth, 0, len(s.Months)),
		Income:    s.Income,
		Expenses:  s.Expenses,
		Balance:   s.Balance,
		Formatted: co.annualFormatted(s.Income, s.Expenses, s.Balance),
	}

	for _, m := range s.Months {
		summary.Months = append(summary.Months, AnnualMonth{
			Month:     newMonth(c, m.Month, now),
			Income:    m.Income,
			Expenses:  m.Expenses,
			Balance:   m.Balance,
			Formatted: co.annualFormatted(m.Income, m.Expenses, m.Balance),
		})
	}

	return summary
}

type AnnualSummaryResponse struct {
	Data  *AnnualSummary `json:"data"`                                               // Data for the annual summary
	Error *string        `json:"error" example:"the year must be a positive number"` // The error, if any occurred
}

type URIYear struct {
	Year int `uri:"year" binding:"required" example:"2025"` // The year
}

type ExportResponse struct {
	Version      string            `json:"version" example:"v1.4.0"` // The version of the backend the export was made with
	Data         []ledger.Contents `json:"data"`                     // All months of the user with their items
	CreationTime time.Time         `json:"creationTime"`             // Time the export was created
}
