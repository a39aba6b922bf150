package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ItemEditable contains the user configurable parameters of line items.
//
// Incomes, investments and misc expenses use amount. Expenses use
// totalAmount and paidAmount.
type ItemEditable struct {
	Description *string          `json:"description" example:"Rent"`               // Description of the item
	Amount      *decimal.Decimal `json:"amount" example:"3500.00"`                 // Amount of incomes, investments and misc expenses
	TotalAmount *decimal.Decimal `json:"totalAmount" example:"1200.00"`            // Planned amount of an expense
	PaidAmount  *decimal.Decimal `json:"paidAmount" example:"600.00"`              // Paid amount of an expense, defaults to zero
	Day         *int             `json:"day" example:"5" minimum:"1" maximum:"31"` // Day of the month, null removes it
}

// fields converts the body into ledger fields. set are the names of the
// fields present in the body.
func (e ItemEditable) fields(kind models.Kind, set []string) ledger.ItemFields {
	f := ledger.ItemFields{
		Description: e.Description,
		Amount:      e.Amount,
		Day:         e.Day,
		DaySet:      slices.Contains(set, "Day"),
	}

	if kind == models.KindExpense {
		f.Amount = e.TotalAmount
		f.PaidAmount = e.PaidAmount
	}

	return f
}

// OrderEditable is the new sequence of the items of a month.
type OrderEditable struct {
	IDs []uuid.UUID `json:"ids" example:"8ee5e3c0-0a2c-4bd4-9d8d-e0a88fb10e05"` // IDs of all user items of the kind, in the new order
}

type ItemLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/incomes/5b53b4c6-3e1d-4b2a-9a52-5b9bbd52b6a5"`        // The item itself
	Month string `json:"month" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7"`        // The month of the item
	List  string `json:"list" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7/incomes"` // All items of this kind in the month
}

type ItemFormatted struct {
	Amount      string `json:"amount,omitempty" example:"R$ 3.500,00"`      // Display string of the amount
	TotalAmount string `json:"totalAmount,omitempty" example:"R$ 1.200,00"` // Display string of the planned amount
	PaidAmount  string `json:"paidAmount,omitempty" example:"R$ 600,00"`    // Display string of the paid amount
}

// Item is a line item of any kind. Fields that do not apply to the kind
// are omitted.
type Item struct {
	models.DefaultModel
	Kind        models.Kind        `json:"kind" example:"income"`                                  // Kind of the item
	MonthID     uuid.UUID          `json:"monthId" example:"3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7"` // ID of the month
	Description string             `json:"description" example:"Salary"`                           // Description of the item
	Day         *int               `json:"day" example:"5"`                                        // Day of the month
	Order       int                `json:"order" example:"1"`                                      // Position of the item within the month
	Amount      *decimal.Decimal   `json:"amount,omitempty" example:"3500.00"`                     // Amount of incomes, investments and misc expenses
	TotalAmount *decimal.Decimal   `json:"totalAmount,omitempty" example:"1200.00"`                // Planned amount of an expense
	PaidAmount  *decimal.Decimal   `json:"paidAmount,omitempty" example:"600.00"`                  // Paid amount of an expense
	Type        models.ExpenseType `json:"type,omitempty" example:"STANDARD"`                      // Type of an expense
	Computed    bool               `json:"computed" example:"false"`                               // Is the item computed from other items?
	Formatted   ItemFormatted      `json:"formatted"`                                              // Display strings
	Links       ItemLinks          `json:"links"`                                                  // Links to related resources
}

func (co Controller) newItem(c *gin.Context, model models.LineItem) Item {
	url := c.GetString(string(models.DBContextURL))
	base := model.Base()
	kind := model.Kind()

	item := Item{
		DefaultModel: base.DefaultModel,
		Kind:         kind,
		MonthID:      base.MonthID,
		Description:  base.Description,
		Day:          base.Day,
		Order:        base.Order,
		Links: ItemLinks{
			Self:  fmt.Sprintf("%s/v1/%s/%s", url, kind.Collection(), base.ID),
			Month: fmt.Sprintf("%s/v1/months/%s", url, base.MonthID),
			List:  fmt.Sprintf("%s/v1/months/%s/%s", url, base.MonthID, kind.Collection()),
		},
	}

	if expense, ok := model.(*models.Expense); ok {
		item.TotalAmount = &expense.TotalAmount
		item.PaidAmount = &expense.PaidAmount
		item.Type = expense.Type
		item.Computed = expense.Type.Synthetic()
		item.Formatted = ItemFormatted{
			TotalAmount: co.format(expense.TotalAmount),
			PaidAmount:  co.format(expense.PaidAmount),
		}
		return item
	}

	amount := model.Value()
	item.Amount = &amount
	item.Formatted = ItemFormatted{Amount: co.format(amount)}
	return item
}

type ItemResponse struct {
	Data  *Item   `json:"data"`                                                          // Data for the item
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ItemListResponse struct {
	Data  []Item  `json:"data"`                                                          // List of items, by order
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ItemQueryFilter struct {
	Description string `form:"description"` // Glob pattern matched against the description, ignoring case
}
