package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
)

// MonthEditable is the year and month of a new month.
type MonthEditable struct {
	Year  int `json:"year" example:"2025"` // Calendar year
	Month int `json:"month" example:"6"`   // Calendar month, 1 to 12
}

// MonthUpdate contains the user configurable parameters of an existing month.
type MonthUpdate struct {
	IsOpen *bool `json:"isOpen" example:"false"` // Is the month still being worked on?
}

// DuplicateEditable is the target of a duplication. If it is omitted,
// the month after the source is the target.
type DuplicateEditable struct {
	Year  *int `json:"year" example:"2025"` // Calendar year of the new month
	Month *int `json:"month" example:"7"`   // Calendar month of the new month
}

type MonthLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7"`                       // The month itself
	Summary      string `json:"summary" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7/summary"`            // The summary of the month
	Duplicate    string `json:"duplicate" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7/duplicate"`        // Creates the next month as a copy of this one
	Incomes      string `json:"incomes" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7/incomes"`            // The incomes of the month
	Expenses     string `json:"expenses" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7/expenses"`          // The expenses of the month
	Investments  string `json:"investments" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7/investments"`    // The investments of the month
	MiscExpenses string `json:"miscExpenses" example:"https://example.com/api/v1/months/3fa8fe1e-8d33-4a64-a9dc-8dca55bdb1f7/misc-expenses"` // The misc expenses of the month
}

type Month struct {
	models.DefaultModel
	UserID    string      `json:"userId" example:"auth0|5f7c8ec7c33c6c004bbafe82"` // Owner of the month
	Year      int         `json:"year" example:"2025"`                             // Calendar year
	Month     int         `json:"month" example:"6"`                               // Calendar month, 1 to 12
	Period    types.Month `json:"period" swaggertype:"string" example:"2025-06"`   // Year and month
	IsOpen    bool        `json:"isOpen" example:"true"`                           // Is the month still being worked on?
	Editable  bool        `json:"editable" example:"true"`                         // Can items of the month be changed?
	Deletable bool        `json:"deletable" example:"false"`                       // Can the month be deleted?
	Links     MonthLinks  `json:"links"`                                           // Links to related resources
}

func newMonth(c *gin.Context, model models.Month, now time.Time) Month {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/months/%s", url, model.ID)

	return Month{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		Year:         model.Year,
		Month:        model.Month,
		Period:       model.Period(),
		IsOpen:       model.IsOpen,
		Editable:     model.Period().IsEditable(now),
		Deletable:    model.Period().CanDelete(now),
		Links: MonthLinks{
			Self:         self,
			Summary:      self + "/summary",
			Duplicate:    self + "/duplicate",
			Incomes:      self + "/" + models.KindIncome.Collection(),
			Expenses:     self + "/" + models.KindExpense.Collection(),
			Investments:  self + "/" + models.KindInvestment.Collection(),
			MiscExpenses: self + "/" + models.KindMiscExpense.Collection(),
		},
	}
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                                          // Data for the month
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MonthListResponse struct {
	Data  []Month `json:"data"`                                                          // List of months, newest first
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
