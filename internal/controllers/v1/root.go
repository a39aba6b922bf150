package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
)

func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", co.Get)
	r.OPTIONS("", co.Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Months       string `json:"months" example:"https://example.com/api/v1/months"`              // URL of Month collection endpoint
	Incomes      string `json:"incomes" example:"https://example.com/api/v1/incomes"`            // URL of Income endpoint
	Expenses     string `json:"expenses" example:"https://example.com/api/v1/expenses"`          // URL of Expense endpoint
	Investments  string `json:"investments" example:"https://example.com/api/v1/investments"`    // URL of Investment endpoint
	MiscExpenses string `json:"miscExpenses" example:"https://example.com/api/v1/misc-expenses"` // URL of misc expense endpoint
	Years        string `json:"years" example:"https://example.com/api/v1/years/YYYY"`           // URL of the annual summary
	Export       string `json:"export" example:"https://example.com/api/v1/export"`              // URL of the export
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Months:       url + "/v1/months",
			Incomes:      url + "/v1/" + models.KindIncome.Collection(),
			Expenses:     url + "/v1/" + models.KindExpense.Collection(),
			Investments:  url + "/v1/" + models.KindInvestment.Collection(),
			MiscExpenses: url + "/v1/" + models.KindMiscExpense.Collection(),
			Years:        url + "/v1/years/YYYY",
			Export:       url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
