package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
)

func (co Controller) RegisterYearRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year", co.OptionsYear)
	r.GET("/:year", co.GetYear)
}

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.GetExport)
}

// @Summary		Get month summary
// @Description	Returns the totals of a month, the totals of its expenses and the adjacent months
// @Tags			Months
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		403	{object}	SummaryResponse
// @Failure		404	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			id	path		string	true	"ID formatted as string or YYYY-MM"
// @Router			/v1/months/{id}/summary [get]
func (co Controller) GetMonthSummary(c *gin.Context) {
	month, err := co.month(c)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := co.Ledger.GetMonthSummary(c.Request.Context(), userID(c), month.ID)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	data := co.newSummary(c, summary, co.Ledger.Now())
	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Years
// @Success		204
// @Param			year	path	int	true	"The year"
// @Router			/v1/years/{year} [options]
func (co Controller) OptionsYear(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get annual summary
// @Description	Returns the income and planned expenses of the user's months in a year
// @Tags			Years
// @Produce		json
// @Success		200		{object}	AnnualSummaryResponse
// @Failure		400		{object}	AnnualSummaryResponse
// @Failure		500		{object}	AnnualSummaryResponse
// @Param			year	path		int	true	"The year"
// @Router			/v1/years/{year} [get]
func (co Controller) GetYear(c *gin.Context) {
	var uri URIYear
	if err := c.ShouldBindUri(&uri); err != nil {
		s := models.ErrYearInvalid.Error()
		c.JSON(http.StatusBadRequest, AnnualSummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := co.Ledger.GetAnnualSummary(c.Request.Context(), userID(c), uri.Year)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), AnnualSummaryResponse{
			Error: &s,
		})
		return
	}

	data := co.newAnnualSummary(c, summary, co.Ledger.Now())
	c.JSON(http.StatusOK, AnnualSummaryResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all months of the user with their items
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	months, err := co.Ledger.Export(c.Request.Context(), userID(c))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      co.Version,
		Data:         months,
		CreationTime: co.Ledger.Now(),
	})
}
