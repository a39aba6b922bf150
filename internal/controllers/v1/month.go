package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsMonthList)
		r.GET("", co.GetMonths)
		r.POST("", co.CreateMonth)
	}

	// Month with ID
	{
		r.OPTIONS("/:id", co.OptionsMonthDetail)
		r.GET("/:id", co.GetMonth)
		r.PATCH("/:id", co.UpdateMonth)
		r.DELETE("/:id", co.DeleteMonth)
	}

	{
		r.OPTIONS("/:id/duplicate", co.OptionsMonthDuplicate)
		r.POST("/:id/duplicate", co.DuplicateMonth)
		r.OPTIONS("/:id/summary", co.OptionsMonthSummary)
		r.GET("/:id/summary", co.GetMonthSummary)
	}

	for _, kind := range models.Kinds {
		co.registerMonthItemRoutes(r.Group("/:id/"+kind.Collection()), kind)
	}
}

// month resolves the id parameter, which is either the month's ID or its
// year and month formatted as YYYY-MM.
func (co Controller) month(c *gin.Context) (models.Month, error) {
	param := c.Param("id")

	if id, err := uuid.Parse(param); err == nil {
		return co.Ledger.MonthByID(c.Request.Context(), userID(c), id)
	}

	period, err := types.ParseMonth(param)
	if err != nil {
		return models.Month{}, errMonthReference
	}

	return co.Ledger.GetMonth(c.Request.Context(), userID(c), period.Year(), int(period.Month()))
}

// optionsMonth checks the month of an OPTIONS request. Requests without an
// identity, like CORS preflights, only get the allowed verbs.
func (co Controller) optionsMonth(c *gin.Context) error {
	if userID(c) == "" {
		return nil
	}

	_, err := co.month(c)
	return err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func (co Controller) OptionsMonthList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string or YYYY-MM"
// @Router			/v1/months/{id} [options]
func (co Controller) OptionsMonthDetail(c *gin.Context) {
	if err := co.optionsMonth(c); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string or YYYY-MM"
// @Router			/v1/months/{id}/duplicate [options]
func (co Controller) OptionsMonthDuplicate(c *gin.Context) {
	if err := co.optionsMonth(c); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string or YYYY-MM"
// @Router			/v1/months/{id}/summary [options]
func (co Controller) OptionsMonthSummary(c *gin.Context) {
	if err := co.optionsMonth(c); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get months
// @Description	Returns the months of the user, newest first. If the user has no months yet, the current month is created.
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Failure		401	{object}	MonthListResponse
// @Failure		500	{object}	MonthListResponse
// @Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	ctx := c.Request.Context()

	_, err := co.Ledger.Bootstrap(ctx, userID(c))
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	months, err := co.Ledger.ListMonths(ctx, userID(c))
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	now := co.Ledger.Now()
	data := make([]Month, 0, len(months))
	for _, month := range months {
		data = append(data, newMonth(c, month, now))
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: data})
}

// @Summary		Create month
// @Description	Creates a new, empty month
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		401		{object}	MonthResponse
// @Failure		409		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	body		v1.MonthEditable	true	"Month"
// @Router			/v1/months [post]
func (co Controller) CreateMonth(c *gin.Context) {
	var editable MonthEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	month, err := co.Ledger.CreateMonth(c.Request.Context(), userID(c), editable.Year, editable.Month)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(c, month, co.Ledger.Now())
	c.JSON(http.StatusCreated, MonthResponse{Data: &data})
}

// @Summary		Get month
// @Description	Returns a specific month
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		403	{object}	MonthResponse
// @Failure		404	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			id	path		string	true	"ID formatted as string or YYYY-MM"
// @Router			/v1/months/{id} [get]
func (co Controller) GetMonth(c *gin.Context) {
	month, err := co.month(c)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(c, month, co.Ledger.Now())
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Update month
// @Description	Updates the open flag of a month
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		403		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			id		path		string				true	"ID formatted as string or YYYY-MM"
// @Param			month	body		v1.MonthUpdate	true	"Month"
// @Router			/v1/months/{id} [patch]
func (co Controller) UpdateMonth(c *gin.Context) {
	month, err := co.month(c)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var data MonthUpdate
	err = httputil.BindData(c, &data)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	if data.IsOpen != nil {
		month, err = co.Ledger.SetOpen(c.Request.Context(), userID(c), month.ID, *data.IsOpen)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), MonthResponse{
				Error: &s,
			})
			return
		}
	}

	apiResource := newMonth(c, month, co.Ledger.Now())
	c.JSON(http.StatusOK, MonthResponse{Data: &apiResource})
}

// @Summary		Delete month
// @Description	Deletes a month that has not started yet with all of its items
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string or YYYY-MM"
// @Router			/v1/months/{id} [delete]
func (co Controller) DeleteMonth(c *gin.Context) {
	month, err := co.month(c)
	if err != nil {
		abort(c, err)
		return
	}

	err = co.Ledger.DeleteMonth(c.Request.Context(), userID(c), month.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Duplicate month
// @Description	Creates a new month with copies of the incomes, standard expenses and investments of this month.
// @Description	Without a body, the month after this one is created.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		403		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		409		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			id		path		string					true	"ID formatted as string or YYYY-MM"
// @Param			target	body		v1.DuplicateEditable	false	"Target month"
// @Router			/v1/months/{id}/duplicate [post]
func (co Controller) DuplicateMonth(c *gin.Context) {
	source, err := co.month(c)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var editable DuplicateEditable
	err = httputil.BindOptionalData(c, &editable)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	target := ledger.NextMonth(source)
	year, month := target.Year(), int(target.Month())
	if editable.Year != nil {
		year = *editable.Year
	}
	if editable.Month != nil {
		month = *editable.Month
	}

	created, err := co.Ledger.DuplicateMonth(c.Request.Context(), userID(c), source.ID, year, month)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(c, created, co.Ledger.Now())
	c.JSON(http.StatusCreated, MonthResponse{Data: &data})
}
