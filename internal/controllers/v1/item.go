package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
)

// registerMonthItemRoutes registers the routes for the items of a kind
// in a month.
func (co Controller) registerMonthItemRoutes(r *gin.RouterGroup, kind models.Kind) {
	{
		r.OPTIONS("", co.optionsItemList)
		r.GET("", co.getItems(kind))
		r.POST("", co.createItem(kind))
	}

	{
		r.OPTIONS("/order", co.optionsItemOrder)
		r.PUT("/order", co.reorderItems(kind))
	}
}

// RegisterItemRoutes registers the routes for single items of all kinds
// with the RouterGroup that is passed.
func (co Controller) RegisterItemRoutes(r *gin.RouterGroup) {
	for _, kind := range models.Kinds {
		g := r.Group("/" + kind.Collection())
		g.OPTIONS("/:id", co.optionsItemDetail(kind))
		g.GET("/:id", co.getItem(kind))
		g.PATCH("/:id", co.updateItem(kind))
		g.DELETE("/:id", co.deleteItem(kind))
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id		path	string	true	"ID formatted as string or YYYY-MM"
// @Param			kind	path	string	true	"incomes, expenses, investments or misc-expenses"
// @Router			/v1/months/{id}/{kind} [options]
func (co Controller) optionsItemList(c *gin.Context) {
	if err := co.optionsMonth(c); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id		path	string	true	"ID formatted as string or YYYY-MM"
// @Param			kind	path	string	true	"incomes, expenses, investments or misc-expenses"
// @Router			/v1/months/{id}/{kind}/order [options]
func (co Controller) optionsItemOrder(c *gin.Context) {
	if err := co.optionsMonth(c); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id		path	string	true	"ID formatted as string"
// @Param			kind	path	string	true	"incomes, expenses, investments or misc-expenses"
// @Router			/v1/{kind}/{id} [options]
func (co Controller) optionsItemDetail(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httputil.UUIDFromString(c.Param("id"))
		if err != nil {
			abort(c, err)
			return
		}

		if userID(c) != "" {
			if _, err := co.Ledger.GetItem(c.Request.Context(), userID(c), kind, id); err != nil {
				abort(c, err)
				return
			}
		}

		httputil.OptionsGetPatchDelete(c)
	}
}

// @Summary		Get items
// @Description	Returns the items of a kind in the month by order
// @Tags			Items
// @Produce		json
// @Success		200			{object}	ItemListResponse
// @Failure		400			{object}	ItemListResponse
// @Failure		403			{object}	ItemListResponse
// @Failure		404			{object}	ItemListResponse
// @Failure		500			{object}	ItemListResponse
// @Param			id			path		string	true	"ID formatted as string or YYYY-MM"
// @Param			kind		path		string	true	"incomes, expenses, investments or misc-expenses"
// @Param			description	query		string	false	"Filter by description, supports * wildcards"
// @Router			/v1/months/{id}/{kind} [get]
func (co Controller) getItems(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter ItemQueryFilter

		// The filters contain only strings, so this will always succeed
		_ = c.Bind(&filter)

		month, err := co.month(c)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemListResponse{
				Error: &s,
			})
			return
		}

		items, err := co.Ledger.ListItems(c.Request.Context(), userID(c), kind, month.ID, filter.Description)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemListResponse{
				Error: &s,
			})
			return
		}

		data := make([]Item, 0, len(items))
		for _, item := range items {
			data = append(data, co.newItem(c, item))
		}

		c.JSON(http.StatusOK, ItemListResponse{Data: data})
	}
}

// @Summary		Create item
// @Description	Adds an item to the end of the month's items of the kind. Computed expenses are updated.
// @Tags			Items
// @Accept			json
// @Produce		json
// @Success		201		{object}	ItemResponse
// @Failure		400		{object}	ItemResponse
// @Failure		403		{object}	ItemResponse
// @Failure		404		{object}	ItemResponse
// @Failure		500		{object}	ItemResponse
// @Param			id		path		string			true	"ID formatted as string or YYYY-MM"
// @Param			kind	path		string			true	"incomes, expenses, investments or misc-expenses"
// @Param			item	body		v1.ItemEditable	true	"Item"
// @Router			/v1/months/{id}/{kind} [post]
func (co Controller) createItem(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		month, err := co.month(c)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		set, err := httputil.GetBodyFields(c, ItemEditable{})
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		var editable ItemEditable
		err = httputil.BindData(c, &editable)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		item, err := co.Ledger.CreateItem(c.Request.Context(), userID(c), kind, month.ID, editable.fields(kind, set))
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		data := co.newItem(c, item)
		c.JSON(http.StatusCreated, ItemResponse{Data: &data})
	}
}

// @Summary		Get item
// @Description	Returns a specific item
// @Tags			Items
// @Produce		json
// @Success		200		{object}	ItemResponse
// @Failure		400		{object}	ItemResponse
// @Failure		403		{object}	ItemResponse
// @Failure		404		{object}	ItemResponse
// @Failure		500		{object}	ItemResponse
// @Param			id		path		string	true	"ID formatted as string"
// @Param			kind	path		string	true	"incomes, expenses, investments or misc-expenses"
// @Router			/v1/{kind}/{id} [get]
func (co Controller) getItem(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httputil.UUIDFromString(c.Param("id"))
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		item, err := co.Ledger.GetItem(c.Request.Context(), userID(c), kind, id)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		data := co.newItem(c, item)
		c.JSON(http.StatusOK, ItemResponse{Data: &data})
	}
}

// @Summary		Update item
// @Description	Updates an existing item. Only values to be updated need to be specified.
// @Description	Computed expenses only accept changes to paidAmount and day.
// @Tags			Items
// @Accept			json
// @Produce		json
// @Success		200		{object}	ItemResponse
// @Failure		400		{object}	ItemResponse
// @Failure		403		{object}	ItemResponse
// @Failure		404		{object}	ItemResponse
// @Failure		500		{object}	ItemResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			kind	path		string			true	"incomes, expenses, investments or misc-expenses"
// @Param			item	body		v1.ItemEditable	true	"Item"
// @Router			/v1/{kind}/{id} [patch]
func (co Controller) updateItem(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httputil.UUIDFromString(c.Param("id"))
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		set, err := httputil.GetBodyFields(c, ItemEditable{})
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		var editable ItemEditable
		err = httputil.BindData(c, &editable)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		item, err := co.Ledger.UpdateItem(c.Request.Context(), userID(c), kind, id, editable.fields(kind, set))
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemResponse{
				Error: &s,
			})
			return
		}

		data := co.newItem(c, item)
		c.JSON(http.StatusOK, ItemResponse{Data: &data})
	}
}

// @Summary		Delete item
// @Description	Deletes an item. Computed expenses are updated, but cannot be deleted themselves.
// @Tags			Items
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			kind	path		string	true	"incomes, expenses, investments or misc-expenses"
// @Router			/v1/{kind}/{id} [delete]
func (co Controller) deleteItem(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httputil.UUIDFromString(c.Param("id"))
		if err != nil {
			abort(c, err)
			return
		}

		err = co.Ledger.DeleteItem(c.Request.Context(), userID(c), kind, id)
		if err != nil {
			abort(c, err)
			return
		}

		c.JSON(http.StatusNoContent, nil)
	}
}

// @Summary		Reorder items
// @Description	Sets the order of the month's items of the kind to the sequence of IDs
// @Tags			Items
// @Accept			json
// @Produce		json
// @Success		200		{object}	ItemListResponse
// @Failure		400		{object}	ItemListResponse
// @Failure		403		{object}	ItemListResponse
// @Failure		404		{object}	ItemListResponse
// @Failure		500		{object}	ItemListResponse
// @Param			id		path		string				true	"ID formatted as string or YYYY-MM"
// @Param			kind	path		string				true	"incomes, expenses, investments or misc-expenses"
// @Param			order	body		v1.OrderEditable	true	"New order"
// @Router			/v1/months/{id}/{kind}/order [put]
func (co Controller) reorderItems(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		month, err := co.month(c)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemListResponse{
				Error: &s,
			})
			return
		}

		var editable OrderEditable
		err = httputil.BindData(c, &editable)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemListResponse{
				Error: &s,
			})
			return
		}

		items, err := co.Ledger.ReorderItems(c.Request.Context(), userID(c), kind, month.ID, editable.IDs)
		if err != nil {
			s := message(c, err)
			c.JSON(status(err), ItemListResponse{
				Error: &s,
			})
			return
		}

		data := make([]Item, 0, len(items))
		for _, item := range items {
			data = append(data, co.newItem(c, item))
		}

		c.JSON(http.StatusOK, ItemListResponse{Data: data})
	}
}
