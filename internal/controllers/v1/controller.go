package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/identity"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/money"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Controller serves the v1 API.
type Controller struct {
	Ledger   *ledger.Ledger
	Version  string // Version of the backend, reported in exports
	Currency string // ISO 4217 code used for formatted amounts
	Locale   string // BCP 47 tag used for formatted percentages
}

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

var errMonthReference = models.NewError(models.ErrInvalidInput, "the month must be referenced by its ID or as YYYY-MM")

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidState),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidUUID):
		return http.StatusBadRequest
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// message returns the error message shown to the client. Errors without
// a known status are logged and replaced.
func message(c *gin.Context, err error) string {
	if status(err) == http.StatusInternalServerError && !errors.Is(err, models.ErrGeneral) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return models.ErrGeneral.Error()
	}

	return err.Error()
}

// abort writes the error response.
func abort(c *gin.Context, err error) {
	c.JSON(status(err), httpError{Error: message(c, err)})
}

func userID(c *gin.Context) string {
	return identity.UserID(c)
}

func (co Controller) format(d decimal.Decimal) string {
	return money.Format(d, co.Currency)
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterRootRoutes(r.Group(""))
	co.RegisterMonthRoutes(r.Group("/months"))
	co.RegisterItemRoutes(r)
	co.RegisterYearRoutes(r.Group("/years"))
	co.RegisterExportRoutes(r.Group("/export"))
}
