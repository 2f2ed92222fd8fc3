package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/SscSPs/bizdocs_dashboard/internal/dto"
	"github.com/SscSPs/bizdocs_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/convert", h.convert)
		currencies.GET("/format", h.format)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Lists every currency in the rate table with its rate against the base currency
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrenciesResponse(h.currencyService.SupportedCurrencies(), h.currencyService.BaseCurrency()))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between two supported currencies through the base currency
// @Tags currencies
// @Produce json
// @Param amount query string true "Amount, e.g. 10.50"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /currencies/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ConvertQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid convert query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}
	query.Normalize()

	amount, err := decimal.NewFromString(query.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid amount"))
		return
	}

	result, err := h.currencyService.Convert(amount, query.From, query.To)
	if err != nil {
		h.writeCurrencyError(c, err)
		return
	}
	formatted, err := h.currencyService.Format(result, query.To)
	if err != nil {
		h.writeCurrencyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Success:   true,
		Amount:    amount,
		From:      query.From,
		To:        query.To,
		Result:    result,
		Formatted: formatted,
	})
}

// format godoc
// @Summary Format an amount
// @Description Renders an amount with the currency's symbol, locale grouping and fraction digits
// @Tags currencies
// @Produce json
// @Param amount query string true "Amount, e.g. 1000"
// @Param currency query string true "Currency code"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /currencies/format [get]
func (h *currencyHandler) format(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.FormatQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid format query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}
	query.Normalize()

	amount, err := decimal.NewFromString(query.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid amount"))
		return
	}

	formatted, err := h.currencyService.Format(amount, query.Currency)
	if err != nil {
		h.writeCurrencyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{Success: true, Currency: query.Currency, Formatted: formatted})
}

func (h *currencyHandler) writeCurrencyError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Currency operation failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Currency operation failed"))
}
