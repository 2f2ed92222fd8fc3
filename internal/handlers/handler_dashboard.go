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
)

// dashboardHandler handles HTTP requests for the revenue dashboard
type dashboardHandler struct {
	reportingService portssvc.ReportingService
	currencyService  portssvc.CurrencyFormatterSvc
}

// newDashboardHandler creates a new dashboardHandler
func newDashboardHandler(rs portssvc.ReportingService, cs portssvc.CurrencyFormatterSvc) *dashboardHandler {
	return &dashboardHandler{
		reportingService: rs,
		currencyService:  cs,
	}
}

// registerDashboardRoutes registers routes related to the dashboard
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, currencyService portssvc.CurrencyFormatterSvc) {
	h := newDashboardHandler(reportingService, currencyService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/revenue", h.getRevenue)
	}
}

// getRevenue godoc
// @Summary Revenue dashboard
// @Description Returns monthly revenue for the trailing months and the current month's metrics
// @Tags dashboard
// @Produce json
// @Param months query int false "Number of months, current month included" default(6) minimum(1) maximum(24)
// @Param currency query string false "Display currency code" default(UGX)
// @Param native_currency query bool false "Keep one series per document currency" default(false)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to load dashboard data"
// @Security BearerAuth
// @Router /dashboard/revenue [get]
func (h *dashboardHandler) getRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid dashboard query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}
	query.Normalize()

	logger = logger.With(
		slog.Int("months", query.Months),
		slog.String("currency", query.Currency),
		slog.Bool("native_currency", query.NativeCurrency),
	)
	logger.Info("Received request to load revenue dashboard")

	dashboard, err := h.reportingService.FetchDashboard(c.Request.Context(), userID, query.Months, query.Currency, query.NativeCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Dashboard request rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		logger.Error("Failed to load dashboard data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to load dashboard data"))
		return
	}

	response, err := dto.ToDashboardResponse(dashboard, h.currencyService)
	if err != nil {
		logger.Error("Failed to render dashboard data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to load dashboard data"))
		return
	}

	logger.Info("Revenue dashboard generated successfully", slog.Int("series_count", len(response.RevenueData)))
	c.JSON(http.StatusOK, response)
}
