package services

import (
	"context"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
)

// ReportingService defines operations for the dashboard's financial metrics
type ReportingService interface {
	// FetchRevenueSeries returns monthly revenue for the trailing windowMonths months, oldest first.
	// With useNativeCurrency each document currency gets its own series; otherwise a single
	// series in displayCurrency is returned.
	FetchRevenueSeries(ctx context.Context, userID string, windowMonths int, displayCurrency string, useNativeCurrency bool) ([]domain.RevenueSeries, error)

	// FetchFinancialMetrics summarises the current month in displayCurrency.
	FetchFinancialMetrics(ctx context.Context, userID string, displayCurrency string) (*domain.FinancialMetricsSnapshot, error)

	// FetchDashboard runs both of the above for a single request.
	FetchDashboard(ctx context.Context, userID string, windowMonths int, displayCurrency string, useNativeCurrency bool) (*domain.Dashboard, error)
}
