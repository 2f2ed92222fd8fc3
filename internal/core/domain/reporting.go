package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueBucket is the revenue of one calendar month in a single currency.
type RevenueBucket struct {
	PeriodStart time.Time       `json:"periodStart"`
	Label       string          `json:"label"` // "2006-01"
	Currency    string          `json:"currency"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}

// RevenueSeries is a gap-free, oldest-first run of monthly buckets in one currency.
type RevenueSeries struct {
	Currency string          `json:"currency"`
	Buckets  []RevenueBucket `json:"buckets"`
}

// FinancialMetricsSnapshot summarises the current month for the dashboard.
type FinancialMetricsSnapshot struct {
	Currency         string          `json:"currency"`
	PeriodStart      time.Time       `json:"periodStart"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	FormattedRevenue string          `json:"formattedRevenue"`
	TotalDocuments   int             `json:"totalDocuments"`
	PaidDocuments    int             `json:"paidDocuments"`
	DraftDocuments   int             `json:"draftDocuments"`
	OverdueDocuments int             `json:"overdueDocuments"`
}

// Dashboard bundles the revenue series with the current-month metrics.
type Dashboard struct {
	Revenue []RevenueSeries          `json:"revenue"`
	Metrics FinancialMetricsSnapshot `json:"metrics"`
}
