package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

// DashboardQuery defines the query parameters of the revenue dashboard.
type DashboardQuery struct {
	Months         int    `form:"months,default=6" binding:"min=1,max=24"`
	Currency       string `form:"currency,default=UGX" binding:"required,currency_code"`
	NativeCurrency bool   `form:"native_currency,default=false"`
}

// Normalize upper-cases the currency code.
func (q *DashboardQuery) Normalize() {
	q.Currency = strings.ToUpper(strings.TrimSpace(q.Currency))
}

// RevenueBucketResponse is one month of a revenue series.
type RevenueBucketResponse struct {
	Month          string          `json:"month" example:"2026-10"`
	Total          decimal.Decimal `json:"total" swaggertype:"string" example:"375000"`
	FormattedTotal string          `json:"formattedTotal" example:"USh 375,000"`
	DocumentCount  int             `json:"documentCount" example:"1"`
}

// RevenueSeriesResponse is a run of monthly buckets in one currency, oldest first.
type RevenueSeriesResponse struct {
	Currency     string                  `json:"currency" example:"UGX"`
	CurrencyName string                  `json:"currencyName" example:"Ugandan Shilling"`
	Data         []RevenueBucketResponse `json:"data"`
}

// FinancialMetricsResponse is the current-month summary.
type FinancialMetricsResponse struct {
	Currency         string          `json:"currency" example:"UGX"`
	Month            string          `json:"month" example:"2026-10"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue" swaggertype:"string" example:"412500"`
	FormattedRevenue string          `json:"formattedRevenue" example:"USh 412,500"`
	TotalDocuments   int             `json:"totalDocuments" example:"12"`
	PaidDocuments    int             `json:"paidDocuments" example:"7"`
	DraftDocuments   int             `json:"draftDocuments" example:"2"`
	OverdueDocuments int             `json:"overdueDocuments" example:"1"`
}

// DashboardResponse is the body of GET /dashboard/revenue.
type DashboardResponse struct {
	Success     bool                     `json:"success" example:"true"`
	RevenueData []RevenueSeriesResponse  `json:"revenueData"`
	Metrics     FinancialMetricsResponse `json:"metrics"`
}

// ToRevenueSeriesResponse converts domain series, formatting every bucket in its own currency.
func ToRevenueSeriesResponse(series []domain.RevenueSeries, f portssvc.CurrencyFormatterSvc) ([]RevenueSeriesResponse, error) {
	out := make([]RevenueSeriesResponse, len(series))
	for i, s := range series {
		data := make([]RevenueBucketResponse, len(s.Buckets))
		for j, b := range s.Buckets {
			formatted, err := f.Format(b.Total, b.Currency)
			if err != nil {
				return nil, fmt.Errorf("format bucket %s: %w", b.Label, err)
			}
			data[j] = RevenueBucketResponse{
				Month:          b.Label,
				Total:          b.Total,
				FormattedTotal: formatted,
				DocumentCount:  b.Count,
			}
		}
		out[i] = RevenueSeriesResponse{
			Currency:     s.Currency,
			CurrencyName: f.DisplayName(s.Currency),
			Data:         data,
		}
	}
	return out, nil
}

// ToFinancialMetricsResponse converts a domain snapshot.
func ToFinancialMetricsResponse(m domain.FinancialMetricsSnapshot) FinancialMetricsResponse {
	return FinancialMetricsResponse{
		Currency:         m.Currency,
		Month:            m.PeriodStart.Format(monthLayout),
		TotalRevenue:     m.TotalRevenue,
		FormattedRevenue: m.FormattedRevenue,
		TotalDocuments:   m.TotalDocuments,
		PaidDocuments:    m.PaidDocuments,
		DraftDocuments:   m.DraftDocuments,
		OverdueDocuments: m.OverdueDocuments,
	}
}

// ToDashboardResponse converts a domain Dashboard to the API response.
func ToDashboardResponse(d *domain.Dashboard, f portssvc.CurrencyFormatterSvc) (DashboardResponse, error) {
	series, err := ToRevenueSeriesResponse(d.Revenue, f)
	if err != nil {
		return DashboardResponse{}, err
	}
	return DashboardResponse{
		Success:     true,
		RevenueData: series,
		Metrics:     ToFinancialMetricsResponse(d.Metrics),
	}, nil
}
