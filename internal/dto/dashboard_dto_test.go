package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/services"
	"github.com/SscSPs/bizdocs_dashboard/internal/dto"
	"github.com/SscSPs/bizdocs_dashboard/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDashboardResponse(t *testing.T) {
	table, err := config.LoadCurrencyTable("")
	require.NoError(t, err)
	currency := services.NewCurrencyService(table)

	oct := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	d := &domain.Dashboard{
		Revenue: []domain.RevenueSeries{{
			Currency: "UGX",
			Buckets: []domain.RevenueBucket{
				{PeriodStart: oct.AddDate(0, -1, 0), Label: "2026-09", Currency: "UGX", Total: decimal.Zero},
				{PeriodStart: oct, Label: "2026-10", Currency: "UGX", Total: decimal.NewFromInt(375000), Count: 1},
			},
		}},
		Metrics: domain.FinancialMetricsSnapshot{
			Currency:         "UGX",
			PeriodStart:      oct,
			TotalRevenue:     decimal.NewFromInt(375000),
			FormattedRevenue: "USh 375,000",
			TotalDocuments:   3,
			PaidDocuments:    1,
		},
	}

	res, err := dto.ToDashboardResponse(d, currency)
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.RevenueData, 1)
	assert.Equal(t, "Ugandan Shilling", res.RevenueData[0].CurrencyName)
	assert.Equal(t, "2026-09", res.RevenueData[0].Data[0].Month)
	assert.Equal(t, "USh 0", res.RevenueData[0].Data[0].FormattedTotal)
	assert.Equal(t, "USh 375,000", res.RevenueData[0].Data[1].FormattedTotal)
	assert.Equal(t, 1, res.RevenueData[0].Data[1].DocumentCount)
	assert.Equal(t, "2026-10", res.Metrics.Month)
	assert.Equal(t, 3, res.Metrics.TotalDocuments)
}

func TestToDashboardResponse_UnknownBucketCurrency(t *testing.T) {
	table, err := config.LoadCurrencyTable("")
	require.NoError(t, err)

	d := &domain.Dashboard{Revenue: []domain.RevenueSeries{{
		Currency: "EUR",
		Buckets:  []domain.RevenueBucket{{Label: "2026-10", Currency: "EUR", Total: decimal.NewFromInt(1)}},
	}}}

	_, err = dto.ToDashboardResponse(d, services.NewCurrencyService(table))
	assert.Error(t, err)
}
