package domain_test

import (
	"testing"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spec(code string, rate int64, digits int) domain.CurrencySpec {
	return domain.CurrencySpec{
		Code:           code,
		RateToBase:     decimal.NewFromInt(rate),
		FractionDigits: digits,
		Locale:         "en",
	}
}

func TestNewRateTable(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		specs   []domain.CurrencySpec
		wantErr string
	}{
		{
			name:  "valid table",
			base:  "USD",
			specs: []domain.CurrencySpec{spec("USD", 1, 2), spec("UGX", 3750, 0), spec("KES", 130, 0)},
		},
		{
			name:    "base missing",
			base:    "USD",
			specs:   []domain.CurrencySpec{spec("UGX", 3750, 0)},
			wantErr: "base currency USD missing",
		},
		{
			name:    "base rate not one",
			base:    "USD",
			specs:   []domain.CurrencySpec{spec("USD", 2, 2)},
			wantErr: "must have rate 1",
		},
		{
			name:    "non-positive rate",
			base:    "USD",
			specs:   []domain.CurrencySpec{spec("USD", 1, 2), spec("KES", 0, 0)},
			wantErr: "must be positive",
		},
		{
			name:    "duplicate code",
			base:    "USD",
			specs:   []domain.CurrencySpec{spec("USD", 1, 2), spec("usd", 1, 2)},
			wantErr: "duplicate currency code",
		},
		{
			name:    "unknown iso code",
			base:    "USD",
			specs:   []domain.CurrencySpec{spec("USD", 1, 2), spec("ZZZ", 5, 2)},
			wantErr: "invalid currency code",
		},
		{
			name:    "too many fraction digits",
			base:    "USD",
			specs:   []domain.CurrencySpec{spec("USD", 1, 7)},
			wantErr: "fraction digits",
		},
		{
			name:    "empty base",
			base:    " ",
			specs:   []domain.CurrencySpec{spec("USD", 1, 2)},
			wantErr: "base currency is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := domain.NewRateTable(tt.base, tt.specs)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "USD", table.Base())
		})
	}
}

func TestRateTable_LookupAndSpecs(t *testing.T) {
	table, err := domain.NewRateTable("usd", []domain.CurrencySpec{
		spec("USD", 1, 2),
		{Code: "ugx", RateToBase: decimal.NewFromInt(3750)},
	})
	require.NoError(t, err)

	ugx, err := table.Lookup("UGX")
	require.NoError(t, err)
	assert.Equal(t, "UGX", ugx.Symbol, "symbol defaults to the code")
	assert.Equal(t, "UGX", ugx.DisplayName)
	assert.Equal(t, "en", ugx.Locale)

	_, err = table.Lookup("EUR")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)

	specs := table.Specs()
	require.Len(t, specs, 2)
	assert.Equal(t, "UGX", specs[0].Code)
	assert.Equal(t, "USD", specs[1].Code)
}
