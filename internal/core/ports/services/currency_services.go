package services

import (
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyConverterSvc converts amounts between supported currencies.
type CurrencyConverterSvc interface {
	// Convert re-expresses amount from one currency in another via the base currency.
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// CurrencyFormatterSvc renders amounts for display.
type CurrencyFormatterSvc interface {
	// Format renders amount using the currency's locale, symbol and fraction digits.
	Format(amount decimal.Decimal, currencyCode string) (string, error)

	// DisplayName returns the full name of the currency, or the code itself when unknown.
	DisplayName(currencyCode string) string
}

// CurrencyReaderSvc exposes the configured rate table.
type CurrencyReaderSvc interface {
	// SupportedCurrencies lists every configured currency ordered by code.
	SupportedCurrencies() []domain.CurrencySpec

	// IsSupported reports whether code is in the rate table.
	IsSupported(currencyCode string) bool

	// BaseCurrency returns the code all conversions are routed through.
	BaseCurrency() string
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyConverterSvc
	CurrencyFormatterSvc
	CurrencyReaderSvc
}
