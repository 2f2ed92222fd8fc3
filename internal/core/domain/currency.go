package domain

import "github.com/shopspring/decimal"

// BaseCurrencyCode is the reference currency every conversion is routed through.
const BaseCurrencyCode = "USD"

// CurrencySpec holds the conversion rate and display rules of a supported currency.
type CurrencySpec struct {
	Code           string          `json:"currencyCode"`   // e.g., "UGX"
	RateToBase     decimal.Decimal `json:"rateToBase"`     // units per one base unit
	FractionDigits int             `json:"fractionDigits"` // digits shown after the decimal separator
	Locale         string          `json:"locale"`         // BCP-47 tag used for grouping, e.g. "en-UG"
	DisplayName    string          `json:"displayName"`    // e.g., "Ugandan Shilling"
	Symbol         string          `json:"symbol"`         // e.g., "USh"
}

// MonetaryAmount is a value in its native currency. Amounts in different
// currencies are never summed without conversion.
type MonetaryAmount struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}
