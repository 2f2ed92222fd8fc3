package dto

import (
	"strings"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse describes one supported currency.
type CurrencyResponse struct {
	Code           string          `json:"code" example:"UGX"`
	Name           string          `json:"name" example:"Ugandan Shilling"`
	Symbol         string          `json:"symbol" example:"USh"`
	Locale         string          `json:"locale" example:"en-UG"`
	FractionDigits int             `json:"fractionDigits" example:"0"`
	RateToBase     decimal.Decimal `json:"rateToBase" swaggertype:"string" example:"3750"`
	IsBase         bool            `json:"isBase" example:"false"`
}

// ListCurrenciesResponse is the body of GET /currencies.
type ListCurrenciesResponse struct {
	Success      bool               `json:"success" example:"true"`
	BaseCurrency string             `json:"baseCurrency" example:"USD"`
	Currencies   []CurrencyResponse `json:"currencies"`
}

// ConvertQuery defines the query parameters of GET /currencies/convert.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required,numeric"`
	From   string `form:"from" binding:"required,currency_code"`
	To     string `form:"to" binding:"required,currency_code"`
}

// Normalize upper-cases the currency codes.
func (q *ConvertQuery) Normalize() {
	q.From = strings.ToUpper(strings.TrimSpace(q.From))
	q.To = strings.ToUpper(strings.TrimSpace(q.To))
}

// ConvertResponse is the body of GET /currencies/convert.
type ConvertResponse struct {
	Success   bool            `json:"success" example:"true"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"10"`
	From      string          `json:"from" example:"USD"`
	To        string          `json:"to" example:"UGX"`
	Result    decimal.Decimal `json:"result" swaggertype:"string" example:"37500"`
	Formatted string          `json:"formatted" example:"USh 37,500"`
}

// FormatQuery defines the query parameters of GET /currencies/format.
type FormatQuery struct {
	Amount   string `form:"amount" binding:"required,numeric"`
	Currency string `form:"currency" binding:"required,currency_code"`
}

// Normalize upper-cases the currency code.
func (q *FormatQuery) Normalize() {
	q.Currency = strings.ToUpper(strings.TrimSpace(q.Currency))
}

// FormatResponse is the body of GET /currencies/format.
type FormatResponse struct {
	Success   bool   `json:"success" example:"true"`
	Currency  string `json:"currency" example:"USD"`
	Formatted string `json:"formatted" example:"$1,000.00"`
}

// ToCurrencyResponse converts a domain CurrencySpec to CurrencyResponse DTO
func ToCurrencyResponse(spec domain.CurrencySpec, base string) CurrencyResponse {
	return CurrencyResponse{
		Code:           spec.Code,
		Name:           spec.DisplayName,
		Symbol:         spec.Symbol,
		Locale:         spec.Locale,
		FractionDigits: spec.FractionDigits,
		RateToBase:     spec.RateToBase,
		IsBase:         spec.Code == base,
	}
}

// ToListCurrenciesResponse converts the rate table to the list response.
func ToListCurrenciesResponse(specs []domain.CurrencySpec, base string) ListCurrenciesResponse {
	res := make([]CurrencyResponse, len(specs))
	for i, spec := range specs {
		res[i] = ToCurrencyResponse(spec, base)
	}
	return ListCurrenciesResponse{Success: true, BaseCurrency: base, Currencies: res}
}
