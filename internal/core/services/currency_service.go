package services

import (
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/SscSPs/bizdocs_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// currencyService converts and formats amounts against a fixed rate table.
// It holds no mutable state, so a single instance is shared by all requests.
type currencyService struct {
	table *domain.RateTable
}

// NewCurrencyService creates a currency service backed by table.
func NewCurrencyService(table *domain.RateTable) portssvc.CurrencySvcFacade {
	return &currencyService{table: table}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// Convert expresses amount in the base currency first, then in the target currency.
// Identical codes return amount untouched, avoiding rounding drift on no-op conversions.
func (s *currencyService) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromSpec, err := s.table.Lookup(from)
	if err != nil {
		return decimal.Zero, err
	}
	toSpec, err := s.table.Lookup(to)
	if err != nil {
		return decimal.Zero, err
	}
	if from == to {
		return amount, nil
	}

	return amount.Div(fromSpec.RateToBase).Mul(toSpec.RateToBase), nil
}

func (s *currencyService) Format(amount decimal.Decimal, currencyCode string) (string, error) {
	spec, err := s.table.Lookup(currencyCode)
	if err != nil {
		return "", err
	}
	return utils.FormatWithCurrencyPrecision(amount, spec), nil
}

func (s *currencyService) DisplayName(currencyCode string) string {
	spec, err := s.table.Lookup(currencyCode)
	if err != nil {
		return currencyCode
	}
	return spec.DisplayName
}

func (s *currencyService) SupportedCurrencies() []domain.CurrencySpec {
	return s.table.Specs()
}

func (s *currencyService) IsSupported(currencyCode string) bool {
	_, err := s.table.Lookup(currencyCode)
	return err == nil
}

func (s *currencyService) BaseCurrency() string {
	return s.table.Base()
}
