package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const maxFractionDigits = 4

// RateTable is the immutable set of supported currencies. It is built once at
// startup and shared read-only between requests.
type RateTable struct {
	base  string
	specs map[string]CurrencySpec
}

// NewRateTable validates specs and builds a RateTable around base.
// The base currency must be present with a rate of exactly 1.
func NewRateTable(base string, specs []CurrencySpec) (*RateTable, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return nil, fmt.Errorf("%w: base currency is required", apperrors.ErrValidation)
	}

	table := &RateTable{
		base:  base,
		specs: make(map[string]CurrencySpec, len(specs)),
	}

	for _, spec := range specs {
		spec.Code = strings.ToUpper(strings.TrimSpace(spec.Code))
		if _, err := currency.ParseISO(spec.Code); err != nil {
			return nil, fmt.Errorf("%w: invalid currency code %q: %v", apperrors.ErrValidation, spec.Code, err)
		}
		if _, dup := table.specs[spec.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate currency code %q", apperrors.ErrValidation, spec.Code)
		}
		if !spec.RateToBase.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %s must be positive", apperrors.ErrValidation, spec.Code)
		}
		if spec.FractionDigits < 0 || spec.FractionDigits > maxFractionDigits {
			return nil, fmt.Errorf("%w: fraction digits for %s must be between 0 and %d", apperrors.ErrValidation, spec.Code, maxFractionDigits)
		}
		if spec.Locale == "" {
			spec.Locale = "en"
		}
		if _, err := language.Parse(spec.Locale); err != nil {
			return nil, fmt.Errorf("%w: invalid locale %q for %s: %v", apperrors.ErrValidation, spec.Locale, spec.Code, err)
		}
		if spec.Symbol == "" {
			spec.Symbol = spec.Code
		}
		if spec.DisplayName == "" {
			spec.DisplayName = spec.Code
		}
		table.specs[spec.Code] = spec
	}

	baseSpec, ok := table.specs[base]
	if !ok {
		return nil, fmt.Errorf("%w: base currency %s missing from rate table", apperrors.ErrValidation, base)
	}
	if !baseSpec.RateToBase.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: base currency %s must have rate 1, got %s", apperrors.ErrValidation, base, baseSpec.RateToBase)
	}

	return table, nil
}

// Base returns the base currency code.
func (t *RateTable) Base() string {
	return t.base
}

// Lookup returns the spec for code, or ErrUnsupportedCurrency.
func (t *RateTable) Lookup(code string) (CurrencySpec, error) {
	spec, ok := t.specs[code]
	if !ok {
		return CurrencySpec{}, apperrors.UnsupportedCurrency(code)
	}
	return spec, nil
}

// Specs returns a copy of all specs ordered by currency code.
func (t *RateTable) Specs() []CurrencySpec {
	out := make([]CurrencySpec, 0, len(t.specs))
	for _, spec := range t.specs {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
