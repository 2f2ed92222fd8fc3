package config

import (
	"fmt"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type currencyEntry struct {
	Code           string `mapstructure:"code"`
	Rate           string `mapstructure:"rate"`
	FractionDigits int    `mapstructure:"fraction_digits"`
	Locale         string `mapstructure:"locale"`
	DisplayName    string `mapstructure:"display_name"`
	Symbol         string `mapstructure:"symbol"`
}

// DefaultCurrencySpecs is the built-in table used when no currency file is configured.
func DefaultCurrencySpecs() []domain.CurrencySpec {
	return []domain.CurrencySpec{
		{Code: "USD", RateToBase: decimal.NewFromInt(1), FractionDigits: 2, Locale: "en-US", DisplayName: "US Dollar", Symbol: "$"},
		{Code: "UGX", RateToBase: decimal.NewFromInt(3750), FractionDigits: 0, Locale: "en-UG", DisplayName: "Ugandan Shilling", Symbol: "USh"},
		{Code: "KES", RateToBase: decimal.NewFromInt(130), FractionDigits: 0, Locale: "en-KE", DisplayName: "Kenyan Shilling", Symbol: "KSh"},
	}
}

// LoadCurrencyTable builds the rate table from the file at path (YAML, JSON or TOML,
// chosen by extension). An empty path yields the built-in defaults.
//
//	base: USD
//	currencies:
//	  - code: UGX
//	    rate: "3750"
//	    fraction_digits: 0
//	    locale: en-UG
//	    display_name: Ugandan Shilling
//	    symbol: USh
func LoadCurrencyTable(path string) (*domain.RateTable, error) {
	if path == "" {
		return domain.NewRateTable(domain.BaseCurrencyCode, DefaultCurrencySpecs())
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("base", domain.BaseCurrencyCode)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read currency config %s: %w", path, err)
	}

	var entries []currencyEntry
	if err := v.UnmarshalKey("currencies", &entries); err != nil {
		return nil, fmt.Errorf("failed to decode currency config %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("currency config %s defines no currencies", path)
	}

	specs := make([]domain.CurrencySpec, 0, len(entries))
	for _, e := range entries {
		rate, err := decimal.NewFromString(e.Rate)
		if err != nil {
			return nil, fmt.Errorf("currency %s: invalid rate %q: %w", e.Code, e.Rate, err)
		}
		specs = append(specs, domain.CurrencySpec{
			Code:           e.Code,
			RateToBase:     rate,
			FractionDigits: e.FractionDigits,
			Locale:         e.Locale,
			DisplayName:    e.DisplayName,
			Symbol:         e.Symbol,
		})
	}

	return domain.NewRateTable(v.GetString("base"), specs)
}
