package services_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func testRateTable(t *testing.T) *domain.RateTable {
	t.Helper()
	table, err := domain.NewRateTable("USD", []domain.CurrencySpec{
		{Code: "USD", RateToBase: decimal.NewFromInt(1), FractionDigits: 2, Locale: "en-US", DisplayName: "US Dollar", Symbol: "$"},
		{Code: "UGX", RateToBase: decimal.NewFromInt(3750), FractionDigits: 0, Locale: "en-UG", DisplayName: "Ugandan Shilling", Symbol: "USh"},
		{Code: "KES", RateToBase: decimal.NewFromInt(130), FractionDigits: 0, Locale: "en-KE", DisplayName: "Kenyan Shilling", Symbol: "KSh"},
	})
	require.NoError(t, err)
	return table
}

type CurrencyServiceTestSuite struct {
	suite.Suite
	service portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.service = services.NewCurrencyService(testRateTable(suite.T()))
}

func (suite *CurrencyServiceTestSuite) TestConvert_KnownPairs() {
	got, err := suite.service.Convert(decimal.NewFromInt(10), "USD", "UGX")
	suite.Require().NoError(err)
	suite.True(got.Equal(decimal.NewFromInt(37500)), "got %s", got)

	got, err = suite.service.Convert(decimal.NewFromInt(37500), "UGX", "USD")
	suite.Require().NoError(err)
	suite.True(got.Equal(decimal.NewFromInt(10)), "got %s", got)

	got, err = suite.service.Convert(decimal.NewFromInt(130), "KES", "UGX")
	suite.Require().NoError(err)
	suite.True(got.Equal(decimal.NewFromInt(3750)), "got %s", got)
}

func (suite *CurrencyServiceTestSuite) TestConvert_Identity() {
	amounts := []decimal.Decimal{
		decimal.RequireFromString("0.1"),
		decimal.RequireFromString("-12.3456789"),
		decimal.RequireFromString("1234567.89"),
	}
	for _, spec := range suite.service.SupportedCurrencies() {
		for _, amount := range amounts {
			got, err := suite.service.Convert(amount, spec.Code, spec.Code)
			suite.Require().NoError(err)
			suite.True(got.Equal(amount), "%s: %s != %s", spec.Code, got, amount)
			suite.Equal(amount.String(), got.String())
		}
	}
}

func (suite *CurrencyServiceTestSuite) TestConvert_RoundTrip() {
	tolerance := decimal.RequireFromString("0.000000001")
	amounts := []decimal.Decimal{
		decimal.RequireFromString("123.45"),
		decimal.RequireFromString("-9876.5"),
		decimal.RequireFromString("0.01"),
		decimal.NewFromInt(1000000),
	}
	specs := suite.service.SupportedCurrencies()
	for _, a := range specs {
		for _, b := range specs {
			for _, x := range amounts {
				there, err := suite.service.Convert(x, a.Code, b.Code)
				suite.Require().NoError(err)
				back, err := suite.service.Convert(there, b.Code, a.Code)
				suite.Require().NoError(err)

				diff := back.Sub(x).Abs()
				suite.True(diff.LessThanOrEqual(tolerance.Mul(x.Abs().Add(decimal.NewFromInt(1)))),
					"%s -> %s -> %s: %s came back as %s", a.Code, b.Code, a.Code, x, back)
			}
		}
	}
}

func (suite *CurrencyServiceTestSuite) TestConvert_NegativeAmount() {
	got, err := suite.service.Convert(decimal.NewFromInt(-2), "USD", "KES")
	suite.Require().NoError(err)
	suite.True(got.Equal(decimal.NewFromInt(-260)))
}

func (suite *CurrencyServiceTestSuite) TestConvert_UnsupportedCurrency() {
	_, err := suite.service.Convert(decimal.NewFromInt(1), "EUR", "USD")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.Contains(err.Error(), "EUR")

	_, err = suite.service.Convert(decimal.NewFromInt(1), "USD", "EUR")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)

	// same-code shortcut must not hide an unknown code
	_, err = suite.service.Convert(decimal.NewFromInt(1), "EUR", "EUR")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
}

func (suite *CurrencyServiceTestSuite) TestFormat() {
	out, err := suite.service.Format(decimal.NewFromInt(1000), "UGX")
	suite.Require().NoError(err)
	suite.Equal("USh 1,000", out)

	out, err = suite.service.Format(decimal.NewFromInt(1000), "USD")
	suite.Require().NoError(err)
	suite.Equal("$1,000.00", out)

	_, err = suite.service.Format(decimal.NewFromInt(1000), "EUR")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
}

func (suite *CurrencyServiceTestSuite) TestFormat_FractionDigitBound() {
	for _, spec := range suite.service.SupportedCurrencies() {
		out, err := suite.service.Format(decimal.RequireFromString("98765.4321"), spec.Code)
		suite.Require().NoError(err)
		fraction := ""
		if idx := strings.LastIndex(out, "."); idx >= 0 {
			fraction = out[idx+1:]
		}
		suite.LessOrEqual(len(fraction), spec.FractionDigits, "%s formatted as %q", spec.Code, out)
	}
}

func (suite *CurrencyServiceTestSuite) TestDisplayName() {
	suite.Equal("Ugandan Shilling", suite.service.DisplayName("UGX"))
	suite.Equal("EUR", suite.service.DisplayName("EUR"))
}

func (suite *CurrencyServiceTestSuite) TestSupportedCurrencies() {
	suite.Equal("USD", suite.service.BaseCurrency())
	suite.True(suite.service.IsSupported("KES"))
	suite.False(suite.service.IsSupported("EUR"))

	codes := []string{}
	for _, spec := range suite.service.SupportedCurrencies() {
		codes = append(codes, spec.Code)
	}
	suite.Equal([]string{"KES", "UGX", "USD"}, codes)
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
