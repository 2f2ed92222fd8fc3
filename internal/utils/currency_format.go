package utils

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatWithCurrencyPrecision rounds amount to the currency's fraction digits and renders it
// with the grouping rules of the currency's locale, prefixed by its symbol.
// Example: 1000 with UGX (0 digits, en-UG, "USh") returns "USh 1,000"
// Example: 1000 with USD (2 digits, en-US, "$") returns "$1,000.00"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.CurrencySpec) string {
	rounded := amount.Round(int32(currency.FractionDigits))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	return sign + symbolPrefix(currency.Symbol) + FormatWithPrecision(rounded, currency.FractionDigits, currency.Locale)
}

// FormatWithPrecision renders amount with exactly precision fraction digits using the
// grouping and decimal separators of locale. The digits come from the decimal itself,
// so amounts of any size are shown exactly.
func FormatWithPrecision(amount decimal.Decimal, precision int, locale string) string {
	sym := separatorsFor(locale)

	fixed := amount.StringFixed(int32(precision))
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	out := sign + groupDigits(intPart, sym)
	if precision > 0 {
		out += sym.decimal + fracPart
	}
	return out
}

// numberSymbols describes how a locale writes a number: separators and group sizes.
// A primary group size of 0 means the locale does not group.
type numberSymbols struct {
	group     string
	decimal   string
	primary   int
	secondary int
}

var (
	defaultSymbols = numberSymbols{group: ",", decimal: ".", primary: 3, secondary: 3}
	symbolsCache   sync.Map // locale string -> numberSymbols
)

// separatorsFor derives the locale's separators by letting x/text print a sample number
// and reading the non-digit runs back out of it.
func separatorsFor(locale string) numberSymbols {
	if cached, ok := symbolsCache.Load(locale); ok {
		return cached.(numberSymbols)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	sample := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234567.5,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))

	sym := parseSymbols(sample, 7)
	symbolsCache.Store(locale, sym)
	return sym
}

// parseSymbols reads separators from a rendering of a number with intDigits integer digits
// and a single fraction digit.
func parseSymbols(sample string, intDigits int) numberSymbols {
	var (
		runs      []string
		positions []int // integer digits seen before each run
		run       strings.Builder
		digits    int
	)
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if run.Len() > 0 {
				runs = append(runs, run.String())
				positions = append(positions, digits)
				run.Reset()
			}
			digits++
			continue
		}
		run.WriteRune(r)
	}

	if digits != intDigits+1 || len(runs) == 0 || positions[len(runs)-1] != intDigits {
		return defaultSymbols
	}

	sym := numberSymbols{decimal: runs[len(runs)-1]}
	groups := positions[:len(runs)-1]
	if len(groups) == 0 {
		return sym
	}
	sym.group = runs[0]
	sym.primary = intDigits - groups[len(groups)-1]
	sym.secondary = sym.primary
	if len(groups) > 1 {
		sym.secondary = groups[len(groups)-1] - groups[len(groups)-2]
	}
	if sym.primary < 1 || sym.secondary < 1 {
		return defaultSymbols
	}
	return sym
}

// groupDigits inserts the group separator into a string of ASCII digits.
func groupDigits(digits string, sym numberSymbols) string {
	if sym.primary == 0 || len(digits) <= sym.primary {
		return digits
	}

	var parts []string
	end := len(digits)
	size := sym.primary
	for end > size {
		parts = append(parts, digits[end-size:end])
		end -= size
		size = sym.secondary
	}
	parts = append(parts, digits[:end])

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, sym.group)
}

// symbolPrefix separates alphabetic symbols ("USh") from the number with a space,
// while sign-like symbols ("$") are attached directly.
func symbolPrefix(symbol string) string {
	if symbol == "" {
		return ""
	}
	last, _ := utf8.DecodeLastRuneInString(symbol)
	if unicode.IsLetter(last) {
		return symbol + " "
	}
	return symbol
}
