package retrofit

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency of the dashboard.
const DefaultCurrency = "GBP"

// Unavailable is rendered in place of a value that cannot be computed.
const Unavailable = "—"

const thousandsSuffix = "k"

// symbol returns the display grapheme of an ISO currency, falling back to
// the code itself for unknown currencies.
func symbol(code string) string {
	if c := money.GetCurrency(code); c != nil {
		return c.Grapheme
	}
	return code
}

func formatThousands(v decimal.Decimal, currency string) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return sign + symbol(currency) + v.Abs().String() + thousandsSuffix
}

// FormatCurrencyThousands renders a value already expressed in thousands,
// e.g. 420 → "£420k" and -800 → "-£800k".
func FormatCurrencyThousands(value float64) string {
	return FormatCurrencyThousandsIn(value, DefaultCurrency)
}

// FormatCurrencyThousandsIn is FormatCurrencyThousands for any ISO currency.
// NaN and infinite values render as Unavailable.
func FormatCurrencyThousandsIn(value float64, currency string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Unavailable
	}
	return formatThousands(decimal.NewFromFloat(value), currency)
}

// ParseCurrencyThousands is the inverse of FormatCurrencyThousands.
func ParseCurrencyThousands(s string) (float64, error) {
	m, err := parseThousands(s, DefaultCurrency)
	if err != nil {
		return 0, err
	}
	return m.Float(), nil
}

// ParseMoney parses a formatted amount such as "-£800k" into Money.
func ParseMoney(s string) (Money, error) { return parseThousands(s, DefaultCurrency) }

func parseThousands(s, currency string) (Money, error) {
	txt := strings.TrimSpace(s)
	neg := false
	if rest, ok := strings.CutPrefix(txt, "-"); ok {
		neg, txt = true, rest
	}
	rest, ok := strings.CutPrefix(txt, symbol(currency))
	if !ok {
		return Money{}, fmt.Errorf("invalid amount %q: missing %s symbol", s, currency)
	}
	rest, ok = strings.CutSuffix(rest, thousandsSuffix)
	if !ok {
		return Money{}, fmt.Errorf("invalid amount %q: missing %q suffix", s, thousandsSuffix)
	}
	v, err := decimal.NewFromString(rest)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v.IsNegative() {
		return Money{}, fmt.Errorf("invalid amount %q: sign must precede the symbol", s)
	}
	if neg {
		v = v.Neg()
	}
	return Money{value: v}, nil
}

// FormatPercentage renders a 0–1 ratio as a percentage rounded to
// fractionDigits, e.g. 0.5 → "50%". NaN and infinite ratios render as
// Unavailable.
func FormatPercentage(ratio float64, fractionDigits int) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return Unavailable
	}
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	pct := decimal.NewFromFloat(ratio).Shift(2)
	return pct.StringFixed(int32(fractionDigits)) + "%"
}
