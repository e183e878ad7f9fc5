package retrofit

import (
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money is an amount expressed in thousands of the reporting currency, the
// unit every financial figure of the dashboard is kept in (420 is £420k).
type Money struct {
	value decimal.Decimal
}

// K returns the money amount for v thousands.
func K[T float32 | float64 | int | int32 | int64 | decimal.Decimal](v T) Money {
	return Money{value: newDecimal(v)}
}

// String returns the amount formatted in the default currency, e.g. "£420k".
func (m Money) String() string { return formatThousands(m.value, DefaultCurrency) }

// Format returns the amount formatted in the given ISO currency.
func (m Money) Format(currency string) string { return formatThousands(m.value, currency) }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// Float returns the amount as a float, for chart collaborators that only
// understand float values.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// Ratio returns m/n. A zero denominator yields 0 and ok=false.
func (m Money) Ratio(n Money) (r Ratio, ok bool) {
	if n.value.IsZero() {
		return 0, false
	}
	return Ratio(m.value.Div(n.value).InexactFloat64()), true
}

// SignedString returns the formatted amount with an explicit sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts both bare and quoted numbers.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}

// SumMoney returns the sum of all amounts.
func SumMoney(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
