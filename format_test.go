package retrofit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrencyThousands(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{420, "£420k"},
		{-800, "-£800k"},
		{0, "£0k"},
		{420.5, "£420.5k"},
		{-1900, "-£1900k"},
		{math.NaN(), Unavailable},
		{math.Inf(-1), Unavailable},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatCurrencyThousands(tc.value), "FormatCurrencyThousands(%v)", tc.value)
	}
}

func TestFormatCurrencyThousandsIn(t *testing.T) {
	assert.Equal(t, "€12k", FormatCurrencyThousandsIn(12, "EUR"))
	assert.Equal(t, "-$3k", FormatCurrencyThousandsIn(-3, "USD"))
	assert.Equal(t, "XYZ5k", FormatCurrencyThousandsIn(5, "XYZ"))
}

func TestParseCurrencyThousands_RoundTrip(t *testing.T) {
	for x := -2500; x <= 2500; x += 97 {
		got, err := ParseCurrencyThousands(FormatCurrencyThousands(float64(x)))
		require.NoError(t, err)
		assert.Equal(t, float64(x), got)
	}
}

func TestParseCurrencyThousands_Errors(t *testing.T) {
	for _, s := range []string{"420k", "£420", "£abck", "£-5k", ""} {
		_, err := ParseCurrencyThousands(s)
		assert.Error(t, err, "ParseCurrencyThousands(%q)", s)
	}
}

func TestFormatPercentage(t *testing.T) {
	testCases := []struct {
		name   string
		ratio  float64
		digits int
		want   string
	}{
		{"half", 0.5, 0, "50%"},
		{"zero", 0, 0, "0%"},
		{"one digit", 0.4286, 1, "42.9%"},
		{"two digits", 0.4286, 2, "42.86%"},
		{"rounds half away from zero", 0.125, 0, "13%"},
		{"negative digits", 0.5, -2, "50%"},
		{"tiny negative has no sign", -0.001, 0, "0%"},
		{"negative", -0.25, 0, "-25%"},
		{"over one", 1.5, 0, "150%"},
		{"NaN", math.NaN(), 0, Unavailable},
		{"infinite", math.Inf(1), 1, Unavailable},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPercentage(tc.ratio, tc.digits))
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "£420k", K(420).String())
	assert.Equal(t, "+£5k", K(5).SignedString())
	assert.Equal(t, "-", K(0).SignedString())
	assert.True(t, K(-2000).Add(K(100)).Equal(K(-1900)))

	m, err := ParseMoney("-£800k")
	require.NoError(t, err)
	assert.True(t, m.Equal(K(-800)))

	_, ok := K(1).Ratio(K(0))
	assert.False(t, ok)
	r, ok := K(180).Ratio(K(420))
	assert.True(t, ok)
	assert.True(t, r.Equal(Ratio(180.0/420)))
}
