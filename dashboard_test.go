package retrofit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboard_Sample(t *testing.T) {
	d, err := NewDashboard(SamplePortfolio())
	require.NoError(t, err)
	assert.Empty(t, d.Warnings)
	assert.Equal(t, "GBP", d.Currency)

	cards := d.Cards()
	got := make(map[string]Card, len(cards))
	for _, c := range cards {
		got[c.Title] = c
	}
	assert.Equal(t, "320", got["Units"].Value)
	assert.Equal(t, "45%", got["Compliant"].Value)
	assert.Equal(t, "144 of 320 units", got["Compliant"].Detail)
	assert.Equal(t, SeverityCritical, got["Compliant"].Severity)
	assert.Equal(t, "-£3250k", got["Net capex"].Value)
	assert.Equal(t, "2033", got["Payback"].Value)
	assert.Equal(t, "£870k cumulative by 2034", got["Payback"].Detail)
	assert.Equal(t, "30%", got["Opex savings"].Value)
	assert.Equal(t, "57%", got["Data confidence"].Value)
}

func TestNewDashboard_EmptyPortfolio(t *testing.T) {
	d, err := NewDashboard(Portfolio{})
	require.NoError(t, err)

	subjects := make([]string, len(d.Warnings))
	for i, w := range d.Warnings {
		subjects[i] = w.Subject
	}
	assert.Equal(t, []string{"epc", "confidence", "cashflow", "opex"}, subjects)

	for _, c := range d.Cards() {
		assert.NotContains(t, c.Value, "NaN", "card %q", c.Title)
	}
}

func TestNewDashboard_ValidationError(t *testing.T) {
	p := SamplePortfolio()
	p.Cashflow[1].Year = p.Cashflow[0].Year
	_, err := NewDashboard(p)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "cashflow")
}

func TestNewDashboard_Currency(t *testing.T) {
	p := SamplePortfolio()
	p.Currency = "EUR"
	d, err := NewDashboard(p)
	require.NoError(t, err)
	assert.Equal(t, "€755k", d.Money(d.Opex.TotalBefore))
}

func TestDecodePortfolio_RoundTrip(t *testing.T) {
	in := SamplePortfolio()
	in.Currency = "EUR"
	var buf bytes.Buffer
	require.NoError(t, EncodePortfolio(&buf, in))

	p, err := DecodePortfolio(&buf, DefaultSelectors())
	require.NoError(t, err)
	assert.Equal(t, "EUR", p.Currency)
	assert.Equal(t, SampleEPCBands(), p.EPC)
	assert.Equal(t, SampleComplianceRules(), p.Rules)
	assert.Equal(t, SampleConfidence(), p.Confidence)
	require.Len(t, p.Cashflow, 10)
	assert.True(t, p.Cashflow[0].Capex.Equal(K(-2000)))
	assert.Nil(t, p.Cashflow[0].Cumulative)
	assert.True(t, p.Opex[0].Before.Equal(K(420)))
}

func TestDecodePortfolio_Selectors(t *testing.T) {
	doc := `{
	  "portfolio": {
	    "ratings": [{"label": "C", "rating": "C", "unitCount": 10}],
	    "projection": {"years": [
	      {"year": 2025, "capexDelta": -2000, "savingsDelta": 100},
	      {"year": 2026, "capexDelta": -800, "savingsDelta": 200, "cumulative": -2500}
	    ]}
	  }
	}`
	p, err := DecodePortfolio(strings.NewReader(doc), Selectors{
		EPC:      "$.portfolio.ratings",
		Cashflow: "$.portfolio.projection.years",
	})
	require.NoError(t, err)
	require.Len(t, p.EPC, 1)
	assert.Equal(t, 10, p.EPC[0].Units)
	require.Len(t, p.Cashflow, 2)
	require.NotNil(t, p.Cashflow[1].Cumulative)
	assert.True(t, p.Cashflow[1].Cumulative.Equal(K(-2500)))
	assert.Empty(t, p.Opex)
}

func TestDecodePortfolio_Errors(t *testing.T) {
	_, err := DecodePortfolio(strings.NewReader("{"), DefaultSelectors())
	assert.Error(t, err)

	_, err = DecodePortfolio(strings.NewReader(`{"epc": "nope"}`), Selectors{EPC: "$.epc"})
	assert.Error(t, err)

	_, err = DecodePortfolio(strings.NewReader(`{"epc": []}`), Selectors{EPC: "$.epc["})
	assert.Error(t, err)
}

func TestDecodePortfolio_MissingDatasets(t *testing.T) {
	doc := `{
	  "epc": [{"label": "C", "rating": "C", "unitCount": 10}],
	  "rules": [{"name": "All", "severity": "ok", "members": ["C"]}]
	}`
	p, err := DecodePortfolio(strings.NewReader(doc), DefaultSelectors())
	require.NoError(t, err)
	assert.Empty(t, p.Currency)
	assert.Len(t, p.EPC, 1)
	assert.Empty(t, p.Cashflow)
	assert.Empty(t, p.Opex)

	d, err := NewDashboard(p)
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, d.Currency)
	var subjects []string
	for _, w := range d.Warnings {
		subjects = append(subjects, w.Subject)
	}
	assert.Contains(t, subjects, "confidence")
	assert.Contains(t, subjects, "opex")
}

func TestDecodePortfolio_ExactAmounts(t *testing.T) {
	doc := `{"opex": [{"category": "Energy", "before": 12345678901234567.89, "after": 0.1}]}`
	p, err := DecodePortfolio(strings.NewReader(doc), DefaultSelectors())
	require.NoError(t, err)
	require.Len(t, p.Opex, 1)
	raw, err := p.Opex[0].Before.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567.89", string(raw))
	assert.True(t, p.Opex[0].After.Equal(K(decimal.RequireFromString("0.1"))))
}
