package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/chart"
	"github.com/etnz/retrofit/view"
)

func samplePage(t *testing.T) *Page {
	t.Helper()
	d, err := retrofit.NewDashboard(retrofit.SamplePortfolio())
	require.NoError(t, err)
	p, err := NewPage(d)
	require.NoError(t, err)
	return p
}

func TestTemplatePartials(t *testing.T) {
	testCases := []struct {
		name    string
		section view.Section
		drawer  view.Section
		want    []string
	}{
		{
			name: "dashboard_title",
			want: []string{"# Retrofit dashboard"},
		},
		{
			name:    "dashboard_cards",
			section: view.Overview,
			want:    []string{"## Overview", "| Units | 320 | 4 EPC bands |", "| Payback | 2033 |", "| Net capex | -£3250k |"},
		},
		{
			name:    "dashboard_epc",
			section: view.EPC,
			want:    []string{"## EPC ratings", "| A-B (2030 ready) | 15% | 48 units | ███ |", "Portfolio of 320 units."},
		},
		{
			name:    "dashboard_compliance",
			section: view.Compliance,
			want:    []string{"## Compliance", "* **Below 2027** (critical): 18%, 56 units"},
		},
		{
			name:    "dashboard_confidence",
			section: view.Confidence,
			want:    []string{"## Data confidence", "| High | 57% |"},
		},
		{
			name:    "dashboard_cashflow",
			section: view.Cashflow,
			want:    []string{"## Cashflow projection", "| year | Capex | Savings | Cumulative |", "| 2025 | -£2000k | £100k | -£1900k |", "Payback: 2033"},
		},
		{
			name:    "dashboard_opex",
			section: view.Opex,
			want:    []string{"## Operating expenses", "| category | Before (£755k) | After (£525k) |", "| Energy | £420k | £240k |", "Savings: £230k per year (30%)"},
		},
		{
			name:    "dashboard_details",
			section: view.EPC,
			drawer:  view.EPC,
			want:    []string{"## EPC ratings", "## Details (epc)", "```json", `"totalUnits": 320`},
		},
	}

	// --- Coverage Check ---
	tested := make(map[string]bool)
	for _, tc := range testCases {
		tested[tc.name+".md"] = true
	}
	for _, partial := range partialTemplates(t) {
		if !tested[partial] {
			t.Errorf("untested template partial found: %s. Please add a test case to TestTemplatePartials.", partial)
		}
	}

	page := samplePage(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := view.State{}.Activate(tc.section)
			if tc.drawer != view.All {
				st = st.OpenDrawer(tc.drawer)
			}
			got, err := RenderPage(page, st)
			require.NoError(t, err)
			for _, want := range tc.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestRenderDashboard_SectionFilter(t *testing.T) {
	d, err := retrofit.NewDashboard(retrofit.SamplePortfolio())
	require.NoError(t, err)

	got, err := RenderDashboard(d, view.State{}.Activate(view.Cashflow))
	require.NoError(t, err)
	assert.Contains(t, got, "## Cashflow projection")
	assert.NotContains(t, got, "## EPC ratings")
	assert.NotContains(t, got, "## Overview")

	got, err = RenderDashboard(d, view.State{}.Activate(view.EPC).OpenDrawer(view.Opex))
	require.NoError(t, err)
	assert.Contains(t, got, "## Operating expenses")
	assert.NotContains(t, got, "## EPC ratings")
	assert.Contains(t, got, "## Details (opex)")
	assert.Contains(t, got, `"savingsPct"`)

	all, err := RenderDashboard(d, view.State{})
	require.NoError(t, err)
	assert.NotContains(t, all, "## Details")
	for _, h := range []string{"## Overview", "## EPC ratings", "## Compliance", "## Data confidence", "## Cashflow projection", "## Operating expenses"} {
		assert.Contains(t, all, h)
	}
}

func TestRenderDashboard_Empty(t *testing.T) {
	d, err := retrofit.NewDashboard(retrofit.Portfolio{})
	require.NoError(t, err)
	got, err := RenderDashboard(d, view.State{})
	require.NoError(t, err)
	assert.Contains(t, got, "> Warning: confidence: total is zero")
	assert.Contains(t, got, noData)
	assert.Contains(t, got, "Payback: —")
	assert.NotContains(t, got, "NaN")
}

func TestHTML(t *testing.T) {
	page := samplePage(t)
	md, err := RenderPage(page, view.State{})
	require.NoError(t, err)

	got, err := HTMLPage("Retrofit <dashboard>", md)
	require.NoError(t, err)
	assert.Contains(t, got, "<title>Retrofit &lt;dashboard&gt;</title>")
	assert.Contains(t, got, "<h2>EPC ratings</h2>")
	assert.Equal(t, 6, strings.Count(got, "<table>"))
	assert.Contains(t, got, "£420k</td>")
}

func TestDetails(t *testing.T) {
	d, err := retrofit.NewDashboard(retrofit.SamplePortfolio())
	require.NoError(t, err)
	assert.Equal(t, d.Opex, Details(d, view.Opex))
	assert.Equal(t, d.Cards(), Details(d, view.Overview))
	assert.Equal(t, d, Details(d, view.All))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 10))
	assert.Equal(t, "█████", bar(0.5, 10))
	assert.Equal(t, "██████████", bar(3, 10))
	assert.Equal(t, "", bar(-1, 10))
}

// partialTemplates lists the embedded templates that are partials of
// another template, named <assembly>_<partial>.md.
func partialTemplates(t *testing.T) []string {
	t.Helper()
	files, err := templates.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	var names []string
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".md") {
			names = append(names, f.Name())
		}
	}
	var partials []string
	for _, n1 := range names {
		base1 := strings.TrimSuffix(n1, ".md")
		for _, n2 := range names {
			if n1 != n2 && strings.HasPrefix(base1, strings.TrimSuffix(n2, ".md")+"_") {
				partials = append(partials, n1)
				break
			}
		}
	}
	return partials
}

func TestSVGCharts(t *testing.T) {
	d, err := retrofit.NewDashboard(retrofit.SamplePortfolio())
	require.NoError(t, err)

	svg := NewSVGCharts()
	require.NoError(t, chart.Adapt(d, svg))
	for _, id := range []string{"epc", "compliance", "confidence", "cashflow", "opex"} {
		t.Run(id, func(t *testing.T) {
			require.Contains(t, svg.Charts, id)
			assert.Contains(t, string(svg.Charts[id]), "<svg")
		})
	}
}

func TestSVGCharts_Empty(t *testing.T) {
	d, err := retrofit.NewDashboard(retrofit.Portfolio{})
	require.NoError(t, err)

	svg := NewSVGCharts()
	require.NoError(t, chart.Adapt(d, svg))
	assert.Empty(t, svg.Charts)
}

func TestColor(t *testing.T) {
	assert.Equal(t, uint8(0x10), color("emerald-500").R)
	assert.Equal(t, uint8(0xef), color("red-500").R)
	assert.Equal(t, gochart.ColorAlternateGray, color("chartreuse-900"))
}
