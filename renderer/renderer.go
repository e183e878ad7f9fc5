// Package renderer renders a retrofit dashboard as markdown, and markdown
// as HTML.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/chart"
	"github.com/etnz/retrofit/view"
)

//go:embed *.md
var templates embed.FS

// Page is the data the dashboard templates are executed with. Every value
// is already formatted.
type Page struct {
	Title       string
	Warnings    []string
	Cards       []retrofit.Card
	Charts      map[string]string // markdown chart, by chart id
	TotalUnits  int
	Tiers       []TierRow
	Payback     string
	OpexSavings string

	Details map[view.Section]string // drawer JSON, by section
	Drawer  view.Section            // open drawer, set by RenderPage
}

// TierRow is a compliance tier, formatted.
type TierRow struct {
	Name     string
	Severity retrofit.Severity
	Share    string
	Units    int
}

// NewPage formats a dashboard for the templates.
func NewPage(d *retrofit.Dashboard) (*Page, error) {
	charts := NewTextCharts()
	if err := chart.Adapt(d, charts); err != nil {
		return nil, err
	}
	drawers, err := details(d)
	if err != nil {
		return nil, err
	}
	p := &Page{
		Title:      "Retrofit dashboard",
		Details:    drawers,
		Cards:      d.Cards(),
		Charts:     charts.Charts,
		TotalUnits: d.EPC.TotalUnits,
		Payback:    retrofit.Unavailable,
	}
	for _, w := range d.Warnings {
		p.Warnings = append(p.Warnings, w.String())
	}
	for _, t := range d.Compliance {
		p.Tiers = append(p.Tiers, TierRow{Name: t.Name, Severity: t.Severity, Share: t.Share.Ratio().String(), Units: t.Units})
	}
	if year, ok := retrofit.PaybackYear(d.Cashflow); ok {
		p.Payback = strconv.Itoa(year)
	}
	p.OpexSavings = retrofit.Unavailable
	if !d.Opex.Empty {
		p.OpexSavings = fmt.Sprintf("%s per year (%s)", d.Money(d.Opex.TotalSavings()), d.Opex.SavingsPct)
	}
	return p, nil
}

// RenderDashboard renders the sections of d visible in state st.
func RenderDashboard(d *retrofit.Dashboard, st view.State) (string, error) {
	p, err := NewPage(d)
	if err != nil {
		return "", err
	}
	return RenderPage(p, st)
}

// RenderPage renders an already formatted page. The details of the open
// drawer, if any, follow the sections.
func RenderPage(p *Page, st view.State) (string, error) {
	// Hidden sections get an empty file name, which results in an empty template.
	section := func(sec view.Section, file string) string {
		if !st.Shows(sec) {
			return ""
		}
		return file
	}
	partials := map[string]string{
		"dashboard_title":      "dashboard_title.md",
		"dashboard_cards":      section(view.Overview, "dashboard_cards.md"),
		"dashboard_epc":        section(view.EPC, "dashboard_epc.md"),
		"dashboard_compliance": section(view.Compliance, "dashboard_compliance.md"),
		"dashboard_confidence": section(view.Confidence, "dashboard_confidence.md"),
		"dashboard_cashflow":   section(view.Cashflow, "dashboard_cashflow.md"),
		"dashboard_opex":       section(view.Opex, "dashboard_opex.md"),
		"dashboard_details":    "",
	}
	data := *p
	if st.DrawerOpen() {
		partials["dashboard_details"] = "dashboard_details.md"
		data.Drawer = st.Drawer
	}
	return renderTemplate("dashboard", "dashboard.md", partials, &data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) (string, error) {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return "", fmt.Errorf("error reading main template %q: %w", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return "", fmt.Errorf("error parsing main template %q: %w", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return "", fmt.Errorf("error reading partial template %q: %w", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("error parsing partial template %q for %q: %w", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return "", fmt.Errorf("error executing template %q: %w", templateName, err)
	}
	return b.String(), nil
}
