package renderer

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/view"
)

// Details returns the aggregate behind a section, the content of its
// drawer.
func Details(d *retrofit.Dashboard, s view.Section) any {
	switch s {
	case view.Overview:
		return d.Cards()
	case view.EPC:
		return d.EPC
	case view.Compliance:
		return d.Compliance
	case view.Confidence:
		return d.Confidence
	case view.Cashflow:
		return d.Cashflow
	case view.Opex:
		return d.Opex
	default:
		return d
	}
}

// details returns the indented JSON of the drawer of every section.
func details(d *retrofit.Dashboard) (map[view.Section]string, error) {
	m := make(map[view.Section]string)
	for _, s := range view.Sections() {
		b, err := json.MarshalIndent(Details(d, s), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s details: %w", s, err)
		}
		m[s] = string(b)
	}
	return m, nil
}
