package chart

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/etnz/retrofit"
)

// Bundle is a Collaborator that resolves every callback into plain strings
// and collects the charts into one JSON document, for a browser charting
// library that cannot call back into Go.
type Bundle struct {
	Currency string          `json:"currency"`
	Cards    []retrofit.Card `json:"cards"`
	Warnings []string        `json:"warnings,omitempty"`
	Charts   []BundleChart   `json:"charts"`
	Center   float64         `json:"center"` // pie centre, in both axes
}

// BundleChart is the JSON form of any chart.
type BundleChart struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"` // pie, bar, line, composed, stacked
	Title       string           `json:"title"`
	DataKey     string           `json:"dataKey,omitempty"`
	NameKey     string           `json:"nameKey,omitempty"`
	CategoryKey string           `json:"categoryKey,omitempty"`
	InnerRadius float64          `json:"innerRadius,omitempty"`
	OuterRadius float64          `json:"outerRadius,omitempty"`
	Series      []BundleSeries   `json:"series,omitempty"`
	Data        []map[string]any `json:"data"`
	Empty       bool             `json:"empty,omitempty"`
}

// BundleSeries is the JSON form of a cartesian series.
type BundleSeries struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Type   string `json:"type"`
	Legend string `json:"legend"`
}

// DefaultCenter is the pie centre of a 240×240 chart box.
const DefaultCenter = 120

// NewBundle starts a bundle with the dashboard's cards and warnings.
func NewBundle(d *retrofit.Dashboard) *Bundle {
	b := &Bundle{
		Currency: d.Currency,
		Cards:    d.Cards(),
		Charts:   []BundleChart{},
		Center:   DefaultCenter,
	}
	for _, w := range d.Warnings {
		b.Warnings = append(b.Warnings, w.String())
	}
	return b
}

// BuildBundle adapts every chart of d into a new bundle.
func BuildBundle(d *retrofit.Dashboard) (*Bundle, error) {
	b := NewBundle(d)
	if err := Adapt(d, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) Pie(p Pie) error {
	geoms := p.Geometries(b.Center, b.Center)
	data := make([]map[string]any, len(p.Slices))
	for i, s := range p.Slices {
		datum := map[string]any{
			p.NameKey: s.Name,
			p.DataKey: s.Value,
			"fill":    s.Color,
			"tooltip": s.Tooltip,
		}
		if p.Label != nil {
			l := p.Label(geoms[i], s.Percentage)
			datum["label"] = map[string]any{"x": l.X, "y": l.Y, "text": l.Text, "anchor": string(l.Anchor)}
		}
		if p.Legend != nil {
			datum["legend"] = p.Legend(s)
		}
		data[i] = datum
	}
	b.Charts = append(b.Charts, BundleChart{
		ID:          p.ID,
		Type:        "pie",
		Title:       p.Title,
		DataKey:     p.DataKey,
		NameKey:     p.NameKey,
		InnerRadius: p.InnerRadius,
		OuterRadius: p.OuterRadius,
		Data:        data,
		Empty:       len(p.Slices) == 0,
	})
	return nil
}

func (b *Bundle) Cartesian(c Cartesian) error {
	if c.CategoryKey == "" {
		return fmt.Errorf("chart %q has no category key", c.ID)
	}
	series := make([]BundleSeries, len(c.Series))
	bars, lines := 0, 0
	for i, s := range c.Series {
		legend := s.Name
		if c.Legend != nil {
			legend = c.Legend(s)
		}
		series[i] = BundleSeries{Key: s.Key, Name: s.Name, Color: s.Color, Type: string(s.Kind), Legend: legend}
		switch s.Kind {
		case KindBar:
			bars++
		case KindLine:
			lines++
		default:
			return fmt.Errorf("chart %q: unknown series kind %q", c.ID, s.Kind)
		}
	}

	data := make([]map[string]any, len(c.Rows))
	for i, r := range c.Rows {
		datum := map[string]any{c.CategoryKey: r.Category}
		tooltip := make(map[string]string, len(c.Series))
		for _, s := range c.Series {
			v := r.Values[s.Key]
			datum[s.Key] = v
			if c.Tooltip != nil {
				tooltip[s.Key] = c.Tooltip(v)
			}
		}
		datum["tooltip"] = tooltip
		data[i] = datum
	}

	kind := "composed"
	switch {
	case lines == 0:
		kind = "bar"
	case bars == 0:
		kind = "line"
	}
	b.Charts = append(b.Charts, BundleChart{
		ID:          c.ID,
		Type:        kind,
		Title:       c.Title,
		CategoryKey: c.CategoryKey,
		Series:      series,
		Data:        data,
		Empty:       len(c.Rows) == 0,
	})
	return nil
}

func (b *Bundle) Stacked(s Stacked) error {
	data := make([]map[string]any, len(s.Segments))
	for i, seg := range s.Segments {
		datum := map[string]any{
			"name":  seg.Name,
			"ratio": seg.Ratio,
			"width": seg.Percentage,
			"fill":  seg.Color,
		}
		if s.Legend != nil {
			datum["legend"] = s.Legend(seg)
		}
		data[i] = datum
	}
	b.Charts = append(b.Charts, BundleChart{
		ID:    s.ID,
		Type:  "stacked",
		Title: s.Title,
		Data:  data,
		Empty: s.Empty,
	})
	return nil
}

// Chart returns the chart with the given id.
func (b *Bundle) Chart(id string) (BundleChart, bool) {
	for _, c := range b.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return BundleChart{}, false
}

// Encode writes the bundle as indented JSON.
func (b *Bundle) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}
