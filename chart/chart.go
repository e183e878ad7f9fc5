// Package chart adapts dashboard metrics to the shape a chart rendering
// collaborator expects: keyed series, color tokens, donut radii, and the
// label, legend and tooltip callbacks.
//
// The package performs no aggregation. Every string it produces goes
// through the retrofit formatters, and every chart is handed to a
// Collaborator, so the rendering library can be swapped without touching
// the metrics.
package chart

import "math"

// Anchor is the horizontal text anchor of a label.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// SliceGeometry locates a pie slice. Angles are in degrees, counter
// clockwise from the positive x axis; screen y grows downward.
type SliceGeometry struct {
	CX, CY      float64
	MidAngle    float64
	InnerRadius float64
	OuterRadius float64
}

// Label is a positioned piece of text.
type Label struct {
	X, Y   float64
	Text   string
	Anchor Anchor
}

// LabelFunc renders a slice label from the slice geometry and its
// precomputed percentage string.
type LabelFunc func(g SliceGeometry, percentage string) Label

// ValueFormatter renders a value, for axis ticks and tooltips.
type ValueFormatter func(v float64) string

// MidPoint returns the point half way between the inner and outer radius
// along the mid angle.
func (g SliceGeometry) MidPoint() (x, y float64) {
	r := g.InnerRadius + (g.OuterRadius-g.InnerRadius)*0.5
	rad := -g.MidAngle * math.Pi / 180
	return g.CX + r*math.Cos(rad), g.CY + r*math.Sin(rad)
}

// SliceLabel places the percentage at the slice mid point, anchored away
// from the centre.
func SliceLabel(g SliceGeometry, percentage string) Label {
	x, y := g.MidPoint()
	anchor := AnchorEnd
	if x > g.CX {
		anchor = AnchorStart
	}
	return Label{X: x, Y: y, Text: percentage, Anchor: anchor}
}

// Slice is one segment of a pie.
type Slice struct {
	Name       string
	Value      float64
	Color      string
	Percentage string // preformatted share, the label text
	Tooltip    string
}

// Pie is a donut chart.
type Pie struct {
	ID          string
	Title       string
	DataKey     string
	NameKey     string
	InnerRadius float64
	OuterRadius float64
	Slices      []Slice
	Label       LabelFunc
	Legend      func(Slice) string
}

// Geometries lays the slices out on a full circle starting at 90° (twelve
// o'clock) and going clockwise, the way donut charts are usually drawn.
func (p Pie) Geometries(cx, cy float64) []SliceGeometry {
	var total float64
	for _, s := range p.Slices {
		total += s.Value
	}
	out := make([]SliceGeometry, len(p.Slices))
	start := 90.0
	for i, s := range p.Slices {
		sweep := 0.0
		if total > 0 {
			sweep = 360 * s.Value / total
		}
		out[i] = SliceGeometry{
			CX: cx, CY: cy,
			MidAngle:    start - sweep/2,
			InnerRadius: p.InnerRadius,
			OuterRadius: p.OuterRadius,
		}
		start -= sweep
	}
	return out
}

// SeriesKind is how a cartesian series is drawn.
type SeriesKind string

const (
	KindBar  SeriesKind = "bar"
	KindLine SeriesKind = "line"
)

// Series is one keyed series of a cartesian chart.
type Series struct {
	Key   string
	Name  string
	Color string
	Kind  SeriesKind
}

// Row holds the values of every series for one category.
type Row struct {
	Category string
	Values   map[string]float64
}

// Cartesian is a bar, line or composed chart over categories.
type Cartesian struct {
	ID          string
	Title       string
	CategoryKey string
	Series      []Series
	Rows        []Row
	Axis        ValueFormatter
	Tooltip     ValueFormatter
	Legend      func(Series) string
}

// Segment is one part of a stacked bar.
type Segment struct {
	Name       string
	Ratio      float64 // 0–1, zero-width when the distribution is empty
	Color      string
	Percentage string
}

// Stacked is a single horizontal 100% bar.
type Stacked struct {
	ID       string
	Title    string
	Segments []Segment
	Empty    bool
	Legend   func(Segment) string
}

// Collaborator renders charts. Implementations translate the chart descriptions into
// whatever their rendering library needs.
type Collaborator interface {
	Pie(Pie) error
	Cartesian(Cartesian) error
	Stacked(Stacked) error
}
