package renderer

import (
	"bytes"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/etnz/retrofit/chart"
)

// palette maps the color tokens of the charts to their RGB value.
var palette = map[string]string{
	"emerald-500": "10b981",
	"lime-500":    "84cc16",
	"amber-500":   "f59e0b",
	"red-500":     "ef4444",
	"rose-500":    "f43f5e",
	"teal-500":    "14b8a6",
	"slate-300":   "cbd5e1",
	"slate-400":   "94a3b8",
	"slate-700":   "334155",
}

func color(token string) drawing.Color {
	if hex, ok := palette[token]; ok {
		return drawing.ColorFromHex(hex)
	}
	return gochart.ColorAlternateGray
}

// SVGCharts is a chart.Collaborator that draws charts as SVG images. Charts
// without data to draw are left out.
type SVGCharts struct {
	Charts map[string][]byte // SVG document, by chart id
	Width  int
	Height int
}

// NewSVGCharts returns a collaborator drawing 480×320 images.
func NewSVGCharts() *SVGCharts {
	return &SVGCharts{Charts: make(map[string][]byte), Width: 480, Height: 320}
}

type svgRenderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

func (c *SVGCharts) render(id string, r svgRenderable) error {
	var buf bytes.Buffer
	if err := r.Render(gochart.SVG, &buf); err != nil {
		return fmt.Errorf("drawing chart %q: %w", id, err)
	}
	c.Charts[id] = buf.Bytes()
	return nil
}

func (c *SVGCharts) Pie(p chart.Pie) error {
	var values []gochart.Value
	for _, s := range p.Slices {
		if s.Value <= 0 {
			continue
		}
		label := s.Name + " " + s.Percentage
		values = append(values, gochart.Value{
			Label: label,
			Value: s.Value,
			Style: gochart.Style{FillColor: color(s.Color), StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 {
		return nil
	}
	return c.render(p.ID, &gochart.PieChart{
		Title:  p.Title,
		Width:  c.Width,
		Height: c.Height,
		Values: values,
	})
}

func (c *SVGCharts) Cartesian(ch chart.Cartesian) error {
	// a continuous range needs two distinct categories
	if len(ch.Rows) < 2 {
		return nil
	}

	ticks := make([]gochart.Tick, len(ch.Rows))
	for i, r := range ch.Rows {
		ticks[i] = gochart.Tick{Value: float64(i), Label: r.Category}
	}

	var bars int
	for _, s := range ch.Series {
		if s.Kind == chart.KindBar {
			bars++
		}
	}

	var series []gochart.Series
	barIndex := 0
	for _, s := range ch.Series {
		xs := make([]float64, len(ch.Rows))
		ys := make([]float64, len(ch.Rows))
		offset := 0.0
		if s.Kind == chart.KindBar {
			// side by side bars around the category tick
			offset = (float64(barIndex) - float64(bars-1)/2) * 0.3
			barIndex++
		}
		for i, r := range ch.Rows {
			xs[i] = float64(i) + offset
			ys[i] = r.Values[s.Key]
		}
		name := s.Name
		if ch.Legend != nil {
			name = ch.Legend(s)
		}
		inner := gochart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: color(s.Color), FillColor: color(s.Color), StrokeWidth: 2},
		}
		switch s.Kind {
		case chart.KindBar:
			series = append(series, gochart.HistogramSeries{Name: name, Style: inner.Style, InnerSeries: inner})
		case chart.KindLine:
			inner.Style.FillColor = drawing.ColorTransparent
			series = append(series, inner)
		default:
			return fmt.Errorf("chart %q: unknown series kind %q", ch.ID, s.Kind)
		}
	}

	graph := &gochart.Chart{
		Title:  ch.Title,
		Width:  c.Width,
		Height: c.Height,
		XAxis:  gochart.XAxis{Name: ch.CategoryKey, Ticks: ticks},
		Series: series,
	}
	if ch.Axis != nil {
		graph.YAxis.ValueFormatter = func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return ch.Axis(f)
			}
			return fmt.Sprint(v)
		}
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(graph)}
	return c.render(ch.ID, graph)
}

func (c *SVGCharts) Stacked(s chart.Stacked) error {
	if s.Empty {
		return nil
	}
	values := make([]gochart.Value, 0, len(s.Segments))
	for _, seg := range s.Segments {
		if seg.Ratio <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: seg.Name + " " + seg.Percentage,
			Value: seg.Ratio,
			Style: gochart.Style{FillColor: color(seg.Color), StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 {
		return nil
	}
	return c.render(s.ID, &gochart.StackedBarChart{
		Title:  s.Title,
		Width:  c.Width,
		Height: c.Height,
		Bars:   []gochart.StackedBar{{Name: s.Title, Values: values}},
	})
}
