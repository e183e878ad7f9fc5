package renderer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/retrofit/chart"
)

const noData = "_No data._\n"

// TextCharts is a chart.Collaborator that draws charts as markdown tables
// with block character bars.
type TextCharts struct {
	Charts map[string]string // markdown, by chart id
	Width  int               // width of a full bar, in characters
}

// NewTextCharts returns a collaborator with 20 character bars.
func NewTextCharts() *TextCharts {
	return &TextCharts{Charts: make(map[string]string), Width: 20}
}

func (c *TextCharts) put(id string, b *strings.Builder) {
	if b.Len() == 0 {
		c.Charts[id] = noData
		return
	}
	c.Charts[id] = b.String()
}

func (c *TextCharts) Pie(p chart.Pie) error {
	var total float64
	for _, s := range p.Slices {
		total += s.Value
	}
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| | Share | Detail | |")
		fmt.Fprintln(w, "|:---|---:|---:|:---|")
		for _, s := range p.Slices {
			ratio := 0.0
			if total > 0 {
				ratio = s.Value / total
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", cell(s.Name), s.Percentage, cell(s.Tooltip), bar(ratio, c.Width))
		}
		return total > 0
	})
	c.put(p.ID, &b)
	return nil
}

func (c *TextCharts) Cartesian(ch chart.Cartesian) error {
	format := ch.Tooltip
	if format == nil {
		format = func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	}
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		header := []string{ch.CategoryKey}
		align := []string{":---"}
		for _, s := range ch.Series {
			name := s.Name
			if ch.Legend != nil {
				name = ch.Legend(s)
			}
			header = append(header, cell(name))
			align = append(align, "---:")
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | "))
		fmt.Fprintf(w, "|%s|\n", strings.Join(align, "|"))
		for _, r := range ch.Rows {
			row := []string{cell(r.Category)}
			for _, s := range ch.Series {
				row = append(row, format(r.Values[s.Key]))
			}
			fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
		}
		return len(ch.Rows) > 0
	})
	c.put(ch.ID, &b)
	return nil
}

func (c *TextCharts) Stacked(s chart.Stacked) error {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| | Share | |")
		fmt.Fprintln(w, "|:---|---:|:---|")
		for _, seg := range s.Segments {
			fmt.Fprintf(w, "| %s | %s | %s |\n", cell(seg.Name), seg.Percentage, bar(seg.Ratio, c.Width))
		}
		return !s.Empty
	})
	c.put(s.ID, &b)
	return nil
}
