package chart

import (
	"fmt"
	"strconv"

	"github.com/etnz/retrofit"
)

// Donut radii shared by every pie of the dashboard.
const (
	InnerRadius = 60
	OuterRadius = 100
)

// Series keys of the cartesian charts.
const (
	KeyCapex      = "capex"
	KeySavings    = "savings"
	KeyCumulative = "cumulative"
	KeyBefore     = "before"
	KeyAfter      = "after"
)

// Color tokens of the cartesian and stacked charts.
const (
	ColorCapex      = "rose-500"
	ColorSavings    = "emerald-500"
	ColorCumulative = "slate-700"
	ColorBefore     = "slate-400"
	ColorAfter      = "teal-500"
	ColorHigh       = "emerald-500"
	ColorMedium     = "amber-500"
	ColorLow        = "red-500"
	ColorUnknown    = "slate-300"
)

var severityColors = map[retrofit.Severity]string{
	retrofit.SeverityOK:       "emerald-500",
	retrofit.SeverityWarning:  "amber-500",
	retrofit.SeverityCritical: "red-500",
}

func currency(d *retrofit.Dashboard) ValueFormatter {
	return func(v float64) string { return retrofit.FormatCurrencyThousandsIn(v, d.Currency) }
}

func units(n int) string {
	if n == 1 {
		return "1 unit"
	}
	return strconv.Itoa(n) + " units"
}

// EPCPie is the rating band donut.
func EPCPie(agg retrofit.EPCAggregate) Pie {
	slices := make([]Slice, len(agg.Bands))
	for i, b := range agg.Bands {
		slices[i] = Slice{
			Name:       b.Label,
			Value:      float64(b.Share),
			Color:      b.Color,
			Percentage: b.Ratio().String(),
			Tooltip:    units(b.Units),
		}
	}
	return Pie{
		ID:          "epc",
		Title:       "EPC ratings",
		DataKey:     "value",
		NameKey:     "name",
		InnerRadius: InnerRadius,
		OuterRadius: OuterRadius,
		Slices:      slices,
		Label:       SliceLabel,
		Legend:      pieLegend,
	}
}

// CompliancePie is the compliance tier donut, colored by severity.
func CompliancePie(tiers []retrofit.ComplianceTier) Pie {
	slices := make([]Slice, len(tiers))
	for i, t := range tiers {
		slices[i] = Slice{
			Name:       t.Name,
			Value:      float64(t.Share),
			Color:      severityColors[t.Severity],
			Percentage: t.Share.Ratio().String(),
			Tooltip:    units(t.Units),
		}
	}
	return Pie{
		ID:          "compliance",
		Title:       "Compliance",
		DataKey:     "value",
		NameKey:     "name",
		InnerRadius: InnerRadius,
		OuterRadius: OuterRadius,
		Slices:      slices,
		Label:       SliceLabel,
		Legend:      pieLegend,
	}
}

func pieLegend(s Slice) string { return fmt.Sprintf("%s (%s)", s.Name, s.Percentage) }

// ConfidenceBar is the data confidence stacked bar. An empty distribution
// gives zero-width segments.
func ConfidenceBar(c retrofit.ConfidenceShares) Stacked {
	segment := func(name string, r retrofit.Ratio, color string) Segment {
		return Segment{Name: name, Ratio: float64(r), Color: color, Percentage: r.String()}
	}
	return Stacked{
		ID:    "confidence",
		Title: "Data confidence",
		Segments: []Segment{
			segment("High", c.High, ColorHigh),
			segment("Medium", c.Medium, ColorMedium),
			segment("Low", c.Low, ColorLow),
			segment("Unclassified", c.Unclassified, ColorUnknown),
		},
		Empty:  c.Empty,
		Legend: func(s Segment) string { return s.Name + " " + s.Percentage },
	}
}

// CashflowComposed shows yearly capex and savings as bars and the
// cumulative position as a line.
func CashflowComposed(d *retrofit.Dashboard) Cartesian {
	rows := make([]Row, len(d.Cashflow))
	for i, r := range d.Cashflow {
		rows[i] = Row{
			Category: strconv.Itoa(r.Year),
			Values: map[string]float64{
				KeyCapex:      r.Capex.Float(),
				KeySavings:    r.Savings.Float(),
				KeyCumulative: r.CumulativeOrZero().Float(),
			},
		}
	}
	return Cartesian{
		ID:          "cashflow",
		Title:       "Cashflow projection",
		CategoryKey: "year",
		Series: []Series{
			{Key: KeyCapex, Name: "Capex", Color: ColorCapex, Kind: KindBar},
			{Key: KeySavings, Name: "Savings", Color: ColorSavings, Kind: KindBar},
			{Key: KeyCumulative, Name: "Cumulative", Color: ColorCumulative, Kind: KindLine},
		},
		Rows:    rows,
		Axis:    currency(d),
		Tooltip: currency(d),
		Legend:  func(s Series) string { return s.Name },
	}
}

// OpexGrouped compares each expense category before and after retrofit.
func OpexGrouped(d *retrofit.Dashboard) Cartesian {
	rows := make([]Row, len(d.Opex.Categories))
	for i, c := range d.Opex.Categories {
		rows[i] = Row{
			Category: c.Category,
			Values: map[string]float64{
				KeyBefore: c.Before.Float(),
				KeyAfter:  c.After.Float(),
			},
		}
	}
	money := currency(d)
	return Cartesian{
		ID:          "opex",
		Title:       "Operating expenses",
		CategoryKey: "category",
		Series: []Series{
			{Key: KeyBefore, Name: "Before", Color: ColorBefore, Kind: KindBar},
			{Key: KeyAfter, Name: "After", Color: ColorAfter, Kind: KindBar},
		},
		Rows:    rows,
		Axis:    money,
		Tooltip: money,
		Legend: func(s Series) string {
			switch s.Key {
			case KeyBefore:
				return fmt.Sprintf("%s (%s)", s.Name, d.Money(d.Opex.TotalBefore))
			case KeyAfter:
				return fmt.Sprintf("%s (%s)", s.Name, d.Money(d.Opex.TotalAfter))
			}
			return s.Name
		},
	}
}

// Adapt hands every chart of the dashboard to c, in display order.
func Adapt(d *retrofit.Dashboard, c Collaborator) error {
	if err := c.Pie(EPCPie(d.EPC)); err != nil {
		return fmt.Errorf("epc chart: %w", err)
	}
	if err := c.Pie(CompliancePie(d.Compliance)); err != nil {
		return fmt.Errorf("compliance chart: %w", err)
	}
	if err := c.Stacked(ConfidenceBar(d.Confidence)); err != nil {
		return fmt.Errorf("confidence chart: %w", err)
	}
	if err := c.Cartesian(CashflowComposed(d)); err != nil {
		return fmt.Errorf("cashflow chart: %w", err)
	}
	if err := c.Cartesian(OpexGrouped(d)); err != nil {
		return fmt.Errorf("opex chart: %w", err)
	}
	return nil
}
