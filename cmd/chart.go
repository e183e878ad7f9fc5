package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/chart"
	"github.com/etnz/retrofit/renderer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	id  string
	svg bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write the chart bundle as JSON" }
func (*chartCmd) Usage() string {
	return `rfx chart [-id <chart>] [-svg]

  Writes the KPI cards and every dashboard chart as a JSON bundle, ready
  for a browser charting library. Chart ids are epc, compliance,
  confidence, cashflow and opex.

  With -svg, writes the chart selected by -id as an SVG image instead.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Write only the chart with this id.")
	f.BoolVar(&c.svg, "svg", false, "Draw the chart as an SVG image. Requires -id.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.svg && c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -svg requires -id")
		return subcommands.ExitUsageError
	}

	d, status := loadDashboard()
	if status != subcommands.ExitSuccess {
		return status
	}

	if c.svg {
		return c.printSVG(d)
	}

	b, err := chart.BuildBundle(d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building charts: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.id == "" {
		if err := b.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding charts: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	ch, ok := b.Chart(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown chart %q\n", c.id)
		return subcommands.ExitUsageError
	}
	return printJSON(os.Stdout, ch)
}

func (c *chartCmd) printSVG(d *retrofit.Dashboard) subcommands.ExitStatus {
	svg := renderer.NewSVGCharts()
	if err := chart.Adapt(d, svg); err != nil {
		fmt.Fprintf(os.Stderr, "Error drawing charts: %v\n", err)
		return subcommands.ExitFailure
	}
	img, ok := svg.Charts[c.id]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no chart %q to draw\n", c.id)
		return subcommands.ExitFailure
	}
	os.Stdout.Write(img)
	return subcommands.ExitSuccess
}
