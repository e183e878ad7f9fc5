package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/retrofit/renderer"
	"github.com/etnz/retrofit/view"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	format  string
	section string
	drawer  string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the retrofit dashboard" }
func (*dashboardCmd) Usage() string {
	return `rfx dashboard [-format md|html|term] [-section <section>] [-drawer <section>]

  Displays the KPI cards and every chart of the portfolio dashboard.
  -section restricts the output to one section, -drawer shows the detail
  of a section as if its drawer were open.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", formatTerminal, "Output format: md, html or term.")
	f.StringVar(&c.section, "section", "", "Section to display: overview, epc, compliance, confidence, cashflow or opex. Defaults to all.")
	f.StringVar(&c.drawer, "drawer", "", "Section whose detail drawer is open.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := c.state()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	d, status := loadDashboard()
	if status != subcommands.ExitSuccess {
		return status
	}

	md, err := renderer.RenderDashboard(d, st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	return printReport(os.Stdout, c.format, "Retrofit dashboard", md)
}

// state builds the view state selected by the flags.
func (c *dashboardCmd) state() (view.State, error) {
	var st view.State
	sec, err := view.ParseSection(c.section)
	if err != nil {
		return st, err
	}
	st = st.Activate(sec)
	if c.drawer != "" {
		drawer, err := view.ParseSection(c.drawer)
		if err != nil {
			return st, err
		}
		st = st.OpenDrawer(drawer)
	}
	return st, nil
}
