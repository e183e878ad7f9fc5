package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/view"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	sectionCmd
	sort bool
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the retrofit cashflow projection" }
func (*cashflowCmd) Usage() string {
	return `rfx cashflow [-format md|html|term|json] [-sort]

  Displays the yearly capex, savings and cumulative position of the
  retrofit programme. Records must be in ascending year order unless -sort
  is given.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	c.sectionCmd.SetFlags(f)
	f.BoolVar(&c.sort, "sort", false, "Sort the cashflow records by year instead of rejecting unsorted input.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.name = "cashflow"
	c.section = view.Cashflow
	c.value = func(d *retrofit.Dashboard) any { return d.Cashflow }

	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.sort {
		var moved bool
		p.Cashflow, moved = retrofit.SortCashflow(p.Cashflow)
		if moved {
			log.Warn().Int("records", len(p.Cashflow)).Msg("cashflow records were not in year order, sorted")
		}
	}

	d, err := newDashboard(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.print(d)
}
