package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/renderer"
	"github.com/etnz/retrofit/view"
)

// sectionCmd prints one dashboard section, as a report or as the raw
// aggregate in JSON.
type sectionCmd struct {
	name     string
	synopsis string
	section  view.Section
	value    func(*retrofit.Dashboard) any

	format string
}

func newEPCCmd() *sectionCmd {
	return &sectionCmd{
		name:     "epc",
		synopsis: "display the EPC rating distribution",
		section:  view.EPC,
		value:    func(d *retrofit.Dashboard) any { return d.EPC },
	}
}

func newComplianceCmd() *sectionCmd {
	return &sectionCmd{
		name:     "compliance",
		synopsis: "display the compliance tiers",
		section:  view.Compliance,
		value:    func(d *retrofit.Dashboard) any { return d.Compliance },
	}
}

func newConfidenceCmd() *sectionCmd {
	return &sectionCmd{
		name:     "confidence",
		synopsis: "display the data confidence shares",
		section:  view.Confidence,
		value:    func(d *retrofit.Dashboard) any { return d.Confidence },
	}
}

func newOpexCmd() *sectionCmd {
	return &sectionCmd{
		name:     "opex",
		synopsis: "display the operating expenses before and after retrofit",
		section:  view.Opex,
		value:    func(d *retrofit.Dashboard) any { return d.Opex },
	}
}

func (c *sectionCmd) Name() string     { return c.name }
func (c *sectionCmd) Synopsis() string { return c.synopsis }
func (c *sectionCmd) Usage() string {
	return fmt.Sprintf(`rfx %s [-format md|html|term|json]

  %s.
`, c.name, upperFirst(c.synopsis))
}

func (c *sectionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", formatTerminal, "Output format: md, html, term or json.")
}

func (c *sectionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, status := loadDashboard()
	if status != subcommands.ExitSuccess {
		return status
	}
	return c.print(d)
}

func (c *sectionCmd) print(d *retrofit.Dashboard) subcommands.ExitStatus {
	if c.format == formatJSON {
		return printJSON(os.Stdout, c.value(d))
	}
	md, err := renderer.RenderDashboard(d, view.State{}.Activate(c.section))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", c.name, err)
		return subcommands.ExitFailure
	}
	return printReport(os.Stdout, c.format, "Retrofit dashboard", md)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
