// Package cmd implements the rfx command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/logger"
)

// Group is a named set of subcommands, as listed by the help command.
type Group struct {
	Name     string
	Commands []subcommands.Command
}

// Groups lists every rfx subcommand.
var Groups = []Group{
	{"reports", []subcommands.Command{&dashboardCmd{}, &chartCmd{}, &tuiCmd{}}},
	{"metrics", []subcommands.Command{
		newEPCCmd(),
		newComplianceCmd(),
		newConfidenceCmd(),
		&cashflowCmd{},
		newOpexCmd(),
	}},
	{"server", []subcommands.Command{&serveCmd{}}},
	{"documentation", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range Groups {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Name)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inputFile = flag.String("input", "", "Path to a portfolio JSON document. Defaults to $RFX_INPUT, then to the built-in sample portfolio.")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error. Defaults to $RFX_LOG_LEVEL, then info.")
var logPretty = flag.Bool("log-pretty", false, "Write human readable logs to stderr instead of JSON.")

// Setup configures the global logger from the command line flags. It must
// be called after the flags are parsed.
func Setup() {
	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  envOr(*logLevel, "RFX_LOG_LEVEL", "info"),
		Pretty: *logPretty,
	}))
}

// envOr returns v, or the environment variable key when v is empty, or def.
func envOr(v, key, def string) string {
	if v != "" {
		return v
	}
	if e := os.Getenv(key); e != "" {
		return e
	}
	return def
}

// loadPortfolio decodes the input document, or returns the sample portfolio
// when no input is configured.
func loadPortfolio() (retrofit.Portfolio, error) {
	name := envOr(*inputFile, "RFX_INPUT", "")
	if name == "" {
		log.Debug().Msg("no input document, using the sample portfolio")
		return retrofit.SamplePortfolio(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return retrofit.Portfolio{}, err
	}
	defer f.Close()

	p, err := retrofit.DecodePortfolio(f, retrofit.DefaultSelectors())
	if err != nil {
		return retrofit.Portfolio{}, fmt.Errorf("reading %q: %w", name, err)
	}
	log.Debug().Str("input", name).Int("bands", len(p.EPC)).Int("years", len(p.Cashflow)).Msg("portfolio loaded")
	return p, nil
}

// newDashboard aggregates p and logs its degenerate datasets.
func newDashboard(p retrofit.Portfolio) (*retrofit.Dashboard, error) {
	d, err := retrofit.NewDashboard(p)
	if err != nil {
		return nil, err
	}
	for _, w := range d.Warnings {
		log.Warn().Str("subject", w.Subject).Msg(w.Reason)
	}
	return d, nil
}

// loadDashboard loads the input portfolio and aggregates it.
func loadDashboard() (*retrofit.Dashboard, subcommands.ExitStatus) {
	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	d, err := newDashboard(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dashboard: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return d, subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Debug().Err(err).Msg("terminal rendering failed")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
