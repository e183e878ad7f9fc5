package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"

	"github.com/etnz/retrofit/tui"
)

type tuiCmd struct{}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "browse the dashboard in the terminal" }
func (*tuiCmd) Usage() string {
	return `rfx tui

  Opens the dashboard full screen. tab and shift+tab move between sections,
  a shows every section, enter opens the details of the active section,
  esc closes them and q quits.
`
}

func (*tuiCmd) SetFlags(f *flag.FlagSet) {}

func (*tuiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, status := loadDashboard()
	if status != subcommands.ExitSuccess {
		return status
	}

	p := tea.NewProgram(tui.New(d), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
