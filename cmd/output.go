package cmd

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/google/subcommands"

	"github.com/etnz/retrofit/renderer"
)

// Output formats of the report subcommands.
const (
	formatMarkdown = "md"
	formatTerminal = "term"
	formatHTML     = "html"
	formatJSON     = "json"
)

// printReport writes a markdown report in the requested format.
func printReport(w io.Writer, format, title, md string) subcommands.ExitStatus {
	switch format {
	case formatMarkdown:
		fmt.Fprint(w, md)
	case formatTerminal:
		printMarkdown(md)
	case formatHTML:
		page, err := renderer.HTMLPage(title, md)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(w, page)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) subcommands.ExitStatus {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
