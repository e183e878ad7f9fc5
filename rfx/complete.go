package main

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/retrofit/cmd"
	"github.com/etnz/retrofit/docs"
	"github.com/etnz/retrofit/view"
)

// predictors complete flag values by flag name, whatever the subcommand.
var predictors = map[string]complete.Predictor{
	"input":     predict.Files("*.json"),
	"log-level": predict.Set{"debug", "info", "warn", "error"},
	"format":    predict.Set{"md", "html", "term", "json"},
	"section":   sectionNames(),
	"drawer":    sectionNames(),
	"id":        predict.Set{"epc", "compliance", "confidence", "cashflow", "opex"},
}

func sectionNames() predict.Set {
	var names predict.Set
	for _, s := range view.Sections() {
		names = append(names, s.String())
	}
	return names
}

// completion describes the rfx command line for shell completion.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, g := range cmd.Groups {
		for _, c := range g.Commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
		}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	if topics, err := docs.List(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		if p, ok := predictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
