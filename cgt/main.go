// Command cgt imports broker exports into transactions for capital gains computation.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cgtimport/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	completion(commander).Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
//
// Completion is installed with COMP_INSTALL=1 cgt.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"renames":   predict.Files("*.y*ml"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"log-json":  predict.Nothing,
		},
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		sub := &complete.Command{
			Flags: map[string]complete.Predictor{},
			Args:  predict.Files("*"),
		}
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		f.VisitAll(func(fl *flag.Flag) {
			sub.Flags[fl.Name] = predict.Something
		})
		root.Sub[c.Name()] = sub
	})
	return root
}
