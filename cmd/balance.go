package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cgtimport"
	"github.com/etnz/cgtimport/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	date string
	raw  bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display cash and positions after all transactions" }
func (*balanceCmd) Usage() string {
	return `cgt balance [-d <date>] [-raw] <file>

  Displays the cash per currency and the quantity held per symbol once every
  transaction up to the given date is applied.
  A .csv file is read as a Computershare export, anything else as JSONL.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Only apply transactions up to this date (YYYY-MM-DD).")
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	r, err := parseRange("", c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	txs, err := s.readTransactions(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(stdout, renderer.Balance(cgtimport.NewBalance(cgtimport.InRange(txs, r))), c.raw)
	return subcommands.ExitSuccess
}
