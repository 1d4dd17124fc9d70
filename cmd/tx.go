package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/cgtimport"
	"github.com/etnz/cgtimport/date"
	"github.com/etnz/cgtimport/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	filter string
	start  string
	date   string
	head   int
	tail   int
	raw    bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions from a CSV export or a JSONL file" }
func (*txCmd) Usage() string {
	return `cgt tx [-s <start_date>] [-d <end_date>] [-f <filter>] [-head <n>] [-tail <n>] [-raw] <file>

  Lists transactions, with options for filtering and limiting the output.
  A .csv file is read as a Computershare export, anything else as JSONL.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "The start date of the range (YYYY-MM-DD).")
	f.StringVar(&p.date, "d", "", "The end date of the range (YYYY-MM-DD).")
	f.StringVar(&p.filter, "f", "", "JSONPath filter expression on each transaction, e.g. @.symbol==\"ACME\".")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
	f.BoolVar(&p.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	periodRange, err := parseRange(p.start, p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	file := f.Arg(0)
	transactions, err := s.readTransactions(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	transactions = cgtimport.InRange(transactions, periodRange)
	if p.filter != "" {
		if transactions, err = cgtimport.Filter(transactions, p.filter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	title := filepath.Base(file)
	if !periodRange.IsOpen() {
		title += ", " + periodRange.String()
	}
	printMarkdown(stdout, renderer.Transactions(title, transactions), p.raw)
	return subcommands.ExitSuccess
}

// parseRange parses the optional start and end dates of a range.
func parseRange(start, end string) (date.Range, error) {
	var r date.Range
	var err error
	if start != "" {
		if r.From, err = date.Parse(start); err != nil {
			return r, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if end != "" {
		if r.To, err = date.Parse(end); err != nil {
			return r, fmt.Errorf("invalid end date: %w", err)
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, fmt.Errorf("end date %s is before start date %s", r.To, r.From)
	}
	return r, nil
}
