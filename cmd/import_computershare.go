package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cgtimport"
	"github.com/etnz/cgtimport/computershare"
	"github.com/google/subcommands"
)

// stdout is where commands write their result.
var stdout io.Writer = os.Stdout

type importComputershareCmd struct {
	output string
	filter string
}

func (*importComputershareCmd) Name() string { return "import-computershare" }
func (*importComputershareCmd) Synopsis() string {
	return "converts a Computershare transactions CSV export to JSONL format"
}
func (*importComputershareCmd) Usage() string {
	return `cgt import-computershare [-o <output.jsonl>] [-f <filter>] <transactions.csv>

  Reads a Computershare transactions CSV export and outputs transactions in the
  standard JSONL format, one transaction per line.

  Every purchase is preceded by the TRANSFER that funded it, and every dividend
  reinvestment by the DIVIDEND that paid for it, so that cash always balances.

  The symbol is renamed with the table given by the global -renames flag.

Usage Examples:
$ cgt import-computershare transactions.csv > transactions.jsonl
$ cgt -renames renames.yaml import-computershare -o transactions.jsonl transactions.csv
$ cgt import-computershare -f '@.action=="SELL"' transactions.csv
`
}

func (c *importComputershareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
	f.StringVar(&c.filter, "f", "", "JSONPath filter expression on each transaction, e.g. @.action==\"BUY\".")
}

func (c *importComputershareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	txs, err := computershare.ReadTransactions(f.Arg(0), s.renames, s.log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing Computershare transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.filter != "" {
		if txs, err = cgtimport.Filter(txs, c.filter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	w := stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	if err := cgtimport.EncodeTransactions(w, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		s.log.Info().Str("file", c.output).Int("transactions", len(txs)).Msg("transactions written")
	}
	return subcommands.ExitSuccess
}
