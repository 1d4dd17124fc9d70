// Package cmd implements the CLI application to import broker exports.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cgtimport"
	"github.com/etnz/cgtimport/computershare"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands, in the order they are registered.
var Commands = []subcommands.Command{
	&importComputershareCmd{},
	&txCmd{},
	&balanceCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		group := "transactions"
		if cmd.Name() == "topic" {
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var renamesFile = flag.String("renames", "", "Path to the ticker renames file (YAML or JSON). Defaults to $CGT_RENAMES.")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error. Defaults to $CGT_LOG_LEVEL, then info.")
var logJSON = flag.Bool("log-json", false, "Write logs as JSON lines instead of console text.")

// session holds what every command needs once the global configuration is resolved.
type session struct {
	log     zerolog.Logger
	renames cgtimport.TickerRenames
}

// newSession resolves the configuration and loads the ticker renames.
func newSession() (*session, error) {
	cfg := LoadConfig()
	log := NewLogger(cfg.LogLevel, !cfg.LogJSON, os.Stderr)
	renames, err := cgtimport.LoadRenames(cfg.RenamesFile, log)
	if err != nil {
		return nil, err
	}
	return &session{log: log, renames: renames}, nil
}

// readTransactions reads transactions from file.
//
// A ".csv" file is read as a Computershare export, anything else as JSONL.
func (s *session) readTransactions(file string) ([]cgtimport.BrokerTransaction, error) {
	if strings.EqualFold(filepath.Ext(file), ".csv") {
		return computershare.ReadTransactions(file, s.renames, s.log)
	}
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("transactions file %q does not exist", file)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file: %w", err)
	}
	defer f.Close()
	txs, err := cgtimport.DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", file, err)
	}
	s.log.Debug().Str("file", file).Int("transactions", len(txs)).Msg("read transactions")
	return txs, nil
}

// printMarkdown writes md to w, styled for the terminal unless raw is set.
func printMarkdown(w io.Writer, md string, raw bool) {
	if raw {
		fmt.Fprint(w, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// unstyled markdown is still readable.
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
