package computershare

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/cgtimport"
	"github.com/rs/zerolog"
)

// ReadTransactions reads the transactions exported in file, paired with their
// bookkeeping entries (see Balance).
//
// A missing file is not an error: it is reported on log and yields no
// transactions, so that this broker can be left out of a multi-broker run.
func ReadTransactions(file string, renames cgtimport.TickerRenames, log zerolog.Logger) ([]cgtimport.BrokerTransaction, error) {
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("broker", Broker).Str("file", file).Msg("couldn't locate Computershare transactions file")
		return []cgtimport.BrokerTransaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open Computershare transactions: %w", err)
	}
	defer f.Close()

	txs, err := Decode(f, file, renames)
	if err != nil {
		return nil, err
	}
	balanced := Balance(txs)
	log.Debug().Str("file", file).Int("rows", len(txs)).Int("transactions", len(balanced)).Msg("read Computershare transactions")
	return balanced, nil
}

// Decode reads the rows in r, skipping the header line, and converts each
// of them into a transaction. file names r in errors.
//
// The result is not balanced.
func Decode(r io.Reader, file string, renames cgtimport.TickerRenames) ([]cgtimport.BrokerTransaction, error) {
	reader := csv.NewReader(r)
	// the column count is checked per row to report it as such.
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []cgtimport.BrokerTransaction{}, nil
		}
		return nil, fmt.Errorf("failed to read CSV header of %s: %w", file, err)
	}

	txs := make([]cgtimport.BrokerTransaction, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record of %s: %w", file, err)
		}
		tx, err := NewTransaction(row, file, renames)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
