package cgtimport

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// TickerRenames maps a raw ticker, as found in a broker export, to its
// canonical ticker.
type TickerRenames map[string]string

// Rename returns the canonical ticker for symbol, or symbol itself when no
// rename is configured.
func (r TickerRenames) Rename(symbol string) string {
	if renamed, ok := r[symbol]; ok {
		return renamed
	}
	return symbol
}

// DecodeRenames reads a renames table: a single YAML mapping of raw ticker to
// canonical ticker. JSON objects are accepted too.
func DecodeRenames(r io.Reader) (TickerRenames, error) {
	renames := make(TickerRenames)
	if err := yaml.NewDecoder(r).Decode(&renames); err != nil {
		if errors.Is(err, io.EOF) {
			return renames, nil // empty document
		}
		return nil, fmt.Errorf("cannot decode ticker renames: %w", err)
	}
	for from, to := range renames {
		if from == "" || to == "" {
			return nil, fmt.Errorf("invalid ticker rename %q -> %q: empty ticker", from, to)
		}
	}
	return renames, nil
}

// LoadRenames reads the renames table in file. An empty path or a missing file
// yields an empty table.
func LoadRenames(path string, log zerolog.Logger) (TickerRenames, error) {
	if path == "" {
		return TickerRenames{}, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", path).Msg("ticker renames file not found, no ticker will be renamed")
		return TickerRenames{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ticker renames: %w", err)
	}
	defer f.Close()
	renames, err := DecodeRenames(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("file", path).Int("count", len(renames)).Msg("loaded ticker renames")
	return renames, nil
}
