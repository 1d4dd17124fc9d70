package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger writing to w at the given level.
//
// An unknown level falls back to info. pretty selects the human readable
// console output, otherwise each entry is a JSON line.
func NewLogger(level string, pretty bool, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
