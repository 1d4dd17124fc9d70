package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CGT_RENAMES", "renames.yaml")
	t.Setenv("CGT_LOG_LEVEL", "debug")
	t.Setenv("CGT_LOG_JSON", "yes")

	cfg := LoadConfig()
	assert.Equal(t, Config{RenamesFile: "renames.yaml", LogLevel: "debug", LogJSON: true}, cfg)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CGT_RENAMES", "")
	t.Setenv("CGT_LOG_LEVEL", "")
	t.Setenv("CGT_LOG_JSON", "")

	cfg := LoadConfig()
	assert.Equal(t, Config{LogLevel: "info"}, cfg)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	t.Setenv("CGT_RENAMES", "env.yaml")
	old := *renamesFile
	*renamesFile = "flag.yaml"
	t.Cleanup(func() { *renamesFile = old })

	assert.Equal(t, "flag.yaml", LoadConfig().RenamesFile)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("warn", false, &buf)
	log.Info().Msg("hidden")
	log.Warn().Str("file", "a.csv").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[0], `"file":"a.csv"`)
	assert.Contains(t, lines[0], `"message":"shown"`)
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("chatty", false, &buf)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("info", true, &buf)
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}
