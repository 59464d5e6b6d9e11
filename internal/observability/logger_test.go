package observability

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "info")
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("escrow", "7").Msg("escrow selected")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "escrow selected")
	assert.Contains(t, out, "escrow=7")
	assert.Contains(t, out, "app=contractlock")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestOpenLogFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "contractlock.log")

	file, err := OpenLogFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	_, err = file.WriteString("line\n")
	require.NoError(t, err)
}
