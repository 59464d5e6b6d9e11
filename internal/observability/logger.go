package observability

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	AppName     = "contractlock"
	logFileMode = 0o600
	logDirMode  = 0o700
)

// NewLogger writes human-readable lines to w and installs the result as the
// global zerolog logger.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	logger := zerolog.New(output).Level(lvl).With().Timestamp().Str("app", AppName).Logger()
	log.Logger = logger

	return logger, nil
}

// OpenLogFile appends to path, creating its directory. The TUI owns the
// terminal, so interactive sessions log here instead of stderr.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirMode); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}

func ParseLevel(level string) (zerolog.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(level))
	if trimmed == "" {
		return zerolog.WarnLevel, nil
	}

	lvl, err := zerolog.ParseLevel(trimmed)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return lvl, nil
}
