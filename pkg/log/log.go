// Package log configures the process-wide [log/slog] handler.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Format selects the output encoding of a handler.
type Format string

const (
	FormatText   Format = "text"
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

// CreateHandler creates a [slog.Handler] writing to w. Text and logfmt
// output is rendered by charmbracelet/log; JSON uses the stdlib handler.
//
//nolint:ireturn // Handler implementation depends on the format.
func CreateHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case FormatLogfmt:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
			Formatter:       charmlog.LogfmtFormatter,
		})
	case FormatText:
		fallthrough
	default:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmlog.Level(level),
			Formatter: charmlog.TextFormatter,
		})
	}
}

// CreateHandlerWithStrings creates a [slog.Handler] from string level and
// format values, typically sourced from CLI flags.
//
//nolint:ireturn // Handler implementation depends on the format.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	format, err := GetFormat(logFormat)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, level, format), nil
}

// GetLevel parses a [slog.Level] from a string. The fatal, panic, and
// trace aliases map onto the nearest slog level.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// GetFormat parses a [Format] from a string.
func GetFormat(format string) (Format, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return FormatText, nil
	case "logfmt":
		return FormatLogfmt, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
