// Package logging configures the process-wide slog logger used by every
// CLI command and project operation.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/stm32pio/stm32pio/internal/settings"
)

// OpKey is the attribute key carrying the current project operation name
// ("generate", "pio init", ...). Records pad it to settings.LogFieldWidth
// so multi-project output stays columnar.
const OpKey = "op"

// Setup installs a text handler on stderr as the slog default and returns
// the logger. Verbose lowers the level to Debug, which also switches error
// attributes to their detailed form (settings.ShowTracebackThresholdLevel).
func Setup(verbose bool) *slog.Logger {
	return SetupWriter(os.Stderr, verbose)
}

// SetupWriter is Setup with an explicit destination, for tests.
func SetupWriter(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: padOp,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// padOp left-aligns the operation attribute to the configured field width.
func padOp(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == OpKey {
		a.Value = slog.StringValue(fmt.Sprintf("%-*s", settings.LogFieldWidth, a.Value.String()))
	}
	return a
}

// ErrAttr renders err for a log record. The full message is attached only
// when the logger is running at or below the traceback threshold level;
// otherwise the record carries just the first segment of the error chain.
func ErrAttr(logger *slog.Logger, err error) slog.Attr {
	if logger.Enabled(context.Background(), settings.ShowTracebackThresholdLevel) {
		return slog.Any("error", err)
	}
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx > 0 {
		msg = msg[:idx]
	}
	return slog.String("error", msg)
}
