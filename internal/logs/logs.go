// Package logs configures the process-wide structured logger for the
// driver. The parser core never logs; only the driver and the internal
// packages go through slog.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
}

// Setup installs the default logger: a stderr text handler at Warn, or
// Debug when verbose, optionally fanned out with a log file that always
// receives the full debug-level stream.
func Setup(verbose bool, logFile string) error {
	if verbose {
		level.Set(slog.LevelDebug)
	}
	var file io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		file = f
	}
	slog.SetDefault(slog.New(newHandler(os.Stderr, file)))
	return nil
}

// newHandler fans records out to the console at the configured level and,
// when file is non-nil, to a debug-level file sink.
func newHandler(console, file io.Writer) slog.Handler {
	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}),
	}
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slogmulti.Fanout(handlers...)
}
