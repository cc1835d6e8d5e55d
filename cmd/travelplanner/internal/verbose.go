package internal

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var verboseEnabled atomic.Bool

// SetVerbose toggles global verbose mode for the CLI process.
func SetVerbose(enabled bool) {
	verboseEnabled.Store(enabled)
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	return verboseEnabled.Load()
}

// SetupLogging installs the default slog logger according to the configured
// level and format. Verbose mode forces debug level; quiet mode discards
// everything below error.
func SetupLogging(level, format string, verbose, quiet bool) *slog.Logger {
	slogLevel := parseLevel(level)
	if verbose {
		slogLevel = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	if quiet {
		slogLevel = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
