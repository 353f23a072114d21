package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/contre95/audiorename/src/features/config"
	"github.com/google/uuid"
)

func SetupLogger(cfg *config.Manager) *slog.Logger {
	return newLogger(os.Stderr, cfg.Get().Logger)
}

func newLogger(w io.Writer, cfg config.Logger) *slog.Logger {
	if !cfg.Enabled {
		w = io.Discard
	}

	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "text":
		formatter = log.TextFormatter
	default:
		formatter = log.LogfmtFormatter
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "info":
		level = log.InfoLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "audiorename",
		Formatter:       formatter,
		Level:           level,
	})

	return slog.New(handler)
}

// WithRun tags every record of logger with a fresh run id.
func WithRun(logger *slog.Logger) (*slog.Logger, string) {
	runID := uuid.New().String()
	return logger.With("run_id", runID), runID
}
