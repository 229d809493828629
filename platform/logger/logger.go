// Package logger provides structured logging infrastructure for the
// application. This is part of the platform layer and contains no
// business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSegment returns a logger scoped to a segment name.
func (l *Logger) WithSegment(name string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("segment", name)),
	}
}

// PipelineRun logs one filter-pipeline pass over an entity list.
func (l *Logger) PipelineRun(entity string, in, out int, durationMs float64) {
	l.Info("pipeline_run",
		slog.String("entity", entity),
		slog.Int("records_in", in),
		slog.Int("records_out", out),
		slog.Float64("duration_ms", durationMs),
	)
}

// CatalogError logs a segment-catalog load failure.
func (l *Logger) CatalogError(path string, err error) {
	l.Error("catalog_error",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// QueueCounts logs the per-queue lead tallies.
func (l *Logger) QueueCounts(all, stalled, awaiting, highValue int) {
	l.Info("queue_counts",
		slog.Int("all", all),
		slog.Int("stalled", stalled),
		slog.Int("awaiting_response", awaiting),
		slog.Int("high_value", highValue),
	)
}
