// Package logging builds the service's slog logger and carries
// request-scoped loggers through context.
//
//	logger := logging.New("info", "json", os.Stderr, slog.String("service", "kanban-board-service"))
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "task moved", slog.Int64("project_id", pid))
//
// Application services log failures with the operation, the ids involved
// and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to save board",
//	    slog.String("operation", "MoveTask"),
//	    slog.Int64("project_id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler redacts credentials (see SensitiveHeaders) before output.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, anything else means info); format "text" selects
// the text handler and anything else JSON. Debug level adds source
// locations. attrs are attached to every record.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}

	var h slog.Handler
	switch format {
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		h = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		h = h.WithAttrs(attrs)
	}
	return slog.New(h)
}

// ParseLevel maps a configured level name to a slog.Level, falling back to
// info for anything slog does not recognize.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
