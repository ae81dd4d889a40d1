package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/kanban-board-service/internal/platform/logging"
)

// Logging attaches a request-scoped logger (request and correlation IDs
// pre-bound) to the context and logs each request's start and completion.
// Completion carries the matched route and, for project routes, the
// project id. Headers are logged at debug level with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", logging.HeaderAttrs(r.Header)...)
			}

			sr := newStatusRecorder(w)
			routed := r.WithContext(ctx)
			next.ServeHTTP(sr, routed)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(routed)),
				slog.Int("status", sr.status),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if pid := projectIDParam(routed); pid != "" {
				attrs = append(attrs, slog.String("project_id", pid))
			}

			level := slog.LevelInfo
			if sr.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.LogAttrs(ctx, level, "request completed", attrs...)
		})
	}
}
