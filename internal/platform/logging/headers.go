package logging

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// HeaderAttrs converts request headers into log attributes sorted by name.
// Headers in SensitiveHeaders are replaced with "[REDACTED]" before they
// reach any handler; multi-value headers are comma-joined.
func HeaderAttrs(h http.Header) []slog.Attr {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(h[name], ",")
		if SensitiveHeaders[strings.ToLower(name)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
