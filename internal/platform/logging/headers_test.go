package logging_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/kanban-board-service/internal/platform/logging"
)

func TestHeaderAttrs(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Set("Cookie", "session=1")
	h.Set("X-Api-Key", "k-123")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")

	attrs := logging.HeaderAttrs(h)

	want := map[string]string{
		"Accept":        "application/json,text/plain",
		"Authorization": "[REDACTED]",
		"Cookie":        "[REDACTED]",
		"X-Api-Key":     "[REDACTED]",
	}
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, a := range attrs {
		if i > 0 && attrs[i-1].Key >= a.Key {
			t.Errorf("attrs not sorted: %q before %q", attrs[i-1].Key, a.Key)
		}
		if got := a.Value.String(); got != want[a.Key] {
			t.Errorf("%s = %q, want %q", a.Key, got, want[a.Key])
		}
	}
}

func TestHeaderAttrs_Empty(t *testing.T) {
	t.Parallel()

	if attrs := logging.HeaderAttrs(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}
