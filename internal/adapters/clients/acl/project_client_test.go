package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string, maxFailures int) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   maxFailures,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "project-api", nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newProjectClient(t *testing.T, h http.HandlerFunc) *ProjectClient {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewProjectClient(newTestClient(t, ts.URL, 5), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

// readName decodes the {name} request body.
func readName(t *testing.T, r *http.Request) string {
	t.Helper()

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Errorf("decoding request body: %v", err)
	}
	return body.Name
}

func TestProjectClient_List(t *testing.T) {
	t.Parallel()

	client := newProjectClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/projects" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 2, "name": "Blog"},
			{"id": 1, "name": "Portfolio VR"},
		})
	})

	got, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].Name != "Portfolio VR" {
		t.Errorf("List() = %+v, want downstream order [2 Blog, 1 Portfolio VR]", got)
	}
}

func TestProjectClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		client := newProjectClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/projects/7" {
				t.Errorf("path = %s, want /projects/7", r.URL.Path)
			}
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 7, "name": "Blog"})
		})

		got, err := client.Get(context.Background(), 7)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.ID != 7 || got.Name != "Blog" {
			t.Errorf("Get() = %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		client := newProjectClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, map[string]any{})
		})

		if _, err := client.Get(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})
}

func TestProjectClient_Create(t *testing.T) {
	t.Parallel()

	client := newProjectClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/projects" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		name := readName(t, r)
		writeJSON(t, w, http.StatusCreated, map[string]any{"id": 3, "name": name})
	})

	got, err := client.Create(context.Background(), "  Site e-commerce ")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != 3 || got.Name != "Site e-commerce" {
		t.Errorf("Create() = %+v, want {3 Site e-commerce}", got)
	}
}

func TestProjectClient_Rename(t *testing.T) {
	t.Parallel()

	client := newProjectClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/projects/4" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 4, "name": readName(t, r)})
	})

	got, err := client.Rename(context.Background(), 4, "Renamed")
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Rename().Name = %q, want Renamed", got.Name)
	}
}

func TestProjectClient_Remove(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		client := newProjectClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete || r.URL.Path != "/projects/5" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			writeJSON(t, w, http.StatusOK, map[string]any{})
		})

		if err := client.Remove(context.Background(), 5); err != nil {
			t.Errorf("Remove() error = %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		client := newProjectClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		if err := client.Remove(context.Background(), 5); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Remove() error = %v, want ErrNotFound", err)
		}
	})
}

func TestProjectClient_Duplicate(t *testing.T) {
	t.Parallel()

	t.Run("creates copy with suffixed name", func(t *testing.T) {
		t.Parallel()
		client := newProjectClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/projects/1":
				writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "name": "Blog"})
			case r.Method == http.MethodPost && r.URL.Path == "/projects":
				writeJSON(t, w, http.StatusCreated, map[string]any{"id": 9, "name": readName(t, r)})
			default:
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
		})

		got, err := client.Duplicate(context.Background(), 1)
		if err != nil {
			t.Fatalf("Duplicate() error = %v", err)
		}
		if got.ID != 9 || got.Name != "Blog (copy)" {
			t.Errorf("Duplicate() = %+v, want {9 Blog (copy)}", got)
		}
	})

	t.Run("missing original creates nothing", func(t *testing.T) {
		t.Parallel()
		var posts atomic.Int32
		client := newProjectClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				posts.Add(1)
			}
			w.WriteHeader(http.StatusNotFound)
		})

		if _, err := client.Duplicate(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Duplicate() error = %v, want ErrNotFound", err)
		}
		if posts.Load() != 0 {
			t.Errorf("POST count = %d, want 0", posts.Load())
		}
	})
}

func TestProjectClient_DownstreamFailure(t *testing.T) {
	t.Parallel()

	client := newProjectClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := client.List(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("List() error = %v, want ErrUnavailable", err)
	}
}

func TestProjectClient_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := NewProjectClient(newTestClient(t, url, 5), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if _, err := client.List(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("List() error = %v, want ErrUnavailable", err)
	}
}

func TestProjectClient_HealthCheck(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	client := NewProjectClient(newTestClient(t, ts.URL, 1), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if client.Name() != "project-api" {
		t.Errorf("Name() = %q, want project-api", client.Name())
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() with closed breaker = %v, want nil", err)
	}

	// One failure trips the breaker with MaxFailures=1.
	_, _ = client.List(context.Background())

	if err := client.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() with open breaker = nil, want error")
	}
}
