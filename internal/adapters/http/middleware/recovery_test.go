package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantLog    bool
	}{
		{
			name: "passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"columns":[]}`))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"columns":[]}`,
		},
		{
			name:       "string panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic("column index out of range") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    true,
		},
		{
			name:       "error panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic(errors.New("nil board")) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    true,
		},
		{
			name:       "non-error panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic(42) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    true,
		},
		{
			name: "panic after response started keeps status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late panic")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
			wantLog:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			rec := httptest.NewRecorder()
			middleware.Recovery(testLogger(&logs))(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/projects/3/board/moves", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := strings.Contains(logs.String(), "panic recovered"); got != tt.wantLog {
				t.Errorf("panic logged = %v, want %v; logs = %s", got, tt.wantLog, logs.String())
			}
		})
	}
}

func TestRecovery_ProblemResponse(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	handler := middleware.Recovery(testLogger(&logs))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("redis password is hunter2")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects/3/board", http.NoBody))

	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if strings.Contains(rec.Body.String(), "hunter2") {
		t.Errorf("body = %s, panic value leaked to the client", rec.Body.String())
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["title"] != "Internal Server Error" {
		t.Errorf("title = %v, want Internal Server Error", body["title"])
	}

	for _, want := range []string{"hunter2", "goroutine", "path=/api/v1/projects/3/board", "response_started=false"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q: %s", want, logs.String())
		}
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody))
	t.Error("ServeHTTP returned normally, want ErrAbortHandler to propagate")
}
