package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/telemetry"
)

// These tests swap the global tracer provider and do not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exp
}

// tracedRouter serves pattern with status behind the OpenTelemetry
// middleware.
func tracedRouter(metrics *telemetry.Metrics, pattern string, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func spanAttrs(s tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(s.Attributes))
	for _, kv := range s.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_ServerSpan(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		pattern     string
		target      string
		status      int
		wantName    string
		wantProject string
		wantError   bool
	}{
		{
			name:        "board read",
			method:      http.MethodGet,
			pattern:     "/api/v1/projects/{id}/board",
			target:      "/api/v1/projects/42/board",
			status:      http.StatusOK,
			wantName:    "HTTP GET /api/v1/projects/{id}/board",
			wantProject: "42",
		},
		{
			name:     "project list has no project id",
			method:   http.MethodPost,
			pattern:  "/api/v1/projects",
			target:   "/api/v1/projects",
			status:   http.StatusCreated,
			wantName: "HTTP POST /api/v1/projects",
		},
		{
			name:        "client error is not a span error",
			method:      http.MethodPost,
			pattern:     "/api/v1/projects/{id}/board/moves",
			target:      "/api/v1/projects/7/board/moves",
			status:      http.StatusBadRequest,
			wantName:    "HTTP POST /api/v1/projects/{id}/board/moves",
			wantProject: "7",
		},
		{
			name:      "upstream failure marks the span",
			method:    http.MethodGet,
			pattern:   "/api/v1/projects",
			target:    "/api/v1/projects",
			status:    http.StatusBadGateway,
			wantName:  "HTTP GET /api/v1/projects",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := installTracer(t)

			tracedRouter(nil, tt.pattern, tt.status).
				ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, http.NoBody))

			spans := exp.GetSpans()
			if len(spans) != 1 {
				t.Fatalf("recorded %d spans, want 1", len(spans))
			}
			span := spans[0]
			if span.Name != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tt.wantName)
			}

			attrs := spanAttrs(span)
			if got := attrs["http.route"].AsString(); got != tt.pattern {
				t.Errorf("http.route = %q, want %q", got, tt.pattern)
			}
			if got := attrs["url.path"].AsString(); got != tt.target {
				t.Errorf("url.path = %q, want %q", got, tt.target)
			}
			if got := attrs["http.request.method"].AsString(); got != tt.method {
				t.Errorf("http.request.method = %q, want %q", got, tt.method)
			}
			if got := attrs["http.response.status_code"].AsInt64(); got != int64(tt.status) {
				t.Errorf("http.response.status_code = %d, want %d", got, tt.status)
			}
			if got := attrs["kanban.project_id"].AsString(); got != tt.wantProject {
				t.Errorf("kanban.project_id = %q, want %q", got, tt.wantProject)
			}
			if isErr := span.Status.Code == codes.Error; isErr != tt.wantError {
				t.Errorf("span error = %v, want %v", isErr, tt.wantError)
			}
		})
	}
}

func TestOpenTelemetry_UnroutedKeepsPath(t *testing.T) {
	exp := installTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	spans := exp.GetSpans()
	if len(spans) != 1 || spans[0].Name != "HTTP GET /metrics" {
		t.Fatalf("spans = %+v, want one named HTTP GET /metrics", spans)
	}
}

func TestOpenTelemetry_ContinuesCallerTrace(t *testing.T) {
	exp := installTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	tracedRouter(nil, "/api/v1/projects", http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace id = %s, want caller's %s", got, traceID)
	}
	if !spans[0].Parent.IsRemote() {
		t.Error("parent span context is not marked remote")
	}
}

func TestOpenTelemetry_RecordsRequestMetrics(t *testing.T) {
	installTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	h := tracedRouter(metrics, "/api/v1/projects/{id}/board", http.StatusOK)
	for _, target := range []string{"/api/v1/projects/1/board", "/api/v1/projects/2/board"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s data is %T, want Sum[int64]", m.Name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				if route.AsString() != "/api/v1/projects/{id}/board" || result.AsString() != "success" {
					t.Errorf("data point attrs = %v, want route pattern and success", dp.Attributes.ToSlice())
				}
				total += dp.Value
			}
		}
	}
	if total != 2 {
		t.Errorf("http.server.request.total = %d, want 2", total)
	}
}
