package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	critical map[string]bool
}

// NewHealthHandler creates a HealthHandler. Failures of the named critical
// checks make the service not ready; other failures only degrade it. With
// no names given, every check is critical.
func NewHealthHandler(registry ports.HealthRegistry, critical ...string) *HealthHandler {
	h := &HealthHandler{registry: registry}
	if len(critical) > 0 {
		h.critical = make(map[string]bool, len(critical))
		for _, name := range critical {
			h.critical[name] = true
		}
	}
	return h
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 "ready" when every check passes,
// 200 "degraded" when only non-critical checks fail (boards stay usable
// while the project API is down), 503 "not_ready" otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.HealthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK

	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		if h.isCritical(name) {
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		} else if resp.Status == statusReady {
			resp.Status = statusDegraded
		}
	}

	writeJSON(w, code, resp)
}

func (h *HealthHandler) isCritical(name string) bool {
	return h.critical == nil || h.critical[name]
}
