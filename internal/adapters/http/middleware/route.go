package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routePattern returns the matched chi route pattern
// (e.g. "/api/v1/projects/{id}/board"), falling back to the raw path when
// the request was not routed by chi or matched nothing. Only meaningful
// after the inner handler has run.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// projectIDParam returns the {id} URL parameter of project-scoped routes,
// or "" for routes without one.
func projectIDParam(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.URLParam("id")
	}
	return ""
}
