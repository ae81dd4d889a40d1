package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation failure. Location is prefixed
// with where the field came from: "path.", "query." or "body.".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Location prefixes understood by NewErrorResponse. Validation fields that
// carry none of them are assumed to come from the request body.
const (
	LocationPath  = "path."
	LocationQuery = "query."
	LocationBody  = "body."
)

// internalDetail replaces the message of unmapped errors so that storage
// or encoding internals never reach the client.
const internalDetail = "internal server error"

// statusFor maps error kinds to response codes; the first match wins.
var statusFor = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI; validation errors also list their fields.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := http.StatusInternalServerError
	for _, m := range statusFor {
		if errors.Is(err, m.target) {
			status = m.status
			break
		}
	}

	problem := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   internalDetail,
		Instance: r.RequestURI,
	}
	if status != http.StatusInternalServerError {
		problem.Detail = err.Error()
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		problem.Errors = fieldErrors(verr.Fields)
	}
	return problem
}

// WriteErrorResponse writes err as application/problem+json. Unmapped
// errors are logged with the request logger since the client only sees
// internalDetail.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	problem := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())

	if problem.Status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	if encErr := json.NewEncoder(w).Encode(problem); encErr != nil {
		logger.ErrorContext(r.Context(), "writing problem response", slog.Any("error", encErr))
	}
}

// fieldErrors lists validation failures sorted by location.
func fieldErrors(fields map[string]string) []ErrorDetail {
	out := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		out = append(out, ErrorDetail{Location: locate(field), Message: msg})
	}
	slices.SortFunc(out, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}

func locate(field string) string {
	for _, prefix := range []string{LocationPath, LocationQuery, LocationBody} {
		if strings.HasPrefix(field, prefix) {
			return field
		}
	}
	return LocationBody + field
}
