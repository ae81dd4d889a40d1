package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
)

func errorResponse(status int, contentType, body string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}, Body: http.NoBody}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
	}
	return resp
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	const problem = "application/problem+json"

	tests := []struct {
		name        string
		resp        *http.Response
		wantIs      error
		wantMessage string
	}{
		{"404", errorResponse(404, "", ""), domain.ErrNotFound, "project api: Not Found"},
		{"400", errorResponse(400, "", ""), domain.ErrValidation, "Bad Request"},
		{"422", errorResponse(422, "", ""), domain.ErrValidation, "Unprocessable Entity"},
		{"409", errorResponse(409, "", ""), domain.ErrConflict, "Conflict"},
		{"401", errorResponse(401, "", ""), domain.ErrForbidden, "Unauthorized"},
		{"403", errorResponse(403, "", ""), domain.ErrForbidden, "Forbidden"},
		{"429 keeps status", errorResponse(429, "", ""), domain.ErrUnavailable, "status 429"},
		{"500", errorResponse(500, "", ""), domain.ErrUnavailable, "status 500"},
		{"503", errorResponse(503, "", ""), domain.ErrUnavailable, "status 503"},
		{
			name:        "problem detail",
			resp:        errorResponse(404, problem, `{"title":"Not Found","status":404,"detail":"project 42 not found"}`),
			wantIs:      domain.ErrNotFound,
			wantMessage: "project api: project 42 not found",
		},
		{
			name:        "json-server message",
			resp:        errorResponse(409, "application/json; charset=utf-8", `{"message":"project 7 is archived"}`),
			wantIs:      domain.ErrConflict,
			wantMessage: "project api: project 7 is archived",
		},
		{
			name:        "error field",
			resp:        errorResponse(409, "application/json", `{"error":"name taken"}`),
			wantIs:      domain.ErrConflict,
			wantMessage: "project api: name taken",
		},
		{
			name:        "detail wins over message",
			resp:        errorResponse(409, "application/json", `{"detail":"from detail","message":"from message"}`),
			wantIs:      domain.ErrConflict,
			wantMessage: "project api: from detail",
		},
		{
			name:        "empty object falls back to status text",
			resp:        errorResponse(409, "application/json", `{}`),
			wantIs:      domain.ErrConflict,
			wantMessage: "project api: Conflict",
		},
		{
			name:        "html body ignored",
			resp:        errorResponse(502, "text/html", "<h1>Bad Gateway</h1>"),
			wantIs:      domain.ErrUnavailable,
			wantMessage: "project api: Bad Gateway",
		},
		{
			name:        "malformed json ignored",
			resp:        errorResponse(404, problem, `{"detail":`),
			wantIs:      domain.ErrNotFound,
			wantMessage: "project api: Not Found",
		},
		{
			name:        "nil body",
			resp:        &http.Response{StatusCode: 404, Header: http.Header{"Content-Type": {problem}}},
			wantIs:      domain.ErrNotFound,
			wantMessage: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(tt.resp)

			if !errors.Is(got, tt.wantIs) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantIs)
			}
			if !strings.Contains(got.Error(), tt.wantMessage) {
				t.Errorf("error = %q, want it to contain %q", got.Error(), tt.wantMessage)
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	resp := errorResponse(http.StatusBadRequest, "application/problem+json", `{
		"detail": "validation failed",
		"errors": [
			{"location": "body.name", "message": "is required"},
			{"location": "body.tags", "message": "must be a list"},
			{"location": "status", "message": "invalid"}
		]
	}`)

	got := TranslateHTTPError(resp)

	if !errors.Is(got, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", got)
	}
	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error = %T, want *domain.ValidationError", got)
	}

	want := map[string]string{"name": "is required", "tags": "must be a list", "status": "invalid"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", verr.Fields, want)
	}
	for field, msg := range want {
		if verr.Fields[field] != msg {
			t.Errorf("Fields[%s] = %q, want %q", field, verr.Fields[field], msg)
		}
	}
}

func TestTranslateHTTPError_UnclassifiedStatus(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(errorResponse(http.StatusTeapot, "", ""))

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict,
		domain.ErrForbidden, domain.ErrUnavailable,
	} {
		if errors.Is(got, sentinel) {
			t.Errorf("error = %v, want no domain sentinel but matched %v", got, sentinel)
		}
	}
	if !strings.Contains(got.Error(), "unexpected status 418") {
		t.Errorf("error = %q, want it to name status 418", got.Error())
	}
}
