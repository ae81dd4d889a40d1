// Package acl is the anti-corruption layer between the board service and
// the downstream project API. It owns the HTTP round trip and the mapping
// of downstream failures onto domain errors; wire DTOs and their
// translators live in acl/project.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
)

const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers the error shapes the project API may return: RFC 9457
// problem details, or the plain {"message": ...} / {"error": ...} objects
// json-server style backends send.
type errorBody struct {
	Detail  string        `json:"detail"`
	Message string        `json:"message"`
	Error   string        `json:"error"`
	Errors  []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.Detail, b.Message, b.Error} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// TranslateHTTPError maps a non-success response from the project API to
// a domain error:
//
//	404            ErrNotFound
//	400, 422       ErrValidation (a *domain.ValidationError when fields are listed)
//	409            ErrConflict
//	401, 403       ErrForbidden
//	429, 5xx       ErrUnavailable
//
// Anything else is an unclassified error carrying the status code.
func TranslateHTTPError(resp *http.Response) error {
	body := readErrorBody(resp)

	detail := body.text()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	detail = "project api: " + detail

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%s (status %d): %w", detail, code, domain.ErrUnavailable)
	default:
		return fmt.Errorf("%s: unexpected status %d", detail, code)
	}
}

// readErrorBody decodes any JSON error body; a missing, oversized or
// non-JSON body yields the zero value.
func readErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errorBody{}
	}
	return body
}

// toValidationError keys fields by name, dropping the "body." location
// prefix.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
