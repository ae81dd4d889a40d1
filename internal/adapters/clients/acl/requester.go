package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/httpclient"
)

// requester runs one JSON round trip against the project API: encode,
// send through the resilient client, check the status, translate
// failures into domain errors, decode.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func newRequester(client *httpclient.Client, logger *slog.Logger) *requester {
	return &requester{client: client, logger: logger}
}

// do sends method path with reqBody JSON-encoded (nil sends no body) and
// decodes a wantStatus response into respBody (nil skips decoding). Any
// other status goes through TranslateHTTPError; transport failures and an
// open breaker wrap domain.ErrUnavailable.
func (r *requester) do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	switch {
	case err != nil && resp != nil && resp.StatusCode != wantStatus:
		// Retries exhausted on a retryable status: the body still explains it.
		return r.unexpected(ctx, req, resp, wantStatus)
	case err != nil:
		r.logger.ErrorContext(ctx, "project api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnavailable, err)
	case resp.StatusCode != wantStatus:
		return r.unexpected(ctx, req, resp, wantStatus)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// unexpected logs at warn for client errors (a missing project is routine)
// and at error for everything else.
func (r *requester) unexpected(ctx context.Context, req *http.Request, resp *http.Response, wantStatus int) error {
	level := slog.LevelError
	if resp.StatusCode < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	r.logger.Log(ctx, level, "unexpected project api status",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Int("want_status", wantStatus),
	)
	return TranslateHTTPError(resp)
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
