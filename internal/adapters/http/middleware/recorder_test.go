package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	t.Run("implicit 200 on write", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		sr := newStatusRecorder(rec)

		_, _ = sr.Write([]byte(`{"projects":[]}`))

		if sr.status != http.StatusOK || !sr.started {
			t.Errorf("status = %d started = %v, want 200 true", sr.status, sr.started)
		}
		if sr.bytes != int64(len(`{"projects":[]}`)) {
			t.Errorf("bytes = %d, want body length", sr.bytes)
		}
	})

	t.Run("first status wins", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		sr := newStatusRecorder(rec)

		sr.WriteHeader(http.StatusNoContent)
		sr.WriteHeader(http.StatusInternalServerError)

		if sr.status != http.StatusNoContent || rec.Code != http.StatusNoContent {
			t.Errorf("status = %d recorder = %d, want 204", sr.status, rec.Code)
		}
	})

	t.Run("bytes accumulate", func(t *testing.T) {
		t.Parallel()
		sr := newStatusRecorder(httptest.NewRecorder())

		_, _ = sr.Write([]byte("ab"))
		_, _ = sr.Write([]byte("cde"))

		if sr.bytes != 5 {
			t.Errorf("bytes = %d, want 5", sr.bytes)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		if newStatusRecorder(rec).Unwrap() != rec {
			t.Error("Unwrap did not return the wrapped writer")
		}
	})
}
