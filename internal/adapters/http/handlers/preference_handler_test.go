package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/mocks"
)

func newPreferenceHandler(t *testing.T) (*handlers.PreferenceHandler, *mocks.MockPreferenceService) {
	t.Helper()
	svc := mocks.NewMockPreferenceService(t)
	return handlers.NewPreferenceHandler(svc), svc
}

func TestGetTheme(t *testing.T) {
	t.Parallel()
	h, svc := newPreferenceHandler(t)

	svc.EXPECT().Theme(mock.Anything).Return(preference.ThemeDark, nil)

	rec := httptest.NewRecorder()
	h.GetTheme(rec, httptest.NewRequest(http.MethodGet, "/api/v1/preferences/theme", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ThemeResponse](t, rec); resp.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", resp.Theme)
	}
}

func TestSetTheme_Success(t *testing.T) {
	t.Parallel()
	h, svc := newPreferenceHandler(t)

	svc.EXPECT().SetTheme(mock.Anything, preference.ThemeLight).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/theme", jsonBody(t, dto.ThemeRequest{Theme: "light"}))
	h.SetTheme(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ThemeResponse](t, rec); resp.Theme != "light" {
		t.Errorf("Theme = %q, want light", resp.Theme)
	}
}

func TestSetTheme_Invalid(t *testing.T) {
	t.Parallel()
	h, _ := newPreferenceHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/theme", jsonBody(t, dto.ThemeRequest{Theme: "sepia"}))
	h.SetTheme(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestToggleTheme(t *testing.T) {
	t.Parallel()
	h, svc := newPreferenceHandler(t)

	svc.EXPECT().ToggleTheme(mock.Anything).Return(preference.ThemeLight, nil)

	rec := httptest.NewRecorder()
	h.ToggleTheme(rec, httptest.NewRequest(http.MethodPost, "/api/v1/preferences/theme/toggle", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ThemeResponse](t, rec); resp.Theme != "light" {
		t.Errorf("Theme = %q, want light", resp.Theme)
	}
}

func TestToggleTheme_StoreError(t *testing.T) {
	t.Parallel()
	h, svc := newPreferenceHandler(t)

	svc.EXPECT().ToggleTheme(mock.Anything).Return("", domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	h.ToggleTheme(rec, httptest.NewRequest(http.MethodPost, "/api/v1/preferences/theme/toggle", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}
