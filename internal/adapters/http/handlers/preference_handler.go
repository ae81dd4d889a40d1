package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

// PreferenceHandler handles HTTP requests for UI preferences.
type PreferenceHandler struct {
	svc ports.PreferenceService
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(svc ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

// GetTheme handles GET /api/v1/preferences/theme.
func (h *PreferenceHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.Theme(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToThemeResponse(theme))
}

// SetTheme handles PUT /api/v1/preferences/theme.
func (h *PreferenceHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req dto.ThemeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	theme := preference.Theme(req.Theme)
	if err := h.svc.SetTheme(r.Context(), theme); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToThemeResponse(theme))
}

// ToggleTheme handles POST /api/v1/preferences/theme/toggle.
func (h *PreferenceHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.ToggleTheme(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToThemeResponse(theme))
}
