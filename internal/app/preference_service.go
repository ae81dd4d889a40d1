package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

// Compile-time check that PreferenceService implements ports.PreferenceService.
var _ ports.PreferenceService = (*PreferenceService)(nil)

// PreferenceService implements ports.PreferenceService.
type PreferenceService struct {
	store  ports.PreferenceStore
	logger *slog.Logger

	mu sync.Mutex
}

// NewPreferenceService creates a PreferenceService. A nil logger discards
// output.
func NewPreferenceService(store ports.PreferenceStore, logger *slog.Logger) *PreferenceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PreferenceService{store: store, logger: logger}
}

// Theme returns the stored theme, falling back to preference.DefaultTheme.
func (s *PreferenceService) Theme(ctx context.Context) (preference.Theme, error) {
	theme, err := s.theme(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read theme",
			slog.String("operation", "Theme"),
			slog.Any("error", err),
		)
		return "", err
	}
	return theme, nil
}

// SetTheme validates and stores a theme.
func (s *PreferenceService) SetTheme(ctx context.Context, theme preference.Theme) error {
	s.logger.InfoContext(ctx, "setting theme", slog.String("theme", theme.String()))

	if !theme.IsValid() {
		return domain.NewValidationError(preference.ThemeKey, "must be dark or light")
	}

	if err := s.store.SetTheme(ctx, theme); err != nil {
		s.logger.ErrorContext(ctx, "failed to store theme",
			slog.String("operation", "SetTheme"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ToggleTheme switches the stored theme and returns the new value.
func (s *PreferenceService) ToggleTheme(ctx context.Context) (preference.Theme, error) {
	s.logger.InfoContext(ctx, "toggling theme")

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.theme(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read theme",
			slog.String("operation", "ToggleTheme"),
			slog.Any("error", err),
		)
		return "", err
	}

	next := current.Toggled()
	if err := s.store.SetTheme(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to store theme",
			slog.String("operation", "ToggleTheme"),
			slog.Any("error", err),
		)
		return "", err
	}
	return next, nil
}

func (s *PreferenceService) theme(ctx context.Context) (preference.Theme, error) {
	theme, err := s.store.Theme(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return preference.DefaultTheme, nil
	}
	return theme, err
}
