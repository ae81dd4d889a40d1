package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
)

// BoardStore persists one board snapshot per project.
type BoardStore interface {
	// Load returns the stored board of a project.
	// Returns domain.ErrNotFound if no board has been saved yet.
	Load(ctx context.Context, projectID int64) (board.Board, error)

	// Save replaces the stored board of b.ProjectID.
	Save(ctx context.Context, b board.Board) error

	// Delete removes a project's board. Deleting a missing board is not an
	// error.
	Delete(ctx context.Context, projectID int64) error
}

// PreferenceStore persists user interface preferences.
type PreferenceStore interface {
	// Theme returns the stored theme.
	// Returns domain.ErrNotFound if no theme has been stored.
	Theme(ctx context.Context) (preference.Theme, error)

	// SetTheme stores the theme.
	SetTheme(ctx context.Context, theme preference.Theme) error
}
