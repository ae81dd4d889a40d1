// Package memory provides in-process implementations of the board and
// preference store ports. Contents are lost on restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

var (
	_ ports.BoardStore      = (*BoardStore)(nil)
	_ ports.PreferenceStore = (*PreferenceStore)(nil)
)

// BoardStore keeps one board per project in a map.
type BoardStore struct {
	mu     sync.RWMutex
	boards map[int64]board.Board
}

// NewBoardStore creates an empty BoardStore.
func NewBoardStore() *BoardStore {
	return &BoardStore{boards: make(map[int64]board.Board)}
}

// Load returns a copy of the stored board.
func (s *BoardStore) Load(_ context.Context, projectID int64) (board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boards[projectID]
	if !ok {
		return board.Board{}, fmt.Errorf("board of project %d: %w", projectID, domain.ErrNotFound)
	}
	return clone(b), nil
}

// Save stores a copy of b.
func (s *BoardStore) Save(_ context.Context, b board.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards[b.ProjectID] = clone(b)
	return nil
}

// Delete removes the board of a project.
func (s *BoardStore) Delete(_ context.Context, projectID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.boards, projectID)
	return nil
}

// clone copies columns, task slices and tag slices so that stored boards
// never alias caller memory.
func clone(b board.Board) board.Board {
	cols := make([]board.Column, len(b.Columns))
	for i, c := range b.Columns {
		items := make([]board.Task, len(c.Items))
		for j, t := range c.Items {
			t.Tags = slices.Clone(t.Tags)
			items[j] = t
		}
		cols[i] = board.Column{ID: c.ID, Name: c.Name, Items: items}
	}
	return board.Board{ProjectID: b.ProjectID, Columns: cols}
}

// PreferenceStore keeps the theme in memory.
type PreferenceStore struct {
	mu    sync.RWMutex
	theme preference.Theme
}

// NewPreferenceStore creates a PreferenceStore with nothing stored.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{}
}

// Theme returns the stored theme.
func (s *PreferenceStore) Theme(_ context.Context) (preference.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.theme == "" {
		return "", fmt.Errorf("%s preference: %w", preference.ThemeKey, domain.ErrNotFound)
	}
	return s.theme, nil
}

// SetTheme stores the theme.
func (s *PreferenceStore) SetTheme(_ context.Context, theme preference.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	return nil
}
