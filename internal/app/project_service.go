// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/reorder"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. Project entities live in
// the downstream store reached through the ProjectClient port; the display
// order is held here and only ever changed after the downstream call
// succeeded, so a failed call leaves the list exactly as it was.
type ProjectService struct {
	client ports.ProjectClient
	boards ports.BoardRemover
	logger *slog.Logger

	mu     sync.Mutex
	order  []project.Project
	loaded bool
}

// NewProjectService creates a ProjectService. The client port persists
// project entities; boards drops a project's board when the project is
// deleted and may be nil. A nil logger discards output.
func NewProjectService(client ports.ProjectClient, boards ports.BoardRemover, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		client: client,
		boards: boards,
		logger: logger,
	}
}

// ListProjects fetches the stored projects and returns them in display
// order. Projects already known keep their position, new ones are appended
// in downstream order and projects gone downstream are dropped.
func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects")

	remote, err := s.client.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = mergeOrder(s.order, remote)
	s.loaded = true
	return slices.Clone(s.order), nil
}

// CreateProject validates the name, stores the project and appends it to
// the list.
func (s *ProjectService) CreateProject(ctx context.Context, name string) (*project.Project, error) {
	name = strings.TrimSpace(name)
	s.logger.InfoContext(ctx, "creating project", slog.String("name", name))

	if err := (&project.Project{Name: name}).Validate(); err != nil {
		return nil, err
	}

	created, err := s.client.Create(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.appendLoaded(*created)

	return created, nil
}

// RenameProject validates the name and renames the project in place.
func (s *ProjectService) RenameProject(ctx context.Context, id int64, name string) (*project.Project, error) {
	name = strings.TrimSpace(name)
	s.logger.InfoContext(ctx, "renaming project", slog.Int64("id", id))

	if err := (&project.Project{ID: id, Name: name}).Validate(); err != nil {
		return nil, err
	}

	updated, err := s.client.Rename(ctx, id, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to rename project",
			slog.String("operation", "RenameProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.mu.Lock()
	if i := slices.IndexFunc(s.order, func(p project.Project) bool { return p.ID == id }); i >= 0 {
		s.order[i] = *updated
	}
	s.mu.Unlock()

	return updated, nil
}

// DeleteProject deletes the project, removes it from the list and drops its
// board. A failure to drop the board is logged but does not fail the call.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting project", slog.Int64("id", id))

	if err := s.client.Remove(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete project",
			slog.String("operation", "DeleteProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.mu.Lock()
	s.order = slices.DeleteFunc(s.order, func(p project.Project) bool { return p.ID == id })
	s.mu.Unlock()

	if s.boards != nil {
		if err := s.boards.DeleteBoard(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "failed to delete project board",
				slog.String("operation", "DeleteProject"),
				slog.Int64("id", id),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// DuplicateProject copies a project and appends the copy to the list.
func (s *ProjectService) DuplicateProject(ctx context.Context, id int64) (*project.Project, error) {
	s.logger.InfoContext(ctx, "duplicating project", slog.Int64("id", id))

	dup, err := s.client.Duplicate(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to duplicate project",
			slog.String("operation", "DuplicateProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.appendLoaded(*dup)

	return dup, nil
}

// ReorderProjects moves activeID to the position of overID. The order is
// held locally only. When the list has not been loaded yet it is fetched
// first so the move applies to the real list.
func (s *ProjectService) ReorderProjects(ctx context.Context, activeID, overID int64) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "reordering projects",
		slog.Int64("active_id", activeID),
		slog.Int64("over_id", overID),
	)

	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()

	if !loaded {
		if _, err := s.ListProjects(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = reorder.Reorder(s.order, activeID, overID)
	return slices.Clone(s.order), nil
}

// appendLoaded adds p to the end of the list. Before the first load the
// list is left empty so the next ListProjects places p in downstream order.
func (s *ProjectService) appendLoaded(p project.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		s.order = append(s.order, p)
	}
}

// mergeOrder reconciles the local display order with the downstream list.
func mergeOrder(local, remote []project.Project) []project.Project {
	byID := make(map[int64]project.Project, len(remote))
	for _, p := range remote {
		byID[p.ID] = p
	}

	out := make([]project.Project, 0, len(remote))
	seen := make(map[int64]bool, len(remote))
	for _, p := range local {
		if fresh, ok := byID[p.ID]; ok && !seen[p.ID] {
			out = append(out, fresh)
			seen[p.ID] = true
		}
	}
	for _, p := range remote {
		if !seen[p.ID] {
			out = append(out, p)
			seen[p.ID] = true
		}
	}
	return out
}
