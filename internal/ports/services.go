package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/reorder"
)

// ProjectService defines the service port for the ordered project list.
// Implemented by the application layer; called by inbound adapters (handlers).
// Entities are persisted through the ProjectClient; the display order is
// held by the service.
type ProjectService interface {
	// ListProjects returns all projects in display order.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// CreateProject creates a project and appends it to the list.
	// Returns domain.ErrValidation if the name is blank.
	CreateProject(ctx context.Context, name string) (*project.Project, error)

	// RenameProject renames a project in place.
	// Returns domain.ErrValidation if the name is blank and
	// domain.ErrNotFound if the project does not exist.
	RenameProject(ctx context.Context, id int64, name string) (*project.Project, error)

	// DeleteProject deletes a project and its board.
	// Returns domain.ErrNotFound if the project does not exist.
	DeleteProject(ctx context.Context, id int64) error

	// DuplicateProject creates a copy of a project and appends it.
	// Returns domain.ErrNotFound if the project does not exist.
	DuplicateProject(ctx context.Context, id int64) (*project.Project, error)

	// ReorderProjects moves project activeID to the position of overID and
	// returns the resulting order. Unknown ids leave the order unchanged.
	ReorderProjects(ctx context.Context, activeID, overID int64) ([]project.Project, error)
}

// BoardService defines the service port for per-project kanban boards.
type BoardService interface {
	// GetBoard returns a project's board, creating the default board when
	// none has been stored yet. Returns domain.ErrNotFound for a project
	// whose board was deleted.
	GetBoard(ctx context.Context, projectID int64) (board.Board, error)

	// AddColumn appends a new empty column with a generated ID.
	AddColumn(ctx context.Context, projectID int64, name string) (board.Board, error)

	// RenameColumn renames a column.
	// Returns domain.ErrNotFound if the column does not exist.
	RenameColumn(ctx context.Context, projectID int64, columnID, name string) (board.Board, error)

	// DeleteColumn removes a column and its tasks.
	// Returns domain.ErrNotFound if the column does not exist.
	DeleteColumn(ctx context.Context, projectID int64, columnID string) (board.Board, error)

	// CreateTask adds a task with a generated ID to the intake column and
	// returns the created task.
	CreateTask(ctx context.Context, projectID int64, task board.Task) (*board.Task, error)

	// UpdateTask changes the fields of a task that patch sets.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, projectID int64, taskID string, patch board.TaskPatch) (*board.Task, error)

	// DeleteTask removes a task.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, projectID int64, taskID string) error

	// MoveTask applies a drop of task activeID onto target and returns the
	// resulting board. Unresolvable drops return the board unchanged.
	MoveTask(ctx context.Context, projectID int64, activeID string, target reorder.Target[string]) (board.Board, error)

	// Summaries returns task counts for the boards of the given projects.
	Summaries(ctx context.Context, projectIDs []int64) ([]BoardSummary, error)
}

// BoardRemover drops the board of a deleted project.
type BoardRemover interface {
	// DeleteBoard removes the stored board. Later reads and writes of that
	// project's board return domain.ErrNotFound.
	DeleteBoard(ctx context.Context, projectID int64) error
}

// ColumnSummary is the task count of one column.
type ColumnSummary struct {
	ColumnID string
	Name     string
	Tasks    int
}

// BoardSummary holds per-column task counts of one project's board. Err is
// set when that board could not be loaded; other summaries are unaffected.
type BoardSummary struct {
	ProjectID int64
	Columns   []ColumnSummary
	Total     int
	Err       error
}

// PreferenceService defines the service port for user interface preferences.
type PreferenceService interface {
	// Theme returns the stored theme, or preference.DefaultTheme.
	Theme(ctx context.Context) (preference.Theme, error)

	// SetTheme stores a theme.
	SetTheme(ctx context.Context, theme preference.Theme) error

	// ToggleTheme switches between dark and light and returns the new theme.
	ToggleTheme(ctx context.Context) (preference.Theme, error)
}
