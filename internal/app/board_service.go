package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/kanban-board-service/internal/app/fanout"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/reorder"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

// DefaultSummaryWorkers is used when BoardService is built with a
// non-positive worker count.
const DefaultSummaryWorkers = 4

// Compile-time checks that BoardService implements the board ports.
var (
	_ ports.BoardService = (*BoardService)(nil)
	_ ports.BoardRemover = (*BoardService)(nil)
)

// BoardService implements ports.BoardService on top of a BoardStore.
//
// Every mutation is a load-modify-save cycle run under a single lock, and the
// new board is only returned once it has been saved. A project without a
// stored board gets the default board on first access, unless its board was
// deleted through DeleteBoard.
type BoardService struct {
	store   ports.BoardStore
	ids     board.IDGenerator
	metrics *telemetry.Metrics
	logger  *slog.Logger
	workers int

	mu sync.Mutex

	// deleted holds projects whose board was dropped. Guarded by deletedMu
	// so summaries can read it without taking mu.
	deletedMu sync.RWMutex
	deleted   map[int64]struct{}
}

// NewBoardService creates a BoardService. metrics may be nil. A nil logger
// discards output and a nil ids generator falls back to UUIDs.
func NewBoardService(
	store ports.BoardStore,
	ids board.IDGenerator,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	summaryWorkers int,
) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if ids == nil {
		ids = board.UUIDGenerator{}
	}
	if summaryWorkers < 1 {
		summaryWorkers = DefaultSummaryWorkers
	}
	return &BoardService{
		store:   store,
		ids:     ids,
		metrics: metrics,
		logger:  logger,
		workers: summaryWorkers,
		deleted: make(map[int64]struct{}),
	}
}

// GetBoard returns the stored board or the default board of the project.
func (s *BoardService) GetBoard(ctx context.Context, projectID int64) (board.Board, error) {
	s.logger.InfoContext(ctx, "getting board", slog.Int64("project_id", projectID))

	b, err := s.load(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load board",
			slog.String("operation", "GetBoard"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return board.Board{}, err
	}
	return b, nil
}

// AddColumn appends an empty column with a generated ID.
func (s *BoardService) AddColumn(ctx context.Context, projectID int64, name string) (board.Board, error) {
	s.logger.InfoContext(ctx, "adding column", slog.Int64("project_id", projectID))

	id := s.ids.NewID(board.PrefixColumn)
	return s.update(ctx, "AddColumn", projectID, func(b board.Board) (board.Board, error) {
		return b.AddColumn(id, name)
	})
}

// RenameColumn renames a column.
func (s *BoardService) RenameColumn(ctx context.Context, projectID int64, columnID, name string) (board.Board, error) {
	s.logger.InfoContext(ctx, "renaming column",
		slog.Int64("project_id", projectID),
		slog.String("column_id", columnID),
	)

	return s.update(ctx, "RenameColumn", projectID, func(b board.Board) (board.Board, error) {
		return b.RenameColumn(columnID, name)
	})
}

// DeleteColumn removes a column and every task in it.
func (s *BoardService) DeleteColumn(ctx context.Context, projectID int64, columnID string) (board.Board, error) {
	s.logger.InfoContext(ctx, "deleting column",
		slog.Int64("project_id", projectID),
		slog.String("column_id", columnID),
	)

	return s.update(ctx, "DeleteColumn", projectID, func(b board.Board) (board.Board, error) {
		return b.DeleteColumn(columnID)
	})
}

// CreateTask assigns an ID to task and adds it to the intake column.
func (s *BoardService) CreateTask(ctx context.Context, projectID int64, task board.Task) (*board.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.Int64("project_id", projectID))

	task.ID = s.ids.NewID(board.PrefixTask)
	b, err := s.update(ctx, "CreateTask", projectID, func(b board.Board) (board.Board, error) {
		return b.AddTask(task)
	})
	if err != nil {
		return nil, err
	}

	created, _, _ := b.Task(task.ID)
	return &created, nil
}

// UpdateTask applies patch to an existing task.
func (s *BoardService) UpdateTask(
	ctx context.Context,
	projectID int64,
	taskID string,
	patch board.TaskPatch,
) (*board.Task, error) {
	s.logger.InfoContext(ctx, "updating task",
		slog.Int64("project_id", projectID),
		slog.String("task_id", taskID),
	)

	b, err := s.update(ctx, "UpdateTask", projectID, func(b board.Board) (board.Board, error) {
		return b.UpdateTask(taskID, patch)
	})
	if err != nil {
		return nil, err
	}

	updated, _, _ := b.Task(taskID)
	return &updated, nil
}

// DeleteTask removes a task from the board.
func (s *BoardService) DeleteTask(ctx context.Context, projectID int64, taskID string) error {
	s.logger.InfoContext(ctx, "deleting task",
		slog.Int64("project_id", projectID),
		slog.String("task_id", taskID),
	)

	_, err := s.update(ctx, "DeleteTask", projectID, func(b board.Board) (board.Board, error) {
		return b.DeleteTask(taskID)
	})
	return err
}

// MoveTask applies a drop. Drops that do not change the board are not saved.
func (s *BoardService) MoveTask(
	ctx context.Context,
	projectID int64,
	activeID string,
	target reorder.Target[string],
) (board.Board, error) {
	s.logger.InfoContext(ctx, "moving task",
		slog.Int64("project_id", projectID),
		slog.String("task_id", activeID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.load(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load board",
			slog.String("operation", "MoveTask"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return board.Board{}, err
	}

	next, moved := b.MoveTask(activeID, target)
	s.metrics.RecordBoardMove(ctx, moved)
	if !moved {
		return b, nil
	}

	if err := s.store.Save(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to save board",
			slog.String("operation", "MoveTask"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return board.Board{}, err
	}
	return next, nil
}

// DeleteBoard drops the stored board of a deleted project. It takes the
// service lock, so a mutation already in flight finishes before the delete
// and none can save the board afterwards.
func (s *BoardService) DeleteBoard(ctx context.Context, projectID int64) error {
	s.logger.InfoContext(ctx, "deleting board", slog.Int64("project_id", projectID))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletedMu.Lock()
	s.deleted[projectID] = struct{}{}
	s.deletedMu.Unlock()

	if err := s.store.Delete(ctx, projectID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete board",
			slog.String("operation", "DeleteBoard"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Summaries loads the boards of projectIDs concurrently and counts their
// tasks per column. A board that fails to load yields a summary with Err set;
// the call itself only fails when ctx is done.
func (s *BoardService) Summaries(ctx context.Context, projectIDs []int64) ([]ports.BoardSummary, error) {
	s.logger.InfoContext(ctx, "summarizing boards", slog.Int("count", len(projectIDs)))

	results := fanout.Run(ctx, s.workers, projectIDs, s.load)

	summaries := make([]ports.BoardSummary, len(projectIDs))
	for i, r := range results {
		if r.Err != nil {
			s.logger.WarnContext(ctx, "failed to summarize board",
				slog.String("operation", "Summaries"),
				slog.Int64("project_id", projectIDs[i]),
				slog.Any("error", r.Err),
			)
			summaries[i] = ports.BoardSummary{ProjectID: projectIDs[i], Err: r.Err}
			continue
		}
		summaries[i] = summarize(r.Value)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// update runs one load-modify-save cycle under the service lock.
func (s *BoardService) update(
	ctx context.Context,
	operation string,
	projectID int64,
	fn func(board.Board) (board.Board, error),
) (board.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.load(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load board",
			slog.String("operation", operation),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return board.Board{}, err
	}

	next, err := fn(b)
	if err != nil {
		return board.Board{}, err
	}

	if err := s.store.Save(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to save board",
			slog.String("operation", operation),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return board.Board{}, err
	}
	return next, nil
}

// load returns the stored board, or the default board when none is stored.
// Deleted projects have no board.
func (s *BoardService) load(ctx context.Context, projectID int64) (board.Board, error) {
	s.deletedMu.RLock()
	_, gone := s.deleted[projectID]
	s.deletedMu.RUnlock()
	if gone {
		return board.Board{}, fmt.Errorf("board of project %d: %w", projectID, domain.ErrNotFound)
	}

	b, err := s.store.Load(ctx, projectID)
	if errors.Is(err, domain.ErrNotFound) {
		return board.New(projectID), nil
	}
	return b, err
}

func summarize(b board.Board) ports.BoardSummary {
	cols := make([]ports.ColumnSummary, len(b.Columns))
	for i, c := range b.Columns {
		cols[i] = ports.ColumnSummary{ColumnID: c.ID, Name: c.Name, Tasks: len(c.Items)}
	}
	return ports.BoardSummary{
		ProjectID: b.ProjectID,
		Columns:   cols,
		Total:     b.TaskCount(),
	}
}
