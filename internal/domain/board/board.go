// Package board models a project's kanban board: columns holding ordered
// task cards. Every operation returns a new Board and leaves the receiver
// untouched, so a board value can be shared freely between readers.
package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/reorder"
)

// Default column identifiers of a freshly created board.
const (
	ColumnTodo  = "todo"
	ColumnDoing = "doing"
	ColumnDone  = "done"
)

// Task is a card on the board.
type Task struct {
	ID          string
	Title       string
	Description string
	Tags        []string
}

// Key returns the task ID.
func (t Task) Key() string { return t.ID }

// TaskPatch lists the task fields to change. Nil fields keep their value.
type TaskPatch struct {
	Title       *string
	Description *string
	Tags        *[]string
}

// Apply returns t with the fields set in p replaced.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	return t
}

// Validate checks that the task has a title.
func (t *Task) Validate() error {
	return domain.RequireText("title", t.Title)
}

// Column is an ordered, named list of tasks.
type Column = reorder.Group[Task]

// Board is the column layout of a single project.
type Board struct {
	ProjectID int64
	Columns   []Column
}

// New returns the default three-column board for a project.
func New(projectID int64) Board {
	return Board{
		ProjectID: projectID,
		Columns: []Column{
			{ID: ColumnTodo, Name: "To do", Items: []Task{}},
			{ID: ColumnDoing, Name: "In progress", Items: []Task{}},
			{ID: ColumnDone, Name: "Done", Items: []Task{}},
		},
	}
}

// TaskCount returns the number of tasks across all columns.
func (b Board) TaskCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Items)
	}
	return n
}

// Task returns the task with the given id and the id of its column.
func (b Board) Task(id string) (Task, string, bool) {
	for _, c := range b.Columns {
		for _, t := range c.Items {
			if t.ID == id {
				return t, c.ID, true
			}
		}
	}
	return Task{}, "", false
}

// AddColumn appends an empty column.
func (b Board) AddColumn(id, name string) (Board, error) {
	name = strings.TrimSpace(name)
	if err := domain.RequireText("name", name); err != nil {
		return b, err
	}
	if b.columnIndex(id) >= 0 {
		return b, fmt.Errorf("column %q: %w", id, domain.ErrConflict)
	}
	out := b.cloneColumns()
	out.Columns = append(out.Columns, Column{ID: id, Name: name, Items: []Task{}})
	return out, nil
}

// RenameColumn changes a column's display name.
func (b Board) RenameColumn(id, name string) (Board, error) {
	name = strings.TrimSpace(name)
	if err := domain.RequireText("name", name); err != nil {
		return b, err
	}
	i := b.columnIndex(id)
	if i < 0 {
		return b, fmt.Errorf("column %q: %w", id, domain.ErrNotFound)
	}
	out := b.cloneColumns()
	out.Columns[i].Name = name
	return out, nil
}

// DeleteColumn removes a column together with its tasks.
func (b Board) DeleteColumn(id string) (Board, error) {
	i := b.columnIndex(id)
	if i < 0 {
		return b, fmt.Errorf("column %q: %w", id, domain.ErrNotFound)
	}
	out := b.cloneColumns()
	out.Columns = slices.Delete(out.Columns, i, i+1)
	return out, nil
}

// AddTask appends a task to the "todo" column, or to the first column when
// "todo" no longer exists. It fails with ErrConflict on a board without
// columns.
func (b Board) AddTask(t Task) (Board, error) {
	if err := t.Validate(); err != nil {
		return b, err
	}
	if len(b.Columns) == 0 {
		return b, fmt.Errorf("board has no columns: %w", domain.ErrConflict)
	}
	if _, _, exists := b.Task(t.ID); exists {
		return b, fmt.Errorf("task %q: %w", t.ID, domain.ErrConflict)
	}

	i := b.columnIndex(ColumnTodo)
	if i < 0 {
		i = 0
	}
	t = normalize(t)

	out := b.cloneColumns()
	items := make([]Task, 0, len(out.Columns[i].Items)+1)
	items = append(items, out.Columns[i].Items...)
	out.Columns[i].Items = append(items, t)
	return out, nil
}

// UpdateTask applies patch to the task with the given ID in place. Fields
// the patch leaves nil are kept.
func (b Board) UpdateTask(id string, patch TaskPatch) (Board, error) {
	for ci, c := range b.Columns {
		for ti, existing := range c.Items {
			if existing.ID != id {
				continue
			}
			t := patch.Apply(existing)
			if err := t.Validate(); err != nil {
				return b, err
			}
			out := b.cloneColumns()
			items := slices.Clone(c.Items)
			items[ti] = normalize(t)
			out.Columns[ci].Items = items
			return out, nil
		}
	}
	return b, fmt.Errorf("task %q: %w", id, domain.ErrNotFound)
}

// DeleteTask removes a task from whichever column holds it.
func (b Board) DeleteTask(id string) (Board, error) {
	for ci, c := range b.Columns {
		ti := slices.IndexFunc(c.Items, func(t Task) bool { return t.ID == id })
		if ti < 0 {
			continue
		}
		out := b.cloneColumns()
		out.Columns[ci].Items = slices.Delete(slices.Clone(c.Items), ti, ti+1)
		return out, nil
	}
	return b, fmt.Errorf("task %q: %w", id, domain.ErrNotFound)
}

// MoveTask relocates a task after a drop. The second result reports whether
// the task's position changed; unresolvable drops leave the board as is.
func (b Board) MoveTask(active string, over reorder.Target[string]) (Board, bool) {
	before := b.position(active)
	cols := reorder.Move(b.Columns, active, over)
	out := Board{ProjectID: b.ProjectID, Columns: cols}
	return out, out.position(active) != before
}

type position struct {
	column string
	index  int
}

func (b Board) position(taskID string) position {
	for _, c := range b.Columns {
		for i, t := range c.Items {
			if t.ID == taskID {
				return position{column: c.ID, index: i}
			}
		}
	}
	return position{index: -1}
}

func (b Board) columnIndex(id string) int {
	return slices.IndexFunc(b.Columns, func(c Column) bool { return c.ID == id })
}

// cloneColumns copies the column slice; item slices stay shared until an
// operation replaces them.
func (b Board) cloneColumns() Board {
	return Board{ProjectID: b.ProjectID, Columns: slices.Clone(b.Columns)}
}

// normalize trims the title and drops blank tags.
func normalize(t Task) Task {
	t.Title = strings.TrimSpace(t.Title)
	t.Tags = NormalizeTags(t.Tags)
	return t
}

// NormalizeTags trims each tag and drops empty ones. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// ParseTags splits a comma-separated tag list.
func ParseTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}
