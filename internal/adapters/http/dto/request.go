package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/reorder"
)

// Drop target kinds accepted by MoveTaskRequest.
const (
	OverKindItem  = "item"
	OverKindGroup = "group"
)

// NameRequest is the JSON body for every create/rename call that only
// carries a name (projects and columns).
type NameRequest struct {
	Name string `json:"name"`
}

// Validate checks that the name is not blank.
func (r *NameRequest) Validate() error {
	return domain.RequireText("name", r.Name)
}

// ReorderProjectsRequest is the JSON body of a project list drop.
type ReorderProjectsRequest struct {
	ActiveID int64 `json:"active_id"`
	OverID   int64 `json:"over_id"`
}

// Validate checks that both ids are set.
func (r *ReorderProjectsRequest) Validate() error {
	fields := make(map[string]string)
	if r.ActiveID == 0 {
		fields["active_id"] = domain.MsgRequired
	}
	if r.OverID == 0 {
		fields["over_id"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TagList accepts tags either as a JSON array or as a single
// comma-separated string ("front, urgent").
type TagList []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *TagList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = board.ParseTags(s)
		return nil
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*t = board.NormalizeTags(tags)
	return nil
}

// TaskRequest is the JSON body for creating or replacing a task.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Tags        TagList `json:"tags"`
}

// Validate checks that the title is present.
func (r *TaskRequest) Validate() error {
	return domain.RequireText("title", r.Title)
}

// ToTask maps the request onto a board task with the given ID.
func (r *TaskRequest) ToTask(id string) board.Task {
	return board.Task{
		ID:          id,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Tags:        board.NormalizeTags(r.Tags),
	}
}

// TaskPatchRequest is the JSON body of a partial task update. Omitted or
// null fields keep their stored value.
type TaskPatchRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        *TagList `json:"tags"`
}

// Validate rejects a title that is present but blank.
func (r *TaskPatchRequest) Validate() error {
	if r.Title == nil {
		return nil
	}
	return domain.RequireText("title", *r.Title)
}

// ToPatch maps the request onto a board task patch.
func (r *TaskPatchRequest) ToPatch() board.TaskPatch {
	patch := board.TaskPatch{Title: r.Title, Description: r.Description}
	if r.Tags != nil {
		tags := []string(*r.Tags)
		patch.Tags = &tags
	}
	return patch
}

// DropTarget identifies what a dragged task was released over.
type DropTarget struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// MoveTaskRequest is the JSON body of a board drop.
type MoveTaskRequest struct {
	ActiveID string     `json:"active_id"`
	Over     DropTarget `json:"over"`
}

// Validate checks the active id and the drop target kind.
func (r *MoveTaskRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.ActiveID) == "" {
		fields["active_id"] = domain.MsgRequired
	}
	switch r.Over.Kind {
	case OverKindItem, OverKindGroup:
		if strings.TrimSpace(r.Over.ID) == "" {
			fields["over.id"] = domain.MsgRequired
		}
	default:
		fields["over.kind"] = fmt.Sprintf("must be %q or %q", OverKindItem, OverKindGroup)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Target converts the drop target to its reorder form. Call after Validate.
func (r *MoveTaskRequest) Target() reorder.Target[string] {
	if r.Over.Kind == OverKindGroup {
		return reorder.OnGroup[string](r.Over.ID)
	}
	return reorder.OnItem(r.Over.ID)
}

// ThemeRequest is the JSON body for storing a theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// Validate checks the theme against the supported values.
func (r *ThemeRequest) Validate() error {
	_, err := preference.ParseTheme(r.Theme)
	return err
}
