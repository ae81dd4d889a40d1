package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

func TestToProjectListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToProjectListResponse([]project.Project{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}})
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if got.Projects[0].ID != 2 || got.Projects[1].Name != "a" {
		t.Errorf("Projects = %+v, want order preserved", got.Projects)
	}

	empty := dto.ToProjectListResponse(nil)
	b, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if !strings.Contains(string(b), `"projects":[]`) {
		t.Errorf("empty list JSON = %s, want projects:[]", b)
	}
}

func TestToBoardResponse(t *testing.T) {
	t.Parallel()

	b := board.New(7)
	b.Columns[0].Items = []board.Task{{ID: "task-1", Title: "Write doc"}}

	got := dto.ToBoardResponse(&b)
	if got.ProjectID != 7 || len(got.Columns) != 3 {
		t.Fatalf("ToBoardResponse() = %+v", got)
	}
	if got.Columns[0].ID != board.ColumnTodo || got.Columns[0].Tasks[0].ID != "task-1" {
		t.Errorf("first column = %+v", got.Columns[0])
	}
	if got.Columns[0].Tasks[0].Tags == nil {
		t.Error("Tags = nil, want empty slice so it encodes as []")
	}
	if got.Columns[2].Tasks == nil {
		t.Error("empty column Tasks = nil, want empty slice")
	}
}

func TestToBoardSummaryListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToBoardSummaryListResponse([]ports.BoardSummary{
		{
			ProjectID: 1,
			Columns:   []ports.ColumnSummary{{ColumnID: "todo", Name: "To do", Tasks: 2}},
			Total:     2,
		},
		{ProjectID: 2, Err: errors.New("store down")},
	})

	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}
	if got.Summaries[0].Total != 2 || got.Summaries[0].Columns[0].Tasks != 2 || got.Summaries[0].Error != "" {
		t.Errorf("Summaries[0] = %+v", got.Summaries[0])
	}
	if got.Summaries[1].Error != "store down" {
		t.Errorf("Summaries[1].Error = %q, want %q", got.Summaries[1].Error, "store down")
	}
}

func TestToThemeResponse(t *testing.T) {
	t.Parallel()

	if got := dto.ToThemeResponse(preference.ThemeLight); got.Theme != "light" {
		t.Errorf("Theme = %q, want light", got.Theme)
	}
}
