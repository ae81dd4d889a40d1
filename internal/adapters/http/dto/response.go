// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProjectListResponse represents the ordered project list.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{ID: p.ID, Name: p.Name}
}

// ToProjectListResponse converts projects to a list response, keeping their
// display order.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// TaskResponse represents a task card.
type TaskResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ToTaskResponse converts a board task to an HTTP response DTO.
func ToTaskResponse(t *board.Task) TaskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Tags:        tags,
	}
}

// ColumnResponse represents a board column with its tasks in order.
type ColumnResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Tasks []TaskResponse `json:"tasks"`
}

// BoardResponse represents a project's board.
type BoardResponse struct {
	ProjectID int64            `json:"project_id"`
	Columns   []ColumnResponse `json:"columns"`
}

// ToBoardResponse converts a board to an HTTP response DTO.
func ToBoardResponse(b *board.Board) BoardResponse {
	cols := make([]ColumnResponse, len(b.Columns))
	for i, c := range b.Columns {
		tasks := make([]TaskResponse, len(c.Items))
		for j := range c.Items {
			tasks[j] = ToTaskResponse(&c.Items[j])
		}
		cols[i] = ColumnResponse{ID: c.ID, Name: c.Name, Tasks: tasks}
	}
	return BoardResponse{ProjectID: b.ProjectID, Columns: cols}
}

// ColumnSummaryResponse is the task count of one column.
type ColumnSummaryResponse struct {
	ColumnID string `json:"column_id"`
	Name     string `json:"name"`
	Tasks    int    `json:"tasks"`
}

// BoardSummaryResponse holds the counts of one board. Error is set instead
// of the counts when that board could not be loaded.
type BoardSummaryResponse struct {
	ProjectID int64                   `json:"project_id"`
	Columns   []ColumnSummaryResponse `json:"columns,omitempty"`
	Total     int                     `json:"total"`
	Error     string                  `json:"error,omitempty"`
}

// BoardSummaryListResponse is the result of a summary request.
type BoardSummaryListResponse struct {
	Summaries []BoardSummaryResponse `json:"summaries"`
	Count     int                    `json:"count"`
}

// ToBoardSummaryListResponse converts service summaries to an HTTP response DTO.
func ToBoardSummaryListResponse(summaries []ports.BoardSummary) BoardSummaryListResponse {
	items := make([]BoardSummaryResponse, len(summaries))
	for i, s := range summaries {
		item := BoardSummaryResponse{ProjectID: s.ProjectID, Total: s.Total}
		if s.Err != nil {
			item.Error = s.Err.Error()
		}
		for _, c := range s.Columns {
			item.Columns = append(item.Columns, ColumnSummaryResponse{
				ColumnID: c.ColumnID,
				Name:     c.Name,
				Tasks:    c.Tasks,
			})
		}
		items[i] = item
	}
	return BoardSummaryListResponse{Summaries: items, Count: len(items)}
}

// ThemeResponse carries the current theme.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// ToThemeResponse converts a theme to an HTTP response DTO.
func ToThemeResponse(t preference.Theme) ThemeResponse {
	return ThemeResponse{Theme: t.String()}
}

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each dependency to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
