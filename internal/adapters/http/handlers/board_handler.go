package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

// BoardHandler handles HTTP requests for per-project boards.
type BoardHandler struct {
	boards   ports.BoardService
	projects ports.ProjectService
}

// NewBoardHandler creates a BoardHandler. The project service is used to
// resolve the full project list when a summary request names no project.
func NewBoardHandler(boards ports.BoardService, projects ports.ProjectService) *BoardHandler {
	return &BoardHandler{boards: boards, projects: projects}
}

// GetBoard handles GET /api/v1/projects/{id}/board.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	pid, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.boards.GetBoard(r.Context(), pid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(&b))
}

// AddColumn handles POST /api/v1/projects/{id}/board/columns.
func (h *BoardHandler) AddColumn(w http.ResponseWriter, r *http.Request) {
	pid, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.boards.AddColumn(r.Context(), pid, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBoardResponse(&b))
}

// RenameColumn handles PATCH /api/v1/projects/{id}/board/columns/{columnId}.
func (h *BoardHandler) RenameColumn(w http.ResponseWriter, r *http.Request) {
	pid, columnID, ok := boardPath(w, r, "columnId")
	if !ok {
		return
	}

	var req dto.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.boards.RenameColumn(r.Context(), pid, columnID, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(&b))
}

// DeleteColumn handles DELETE /api/v1/projects/{id}/board/columns/{columnId}.
func (h *BoardHandler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	pid, columnID, ok := boardPath(w, r, "columnId")
	if !ok {
		return
	}

	b, err := h.boards.DeleteColumn(r.Context(), pid, columnID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(&b))
}

// CreateTask handles POST /api/v1/projects/{id}/board/tasks.
func (h *BoardHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	pid, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.boards.CreateTask(r.Context(), pid, req.ToTask(""))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// UpdateTask handles PATCH /api/v1/projects/{id}/board/tasks/{taskId}.
// Only the fields present in the body change.
func (h *BoardHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	pid, taskID, ok := boardPath(w, r, "taskId")
	if !ok {
		return
	}

	var req dto.TaskPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.boards.UpdateTask(r.Context(), pid, taskID, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/projects/{id}/board/tasks/{taskId}.
func (h *BoardHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	pid, taskID, ok := boardPath(w, r, "taskId")
	if !ok {
		return
	}

	if err := h.boards.DeleteTask(r.Context(), pid, taskID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveTask handles POST /api/v1/projects/{id}/board/moves. A drop that
// resolves to nothing answers 200 with the unchanged board.
func (h *BoardHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	pid, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.boards.MoveTask(r.Context(), pid, req.ActiveID, req.Target())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(&b))
}

// Summaries handles GET /api/v1/boards/summary. Without project_id
// parameters every listed project is summarized.
func (h *BoardHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDList(r, "project_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if len(ids) == 0 {
		projects, err := h.projects.ListProjects(r.Context())
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		for _, p := range projects {
			ids = append(ids, p.ID)
		}
	}

	summaries, err := h.boards.Summaries(r.Context(), ids)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardSummaryListResponse(summaries))
}

// boardPath reads the project id and a string sub-resource id from the path.
// On failure it writes the error response and returns false.
func boardPath(w http.ResponseWriter, r *http.Request, param string) (int64, string, bool) {
	pid, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, "", false
	}
	sub, err := pathParam(r, param)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, "", false
	}
	return pid, sub, true
}
