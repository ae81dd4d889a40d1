package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
	"github.com/jsamuelsen11/kanban-board-service/mocks"
)

// projectRoutes mounts the project handler the way the API router does, so
// path parameters come from real chi matching.
func projectRoutes(h *handlers.ProjectHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/projects", h.ListProjects)
	r.Post("/api/v1/projects", h.CreateProject)
	r.Post("/api/v1/projects/reorder", h.ReorderProjects)
	r.Patch("/api/v1/projects/{id}", h.RenameProject)
	r.Delete("/api/v1/projects/{id}", h.DeleteProject)
	r.Post("/api/v1/projects/{id}/duplicate", h.DuplicateProject)
	return r
}

func TestProjectHandler(t *testing.T) {
	t.Parallel()

	vr := validProject()
	blog := project.Project{ID: 2, Name: "Blog"}
	dup := project.Project{ID: 5, Name: "Portfolio VR (copy)"}
	renamed := project.Project{ID: 1, Name: "Renamed"}

	tests := []struct {
		name       string
		expect     func(svc *mocks.MockProjectService)
		method     string
		target     string
		body       string
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "list keeps service order",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().ListProjects(mock.Anything).Return([]project.Project{blog, vr}, nil)
			},
			method:     http.MethodGet,
			target:     "/api/v1/projects",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				resp := decodeJSON[dto.ProjectListResponse](t, rec)
				if resp.Count != 2 || resp.Projects[0].Name != "Blog" || resp.Projects[1].ID != 1 {
					t.Errorf("response = %+v, want [Blog, Portfolio VR]", resp)
				}
			},
		},
		{
			name: "list with project api down",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().ListProjects(mock.Anything).Return(nil, domain.ErrUnavailable)
			},
			method:     http.MethodGet,
			target:     "/api/v1/projects",
			wantStatus: http.StatusBadGateway,
			check:      problemJSON,
		},
		{
			name: "create",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().CreateProject(mock.Anything, "Portfolio VR").Return(&vr, nil)
			},
			method:     http.MethodPost,
			target:     "/api/v1/projects",
			body:       `{"name":"Portfolio VR"}`,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				if resp := decodeJSON[dto.ProjectResponse](t, rec); resp != (dto.ProjectResponse{ID: 1, Name: "Portfolio VR"}) {
					t.Errorf("response = %+v", resp)
				}
			},
		},
		{
			name:       "create with malformed body",
			method:     http.MethodPost,
			target:     "/api/v1/projects",
			body:       "{bad",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "create with blank name",
			method:     http.MethodPost,
			target:     "/api/v1/projects",
			body:       `{"name":"  "}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				resp := decodeJSON[dto.ErrorResponse](t, rec)
				if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.name" {
					t.Errorf("Errors = %+v, want body.name", resp.Errors)
				}
			},
		},
		{
			name: "rename",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().RenameProject(mock.Anything, int64(1), "Renamed").Return(&renamed, nil)
			},
			method:     http.MethodPatch,
			target:     "/api/v1/projects/1",
			body:       `{"name":"Renamed"}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				if resp := decodeJSON[dto.ProjectResponse](t, rec); resp.Name != "Renamed" {
					t.Errorf("Name = %q, want Renamed", resp.Name)
				}
			},
		},
		{
			name:       "rename with non-numeric id",
			method:     http.MethodPatch,
			target:     "/api/v1/projects/abc",
			body:       `{"name":"x"}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				resp := decodeJSON[dto.ErrorResponse](t, rec)
				if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.id" {
					t.Errorf("Errors = %+v, want path.id", resp.Errors)
				}
			},
		},
		{
			name: "rename unknown project",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().RenameProject(mock.Anything, int64(9), "x").Return(nil, domain.ErrNotFound)
			},
			method:     http.MethodPatch,
			target:     "/api/v1/projects/9",
			body:       `{"name":"x"}`,
			wantStatus: http.StatusNotFound,
			check:      problemJSON,
		},
		{
			name: "delete",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().DeleteProject(mock.Anything, int64(1)).Return(nil)
			},
			method:     http.MethodDelete,
			target:     "/api/v1/projects/1",
			wantStatus: http.StatusNoContent,
		},
		{
			name: "delete unknown project",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().DeleteProject(mock.Anything, int64(3)).Return(domain.ErrNotFound)
			},
			method:     http.MethodDelete,
			target:     "/api/v1/projects/3",
			wantStatus: http.StatusNotFound,
		},
		{
			name: "duplicate",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().DuplicateProject(mock.Anything, int64(1)).Return(&dup, nil)
			},
			method:     http.MethodPost,
			target:     "/api/v1/projects/1/duplicate",
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				if resp := decodeJSON[dto.ProjectResponse](t, rec); resp.ID != 5 || resp.Name != dup.Name {
					t.Errorf("response = %+v, want the copy", resp)
				}
			},
		},
		{
			name: "reorder",
			expect: func(svc *mocks.MockProjectService) {
				svc.EXPECT().ReorderProjects(mock.Anything, int64(1), int64(2)).
					Return([]project.Project{blog, vr}, nil)
			},
			method:     http.MethodPost,
			target:     "/api/v1/projects/reorder",
			body:       `{"active_id":1,"over_id":2}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()
				if resp := decodeJSON[dto.ProjectListResponse](t, rec); resp.Projects[0].ID != 2 {
					t.Errorf("first project = %d, want 2", resp.Projects[0].ID)
				}
			},
		},
		{
			name:       "reorder without ids",
			method:     http.MethodPost,
			target:     "/api/v1/projects/reorder",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockProjectService(t)
			if tt.expect != nil {
				tt.expect(svc)
			}

			var body io.Reader = http.NoBody
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			projectRoutes(handlers.NewProjectHandler(svc)).ServeHTTP(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func problemJSON(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}
