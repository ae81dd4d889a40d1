package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/clients/acl/project"
	projectdomain "github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ProjectClient  = (*ProjectClient)(nil)
	_ ports.HealthChecker = (*ProjectClient)(nil)
)

const projectsPath = "/projects"

// ProjectClient is the outbound adapter for the downstream project API. It
// implements [ports.ProjectClient] over a json-server style REST resource.
//
// HTTP errors are mapped to domain errors (ErrNotFound, ErrValidation,
// ErrUnavailable, ...) by [TranslateHTTPError]. The underlying
// [httpclient.Client] provides circuit breaking, retry with exponential
// backoff, rate limiting and tracing for every outbound call.
type ProjectClient struct {
	req    *requester
	logger *slog.Logger
}

// NewProjectClient creates a ProjectClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the
// downstream API root (e.g. "http://localhost:3001").
func NewProjectClient(client *httpclient.Client, logger *slog.Logger) *ProjectClient {
	return &ProjectClient{
		req:    newRequester(client, logger),
		logger: logger,
	}
}

// List fetches every project from GET /projects in downstream order.
func (c *ProjectClient) List(ctx context.Context) ([]projectdomain.Project, error) {
	var dtos []project.DTO
	if err := c.req.do(ctx, http.MethodGet, projectsPath, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return project.ToDomainProjectList(dtos), nil
}

// Get fetches a single project from GET /projects/{id}.
// Returns [domain.ErrNotFound] if the downstream API returns 404.
func (c *ProjectClient) Get(ctx context.Context, id int64) (*projectdomain.Project, error) {
	var dto project.DTO
	if err := c.req.do(ctx, http.MethodGet, projectPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := project.ToDomainProject(dto)
	return &result, nil
}

// Create sends POST /projects and returns the stored project with its
// downstream-assigned ID.
func (c *ProjectClient) Create(ctx context.Context, name string) (*projectdomain.Project, error) {
	var dto project.DTO
	if err := c.req.do(ctx, http.MethodPost, projectsPath, http.StatusCreated, project.ToNameRequest(name), &dto); err != nil {
		return nil, err
	}
	result := project.ToDomainProject(dto)
	return &result, nil
}

// Rename sends PATCH /projects/{id} with the new name.
// Returns [domain.ErrNotFound] if the project does not exist.
func (c *ProjectClient) Rename(ctx context.Context, id int64, name string) (*projectdomain.Project, error) {
	var dto project.DTO
	if err := c.req.do(ctx, http.MethodPatch, projectPath(id), http.StatusOK, project.ToNameRequest(name), &dto); err != nil {
		return nil, err
	}
	result := project.ToDomainProject(dto)
	return &result, nil
}

// Remove sends DELETE /projects/{id}.
// Returns [domain.ErrNotFound] if the project does not exist.
func (c *ProjectClient) Remove(ctx context.Context, id int64) error {
	return c.req.do(ctx, http.MethodDelete, projectPath(id), http.StatusOK, nil, nil)
}

// Duplicate reads the original and stores a copy named after it. The
// downstream has no copy endpoint, so this is two calls.
func (c *ProjectClient) Duplicate(ctx context.Context, id int64) (*projectdomain.Project, error) {
	original, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Create(ctx, projectdomain.DuplicateName(original.Name))
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]: the service name given to the underlying
// [httpclient.Client].
func (c *ProjectClient) Name() string {
	return c.req.client.Name()
}

// HealthCheck reports the downstream availability from the circuit breaker
// state. No network call is made.
func (c *ProjectClient) HealthCheck(ctx context.Context) error {
	return c.req.client.HealthCheck(ctx)
}

func projectPath(id int64) string {
	return fmt.Sprintf("%s/%d", projectsPath, id)
}
