package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
)

// ProjectClient defines the client port for the downstream project resource.
// Implemented by the ACL adapter; called by the application layer.
// Methods map 1:1 to downstream REST calls; display order is not part of the
// downstream resource.
type ProjectClient interface {
	// List returns every stored project in downstream order.
	List(ctx context.Context) ([]project.Project, error)

	// Get returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	Get(ctx context.Context, id int64) (*project.Project, error)

	// Create stores a new project and returns it with its assigned ID.
	Create(ctx context.Context, name string) (*project.Project, error)

	// Rename changes a project's name and returns the updated entity.
	// Returns domain.ErrNotFound if the project does not exist.
	Rename(ctx context.Context, id int64, name string) (*project.Project, error)

	// Remove deletes a project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	Remove(ctx context.Context, id int64) error

	// Duplicate creates a copy of an existing project named after the
	// original (see project.DuplicateName) and returns the copy.
	// Returns domain.ErrNotFound if the original does not exist.
	Duplicate(ctx context.Context, id int64) (*project.Project, error)
}
