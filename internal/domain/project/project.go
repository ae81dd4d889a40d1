// Package project defines the Project entity shown in the project list.
package project

import (
	"strings"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
)

// copySuffix is appended to the name of a duplicated project.
const copySuffix = " (copy)"

// Project is an entry of the project list. Each project owns one board.
type Project struct {
	ID   int64
	Name string
}

// Key returns the project ID.
func (p Project) Key() int64 { return p.ID }

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	if p == nil {
		return domain.NewValidationError("project", domain.MsgRequired)
	}
	return domain.RequireText("name", p.Name)
}

// DuplicateName returns the name given to a copy of a project called name.
func DuplicateName(name string) string {
	return strings.TrimSpace(name) + copySuffix
}
