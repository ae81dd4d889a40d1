package project

import (
	"strings"

	projectdomain "github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
)

// ToDomainProject converts a downstream DTO to a domain Project.
func ToDomainProject(dto DTO) projectdomain.Project {
	return projectdomain.Project{
		ID:   dto.ID,
		Name: dto.Name,
	}
}

// ToDomainProjectList converts a downstream list response to domain
// Projects, preserving downstream order.
func ToDomainProjectList(dtos []DTO) []projectdomain.Project {
	projects := make([]projectdomain.Project, len(dtos))
	for i := range dtos {
		projects[i] = ToDomainProject(dtos[i])
	}
	return projects
}

// ToNameRequest builds the create/rename body. Surrounding whitespace is
// not forwarded.
func ToNameRequest(name string) NameRequestDTO {
	return NameRequestDTO{Name: strings.TrimSpace(name)}
}
