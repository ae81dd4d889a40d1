// Package project implements the Anti-Corruption Layer translators for the
// downstream project resource.
package project

// DTO matches the downstream project schema.
type DTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NameRequestDTO is the body of both POST /projects and PATCH /projects/{id}.
// The downstream only stores the name; the ID is assigned on create.
type NameRequestDTO struct {
	Name string `json:"name"`
}
