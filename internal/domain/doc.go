// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/board, domain/project,
// domain/preference) and the drag-and-drop engine lives in domain/reorder.
// This root package holds sentinel errors and validation types shared by all
// of them.
package domain
