// Package preference holds user interface preferences persisted by the
// service.
package preference

import (
	"fmt"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
)

// ThemeKey is the storage key of the theme preference.
const ThemeKey = "theme"

// Theme is the colour scheme of the user interface.
type Theme string

// Supported themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme applies until a theme has been stored.
const DefaultTheme = ThemeDark

// IsValid reports whether t is a supported theme.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme validates a raw theme value.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.IsValid() {
		return "", domain.NewValidationError("theme", fmt.Sprintf("invalid: %q", s))
	}
	return t, nil
}

func (t Theme) String() string { return string(t) }
