package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Built-in theme names.
const (
	Light = "light"
	Dark  = "dark"
)

// Validation errors.
var (
	ErrEmptyName       = errors.New("theme name cannot be empty")
	ErrInvalidSelector = errors.New("theme selector contains forbidden characters")
)

// Theme is a named visual variant. Selector is the CSS selector prefix that
// scopes rules for the theme; the empty selector applies unconditionally.
type Theme struct {
	Name     string `toml:"name" yaml:"name"`
	Selector string `toml:"selector" yaml:"selector"`
}

// Defaults is the built-in theme enumeration, in output order.
var Defaults = []Theme{
	{Name: Light, Selector: ""},
	{Name: Dark, Selector: ".dark"},
}

// Validate checks that the theme can be emitted into a stylesheet.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(t.Selector, "{};<>") {
		return fmt.Errorf("%w: %q", ErrInvalidSelector, t.Selector)
	}
	return nil
}

// Registry is an ordered, read-only set of themes.
type Registry struct {
	themes []Theme
}

// NewRegistry creates a registry holding the default themes followed by
// extra. An extra theme whose name matches an existing one replaces its
// selector in place, keeping the original position.
func NewRegistry(extra ...Theme) (*Registry, error) {
	r := &Registry{themes: append([]Theme(nil), Defaults...)}

	for _, t := range extra {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if i := r.index(t.Name); i >= 0 {
			r.themes[i].Selector = t.Selector
			continue
		}
		r.themes = append(r.themes, t)
	}

	return r, nil
}

// DefaultRegistry returns a registry holding only the built-in themes.
func DefaultRegistry() *Registry {
	return &Registry{themes: append([]Theme(nil), Defaults...)}
}

// Themes returns the themes in enumeration order.
func (r *Registry) Themes() []Theme {
	if r == nil {
		return append([]Theme(nil), Defaults...)
	}
	return append([]Theme(nil), r.themes...)
}

// Names returns the theme names in enumeration order.
func (r *Registry) Names() []string {
	themes := r.Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the theme with the given name.
func (r *Registry) Lookup(name string) (Theme, bool) {
	for _, t := range r.Themes() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Has reports whether a theme with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

func (r *Registry) index(name string) int {
	for i, t := range r.themes {
		if t.Name == name {
			return i
		}
	}
	return -1
}
