package series

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/jmylchreest/nestchart/internal/theme"
)

// Validation errors.
var (
	ErrInvalidKey   = errors.New("series key must be non-empty and contain only letters, digits, '-' or '_'")
	ErrInvalidColor = errors.New("series color contains forbidden characters")
	ErrUnknownTheme = errors.New("series theme is not registered")
)

// keyPattern restricts keys to valid CSS custom-property name fragments.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validate checks that every entry can be emitted into a stylesheet.
// Theme names are checked against reg; a nil registry means the defaults.
func (c *Config) Validate(reg *theme.Registry) error {
	for _, e := range c.Entries() {
		if !keyPattern.MatchString(e.Key) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, e.Key)
		}
		if !safeColor(e.Descriptor.Color) {
			return fmt.Errorf("%w: %s: %q", ErrInvalidColor, e.Key, e.Descriptor.Color)
		}
		for _, name := range slices.Sorted(maps.Keys(e.Descriptor.Theme)) {
			color := e.Descriptor.Theme[name]
			if !reg.Has(name) {
				return fmt.Errorf("%w: %s: %q", ErrUnknownTheme, e.Key, name)
			}
			if !safeColor(color) {
				return fmt.Errorf("%w: %s.%s: %q", ErrInvalidColor, e.Key, name, color)
			}
		}
	}
	return nil
}

func safeColor(v string) bool {
	return !strings.ContainsAny(v, ";{}<>")
}
