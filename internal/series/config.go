// Package series defines the per-series chart configuration: an ordered
// mapping from series key to the descriptor that labels and colors it.
package series

import (
	"errors"
	"fmt"
	"maps"
)

// ErrDuplicateKey is returned when a series key appears more than once.
var ErrDuplicateKey = errors.New("duplicate series key")

// Descriptor describes how one series is labelled, colored and decorated.
// If both Theme and Color are set, Theme wins for any theme it names with
// a non-empty color.
type Descriptor struct {
	Label string            `json:"label" yaml:"label"`
	Color string            `json:"color,omitempty" yaml:"color,omitempty"`
	Theme map[string]string `json:"theme,omitempty" yaml:"theme,omitempty"`
	Icon  string            `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// ColorFor returns the color for the named theme, falling back to Color.
// Returns the empty string when the descriptor has no color for the theme.
func (d Descriptor) ColorFor(theme string) string {
	if c := d.Theme[theme]; c != "" {
		return c
	}
	return d.Color
}

// HasColorSource reports whether the descriptor declares a color or a
// theme map.
func (d Descriptor) HasColorSource() bool {
	return d.Color != "" || d.Theme != nil
}

func (d Descriptor) clone() Descriptor {
	if d.Theme != nil {
		d.Theme = maps.Clone(d.Theme)
	}
	return d
}

// Entry is a single keyed series descriptor.
type Entry struct {
	Key        string
	Descriptor Descriptor
}

// Config is an ordered, read-only series configuration. The zero value and
// a nil *Config are both empty configurations.
type Config struct {
	entries []Entry
	index   map[string]int
}

// New builds a Config from entries, preserving their order. Descriptors are
// copied so later changes by the caller do not leak into the config.
func New(entries ...Entry) (*Config, error) {
	c := &Config{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if _, exists := c.index[e.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}
		c.index[e.Key] = len(c.entries)
		c.entries = append(c.entries, Entry{Key: e.Key, Descriptor: e.Descriptor.clone()})
	}

	return c, nil
}

// MustNew is like New but panics on duplicate keys. Intended for static
// configurations declared in code.
func MustNew(entries ...Entry) *Config {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the descriptor stored under key. The returned descriptor's
// Theme map is shared with the config and must not be modified.
func (c *Config) Get(key string) (Descriptor, bool) {
	if c == nil {
		return Descriptor{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return Descriptor{}, false
	}
	return c.entries[i].Descriptor, true
}

// Has reports whether key is configured.
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Entries returns the entries in insertion order.
func (c *Config) Entries() []Entry {
	if c == nil {
		return nil
	}
	return append([]Entry(nil), c.entries...)
}

// Keys returns the series keys in insertion order.
func (c *Config) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of configured series.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
