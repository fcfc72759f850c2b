// Package output provides output formatters for resolved data points.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/model"
)

// Resolution is the outcome of resolving one data point.
type Resolution struct {
	Index   int    `json:"index" yaml:"index"`
	Key     string `json:"key" yaml:"key"`
	Matched bool   `json:"matched" yaml:"matched"`
	Series  string `json:"series,omitempty" yaml:"series,omitempty"`
	Label   string `json:"label" yaml:"label"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
	Icon    string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
}

// NewResolution builds a Resolution for the index-th (1-based) point.
// Unmatched points are labelled with their own name.
func NewResolution(index int, key string, item model.DataPoint, entry chart.ResolvedEntry, matched bool, numbers chart.NumberFormatter) Resolution {
	r := Resolution{
		Index:   index,
		Key:     key,
		Matched: matched,
		Series:  entry.Key,
		Label:   entry.Label,
		Color:   entry.Color,
		Icon:    entry.Icon,
	}
	if r.Label == "" {
		r.Label = item.Name
	}
	r.Value, _ = chart.FormatValue(numbers, item.Value)
	return r
}

// Formatter formats resolutions for output.
type Formatter interface {
	Format(w io.Writer, resolutions []Resolution) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// ParseFormat validates a format name. The empty string is plain.
func ParseFormat(s string) (FormatType, error) {
	switch FormatType(s) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatJSON, FormatYAML:
		return FormatType(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want plain, json or yaml)", s)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template  string // Custom template for plain format
	ShowIndex bool   // Show 1-based index prefix
	ShowColor bool   // Show the resolved color
}

// DefaultFormatterOptions returns sensible defaults for plain output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex: true,
		ShowColor: true,
	}
}
