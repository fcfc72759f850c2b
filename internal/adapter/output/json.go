package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// JSONFormatter formats resolutions as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes resolutions as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, resolutions []Resolution) error {
	if resolutions == nil {
		resolutions = []Resolution{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resolutions)
}

// YAMLFormatter formats resolutions as a YAML sequence.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes resolutions as YAML.
func (f *YAMLFormatter) Format(w io.Writer, resolutions []Resolution) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(resolutions); err != nil {
		return err
	}
	return encoder.Close()
}
