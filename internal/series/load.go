package series

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/nestchart/internal/theme"
)

// Format identifies a series file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for files whose format cannot be determined.
var ErrUnknownFormat = errors.New("unknown series file format")

// tomlFile is the TOML layout: an array of tables keeps entry order.
//
//	[[series]]
//	key = "feed"
//	label = "Feeds"
//	[series.theme]
//	light = "#22C55E"
type tomlFile struct {
	Series []tomlSeries `toml:"series"`
}

type tomlSeries struct {
	Key   string            `toml:"key"`
	Label string            `toml:"label"`
	Color string            `toml:"color,omitempty"`
	Theme map[string]string `toml:"theme,omitempty"`
	Icon  string            `toml:"icon,omitempty"`
}

// DetectFormat infers the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads and validates a series file. The format is inferred from the
// file extension.
func Load(path string, reg *theme.Registry) (*Config, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read series file: %w", err)
	}

	cfg, err := Parse(data, format, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates series configuration data.
func Parse(data []byte, format Format, reg *theme.Registry) (*Config, error) {
	var (
		cfg *Config
		err error
	)

	switch format {
	case FormatTOML:
		cfg, err = parseTOML(data)
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML; yaml.v3 keeps mapping order for both.
		cfg, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(reg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseTOML(data []byte) (*Config, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	entries := make([]Entry, 0, len(file.Series))
	for _, s := range file.Series {
		entries = append(entries, Entry{
			Key: s.Key,
			Descriptor: Descriptor{
				Label: s.Label,
				Color: s.Color,
				Theme: s.Theme,
				Icon:  s.Icon,
			},
		})
	}
	return New(entries...)
}

func parseYAML(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// An empty document is an empty configuration.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return New()
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("series file must be a mapping, line %d", root.Line)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var d Descriptor
		if err := valueNode.Decode(&d); err != nil {
			return nil, fmt.Errorf("series %q: %w", keyNode.Value, err)
		}
		entries = append(entries, Entry{Key: keyNode.Value, Descriptor: d})
	}
	return New(entries...)
}

// Marshal encodes the configuration as TOML or YAML, preserving order.
func (c *Config) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var file tomlFile
		for _, e := range c.Entries() {
			file.Series = append(file.Series, tomlSeries{
				Key:   e.Key,
				Label: e.Descriptor.Label,
				Color: e.Descriptor.Color,
				Theme: e.Descriptor.Theme,
				Icon:  e.Descriptor.Icon,
			})
		}
		return toml.Marshal(file)
	case FormatYAML:
		root := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range c.Entries() {
			var value yaml.Node
			if err := value.Encode(e.Descriptor); err != nil {
				return nil, err
			}
			root.Content = append(root.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: e.Key}, &value)
		}
		return yaml.Marshal(root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
