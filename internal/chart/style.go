package chart

import (
	"strings"

	"github.com/jmylchreest/nestchart/internal/series"
	"github.com/jmylchreest/nestchart/internal/theme"
)

// Declaration is a single CSS custom property declaration.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a theme-scoped rule block.
type Rule struct {
	Theme        string
	Selector     string
	Declarations []Declaration
}

// String renders the rule block.
func (r Rule) String() string {
	lines := make([]string, len(r.Declarations))
	for i, d := range r.Declarations {
		lines[i] = "  " + d.Property + ": " + d.Value + ";"
	}
	return r.Selector + " {\n" + strings.Join(lines, "\n") + "\n}"
}

// Stylesheet is the generated set of rule blocks for one chart, one per
// theme in enumeration order.
type Stylesheet struct {
	Rules []Rule
}

// String renders the stylesheet text.
func (s Stylesheet) String() string {
	blocks := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		blocks[i] = r.String()
	}
	return strings.Join(blocks, "\n")
}

// CustomProperty returns the CSS custom property name for a series key.
func CustomProperty(key string) string {
	return "--color-" + key
}

// Scope returns the attribute selector that scopes rules to one chart.
// Characters that would end the selector are dropped from chartID.
func Scope(chartID string) string {
	return "[data-chart=" + sanitizeID(chartID) + "]"
}

// Generator builds theme stylesheets for the themes of a registry.
// The zero value uses the built-in themes.
type Generator struct {
	Registry *theme.Registry
}

// Build returns the stylesheet record for a chart. It reports false when no
// series declares a color or a theme map, in which case there is nothing
// to emit.
func (g Generator) Build(chartID string, cfg *series.Config) (Stylesheet, bool) {
	var colored []series.Entry
	for _, e := range cfg.Entries() {
		if e.Descriptor.HasColorSource() {
			colored = append(colored, e)
		}
	}
	if len(colored) == 0 {
		return Stylesheet{}, false
	}

	themes := g.Registry.Themes()
	sheet := Stylesheet{Rules: make([]Rule, 0, len(themes))}
	for _, t := range themes {
		rule := Rule{
			Theme:    t.Name,
			Selector: t.Selector + " " + Scope(chartID),
		}
		for _, e := range colored {
			color := e.Descriptor.ColorFor(t.Name)
			if color == "" {
				continue
			}
			rule.Declarations = append(rule.Declarations, Declaration{
				Property: CustomProperty(e.Key),
				Value:    color,
			})
		}
		sheet.Rules = append(sheet.Rules, rule)
	}

	return sheet, true
}

// Generate returns the stylesheet text for a chart, or false when there is
// nothing to emit.
func (g Generator) Generate(chartID string, cfg *series.Config) (string, bool) {
	sheet, ok := g.Build(chartID, cfg)
	if !ok {
		return "", false
	}
	return sheet.String(), true
}

// GenerateThemeStyles returns the stylesheet text scoping each colored
// series to chartID for every built-in theme, or false when no series
// declares a color.
func GenerateThemeStyles(chartID string, cfg *series.Config) (string, bool) {
	return Generator{}.Generate(chartID, cfg)
}
