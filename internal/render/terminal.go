package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/series"
	"github.com/jmylchreest/nestchart/internal/theme"
)

var (
	varRegex = regexp.MustCompile(`^var\(\s*--color-([A-Za-z0-9_-]+)\s*\)$`)
	hexRegex = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
)

var indicatorGlyphs = map[chart.Indicator]string{
	chart.IndicatorDot:    "●",
	chart.IndicatorLine:   "┃",
	chart.IndicatorDashed: "┆",
}

// Terminal renders tooltips and legends as styled terminal text. Colors
// that refer to series custom properties are resolved through the series
// configuration for the active theme.
type Terminal struct {
	cfg   *series.Config
	theme string

	border lipgloss.Style
	label  lipgloss.Style
	muted  lipgloss.Style
	value  lipgloss.Style
}

// NewTerminal creates a terminal renderer. An empty theme name is light.
func NewTerminal(cfg *series.Config, themeName string) *Terminal {
	if themeName == "" {
		themeName = theme.Light
	}
	return &Terminal{
		cfg:   cfg,
		theme: themeName,
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		label: lipgloss.NewStyle().Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		value: lipgloss.NewStyle().Bold(true),
	}
}

// Color resolves a CSS color to a terminal color. Only hex literals and
// var(--color-<key>) references to hex colors can be shown; anything else
// yields the empty color.
func (t *Terminal) Color(css string) lipgloss.TerminalColor {
	css = strings.TrimSpace(css)
	if m := varRegex.FindStringSubmatch(css); m != nil {
		d, ok := t.cfg.Get(m[1])
		if !ok {
			return lipgloss.NoColor{}
		}
		css = d.ColorFor(t.theme)
	}
	if hexRegex.MatchString(css) {
		return lipgloss.Color(css)
	}
	return lipgloss.NoColor{}
}

// Tooltip renders tt. A nil tooltip renders as the empty string.
func (t *Terminal) Tooltip(tt *chart.Tooltip) string {
	if tt == nil {
		return ""
	}

	var lines []string
	if tt.ShowLabel && !tt.NestLabel {
		lines = append(lines, t.label.Render(tt.Label))
	}

	nameWidth := 0
	for _, row := range tt.Rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
	}

	for _, row := range tt.Rows {
		if row.IsCustom {
			lines = append(lines, row.Custom)
			continue
		}

		var marker string
		switch {
		case row.Entry.Icon != "":
			marker = "[" + row.Entry.Icon + "]"
		case row.ShowIndicator:
			marker = lipgloss.NewStyle().
				Foreground(t.Color(row.Entry.Color)).
				Render(indicatorGlyphs[tt.Indicator])
		}

		name := t.muted.Width(nameWidth).Render(row.Name)
		if tt.NestLabel && tt.ShowLabel {
			name = t.label.Render(tt.Label) + " " + name
		}

		parts := make([]string, 0, 3)
		if marker != "" {
			parts = append(parts, marker)
		}
		parts = append(parts, name)
		if row.HasValue {
			parts = append(parts, t.value.Render(row.Value))
		}
		lines = append(lines, strings.Join(parts, " "))
	}

	return t.border.Render(strings.Join(lines, "\n"))
}

// Legend renders l on a single line. A nil legend renders as the empty
// string.
func (t *Terminal) Legend(l *chart.Legend) string {
	if l == nil {
		return ""
	}

	items := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		var marker string
		if item.ShowIcon {
			marker = "[" + item.Entry.Icon + "]"
		} else {
			marker = lipgloss.NewStyle().Foreground(t.Color(item.Swatch)).Render("■")
		}
		items = append(items, marker+" "+item.Label)
	}

	return strings.Join(items, "   ")
}
