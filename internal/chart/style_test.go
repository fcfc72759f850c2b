package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/nestchart/internal/series"
	"github.com/jmylchreest/nestchart/internal/theme"
)

func sleepFeedConfig() *series.Config {
	return series.MustNew(
		series.Entry{Key: "sleep", Descriptor: series.Descriptor{Label: "Sleep Hours", Color: "#4F46E5"}},
		series.Entry{Key: "feed", Descriptor: series.Descriptor{
			Label: "Feeds",
			Theme: map[string]string{"light": "#22C55E", "dark": "#16A34A"},
		}},
	)
}

func TestGenerateThemeStyles_EndToEnd(t *testing.T) {
	css, ok := GenerateThemeStyles("abc", sleepFeedConfig())
	require.True(t, ok)

	want := ` [data-chart=abc] {
  --color-sleep: #4F46E5;
  --color-feed: #22C55E;
}
.dark [data-chart=abc] {
  --color-sleep: #4F46E5;
  --color-feed: #16A34A;
}`
	assert.Equal(t, want, css)
}

func TestGenerateThemeStyles_NothingToEmit(t *testing.T) {
	tests := []struct {
		name string
		cfg  *series.Config
	}{
		{"nil config", nil},
		{"empty config", series.MustNew()},
		{"labels only", series.MustNew(
			series.Entry{Key: "sleep", Descriptor: series.Descriptor{Label: "Sleep Hours"}},
			series.Entry{Key: "feed", Descriptor: series.Descriptor{Label: "Feeds", Icon: "bottle"}},
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css, ok := GenerateThemeStyles("abc", tt.cfg)
			assert.False(t, ok)
			assert.Empty(t, css)
		})
	}
}

func TestGenerateThemeStyles_SkipsUnresolvableColors(t *testing.T) {
	cfg := series.MustNew(
		series.Entry{Key: "label-only", Descriptor: series.Descriptor{Label: "No color"}},
		series.Entry{Key: "darkonly", Descriptor: series.Descriptor{Theme: map[string]string{"dark": "#111111"}}},
	)

	sheet, ok := Generator{}.Build("x", cfg)
	require.True(t, ok)
	require.Len(t, sheet.Rules, 2)

	assert.Equal(t, "light", sheet.Rules[0].Theme)
	assert.Empty(t, sheet.Rules[0].Declarations)
	assert.Equal(t, "dark", sheet.Rules[1].Theme)
	assert.Equal(t, []Declaration{{Property: "--color-darkonly", Value: "#111111"}}, sheet.Rules[1].Declarations)

	css := sheet.String()
	assert.NotContains(t, css, "undefined")
	assert.NotContains(t, css, "label-only")
	assert.NotContains(t, css, ": ;")
	assert.Equal(t, 2, strings.Count(css, "{"))
}

func TestGenerateThemeStyles_OneBlockPerTheme(t *testing.T) {
	reg, err := theme.NewRegistry(theme.Theme{Name: "contrast", Selector: ".contrast"})
	require.NoError(t, err)

	cfg := series.MustNew(
		series.Entry{Key: "sleep", Descriptor: series.Descriptor{Color: "#4F46E5"}},
		series.Entry{Key: "feed", Descriptor: series.Descriptor{Theme: map[string]string{"contrast": "#000000"}}},
	)

	sheet, ok := Generator{Registry: reg}.Build("c1", cfg)
	require.True(t, ok)
	require.Len(t, sheet.Rules, 3)

	for i, name := range []string{"light", "dark", "contrast"} {
		assert.Equal(t, name, sheet.Rules[i].Theme)
	}
	assert.Equal(t, ".contrast [data-chart=c1]", sheet.Rules[2].Selector)
	assert.Len(t, sheet.Rules[0].Declarations, 1)
	assert.Len(t, sheet.Rules[2].Declarations, 2)
}

func TestGenerateThemeStyles_Idempotent(t *testing.T) {
	cfg := sleepFeedConfig()
	first, _ := GenerateThemeStyles("abc", cfg)
	for range 10 {
		again, _ := GenerateThemeStyles("abc", cfg)
		assert.Equal(t, first, again)
	}
}

func TestGenerateThemeStyles_ScopedToChart(t *testing.T) {
	cfg := sleepFeedConfig()
	a, _ := GenerateThemeStyles("chart-a", cfg)
	b, _ := GenerateThemeStyles("chart-b", cfg)

	assert.Contains(t, a, "[data-chart=chart-a]")
	assert.NotContains(t, a, "chart-b")
	assert.Contains(t, b, "[data-chart=chart-b]")
	assert.NotContains(t, b, "chart-a")
}

func TestGenerateThemeStyles_FollowsInsertionOrder(t *testing.T) {
	cfg := series.MustNew(
		series.Entry{Key: "zeta", Descriptor: series.Descriptor{Color: "#000"}},
		series.Entry{Key: "alpha", Descriptor: series.Descriptor{Color: "#fff"}},
	)
	css, ok := GenerateThemeStyles("o", cfg)
	require.True(t, ok)
	assert.Less(t, strings.Index(css, "--color-zeta"), strings.Index(css, "--color-alpha"))
}

func TestScope(t *testing.T) {
	assert.Equal(t, "[data-chart=chart-abc]", Scope("chart-abc"))
	assert.Equal(t, "[data-chart=chart-abc]", Scope("chart-a]b c"))

	css, ok := GenerateThemeStyles("x]{}</style>", sleepFeedConfig())
	require.True(t, ok)
	assert.NotContains(t, css, "</style>")
	assert.Contains(t, css, " [data-chart=xstyle] {")
}
