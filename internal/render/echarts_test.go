package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/nestchart/internal/chart"
)

func TestWritePage(t *testing.T) {
	c := chart.Provide("nursery", nurseryConfig())

	var buf bytes.Buffer
	err := WritePage(&buf, c, nurseryData(), PageOptions{
		Title:      "Nursery",
		Width:      "800px",
		Height:     "400px",
		Stylesheet: ".extra { color: red; }",
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `data-chart="chart-nursery"`)
	assert.Contains(t, out, " [data-chart=chart-nursery] {\n  --color-sleep: #4F46E5;")
	assert.Contains(t, out, ".chart-tooltip {")
	assert.Contains(t, out, ".extra { color: red; }")
	assert.Contains(t, out, "Sleep Hours")
	assert.Contains(t, out, "Feeds")
	assert.Contains(t, out, `"color":"#22C55E"`)
	assert.NotContains(t, out, "Naps", "series without data are skipped")
	assert.NotContains(t, out, `class="dark"`)

	assert.Less(t, strings.Index(out, "<style>\n"), strings.Index(out, `data-chart="chart-nursery"`))
}

func TestWritePage_HostileID(t *testing.T) {
	c := chart.Provide("x]{}</style><script>alert(1)</script><style>", nurseryConfig())

	var buf bytes.Buffer
	require.NoError(t, WritePage(&buf, c, nurseryData(), PageOptions{Title: "Nursery"}))
	out := buf.String()

	assert.NotContains(t, out, "alert(1)")
	assert.NotContains(t, out, "x]{}")
	assert.Contains(t, out, " [data-chart=chart-xstylescriptalert1scriptstyle] {")
	assert.Contains(t, out, `data-chart="chart-xstylescriptalert1scriptstyle"`)
}

func TestWritePage_Dark(t *testing.T) {
	c := chart.Provide("nursery", nurseryConfig())

	var buf bytes.Buffer
	require.NoError(t, WritePage(&buf, c, nurseryData(), PageOptions{Dark: true}))
	out := buf.String()

	assert.Contains(t, out, `class="dark"`)
	assert.Contains(t, out, `"color":"#16A34A"`)
	assert.NotContains(t, out, `"color":"#22C55E"`)
}

func TestWritePage_NoConfig(t *testing.T) {
	var buf bytes.Buffer
	err := WritePage(&buf, chart.Provide("x", nil), nurseryData(), PageOptions{})
	assert.ErrorIs(t, err, chart.ErrNoConfig)
	assert.Empty(t, buf.String())
}

func TestInjectStyle(t *testing.T) {
	page := "<html><head><title>t</title></head><body><div id=\"c\"></div></body></html>"

	got := injectStyle(page, "chart-a", ".x{}", true)
	want := "<html><head><title>t</title><style>\n.x{}\n</style>\n</head>" +
		"<body class=\"dark\">\n<div class=\"chart-container\" data-chart=\"chart-a\">" +
		"<div id=\"c\"></div></div>\n</body></html>"
	assert.Equal(t, want, got)
}

func TestInjectStyle_NoMarkers(t *testing.T) {
	got := injectStyle("<div></div>", "chart-a", ".x{}", false)
	assert.Equal(t, "<style>\n.x{}\n</style>\n<div class=\"chart-container\" data-chart=\"chart-a\">\n<div></div>\n</div>\n", got)

	dark := injectStyle("<div></div>", "chart-a", ".x{}", true)
	assert.True(t, strings.HasPrefix(dark, `<div class="dark">`))
}

func TestInjectStyle_EscapesID(t *testing.T) {
	got := injectStyle("<div></div>", `a"b`, "", false)
	assert.Contains(t, got, `data-chart="a&#34;b"`)
}

func TestLiteralColor(t *testing.T) {
	assert.Equal(t, "#4F46E5", literalColor("#4F46E5"))
	assert.Equal(t, "rgb(1, 2, 3)", literalColor("rgb(1, 2, 3)"))
	assert.Empty(t, literalColor("hsl(var(--chart-1))"))
}
