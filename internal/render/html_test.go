package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/model"
)

func TestHTML_Tooltip(t *testing.T) {
	var buf bytes.Buffer
	err := NewHTML().Tooltip(&buf, mondayTooltip(chart.TooltipOptions{Label: "Mon"}))
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `<div class="chart-tooltip-label">Monday</div>`)
	assert.Contains(t, out, `class="chart-tooltip-row align-center" data-key="sleep"`)
	assert.Contains(t, out, `<div class="chart-indicator dot" style="--color-bg: var(--color-sleep); --color-border: var(--color-sleep)"></div>`)
	assert.Contains(t, out, `<span class="chart-tooltip-name">Sleep Hours</span>`)
	assert.Contains(t, out, `<span class="chart-tooltip-value">11.5</span>`)
	assert.Contains(t, out, `<i class="chart-icon" data-icon="bottle"></i>`)
	assert.Contains(t, out, `<span class="chart-tooltip-value">1,200</span>`)
	assert.Equal(t, 1, strings.Count(out, "chart-indicator"), "icon row has no indicator")
}

func TestHTML_TooltipNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHTML().Tooltip(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestHTML_TooltipNestedLabel(t *testing.T) {
	tip := chart.BuildTooltip(nurseryConfig(), nil, chart.TooltipOptions{
		Active:    true,
		Indicator: chart.IndicatorLine,
		Label:     "Mon",
	}, mondayPayload()[:1])
	require.NotNil(t, tip)

	var buf bytes.Buffer
	require.NoError(t, NewHTML().Tooltip(&buf, tip))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, `class="chart-tooltip-label"`))
	assert.Contains(t, out, "align-stretch")
	assert.Contains(t, out, `class="chart-indicator line"`)

	body := strings.Index(out, "chart-tooltip-body")
	label := strings.Index(out, "chart-tooltip-label")
	assert.Greater(t, label, body, "label is nested in the row body")
}

func TestHTML_TooltipEscaping(t *testing.T) {
	payload := []model.DataPoint{{
		DataKey: "sleep",
		Name:    "<b>sleep</b>",
		Value:   1,
		Color:   "red;}</style><script>",
	}}
	tip := chart.BuildTooltip(nurseryConfig(), nil, chart.TooltipOptions{
		Active: true,
		Color:  "red;}</style><script>",
		Formatter: func(value any, name string, _ model.DataPoint, _ int, _ model.Record) string {
			return "<i>" + name + "</i>"
		},
	}, payload)
	require.NotNil(t, tip)

	var buf bytes.Buffer
	require.NoError(t, NewHTML().Tooltip(&buf, tip))
	out := buf.String()

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "&lt;i&gt;")
}

func TestHTML_Legend(t *testing.T) {
	legend := chart.BuildLegend(nurseryConfig(), chart.LegendOptions{VerticalAlign: chart.AlignTop}, mondayPayload())
	require.NotNil(t, legend)

	var buf bytes.Buffer
	require.NoError(t, NewHTML().Legend(&buf, legend))
	out := buf.String()

	assert.Contains(t, out, `<div class="chart-legend align-top">`)
	assert.Contains(t, out, `<div class="chart-legend-swatch" style="background-color: var(--color-sleep)"></div>`)
	assert.Contains(t, out, `<span>Sleep Hours</span>`)
	assert.Contains(t, out, `data-icon="bottle"`)
	assert.Contains(t, out, `<span>Feeds</span>`)
}

func TestHTML_LegendUnsafeSwatch(t *testing.T) {
	legend := &chart.Legend{
		VerticalAlign: chart.AlignBottom,
		Items:         []chart.LegendItem{{Key: "x", Label: "X", Swatch: `red" onclick="alert(1)`}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewHTML().Legend(&buf, legend))
	assert.Contains(t, buf.String(), `class="chart-legend-swatch" style=""`)
	assert.NotContains(t, buf.String(), "onclick")
}

func TestHTML_Document(t *testing.T) {
	h := NewHTML()
	c := chart.Provide("nursery", nurseryConfig())

	css, ok, err := c.Stylesheet()
	require.NoError(t, err)
	require.True(t, ok)

	body, err := h.Fragment(mondayTooltip(chart.TooltipOptions{}), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = h.Document(&buf, Document{
		Title:      "Nursery <week>",
		ChartID:    c.ID(),
		Dark:       true,
		Stylesheet: css,
		Body:       body,
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "<title>Nursery &lt;week&gt;</title>")
	assert.Contains(t, out, `<body class="dark">`)
	assert.Contains(t, out, `<div class="chart-container" data-chart="chart-nursery">`)
	assert.Contains(t, out, ".dark [data-chart=chart-nursery] {\n  --color-sleep: #4F46E5;")
	assert.Contains(t, out, ".chart-tooltip {")
	assert.NotContains(t, out, "@import")
	assert.Contains(t, out, `<div class="chart-tooltip">`)
}
