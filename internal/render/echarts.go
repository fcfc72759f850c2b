package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/model"
	"github.com/jmylchreest/nestchart/internal/series"
	"github.com/jmylchreest/nestchart/internal/theme"
)

// PageOptions configures an HTML chart page.
type PageOptions struct {
	Title      string
	Width      string
	Height     string
	AssetsHost string
	Dark       bool

	// Stylesheet is extra CSS appended after the generated chart styles.
	Stylesheet string

	Logger *slog.Logger
}

func (o PageOptions) themeName() string {
	if o.Dark {
		return theme.Dark
	}
	return theme.Light
}

// WritePage renders data as a line chart page. Series appear in
// configuration order, named by their label and colored for the active
// theme. The chart's generated stylesheet and the base stylesheet are
// injected into the page head, and the chart markup is wrapped in the
// container element the stylesheet is scoped to.
func WritePage(w io.Writer, c *chart.Container, data model.Dataset, po PageOptions) error {
	cfg, err := c.Use()
	if err != nil {
		return err
	}

	logger := po.Logger
	if logger == nil {
		logger = slog.Default()
	}

	line := newLineChart(cfg, data, po)

	page := components.NewPage()
	page.PageTitle = po.Title
	if po.AssetsHost != "" {
		page.AssetsHost = po.AssetsHost
	}
	page.AddCharts(line)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	css, _, err := c.Stylesheet()
	if err != nil {
		return err
	}
	style := strings.Join(nonEmpty(theme.BaseStylesheet(), css, po.Stylesheet), "\n")
	logger.Debug("rendering chart page",
		"chart", c.ID(),
		"series", cfg.Len(),
		"rows", data.Len(),
		"style", humanize.Bytes(uint64(len(style))))

	_, err = io.WriteString(w, injectStyle(buf.String(), c.ID(), style, po.Dark))
	return err
}

func newLineChart(cfg *series.Config, data model.Dataset, po PageOptions) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  po.Width,
			Height: po.Height,
			Theme:  po.themeName(),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: po.Title,
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Top: "8%",
		}),
		charts.WithGridOpts(opts.Grid{
			Top: "15%",
		}),
	)

	line.SetXAxis(data.Labels())

	for _, e := range cfg.Entries() {
		values, present := data.Values(e.Key)
		if !slices.Contains(present, true) {
			continue
		}

		points := make([]opts.LineData, len(values))
		for i, v := range values {
			if present[i] {
				points[i] = opts.LineData{Value: v}
			} else {
				// ECharts treats "-" as a gap.
				points[i] = opts.LineData{Value: "-"}
			}
		}

		name := e.Descriptor.Label
		if name == "" {
			name = e.Key
		}

		var seriesOpts []charts.SeriesOpts
		if color := literalColor(e.Descriptor.ColorFor(po.themeName())); color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{
				Color: color,
			}))
		}
		line.AddSeries(name, points, seriesOpts...)
	}

	return line
}

// literalColor returns color if the canvas renderer can use it directly.
// CSS expressions such as var() or hsl(var()) only resolve in the DOM.
func literalColor(color string) string {
	if strings.Contains(color, "var(") {
		return ""
	}
	return color
}

// injectStyle adds a style element before </head> and wraps the body
// content in the chart container. Pages without the expected markers get
// the style element and container prepended.
func injectStyle(page, chartID, css string, dark bool) string {
	styleBlock := "<style>\n" + css + "\n</style>\n"
	open := `<div class="chart-container" data-chart="` + html.EscapeString(chartID) + `">`
	bodyOpen := "<body>"
	if dark {
		bodyOpen = `<body class="dark">`
	}

	head := strings.Index(page, "</head>")
	body := strings.Index(page, "<body>")
	end := strings.LastIndex(page, "</body>")
	if head < 0 || body < 0 || end < 0 || !(head < body && body < end) {
		out := styleBlock + open + "\n" + page + "\n</div>\n"
		if dark {
			out = `<div class="dark">` + "\n" + out + "</div>\n"
		}
		return out
	}

	var sb strings.Builder
	sb.WriteString(page[:head])
	sb.WriteString(styleBlock)
	sb.WriteString(page[head:body])
	sb.WriteString(bodyOpen + "\n" + open)
	sb.WriteString(page[body+len("<body>") : end])
	sb.WriteString("</div>\n")
	sb.WriteString(page[end:])
	return sb.String()
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
