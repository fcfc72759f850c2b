package render

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/theme"
)

const tooltipTmpl = `<div class="chart-tooltip">
{{- if and .ShowLabel (not .NestLabel)}}
  <div class="chart-tooltip-label">{{.Label}}</div>
{{- end}}
  <div class="chart-tooltip-rows">
{{- range .Rows}}
    <div class="chart-tooltip-row align-{{$.Align}}" data-key="{{.Key}}">
{{- if .IsCustom}}{{.Custom}}
{{- else}}
{{- if .Entry.Icon}}
      <i class="chart-icon" data-icon="{{.Entry.Icon}}"></i>
{{- else if .ShowIndicator}}
      <div class="chart-indicator {{$.Indicator}}" style="{{indicatorStyle .Entry.Color}}"></div>
{{- end}}
      <div class="chart-tooltip-body">
{{- if and $.NestLabel $.ShowLabel}}
        <div class="chart-tooltip-label">{{$.Label}}</div>
{{- end}}
        <span class="chart-tooltip-name">{{.Name}}</span>
      </div>
{{- if .HasValue}}
      <span class="chart-tooltip-value">{{.Value}}</span>
{{- end}}
{{- end}}
    </div>
{{- end}}
  </div>
</div>
`

const legendTmpl = `<div class="chart-legend align-{{.VerticalAlign}}">
{{- range .Items}}
  <div class="chart-legend-item" data-key="{{.Key}}">
{{- if .ShowIcon}}
    <i class="chart-icon" data-icon="{{.Entry.Icon}}"></i>
{{- else}}
    <div class="chart-legend-swatch" style="{{swatchStyle .Swatch}}"></div>
{{- end}}
    <span>{{.Label}}</span>
  </div>
{{- end}}
</div>
`

const documentTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.Base}}
{{.Stylesheet}}
</style>
</head>
<body{{if .Dark}} class="dark"{{end}}>
<div class="chart-container" data-chart="{{.ChartID}}">
{{.Body}}
</div>
</body>
</html>
`

// HTML renders tooltips, legends and standalone documents.
type HTML struct {
	tooltip  *template.Template
	legend   *template.Template
	document *template.Template
}

// NewHTML parses the built-in templates.
func NewHTML() *HTML {
	funcs := template.FuncMap{
		"indicatorStyle": func(color string) template.CSS {
			c := safeColor(color)
			if c == "" {
				return ""
			}
			return template.CSS("--color-bg: " + c + "; --color-border: " + c)
		},
		"swatchStyle": func(color string) template.CSS {
			c := safeColor(color)
			if c == "" {
				return ""
			}
			return template.CSS("background-color: " + c)
		},
	}

	return &HTML{
		tooltip:  template.Must(template.New("tooltip").Funcs(funcs).Parse(tooltipTmpl)),
		legend:   template.Must(template.New("legend").Funcs(funcs).Parse(legendTmpl)),
		document: template.Must(template.New("document").Parse(documentTmpl)),
	}
}

// safeColor returns color when it can be placed in a style attribute, or
// the empty string. Point colors come straight from chart data and are not
// validated by the series loaders.
func safeColor(color string) string {
	if strings.ContainsAny(color, `;{}<>"'\`) {
		return ""
	}
	return strings.TrimSpace(color)
}

// Tooltip writes t. A nil tooltip writes nothing.
func (h *HTML) Tooltip(w io.Writer, t *chart.Tooltip) error {
	if t == nil {
		return nil
	}
	return h.tooltip.Execute(w, t)
}

// Legend writes l. A nil legend writes nothing.
func (h *HTML) Legend(w io.Writer, l *chart.Legend) error {
	if l == nil {
		return nil
	}
	return h.legend.Execute(w, l)
}

// Document describes a standalone HTML page wrapping chart markup.
type Document struct {
	Title   string
	ChartID string
	Dark    bool

	// Stylesheet is the generated chart stylesheet. It must come from the
	// style generator or another validated source.
	Stylesheet string

	Body template.HTML
}

// Document writes a complete page with the base stylesheet inlined.
func (h *HTML) Document(w io.Writer, doc Document) error {
	return h.document.Execute(w, struct {
		Document
		Base       template.CSS
		Stylesheet template.CSS
	}{
		Document:   doc,
		Base:       template.CSS(theme.BaseStylesheet()),
		Stylesheet: template.CSS(doc.Stylesheet),
	})
}

// Fragment renders a tooltip and legend into a single HTML fragment,
// suitable for Document.Body.
func (h *HTML) Fragment(t *chart.Tooltip, l *chart.Legend) (template.HTML, error) {
	var buf bytes.Buffer
	if err := h.Tooltip(&buf, t); err != nil {
		return "", err
	}
	if err := h.Legend(&buf, l); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
