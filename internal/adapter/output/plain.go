package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// PlainFormatter formats resolutions as plain text, one per line.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter. An invalid custom
// template is ignored in favour of the default layout.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes resolutions as plain text.
func (f *PlainFormatter) Format(w io.Writer, resolutions []Resolution) error {
	for i := range resolutions {
		if err := f.formatResolution(w, &resolutions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *PlainFormatter) formatResolution(w io.Writer, r *Resolution) error {
	if f.template != nil {
		if err := f.template.Execute(w, r); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	var sb strings.Builder

	if f.opts.ShowIndex {
		sb.WriteString(fmt.Sprintf("[%d] ", r.Index))
	}

	sb.WriteString(r.Label)

	if r.Matched {
		sb.WriteString(fmt.Sprintf(" (%s)", r.Series))
	} else {
		sb.WriteString(" (unmatched)")
	}

	if r.Value != "" {
		sb.WriteString(" " + r.Value)
	}

	if f.opts.ShowColor && r.Color != "" {
		sb.WriteString(" " + r.Color)
	}

	if r.Icon != "" {
		sb.WriteString(" icon=" + r.Icon)
	}

	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": func(maxLen int, s string) string {
			if maxLen <= 0 || len(s) <= maxLen {
				return s
			}
			if maxLen <= 3 {
				return s[:maxLen]
			}
			return s[:maxLen-3] + "..."
		},
		"default": func(fallback, s string) string {
			if s == "" {
				return fallback
			}
			return s
		},
	}
}
