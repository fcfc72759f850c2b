package chart

import (
	"fmt"

	"github.com/jmylchreest/nestchart/internal/model"
	"github.com/jmylchreest/nestchart/internal/series"
)

// Indicator is the visual marker drawn next to each tooltip row.
type Indicator string

const (
	IndicatorDot    Indicator = "dot"
	IndicatorLine   Indicator = "line"
	IndicatorDashed Indicator = "dashed"
)

// ParseIndicator parses an indicator name. The empty string is a dot.
func ParseIndicator(s string) (Indicator, error) {
	switch Indicator(s) {
	case "", IndicatorDot:
		return IndicatorDot, nil
	case IndicatorLine, IndicatorDashed:
		return Indicator(s), nil
	default:
		return "", fmt.Errorf("unknown indicator %q (want dot, line or dashed)", s)
	}
}

// LabelFormatter renders the tooltip heading from its resolved value.
type LabelFormatter func(value string, payload []model.DataPoint) string

// ValueFormatter renders a whole tooltip row, replacing the default layout.
type ValueFormatter func(value any, name string, item model.DataPoint, index int, payload model.Record) string

// TooltipOptions controls tooltip assembly.
type TooltipOptions struct {
	// Active is false while the pointer is not over the chart.
	Active    bool
	Indicator Indicator

	HideLabel     bool
	HideIndicator bool

	// Label is the heading supplied by the backend, typically the category
	// of the hovered row. It is looked up as a series key first.
	Label          string
	LabelFormatter LabelFormatter
	Formatter      ValueFormatter

	// Color overrides every row's indicator color.
	Color string

	// NameKey and LabelKey select the field used to resolve row labels and
	// the heading respectively.
	NameKey  string
	LabelKey string
}

// Tooltip is the assembled tooltip. When NestLabel is set the heading is
// shown inside the single row instead of above the rows.
type Tooltip struct {
	Label     string
	ShowLabel bool
	NestLabel bool
	Indicator Indicator
	Rows      []TooltipRow
}

// TooltipRow is one data point in a tooltip.
type TooltipRow struct {
	// Key identifies the row; it is the point's data key.
	Key   string
	Entry ResolvedEntry

	// Name is the series label, or the point's own name when unmatched.
	Name     string
	Value    string
	HasValue bool

	// Custom holds the output of TooltipOptions.Formatter, if it ran.
	Custom   string
	IsCustom bool

	ShowIndicator bool
}

// Align returns how the row's children are aligned for the indicator.
func (t *Tooltip) Align() string {
	if t.Indicator == IndicatorDot {
		return "center"
	}
	return "stretch"
}

// BuildTooltip assembles the tooltip for payload. It returns nil when the
// tooltip is inactive or there is nothing to show.
func BuildTooltip(cfg *series.Config, numbers NumberFormatter, opts TooltipOptions, payload []model.DataPoint) *Tooltip {
	if !opts.Active || len(payload) == 0 {
		return nil
	}

	indicator := opts.Indicator
	if indicator == "" {
		indicator = IndicatorDot
	}

	t := &Tooltip{
		Indicator: indicator,
		NestLabel: len(payload) == 1 && indicator != IndicatorDot,
		Rows:      make([]TooltipRow, 0, len(payload)),
	}
	t.Label, t.ShowLabel = tooltipLabel(cfg, opts, payload)

	for i := range payload {
		item := &payload[i]
		key := firstNonEmpty(opts.NameKey, item.Name, item.DataKey, model.FieldValue)
		entry, ok := Resolve(cfg, item, key, opts.Color)

		row := TooltipRow{
			Key:   item.DataKey,
			Entry: entry,
			Name:  item.Name,
		}
		if ok && entry.Label != "" {
			row.Name = entry.Label
		}

		if opts.Formatter != nil && item.HasValue() && item.Name != "" {
			row.Custom = opts.Formatter(item.Value, item.Name, *item, i, item.Payload)
			row.IsCustom = true
		} else {
			row.Value, row.HasValue = FormatValue(numbers, item.Value)
			row.ShowIndicator = entry.Icon == "" && !opts.HideIndicator
		}

		t.Rows = append(t.Rows, row)
	}

	return t
}

// tooltipLabel resolves the heading from the first data point.
func tooltipLabel(cfg *series.Config, opts TooltipOptions, payload []model.DataPoint) (string, bool) {
	if opts.HideLabel || len(payload) == 0 {
		return "", false
	}

	item := &payload[0]
	key := firstNonEmpty(opts.LabelKey, item.DataKey, item.Name, model.FieldValue)

	var value string
	if opts.LabelKey == "" && opts.Label != "" {
		value = opts.Label
		if d, ok := cfg.Get(opts.Label); ok && d.Label != "" {
			value = d.Label
		}
	} else if k, ok := matchKey(cfg, item, key, false); ok {
		d, _ := cfg.Get(k)
		value = d.Label
	}

	if opts.LabelFormatter != nil {
		return opts.LabelFormatter(value, payload), true
	}
	return value, value != ""
}
