package chart

import (
	"github.com/jmylchreest/nestchart/internal/model"
	"github.com/jmylchreest/nestchart/internal/series"
)

// VerticalAlign places the legend above or below the chart.
type VerticalAlign string

const (
	AlignTop    VerticalAlign = "top"
	AlignBottom VerticalAlign = "bottom"
)

// LegendOptions controls legend assembly.
type LegendOptions struct {
	HideIcon      bool
	VerticalAlign VerticalAlign
	NameKey       string
}

// Legend is the assembled legend.
type Legend struct {
	VerticalAlign VerticalAlign
	Items         []LegendItem
}

// LegendItem is one series in a legend. Without an icon a swatch in the
// point's color is shown.
type LegendItem struct {
	Key      string
	Entry    ResolvedEntry
	Label    string
	ShowIcon bool
	Swatch   string
}

// BuildLegend assembles the legend for payload, or returns nil when there
// is nothing to show.
func BuildLegend(cfg *series.Config, opts LegendOptions, payload []model.DataPoint) *Legend {
	if len(payload) == 0 {
		return nil
	}

	align := opts.VerticalAlign
	if align != AlignTop {
		align = AlignBottom
	}

	l := &Legend{
		VerticalAlign: align,
		Items:         make([]LegendItem, 0, len(payload)),
	}

	for i := range payload {
		item := &payload[i]
		key := firstNonEmpty(opts.NameKey, item.DataKey, model.FieldValue)
		entry, _ := Resolve(cfg, item, key, "")

		li := LegendItem{
			Key:   key,
			Entry: entry,
			Label: entry.Label,
		}
		if entry.Icon != "" && !opts.HideIcon {
			li.ShowIcon = true
		} else {
			li.Swatch = item.Color
		}
		l.Items = append(l.Items, li)
	}

	return l
}
