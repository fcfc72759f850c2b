package render

import (
	"regexp"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/model"
	"github.com/jmylchreest/nestchart/internal/series"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// plain strips terminal escape sequences.
func plain(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func nurseryConfig() *series.Config {
	return series.MustNew(
		series.Entry{Key: "sleep", Descriptor: series.Descriptor{Label: "Sleep Hours", Color: "#4F46E5"}},
		series.Entry{Key: "feed", Descriptor: series.Descriptor{
			Label: "Feeds",
			Icon:  "bottle",
			Theme: map[string]string{"light": "#22C55E", "dark": "#16A34A"},
		}},
		series.Entry{Key: "naps", Descriptor: series.Descriptor{Label: "Naps", Color: "hsl(var(--chart-3))"}},
		series.Entry{Key: "Mon", Descriptor: series.Descriptor{Label: "Monday"}},
	)
}

func nurseryData() model.Dataset {
	return model.Dataset{
		XKey: "day",
		Rows: []model.Record{
			{"day": "Mon", "sleep": 11.5, "feed": 1200},
			{"day": "Tue", "sleep": 10.0},
			{"day": "Wed", "sleep": 12.25, "feed": 950},
		},
	}
}

func mondayPayload() []model.DataPoint {
	return nurseryData().Payload(0, []string{"sleep", "feed"})
}

func mondayTooltip(opts chart.TooltipOptions) *chart.Tooltip {
	opts.Active = true
	return chart.BuildTooltip(nurseryConfig(), nil, opts, mondayPayload())
}
