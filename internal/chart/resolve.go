package chart

import (
	"github.com/jmylchreest/nestchart/internal/model"
	"github.com/jmylchreest/nestchart/internal/series"
)

// ResolvedEntry is the label, color and icon chosen for a data point.
// Key is the configuration key that matched.
type ResolvedEntry struct {
	Key   string
	Label string
	Color string
	Icon  string
}

// ResolveConfigEntry finds the descriptor that labels item.
//
// The effective lookup key is the string field of item named key, else the
// same field one level down in item's payload, else key itself. The
// effective key is looked up first, then key verbatim, then item's own
// name. A nil item or a miss on every lookup reports false.
func ResolveConfigEntry(cfg *series.Config, item *model.DataPoint, key string) (series.Descriptor, bool) {
	if k, ok := matchKey(cfg, item, key, true); ok {
		return cfg.Get(k)
	}
	return series.Descriptor{}, false
}

// matchKey returns the first configured lookup key for item. The item's
// name is only tried when byName is set.
func matchKey(cfg *series.Config, item *model.DataPoint, key string, byName bool) (string, bool) {
	if item == nil {
		return "", false
	}

	keys := []string{effectiveKey(item, key), key}
	if byName && item.Name != "" {
		keys = append(keys, item.Name)
	}
	for _, k := range keys {
		if cfg.Has(k) {
			return k, true
		}
	}
	return "", false
}

// effectiveKey picks the key a data point redirects to. The probe is bounded
// to the top-level fields and one level of payload nesting; the payload is
// only consulted when the top-level field is absent.
func effectiveKey(item *model.DataPoint, key string) string {
	if v, ok := item.Field(key); ok {
		return v
	}
	if v, ok := item.Payload.String(key); ok {
		return v
	}
	return key
}

// Resolve resolves item into a display entry. The entry color follows
// IndicatorColor with override; the label falls back to nothing, leaving
// the caller to show the item's own name.
func Resolve(cfg *series.Config, item *model.DataPoint, key, override string) (ResolvedEntry, bool) {
	entry := ResolvedEntry{Color: IndicatorColor(override, item)}

	k, ok := matchKey(cfg, item, key, true)
	if !ok {
		return entry, false
	}

	d, _ := cfg.Get(k)
	entry.Key = k
	entry.Label = d.Label
	entry.Icon = d.Icon
	return entry, true
}

// IndicatorColor picks the color shown next to a data point: an explicit
// override, then the fill of the point's source row, then the point's
// series color.
func IndicatorColor(override string, item *model.DataPoint) string {
	if override != "" {
		return override
	}
	if fill := item.Fill(); fill != "" {
		return fill
	}
	if item == nil {
		return ""
	}
	return item.Color
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
