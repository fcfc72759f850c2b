package model

import "fmt"

// DefaultXKey is the row field used for the category axis when none is set.
const DefaultXKey = "label"

// Dataset is tabular chart data: one row per category, one field per series.
type Dataset struct {
	XKey string   `json:"x,omitempty" yaml:"x,omitempty"`
	Rows []Record `json:"rows" yaml:"rows"`
}

func (d Dataset) xKey() string {
	if d.XKey == "" {
		return DefaultXKey
	}
	return d.XKey
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d.Rows)
}

// Label returns the category label of row i.
func (d Dataset) Label(i int) string {
	if i < 0 || i >= len(d.Rows) {
		return ""
	}
	v, ok := d.Rows[i][d.xKey()]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Labels returns the category labels of all rows.
func (d Dataset) Labels() []string {
	labels := make([]string, len(d.Rows))
	for i := range d.Rows {
		labels[i] = d.Label(i)
	}
	return labels
}

// Values returns the numeric values of a series across all rows. Missing
// or non-numeric cells are reported as absent.
func (d Dataset) Values(key string) ([]float64, []bool) {
	values := make([]float64, len(d.Rows))
	present := make([]bool, len(d.Rows))
	for i, row := range d.Rows {
		values[i], present[i] = row.Number(key)
	}
	return values, present
}

// Payload returns the data points a charting backend emits when row i is
// hovered: one per series key present in the row, colored through the
// series CSS custom property. Returns nil when i is out of range.
func (d Dataset) Payload(i int, keys []string) []DataPoint {
	if i < 0 || i >= len(d.Rows) {
		return nil
	}

	row := d.Rows[i]
	var points []DataPoint
	for _, key := range keys {
		v, ok := row[key]
		if !ok || v == nil {
			continue
		}
		points = append(points, DataPoint{
			DataKey: key,
			Name:    key,
			Value:   v,
			Color:   "var(--color-" + key + ")",
			Payload: row,
		})
	}
	return points
}
