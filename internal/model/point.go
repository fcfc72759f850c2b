// Package model defines the data points and datasets exchanged with the
// charting backend.
package model

import (
	"fmt"
	"strconv"
)

// Record is a loosely typed record as emitted by a charting backend.
type Record map[string]any

// String returns the non-empty string stored under key.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Number returns the numeric value stored under key.
func (r Record) Number(key string) (float64, bool) {
	return toFloat(r[key])
}

// Standard data point field names.
const (
	FieldDataKey = "dataKey"
	FieldName    = "name"
	FieldValue   = "value"
	FieldColor   = "color"
	FieldPayload = "payload"
	FieldFill    = "fill"
)

// DataPoint is one rendered value emitted by the charting backend for
// tooltip or legend display. Payload is the source row the point was drawn
// from; Fields carries any further top-level fields. Empty strings are
// treated as absent.
type DataPoint struct {
	DataKey string
	Name    string
	Value   any
	Color   string
	Payload Record
	Fields  Record
}

// FromRecord builds a DataPoint from a decoded record. A payload that is
// not itself a record is dropped.
func FromRecord(r Record) DataPoint {
	p := DataPoint{Fields: Record{}}

	for k, v := range r {
		switch k {
		case FieldDataKey:
			p.DataKey = stringify(v)
		case FieldName:
			p.Name = stringify(v)
		case FieldValue:
			p.Value = v
		case FieldColor:
			p.Color, _ = v.(string)
		case FieldPayload:
			p.Payload = asRecord(v)
		default:
			p.Fields[k] = v
		}
	}

	if len(p.Fields) == 0 {
		p.Fields = nil
	}
	return p
}

// Record flattens the data point back into a record.
func (p DataPoint) Record() Record {
	r := Record{}
	for k, v := range p.Fields {
		r[k] = v
	}
	if p.DataKey != "" {
		r[FieldDataKey] = p.DataKey
	}
	if p.Name != "" {
		r[FieldName] = p.Name
	}
	if p.Value != nil {
		r[FieldValue] = p.Value
	}
	if p.Color != "" {
		r[FieldColor] = p.Color
	}
	if p.Payload != nil {
		r[FieldPayload] = p.Payload
	}
	return r
}

// Field returns the non-empty string value of a top-level field.
func (p *DataPoint) Field(name string) (string, bool) {
	if p == nil {
		return "", false
	}

	var s string
	switch name {
	case FieldDataKey:
		s = p.DataKey
	case FieldName:
		s = p.Name
	case FieldColor:
		s = p.Color
	case FieldValue:
		s, _ = p.Value.(string)
	case FieldPayload:
		return "", false
	default:
		return p.Fields.String(name)
	}
	return s, s != ""
}

// HasValue reports whether the point carries a value.
func (p *DataPoint) HasValue() bool {
	return p != nil && p.Value != nil
}

// Fill returns the fill color of the source row, if any.
func (p *DataPoint) Fill() string {
	if p == nil {
		return ""
	}
	fill, _ := p.Payload.String(FieldFill)
	return fill
}

func asRecord(v any) Record {
	switch t := v.(type) {
	case Record:
		return t
	case map[string]any:
		return Record(t)
	default:
		return nil
	}
}

// stringify keeps numeric series keys usable as lookup keys.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int, int64, float64:
		return fmt.Sprint(t)
	default:
		return ""
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
