// Package input reads data points and datasets emitted by a charting
// backend from files or standard input. JSON and YAML are both accepted.
package input

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/nestchart/internal/model"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// maxInputSize bounds how much is read from a single source.
const maxInputSize = 10 * 1024 * 1024

// AdapterError represents an input-related error.
type AdapterError struct {
	Source  string
	Message string
	Err     error
}

func (e *AdapterError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Source + ": " + e.Message
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// Source reads chart input from a file or standard input.
type Source struct {
	name   string
	reader io.Reader
	closer io.Closer
}

// Open opens path for reading; StdinPath or the empty string selects
// standard input.
func Open(path string) (*Source, error) {
	if path == "" || path == StdinPath {
		return NewSource("stdin", os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &AdapterError{Source: path, Message: "failed to open input", Err: err}
	}
	return &Source{name: path, reader: f, closer: f}, nil
}

// NewSource wraps an existing reader.
func NewSource(name string, r io.Reader) *Source {
	return &Source{name: name, reader: r}
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return s.name
}

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *Source) readAll() ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(bufio.NewReader(s.reader), maxInputSize+1))
	if err != nil {
		return nil, &AdapterError{Source: s.name, Message: "failed to read input", Err: err}
	}
	if len(data) > maxInputSize {
		return nil, &AdapterError{Source: s.name, Message: "input too large"}
	}
	return bytes.TrimSpace(data), nil
}

// Points reads a list of data points. A single object is accepted as a
// one-point list. Empty input yields no points.
func (s *Source) Points() ([]model.DataPoint, error) {
	data, err := s.readAll()
	if err != nil || len(data) == 0 {
		return nil, err
	}

	var records []model.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		var single model.Record
		if err2 := yaml.Unmarshal(data, &single); err2 != nil {
			return nil, &AdapterError{Source: s.name, Message: "failed to parse data points", Err: err}
		}
		records = []model.Record{single}
	}

	points := make([]model.DataPoint, 0, len(records))
	for _, r := range records {
		points = append(points, model.FromRecord(r))
	}
	return points, nil
}

// Dataset reads tabular chart data: either {x: ..., rows: [...]} or a bare
// list of rows.
func (s *Source) Dataset() (model.Dataset, error) {
	data, err := s.readAll()
	if err != nil || len(data) == 0 {
		return model.Dataset{}, err
	}

	var ds model.Dataset
	if err := yaml.Unmarshal(data, &ds); err == nil && len(ds.Rows) > 0 {
		return ds, nil
	}

	var rows []model.Record
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return model.Dataset{}, &AdapterError{Source: s.name, Message: "failed to parse dataset", Err: err}
	}
	return model.Dataset{Rows: rows}, nil
}

// ReadPoints opens path and reads its data points.
func ReadPoints(path string) ([]model.DataPoint, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	return src.Points()
}

// ReadDataset opens path and reads its dataset.
func ReadDataset(path string) (model.Dataset, error) {
	src, err := Open(path)
	if err != nil {
		return model.Dataset{}, err
	}
	defer func() { _ = src.Close() }()
	return src.Dataset()
}
