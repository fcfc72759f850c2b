package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Points_JSON(t *testing.T) {
	data := `[
		{"dataKey": "visits", "name": "pageViews", "value": 1200, "color": "#4F46E5"},
		{"dataKey": "x", "payload": {"dataKey": "pageViews", "fill": "#22C55E"}}
	]`

	points, err := NewSource("test", strings.NewReader(data)).Points()
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "visits", points[0].DataKey)
	assert.Equal(t, "pageViews", points[0].Name)
	assert.Equal(t, 1200, points[0].Value)
	assert.Equal(t, "#4F46E5", points[0].Color)

	v, ok := points[1].Payload.String("dataKey")
	require.True(t, ok)
	assert.Equal(t, "pageViews", v)
	assert.Equal(t, "#22C55E", points[1].Fill())
}

func TestSource_Points_YAMLSingle(t *testing.T) {
	data := "dataKey: sleep\nvalue: 11.5\nbrowser: chrome\n"

	points, err := NewSource("test", strings.NewReader(data)).Points()
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "sleep", points[0].DataKey)
	assert.Equal(t, 11.5, points[0].Value)

	browser, ok := points[0].Field("browser")
	require.True(t, ok)
	assert.Equal(t, "chrome", browser)
}

func TestSource_Points_Empty(t *testing.T) {
	points, err := NewSource("test", strings.NewReader("  \n")).Points()
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestSource_Points_Invalid(t *testing.T) {
	_, err := NewSource("test", strings.NewReader("[unterminated")).Points()
	require.Error(t, err)

	var adapterErr *AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, "test", adapterErr.Source)
}

func TestSource_Dataset(t *testing.T) {
	wrapped := `{"x": "day", "rows": [{"day": "Mon", "sleep": 11}, {"day": "Tue", "sleep": 12}]}`
	ds, err := NewSource("test", strings.NewReader(wrapped)).Dataset()
	require.NoError(t, err)
	assert.Equal(t, "day", ds.XKey)
	assert.Equal(t, []string{"Mon", "Tue"}, ds.Labels())

	bare := "- label: Week 1\n  weight: 3.4\n- label: Week 2\n  weight: 3.9\n"
	ds, err = NewSource("test", strings.NewReader(bare)).Dataset()
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "Week 2", ds.Label(1))
}

func TestReadPoints_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- dataKey: feed\n  value: 7\n"), 0644))

	points, err := ReadPoints(path)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "feed", points[0].DataKey)

	_, err = ReadPoints(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
