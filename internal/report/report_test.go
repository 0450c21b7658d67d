// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/polymetrics/internal/report"
	"github.com/katalvlaran/polymetrics/internal/survey"
	"github.com/katalvlaran/polymetrics/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `
reach: 0.5
polygons:
  - name: square
    vertices: [[0, 0], [1, 0], [1, 1], [0, 1]]
    border_types: [0, 0, 0, 0]
    query: [-1, 0, 7]
  - name: pinched
    vertices: [[0, 0], [1, 0], [1, 0], [0, 1]]
    border_types: [0, 0, 0, 1]
  - name: untagged
    vertices: [[0, 0], [2, 0], [0, 2]]
    query: [0]
`

func build(t *testing.T) *report.Report {
	t.Helper()
	s, err := survey.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	r, err := report.Build(s, nil)
	require.NoError(t, err)
	require.Len(t, r.Entries, 3)

	return r
}

// TestBuild_Square checks the reference square end to end.
func TestBuild_Square(t *testing.T) {
	sq := build(t).Entries[0]

	assert.Equal(t, "square", sq.Name)
	assert.False(t, sq.Degenerate())
	assert.Equal(t, []float64{1, 1, 1, 1}, sq.Lengths)
	assert.Len(t, sq.Angles, 4)
	assert.Equal(t, polygon.Point{X: 0.5, Y: 0.5}, sq.Centroid)
	assert.InDelta(t, 0.75, sq.Area, 1e-12)
	assert.InDelta(t, 4.0, sq.Perimeter, 1e-12)
	assert.Equal(t, 0.5, sq.Reach)

	require.Len(t, sq.Borders, 3)
	for i, want := range []float64{4, 4, 0} {
		assert.NoError(t, sq.Borders[i].Err)
		assert.InDelta(t, want, sq.Borders[i].Value, 1e-12, "query %d", sq.Borders[i].Type)
	}
}

// TestBuild_DegenerateRecorded keeps going past a zero-length edge.
func TestBuild_DegenerateRecorded(t *testing.T) {
	p := build(t).Entries[1]

	assert.True(t, p.Degenerate())
	assert.Nil(t, p.Angles)
	assert.Equal(t, 0.0, p.Lengths[1])

	// default queries: any, 0, 1
	require.Len(t, p.Borders, 3)
	assert.ErrorIs(t, p.Borders[0].Err, polygon.ErrDegenerateGeometry)
	assert.ErrorIs(t, p.Borders[1].Err, polygon.ErrDegenerateGeometry)
	assert.NoError(t, p.Borders[2].Err)
	assert.InDelta(t, 1.0, p.Borders[2].Value, 1e-12)
}

// TestBuild_MissingTags records ErrNoBorderTypes for typed queries.
func TestBuild_MissingTags(t *testing.T) {
	u := build(t).Entries[2]
	require.Len(t, u.Borders, 1)
	assert.ErrorIs(t, u.Borders[0].Err, polygon.ErrNoBorderTypes)
	assert.InDelta(t, 4.0/3.0, u.Area, 1e-12)
}

// TestBuild_InvalidPolygon aborts on a polygon that cannot be built.
func TestBuild_InvalidPolygon(t *testing.T) {
	s := &survey.Survey{Polygons: []survey.Entry{{Name: "line", Vertices: [][2]float64{{0, 0}, {1, 0}}}}}
	_, err := report.Build(s, nil)
	assert.ErrorIs(t, err, polygon.ErrInvalidPolygon)
}

// TestWriteText spot-checks the rendered tables.
func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, build(t).WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, "polygon square")
	assert.Contains(t, out, "(0.5000, 0.5000)")
	assert.Contains(t, out, "0.7500")
	assert.Contains(t, out, "any")
	assert.Contains(t, out, "4.0000")
	assert.Contains(t, out, "polygon pinched")
	assert.Contains(t, out, "degenerate geometry")
	assert.Contains(t, out, "has no border types")
}

// TestRenderHTML writes a page naming every series.
func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, build(t).RenderHTML(&buf, "plots"))
	out := buf.String()

	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "plots")
	for _, name := range []string{"square", "pinched", "untagged", "centroids"} {
		assert.Contains(t, out, name)
	}
}
