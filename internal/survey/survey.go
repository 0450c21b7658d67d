// SPDX-License-Identifier: MIT

// Package survey reads YAML documents that describe plots to be measured:
// each entry names a polygon, its vertices, optional border tags, a reach
// distance and the border types to query.
//
//	reach: 0.5
//	polygons:
//	  - name: plot-a
//	    vertices: [[0, 0], [1, 0], [1, 1], [0, 1]]
//	    border_types: [0, 0, 1, 1]
//	    query: [0, 1, -1]
package survey

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/polymetrics/polygon"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrBadSurvey marks a document that parses but cannot describe polygons.
var ErrBadSurvey = errors.New("survey: invalid survey")

// Survey is a parsed document.
type Survey struct {
	Reach    float64 `yaml:"reach"`
	Polygons []Entry `yaml:"polygons"`
}

// Entry describes one polygon.
type Entry struct {
	Name        string       `yaml:"name"`
	Vertices    [][2]float64 `yaml:"vertices"`
	BorderTypes []int        `yaml:"border_types,omitempty"`
	ReachDist   *float64     `yaml:"reach,omitempty"`
	Query       []int        `yaml:"query,omitempty"`
}

// Load reads and parses the survey at path.
func Load(path string) (*Survey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("survey: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a survey and checks entry names. Geometry is validated
// later, by Entry.Polygon.
func Parse(r io.Reader) (*Survey, error) {
	var s Survey
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadSurvey)
		}
		return nil, fmt.Errorf("survey: decode: %w", err)
	}

	if len(s.Polygons) == 0 {
		return nil, fmt.Errorf("%w: no polygons", ErrBadSurvey)
	}
	seen := make(map[string]struct{}, len(s.Polygons))
	for i, e := range s.Polygons {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: polygon %d has no name", ErrBadSurvey, i)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate polygon name %q", ErrBadSurvey, e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	return &s, nil
}

// Polygon builds the polygon described by e. Errors wrap
// polygon.ErrInvalidPolygon and carry the entry name.
func (e Entry) Polygon(log *zap.Logger) (*polygon.Polygon, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts := []polygon.Option{polygon.WithLogger(log.With(zap.String("polygon", e.Name)))}
	if e.BorderTypes != nil {
		opts = append(opts, polygon.WithBorderTypes(e.BorderTypes...))
	}

	p, err := polygon.FromXY(e.Vertices, opts...)
	if err != nil {
		return nil, fmt.Errorf("polygon %q: %w", e.Name, err)
	}

	return p, nil
}

// Reach returns the entry's own reach, or def when it has none.
func (e Entry) Reach(def float64) float64 {
	if e.ReachDist != nil {
		return *e.ReachDist
	}

	return def
}

// Queries returns the border types to evaluate. Without an explicit list
// the entry is queried for every edge (polygon.AnyBorder) and, when tagged,
// for each distinct tag in order of first appearance.
func (e Entry) Queries() []int {
	if len(e.Query) > 0 {
		return append([]int(nil), e.Query...)
	}

	q := []int{polygon.AnyBorder}
	seen := make(map[int]struct{})
	for _, t := range e.BorderTypes {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		q = append(q, t)
	}

	return q
}
