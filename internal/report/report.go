// SPDX-License-Identifier: MIT

// Package report evaluates every polygon query over a survey and renders
// the results as text or as an HTML chart.
package report

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/polymetrics/internal/survey"
	"github.com/katalvlaran/polymetrics/polygon"
	"go.uber.org/zap"
)

// Border is one Bordering evaluation. Err is set instead of Value when the
// query failed (degenerate geometry, missing tags, bad reach).
type Border struct {
	Type  int
	Value float64
	Err   error
}

// Entry holds the metrics of one survey polygon.
type Entry struct {
	Name      string
	Vertices  []polygon.Point
	Segments  []polygon.Vector
	Lengths   []float64
	Angles    []float64 // nil when AngleErr is set
	AngleErr  error
	Centroid  polygon.Point
	Area      float64
	Perimeter float64
	Reach     float64
	Borders   []Border
}

// Degenerate reports whether any angle of the polygon is undefined.
func (e Entry) Degenerate() bool {
	return errors.Is(e.AngleErr, polygon.ErrDegenerateGeometry)
}

// Report is the evaluated survey, in document order.
type Report struct {
	Entries []Entry
}

// Build evaluates s. A polygon that cannot be constructed aborts the build;
// query failures are recorded on the entry and logged at warn level.
func Build(s *survey.Survey, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	r := &Report{Entries: make([]Entry, 0, len(s.Polygons))}
	for _, se := range s.Polygons {
		p, err := se.Polygon(log)
		if err != nil {
			return nil, err
		}
		e := Measure(se.Name, p, se.Reach(s.Reach), se.Queries())
		if e.AngleErr != nil {
			log.Warn("degenerate polygon", zap.String("polygon", se.Name), zap.Error(e.AngleErr))
		}
		for _, b := range e.Borders {
			if b.Err != nil && !errors.Is(b.Err, polygon.ErrDegenerateGeometry) {
				log.Warn("bordering query failed",
					zap.String("polygon", se.Name), zap.Int("type", b.Type), zap.Error(b.Err))
			}
		}
		log.Debug("polygon measured",
			zap.String("polygon", se.Name),
			zap.Int("vertices", p.Len()),
			zap.Float64("area", e.Area))
		r.Entries = append(r.Entries, e)
	}
	log.Info("survey measured", zap.Int("polygons", len(r.Entries)))

	return r, nil
}

// Measure runs every query on p.
func Measure(name string, p *polygon.Polygon, reach float64, queries []int) Entry {
	segs := p.Segments()
	lengths := make([]float64, len(segs))
	for i, s := range segs {
		lengths[i] = s.Length()
	}
	angles, angleErr := p.Angles()

	e := Entry{
		Name:      name,
		Vertices:  p.Vertices(),
		Segments:  segs,
		Lengths:   lengths,
		Angles:    angles,
		AngleErr:  angleErr,
		Centroid:  p.Centroid(),
		Area:      p.Area(),
		Perimeter: p.Perimeter(),
		Reach:     reach,
		Borders:   make([]Border, 0, len(queries)),
	}
	for _, q := range queries {
		v, err := p.Bordering(q, reach)
		e.Borders = append(e.Borders, Border{Type: q, Value: v, Err: err})
	}

	return e
}

// typeLabel prints negative border types as "any".
func typeLabel(t int) string {
	if t < 0 {
		return "any"
	}

	return strconv.Itoa(t)
}
