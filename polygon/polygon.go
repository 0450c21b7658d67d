// SPDX-License-Identifier: MIT

package polygon

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// minVertices is the smallest vertex count that encloses an area.
const minVertices = 3

// Polygon is an immutable, closed sequence of vertices with optional
// per-edge border tags. Edge i runs from vertex i to vertex i+1 (mod N).
//
// A Polygon never changes after New returns, so any number of goroutines
// may query it without synchronization.
type Polygon struct {
	vertices    []Point
	borderTypes []int // nil, or len(borderTypes) == len(vertices)
}

// New validates vertices and returns a Polygon owning a copy of them.
//
// Errors (all wrap ErrInvalidPolygon):
//   - fewer than three vertices
//   - a NaN or ±Inf coordinate
//   - WithBorderTypes given a tag count different from len(vertices)
//
// Complexity: O(N).
func New(vertices []Point, opts ...Option) (*Polygon, error) {
	o := gatherOptions(opts)
	log := o.logger

	n := len(vertices)
	if n < minVertices {
		log.Debug("polygon rejected", zap.Int("vertices", n), zap.String("reason", "too few vertices"))
		return nil, fmt.Errorf("%w: need at least %d vertices, got %d", ErrInvalidPolygon, minVertices, n)
	}
	for i, v := range vertices {
		if !v.IsFinite() {
			log.Debug("polygon rejected", zap.Int("vertex", i), zap.String("reason", "non-finite coordinate"))
			return nil, fmt.Errorf("%w: vertex %d (%v, %v) is not finite", ErrInvalidPolygon, i, v.X, v.Y)
		}
	}
	if o.borderTypes != nil && len(o.borderTypes) != n {
		log.Debug("polygon rejected",
			zap.Int("vertices", n),
			zap.Int("borderTypes", len(o.borderTypes)),
			zap.String("reason", "border type count mismatch"))
		return nil, fmt.Errorf("%w: %d border types for %d vertices", ErrInvalidPolygon, len(o.borderTypes), n)
	}

	p := &Polygon{
		vertices:    append(make([]Point, 0, n), vertices...),
		borderTypes: o.borderTypes, // already copied by WithBorderTypes
	}
	log.Debug("polygon built", zap.Int("vertices", n), zap.Bool("borderTypes", p.HasBorderTypes()))

	return p, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples.
func MustNew(vertices []Point, opts ...Option) *Polygon {
	p, err := New(vertices, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// FromXY builds a Polygon from coordinate pairs.
func FromXY(coords [][2]float64, opts ...Option) (*Polygon, error) {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = Point{X: c[0], Y: c[1]}
	}

	return New(pts, opts...)
}

// Len returns the number of vertices, which equals the number of edges.
func (p *Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns vertex i mod N.
func (p *Polygon) Vertex(i int) Point {
	return p.vertices[p.wrap(i)]
}

// Vertices returns a copy of the vertex sequence.
func (p *Polygon) Vertices() []Point {
	return append(make([]Point, 0, len(p.vertices)), p.vertices...)
}

// HasBorderTypes reports whether the polygon was built with border tags.
func (p *Polygon) HasBorderTypes() bool {
	return p.borderTypes != nil
}

// BorderTypes returns a copy of the border tags, or nil when absent.
func (p *Polygon) BorderTypes() []int {
	if p.borderTypes == nil {
		return nil
	}

	return append(make([]int, 0, len(p.borderTypes)), p.borderTypes...)
}

// wrap maps any integer onto [0, N).
func (p *Polygon) wrap(i int) int {
	n := len(p.vertices)
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// SegmentAt returns the directed edge from vertex i to vertex i+1, both
// taken mod N. Edge N-1 closes the polygon back onto vertex 0.
func (p *Polygon) SegmentAt(i int) Vector {
	from := p.vertices[p.wrap(i)]
	to := p.vertices[p.wrap(i+1)]

	return to.Sub(from)
}

// SegmentLength returns the Euclidean length of SegmentAt(i).
func (p *Polygon) SegmentLength(i int) float64 {
	return p.SegmentAt(i).Length()
}

// Segments returns every edge vector in order, edge 0 first.
func (p *Polygon) Segments() []Vector {
	segs := make([]Vector, len(p.vertices))
	for i := range segs {
		segs[i] = p.SegmentAt(i)
	}

	return segs
}

// Perimeter returns the summed length of all N edges.
func (p *Polygon) Perimeter() float64 {
	total := 0.0
	for i := range p.vertices {
		total += p.SegmentLength(i)
	}

	return total
}

// AngleAt returns the angle between edge i and edge i+1:
//
//	asin( |seg_i × seg_{i+1}| / (|seg_i| · |seg_{i+1}|) )
//
// The absolute value is taken before asin, so the result is the acute
// angle between the two directions, always in [0, π/2]: 0 for collinear
// edges, π/2 for perpendicular ones. Bordering relies on this exact value.
//
// Errors: ErrDegenerateGeometry if either edge has zero length.
func (p *Polygon) AngleAt(i int) (float64, error) {
	seg1, seg2 := p.SegmentAt(i), p.SegmentAt(i+1)
	len1, len2 := seg1.Length(), seg2.Length()
	if len1 == 0 {
		return 0, fmt.Errorf("%w: edge %d has zero length", ErrDegenerateGeometry, p.wrap(i))
	}
	if len2 == 0 {
		return 0, fmt.Errorf("%w: edge %d has zero length", ErrDegenerateGeometry, p.wrap(i+1))
	}

	ratio := math.Abs(seg1.Cross(seg2) / len1 / len2)
	if ratio > 1 {
		ratio = 1 // rounding can overshoot for perpendicular edges
	}

	return math.Asin(ratio), nil
}

// Angles returns AngleAt(i) for every i in [0, N).
// The first degenerate vertex aborts the call.
func (p *Polygon) Angles() ([]float64, error) {
	angles := make([]float64, len(p.vertices))
	for i := range angles {
		a, err := p.AngleAt(i)
		if err != nil {
			return nil, err
		}
		angles[i] = a
	}

	return angles, nil
}

// Centroid returns the arithmetic mean of the vertices. This is the vertex
// centroid, not the area-weighted one.
func (p *Polygon) Centroid() Point {
	var c Point
	for _, v := range p.vertices {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(p.vertices))
	c.X /= n
	c.Y /= n

	return c
}

// Area sums |(c − v_i) × (c − v_{i+1})| / 2 for i in [0, N-2], where c is
// Centroid. The closing triangle (c, v_{N-1}, v_0) is never added and the
// absolute value is taken per triangle, so the result is a fan estimate
// rather than the shoelace area.
func (p *Polygon) Area() float64 {
	c := p.Centroid()
	total := 0.0
	for i := 0; i < len(p.vertices)-1; i++ {
		a := c.Sub(p.vertices[i])
		b := c.Sub(p.vertices[i+1])
		total += math.Abs(a.Cross(b)) / 2
	}

	return total
}

// Bordering estimates the extent of land within reach of the edges tagged
// borderType; a negative borderType (see AnyBorder) selects every edge.
//
// For i = 1..N, with L = SegmentLength and A = AngleAt, each selected edge adds
//
//	reach·L(i) + L(i−1)·L(i)·sin A(i−1)/4 + L(i)·L(i+1)·sin A(i)/4
//
// The tag tested for step i is BorderTypes()[i mod N], addressed by the
// loop counter exactly like the edge.
//
// Errors:
//   - ErrInvalidReach if reach is negative, NaN or ±Inf.
//   - ErrNoBorderTypes if borderType ≥ 0 and the polygon has no tags.
//   - ErrDegenerateGeometry if a selected edge touches a zero-length edge.
//
// Complexity: O(N).
func (p *Polygon) Bordering(borderType int, reach float64) (float64, error) {
	if math.IsNaN(reach) || math.IsInf(reach, 0) || reach < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidReach, reach)
	}
	if borderType >= 0 && p.borderTypes == nil {
		return 0, fmt.Errorf("%w: cannot select border type %d", ErrNoBorderTypes, borderType)
	}

	n := len(p.vertices)
	total := 0.0
	for i := 1; i <= n; i++ {
		if borderType >= 0 && borderType != p.borderTypes[p.wrap(i)] {
			continue
		}

		prevAngle, err := p.AngleAt(i - 1)
		if err != nil {
			return 0, err
		}
		nextAngle, err := p.AngleAt(i)
		if err != nil {
			return 0, err
		}

		cur := p.SegmentLength(i)
		total += reach * cur
		total += p.SegmentLength(i-1) * cur * math.Sin(prevAngle) / 4
		total += cur * p.SegmentLength(i+1) * math.Sin(nextAngle) / 4
	}

	return total, nil
}
