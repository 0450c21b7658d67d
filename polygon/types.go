// SPDX-License-Identifier: MIT

package polygon

import "math"

// Point is a vertex in the plane. X increases to the right, Y increases up,
// which is what gives "anticlockwise" its meaning.
type Point struct {
	X, Y float64
}

// Vector is a displacement between two points, e.g. an edge of a Polygon.
type Vector struct {
	X, Y float64
}

// Sub returns the vector from q to p (p − q).
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Length returns the Euclidean norm sqrt(x² + y²).
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Cross returns the z-component of the 3D cross product v × w.
// Positive when w turns anticlockwise from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Dot returns the dot product v · w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length is the free-function form of Vector.Length.
func Length(v Vector) float64 {
	return v.Length()
}
