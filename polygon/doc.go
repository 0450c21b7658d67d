// SPDX-License-Identifier: MIT

// Package polygon computes planar metrics of a simple, ordered polygon.
//
// 🚀 What does it measure?
//
//	Given N ≥ 3 vertices wound anticlockwise (and, optionally, one integer
//	border tag per edge) a Polygon answers:
//	  • SegmentAt / SegmentLength  directed edge vectors and their norms
//	  • AngleAt    acute angle between consecutive edges, in [0, π/2]
//	  • Centroid   arithmetic mean of the vertices
//	  • Area       fan area around the centroid
//	  • Bordering  strip + corner-triangle estimate of the land reached
//	               from the edges of one border type
//
// ✨ Key properties:
//   - immutable: New copies its inputs, no method mutates state
//   - safe for concurrent readers without locking
//   - every index is taken modulo N, negative indices included
//   - sentinel errors, matched with errors.Is
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polymetrics/polygon"
//
//	sq, err := polygon.New(
//		[]polygon.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
//		polygon.WithBorderTypes(0, 0, 0, 0),
//	)
//	if err != nil {
//		// ErrInvalidPolygon
//	}
//	total, err := sq.Bordering(0, 0.5) // 4.0
//
// Caveats:
//
//	AngleAt reports |sin θ| through asin, so it never exceeds π/2 and carries
//	no sign. Area stops at triangle (c, v[N-2], v[N-1]) and never adds the
//	closing triangle (c, v[N-1], v[0]). Clockwise input is accepted; the
//	values are geometrically consistent but the "interior" reading inverts.
//
// Complexity:
//
//   - Time:   O(1) per edge query, O(N) for Centroid, Area and Bordering
//   - Memory: O(N) for the owned copies
package polygon
