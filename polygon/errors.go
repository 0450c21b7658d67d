// SPDX-License-Identifier: MIT

package polygon

import "errors"

// Every message is prefixed with "polygon:". Call sites add context with
// fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
var (
	// ErrInvalidPolygon is returned by New when the polygon has fewer than
	// three vertices, a non-finite coordinate, or a border tag count that
	// differs from the vertex count.
	ErrInvalidPolygon = errors.New("polygon: invalid polygon")

	// ErrDegenerateGeometry indicates a zero-length segment adjacent to a
	// requested angle, which leaves the angle undefined.
	ErrDegenerateGeometry = errors.New("polygon: degenerate geometry")

	// ErrNoBorderTypes indicates a Bordering query for a specific type on a
	// polygon built without WithBorderTypes.
	ErrNoBorderTypes = errors.New("polygon: polygon has no border types")

	// ErrInvalidReach indicates a negative, NaN or infinite reach distance.
	ErrInvalidReach = errors.New("polygon: reach distance must be finite and non-negative")
)
