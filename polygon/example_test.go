// SPDX-License-Identifier: MIT

package polygon_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polymetrics/polygon"
)

// ExamplePolygon_Bordering
//
// Scenario:
//
//	A unit square plot whose four edges all face the same neighbour (tag 0),
//	with a reach of 0.5. Each edge adds a 0.5×1 strip and two corner
//	triangles of 1·1·sin(π/2)/4, so every edge contributes exactly 1.
//
// Complexity: O(N)
func ExamplePolygon_Bordering() {
	sq := polygon.MustNew(
		[]polygon.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		polygon.WithBorderTypes(0, 0, 0, 0),
	)

	same, _ := sq.Bordering(0, 0.5)
	other, _ := sq.Bordering(1, 0.5)
	fmt.Printf("type 0: %.2f\ntype 1: %.2f\n", same, other)
	// Output:
	// type 0: 4.00
	// type 1: 0.00
}

// ExamplePolygon_Area shows the fan estimate next to the vertex centroid.
func ExamplePolygon_Area() {
	tri := polygon.MustNew([]polygon.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}})

	c := tri.Centroid()
	fmt.Printf("centroid=(%.4f, %.4f) area=%.4f\n", c.X, c.Y, tri.Area())
	// Output:
	// centroid=(0.6667, 0.6667) area=1.3333
}

// ExamplePolygon_AngleAt prints the corner angles of a 3-4-5 triangle.
func ExamplePolygon_AngleAt() {
	tri := polygon.MustNew([]polygon.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}})

	for i := 0; i < tri.Len(); i++ {
		a, err := tri.AngleAt(i)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("angle %d: %.4f rad\n", i, a)
	}
	// Output:
	// angle 0: 1.5708 rad
	// angle 1: 0.6435 rad
	// angle 2: 0.9273 rad
}

// ExampleNew_invalid demonstrates matching construction errors.
func ExampleNew_invalid() {
	_, err := polygon.New([]polygon.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	fmt.Println(errors.Is(err, polygon.ErrInvalidPolygon))
	fmt.Println(err)
	// Output:
	// true
	// polygon: invalid polygon: need at least 3 vertices, got 2
}
