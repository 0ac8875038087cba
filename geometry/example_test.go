package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/tilecast/geometry"
)

// ExampleIntersect intersects a vertical and a horizontal line.
func ExampleIntersect() {
	p, ok := geometry.Intersect(
		geometry.Pt(1, 1), geometry.Pt(1, 3),
		geometry.Pt(0, 2), geometry.Pt(4, 2),
		geometry.DefaultTolerance,
	)
	fmt.Println(p, ok)

	_, ok = geometry.Intersect(
		geometry.Pt(0, 0), geometry.Pt(1, 1),
		geometry.Pt(0, 1), geometry.Pt(1, 2),
		geometry.DefaultTolerance,
	)
	fmt.Println("parallel:", !ok)

	// Output:
	// (1, 2) true
	// parallel: true
}

// ExampleCrossings lists the grid lines crossed in each direction.
func ExampleCrossings() {
	for _, span := range [][2]float64{{1.2, 4.7}, {4.7, 1.2}, {3, 3}} {
		fmt.Print(span, ":")
		for v := range geometry.NewCrossings(span[0], span[1]).All() {
			fmt.Print(" ", v)
		}
		fmt.Println()
	}

	// Output:
	// [1.2 4.7]: 2 3 4
	// [4.7 1.2]: 4 3 2
	// [3 3]:
}
