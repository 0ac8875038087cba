package collision_test

import (
	"fmt"

	"github.com/katalvlaran/tilecast/collision"
	"github.com/katalvlaran/tilecast/geometry"
	"github.com/katalvlaran/tilecast/occupancy"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Collide
////////////////////////////////////////////////////////////////////////////////

// ExampleCollide builds a 5×5 grid with a 2×2 block and shoots a segment
// from the left edge into it.
// Scenario:
//
//   - cells x∈{1,2}, y∈{1,2} occupied
//   - segment (0,1.1) → (2,1), slightly descending
//   - first crossing that enters the block is the vertical line x=1
func ExampleCollide() {
	g, _ := occupancy.New(5, 5)
	_ = g.FillRect(1, 1, 2, 2)
	fmt.Print(g)

	hit, ok, err := collision.Collide(geometry.Pt(0, 1.1), geometry.Pt(2, 1), g)
	if err != nil {
		fmt.Println("collide:", err)
		return
	}
	fmt.Println(ok, hit)

	// Output:
	// _____
	// _____
	// _##__
	// _##__
	// _____
	// true hit (-1,0) at (1, 1.05): cell (1,1) via vertical line 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: Walker
////////////////////////////////////////////////////////////////////////////////

// ExampleWalker lists every crossing of a segment, nearest first, with the
// cell entered there.
func ExampleWalker() {
	w := collision.NewWalker(geometry.Pt(0.5, 0.5), geometry.Pt(2.5, 2.2))
	for c := range w.All() {
		fmt.Printf("%-10s line %d at (%.3f, %.3f) enters (%d,%d)\n",
			c.Axis, c.Line, c.Point.X, c.Point.Y, c.CellX, c.CellY)
	}

	// Output:
	// vertical   line 1 at (1.000, 0.925) enters (1,0)
	// horizontal line 1 at (1.088, 1.000) enters (1,1)
	// vertical   line 2 at (2.000, 1.775) enters (2,1)
	// horizontal line 2 at (2.265, 2.000) enters (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: LineOfSight
////////////////////////////////////////////////////////////////////////////////

// ExampleLineOfSight checks visibility past a wall with a one-cell gap.
func ExampleLineOfSight() {
	g, _ := occupancy.Parse("" +
		"__#__\n" +
		"_____\n" +
		"__#__\n" +
		"__#__\n")

	for _, to := range []geometry.Point{geometry.Pt(4.5, 2.5), geometry.Pt(4.5, 0.5)} {
		visible, err := collision.LineOfSight(geometry.Pt(0.5, 2.5), to, g)
		fmt.Println(to, visible, err)
	}

	// Output:
	// (4.5, 2.5) true <nil>
	// (4.5, 0.5) false <nil>
}
