package geometry

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultTolerance is the determinant magnitude below which two lines are
// considered parallel by Intersect.
const DefaultTolerance = 1e-5

// Point is a position in continuous 2D space.
// It is a plain value: copy it freely, compare it with ==.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromVec converts a vec.Vec2 into a Point.
func FromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec returns p as a vec.Vec2 for vector arithmetic.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Cell returns the integer coordinates of the unit cell [x,x+1)×[y,y+1)
// that contains p.
func (p Point) Cell() (x, y int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// String implements fmt.Stringer, e.g. "(1, 1.05)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
