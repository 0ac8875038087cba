package collision

import (
	"fmt"

	"github.com/katalvlaran/tilecast/geometry"
)

// Axis tells which family of grid lines a crossing belongs to.
type Axis int

const (
	// Vertical lines have constant x (x = Line).
	Vertical Axis = iota
	// Horizontal lines have constant y (y = Line).
	Horizontal
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Direction reports the face of the struck cell relative to the traversal:
// {-1, 0} for a vertical crossing, {0, -1} for a horizontal one.
func (a Axis) Direction() Direction {
	if a == Vertical {
		return Direction{DX: -1, DY: 0}
	}

	return Direction{DX: 0, DY: -1}
}

// Direction is a unit step on one axis.
type Direction struct {
	DX, DY int
}

// String implements fmt.Stringer, e.g. "(-1,0)".
func (d Direction) String() string {
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// Crossing is one point where the segment passes a grid line, together with
// the cell it enters there.
type Crossing struct {
	Axis  Axis
	Line  int            // x for Vertical, y for Horizontal
	Point geometry.Point // where the segment meets the line
	CellX int            // cell entered at Point
	CellY int
	// DistSq is the squared Euclidean distance from the segment start.
	DistSq float64
}

// Hit is the first crossing whose cell is occupied.
type Hit struct {
	Crossing
	Direction Direction
}

// String implements fmt.Stringer.
func (h Hit) String() string {
	return fmt.Sprintf("hit %v at %v: cell (%d,%d) via %v line %d",
		h.Direction, h.Point, h.CellX, h.CellY, h.Axis, h.Line)
}
