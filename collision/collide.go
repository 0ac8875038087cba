package collision

import (
	"fmt"

	"github.com/katalvlaran/tilecast/geometry"
	"github.com/katalvlaran/tilecast/occupancy"
)

// Collide walks the segment p1→p2 across g and returns the first occupied
// cell it enters. The boolean is false when the segment reaches p2 without
// entering an occupied cell.
//
// Stage 1 (Validate): both endpoints inside g, start cell free.
// Stage 2 (Walk): test the cell entered at each crossing, nearest first.
// Stage 3 (Finalize): first occupied cell → Hit; exhausted → no hit.
//
// Errors:
//   - occupancy.ErrOutOfBounds when p1 or p2 lies outside g (checked before occupancy).
//   - ErrAlreadyInside when the cell containing p1 is occupied.
//
// Complexity: O(Δx + Δy) time, O(1) memory.
func Collide(p1, p2 geometry.Point, g *occupancy.Grid, opts ...Option) (Hit, bool, error) {
	if !g.ContainsPoint(p1) {
		return Hit{}, false, fmt.Errorf("collision: start %v: %w", p1, occupancy.ErrOutOfBounds)
	}
	if !g.ContainsPoint(p2) {
		return Hit{}, false, fmt.Errorf("collision: end %v: %w", p2, occupancy.ErrOutOfBounds)
	}
	x, y := p1.Cell()
	inside, err := g.Get(x, y)
	if err != nil {
		return Hit{}, false, err
	}
	if inside {
		return Hit{}, false, fmt.Errorf("collision: start %v in cell (%d,%d): %w", p1, x, y, ErrAlreadyInside)
	}

	w := NewWalker(p1, p2, opts...)
	for c := range w.All() {
		occupied, err := g.Get(c.CellX, c.CellY)
		if err != nil {
			return Hit{}, false, err
		}
		if occupied {
			return Hit{Crossing: c, Direction: c.Axis.Direction()}, true, nil
		}
	}

	return Hit{}, false, nil
}

// LineOfSight reports whether p2 is visible from p1, i.e. the segment
// between them enters no occupied cell. Errors are those of Collide.
func LineOfSight(p1, p2 geometry.Point, g *occupancy.Grid, opts ...Option) (bool, error) {
	_, hit, err := Collide(p1, p2, g, opts...)
	if err != nil {
		return false, err
	}

	return !hit, nil
}
