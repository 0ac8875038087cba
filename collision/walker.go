package collision

import (
	"iter"
	"math"

	"github.com/katalvlaran/tilecast/geometry"
)

// Walker yields the grid-line crossings of the segment p1→p2 in order of
// distance from p1, each with the cell the segment enters there.
// It holds one pending crossing per axis and pulls the next one lazily, so
// neither axis is materialised. A Walker is single-use and not safe for
// concurrent use; build one per segment.
type Walker struct {
	p1, p2 geometry.Point
	line   geometry.Line // p1→p2 with x12/y12 cached
	tol    float64

	// travel sense per axis: +1, -1, or 0 when the coordinate is constant
	sx, sy int
	// cell index range the segment covers on each axis
	colLo, colHi int
	rowLo, rowHi int

	verticals   *geometry.Crossings
	horizontals *geometry.Crossings

	pv, ph     Crossing // pending crossing per axis
	hasV, hasH bool
}

// NewWalker prepares a walk from p1 to p2.
// Stage 1 (Prepare): cache x12/y12 and the travel sense on each axis.
// Stage 2 (Cursors): open one geometry.Crossings per axis.
// Complexity: O(1).
func NewWalker(p1, p2 geometry.Point, opts ...Option) *Walker {
	o := gatherOptions(opts...)
	line := geometry.NewLine(p1, p2)
	x12, y12 := line.Delta()

	c1x, c1y := p1.Cell()
	c2x, c2y := p2.Cell()

	return &Walker{
		p1:          p1,
		p2:          p2,
		line:        line,
		tol:         o.tol,
		sx:          sense(x12),
		sy:          sense(y12),
		colLo:       min(c1x, c2x),
		colHi:       max(c1x, c2x),
		rowLo:       min(c1y, c2y),
		rowHi:       max(c1y, c2y),
		verticals:   axisCrossings(p1.X, p2.X),
		horizontals: axisCrossings(p1.Y, p2.Y),
	}
}

// sense maps a start-minus-end delta to the travel direction.
func sense(d12 float64) int {
	switch {
	case d12 < 0:
		return 1
	case d12 > 0:
		return -1
	default:
		return 0
	}
}

// axisCrossings opens the cursor for one axis. A start lying exactly on a
// grid line is not a crossing when moving up that axis, but moving down it
// leaves the start cell at once, so that line is reported first.
func axisCrossings(a, b float64) *geometry.Crossings {
	if b < a && a == math.Trunc(a) {
		return geometry.NewCrossings(a+1, b)
	}

	return geometry.NewCrossings(a, b)
}

// Next returns the nearest crossing not yet reported.
// On equal distance the Horizontal crossing comes first.
// The boolean is false once the segment reaches p2.
// Complexity: O(1).
func (w *Walker) Next() (Crossing, bool) {
	if !w.hasV {
		w.pv, w.hasV = w.pull(Vertical)
	}
	if !w.hasH {
		w.ph, w.hasH = w.pull(Horizontal)
	}

	switch {
	case !w.hasV && !w.hasH:
		return Crossing{}, false
	case !w.hasV || (w.hasH && w.ph.DistSq <= w.pv.DistSq):
		w.hasH = false
		return w.ph, true
	default:
		w.hasV = false
		return w.pv, true
	}
}

// All returns an iterator over the remaining crossings.
func (w *Walker) All() iter.Seq[Crossing] {
	return func(yield func(Crossing) bool) {
		for {
			c, ok := w.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// pull reads the next grid line of one axis and resolves its crossing.
func (w *Walker) pull(axis Axis) (Crossing, bool) {
	cur := w.verticals
	if axis == Horizontal {
		cur = w.horizontals
	}
	k, ok := cur.Next()
	if !ok {
		return Crossing{}, false
	}

	return w.cross(axis, k), true
}

// cross builds the crossing of grid line k on the given axis.
// The line coordinate is taken as exact; only the perpendicular coordinate
// comes from the intersection, clamped to the segment's own extent.
func (w *Walker) cross(axis Axis, k int) Crossing {
	g := float64(k)
	c := Crossing{Axis: axis, Line: k}

	switch axis {
	case Vertical:
		q, ok := w.line.Intersect(geometry.Pt(g, 0), geometry.Pt(g, 1), w.tol)
		if !ok {
			q = w.interpolate((g - w.p1.X) / (w.p2.X - w.p1.X))
		}
		c.Point = geometry.Pt(g, clamp(q.Y, w.p1.Y, w.p2.Y))
		c.CellX = k
		if w.sx < 0 {
			c.CellX = k - 1
		}
		c.CellY = cellIndex(c.Point.Y, w.rowLo, w.rowHi)
	case Horizontal:
		q, ok := w.line.Intersect(geometry.Pt(0, g), geometry.Pt(1, g), w.tol)
		if !ok {
			q = w.interpolate((g - w.p1.Y) / (w.p2.Y - w.p1.Y))
		}
		c.Point = geometry.Pt(clamp(q.X, w.p1.X, w.p2.X), g)
		c.CellX = cellIndex(c.Point.X, w.colLo, w.colHi)
		c.CellY = k
		if w.sy < 0 {
			c.CellY = k - 1
		}
	}

	c.DistSq = squaredDistance(w.p1, c.Point)

	return c
}

// squaredDistance is |b−a|².
func squaredDistance(a, b geometry.Point) float64 {
	d := b.Vec().Sub(a.Vec())
	return d.Dot(d)
}

// interpolate returns p1 + t·(p2−p1). Used when the segment is too close to
// parallel with a grid line for Intersect, which happens only for very short
// travel along that axis.
func (w *Walker) interpolate(t float64) geometry.Point {
	a, b := w.p1.Vec(), w.p2.Vec()
	return geometry.FromVec(a.Add(b.Sub(a).Mul(t)))
}

// cellIndex returns floor(v), the cell index along the axis perpendicular
// to the crossed line. At a grid corner this names the cell on the upper or
// right side of the other line whatever the direction of travel.
// The result is kept within the cells the segment spans [lo, hi] so float
// drift in the intersection cannot step outside them.
func cellIndex(v float64, lo, hi int) int {
	return min(max(int(math.Floor(v)), lo), hi)
}

// clamp limits v to the closed interval between a and b.
func clamp(v, a, b float64) float64 {
	return min(max(v, min(a, b)), max(a, b))
}
