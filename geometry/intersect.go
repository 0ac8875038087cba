package geometry

import "math"

// Line is the infinite line through P1 and P2 with its direction deltas
// x12 = P1.X-P2.X and y12 = P1.Y-P2.Y computed once. Use it when the same
// base line is intersected against many others.
type Line struct {
	P1, P2   Point
	x12, y12 float64
}

// NewLine returns the line through p1 and p2.
func NewLine(p1, p2 Point) Line {
	return Line{
		P1:  p1,
		P2:  p2,
		x12: p1.X - p2.X,
		y12: p1.Y - p2.Y,
	}
}

// Delta returns (P1.X-P2.X, P1.Y-P2.Y).
func (l Line) Delta() (x12, y12 float64) {
	return l.x12, l.y12
}

// Intersect returns the point where l meets the infinite line through p3
// and p4. It reports false when the two lines are parallel, i.e. when the
// determinant of their direction vectors is smaller than tol in magnitude.
// Complexity: O(1).
func (l Line) Intersect(p3, p4 Point, tol float64) (Point, bool) {
	x34 := p3.X - p4.X
	y34 := p3.Y - p4.Y

	det := l.x12*y34 - l.y12*x34
	if math.Abs(det) < tol {
		return Point{}, false
	}

	// cross products of each line's defining points
	xy12 := l.P1.X*l.P2.Y - l.P1.Y*l.P2.X
	xy34 := p3.X*p4.Y - p3.Y*p4.X

	return Point{
		X: (xy12*x34 - l.x12*xy34) / det,
		Y: (xy12*y34 - l.y12*xy34) / det,
	}, true
}

// Intersect returns the intersection of the infinite lines (p1,p2) and
// (p3,p4), or false when they are parallel within tol.
// It is equivalent to NewLine(p1, p2).Intersect(p3, p4, tol).
func Intersect(p1, p2, p3, p4 Point, tol float64) (Point, bool) {
	return NewLine(p1, p2).Intersect(p3, p4, tol)
}
