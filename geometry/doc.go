// Package geometry holds the 2D primitives the collision walker is built from:
// points, infinite lines through two points, and per-axis grid-line crossings.
//
// What:
//
//   - Point is an immutable (X, Y) value; == compares structurally.
//   - Intersect computes where two infinite lines meet, treating lines whose
//     determinant is below a tolerance as parallel.
//   - Crossings is a forward-only cursor over the integer grid lines strictly
//     crossed when moving from a to b along one axis.
//
// Complexity:
//
//   - Intersect: O(1).
//   - Crossings: O(1) per Next/Peek, O(|b−a|) to drain.
//
// Usage:
//
//	p, ok := geometry.Intersect(
//		geometry.Pt(0, 0), geometry.Pt(0, 1),
//		geometry.Pt(1, 0), geometry.Pt(2, 0),
//		geometry.DefaultTolerance,
//	)
//	// p == (0, 0), ok == true
//
//	c := geometry.NewCrossings(1.2, 4.7)
//	for v := range c.All() {
//		fmt.Println(v) // 2, 3, 4
//	}
package geometry
