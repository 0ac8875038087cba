// Package collision finds the first occupied grid cell a straight segment
// runs into, and the side it was struck from.
//
// 🚀 How it works
//
//	The segment p1→p2 crosses a sequence of vertical grid lines (x = k) and
//	horizontal grid lines (y = k). Walker pulls one crossing at a time from
//	each axis (geometry.Crossings), intersects the segment with that line
//	(geometry.Line.Intersect), and merges the two streams by squared distance
//	from p1. Every crossing implicates the one cell the segment enters there;
//	Collide stops at the first occupied one.
//
//	p1 = (0.5, 0.5), p2 = (2.5, 2.2), cell (2,2) occupied
//
//	  x=1 at (1, 0.925)    enters (1,0)  free
//	  y=1 at (1.088, 1)    enters (1,1)  free
//	  x=2 at (2, 1.775)    enters (2,1)  free
//	  y=2 at (2.265, 2)    enters (2,2)  occupied → Hit{Direction: (0,-1)}
//
// Rules:
//
//   - Vertical line v: moving right enters column v, moving left column v-1.
//     A hit reports Direction{-1, 0}.
//   - Horizontal line h: moving up enters row h, moving down row h-1.
//     A hit reports Direction{0, -1}.
//   - Crossings at equal distance (the segment passes a grid corner) are
//     reported Horizontal first.
//   - The other coordinate of the cell is floor of the crossing point, even
//     on an exact corner. Moving down or left through a corner therefore
//     tests the side cells next to it, not the diagonal one.
//
// Errors:
//
//   - occupancy.ErrOutOfBounds: p1 or p2 outside the grid.
//   - ErrAlreadyInside: the cell containing p1 is occupied.
//
// Complexity: O(Δx + Δy) time, O(1) memory per call. Collide only reads the
// grid, so concurrent calls on one grid are safe while nobody writes to it.
package collision
