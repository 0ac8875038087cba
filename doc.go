// Package tilecast answers one question fast and exactly: does the straight
// segment p1→p2 run into a solid cell of a 2D tile grid, and from which side?
//
// 🚀 What is tilecast?
//
//	The classic "ray vs. tile grid" traversal used for 2D collision and
//	line-of-sight checks:
//		• Occupancy grids: fixed-size boolean maps with rectangular fills
//		• Line intersection with an explicit parallelism tolerance
//		• Lazy per-axis grid-line crossings
//		• A walker that merges both axes by distance and stops at the first
//		  occupied cell
//
// Under the hood, everything is organized under three subpackages:
//
//	geometry   Point, Line/Intersect, Crossings cursor
//	occupancy  Grid: New, FillRect, Get, ContainsPoint, Render, Parse
//	collision  Walker, Collide, LineOfSight, Hit/Direction/Axis
//
// Quick ASCII example (5×5 grid, segment (0,1.1)→(2,1)):
//
//	_____
//	_____
//	_##__
//	_##__     ●──┤ blocked at x=1 entering cell (1,1), Direction (-1,0)
//	_____
//
//	go get github.com/katalvlaran/tilecast
package tilecast
