// Package occupancy provides a fixed-size boolean occupancy grid: the map of
// solid unit cells a segment is tested against.
//
// What:
//
//   - Grid stores Width×Height cells in one flat, row-major slice.
//   - Cell (x,y) covers the unit square [x,x+1)×[y,y+1); y=0 is the bottom row.
//   - Cells start free and become occupied only through FillRect.
//   - Render prints the grid top row first, '#' for occupied and '_' for free.
//
// Concurrency:
//
//   - Get, ContainsPoint, Render and any number of collision queries may run
//     concurrently on the same Grid.
//   - FillRect needs exclusive access. The Grid holds no locks; callers that
//     share a Grid across goroutines enforce single-writer themselves.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrOutOfBounds: cell index or fill rectangle outside the grid.
//   - ErrMalformedGrid: Parse input is empty, ragged, or has unknown glyphs.
package occupancy
