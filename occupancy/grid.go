package occupancy

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/katalvlaran/tilecast/geometry"
)

// Grid is a width×height boolean occupancy map.
// cells holds width*height entries in row-major order, row y=0 first.
type Grid struct {
	width, height int
	cells         []bool
}

// New creates a width×height grid with every cell free.
// Returns ErrInvalidDimensions if either dimension is ≤ 0 or width×height
// does not fit in an int.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, gridErrorf("New", ErrInvalidDimensions, width, height)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the region covered by the grid, [0,W)×[0,H).
func (g *Grid) Bounds() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(g.width), URy: float64(g.height)}
}

// InBounds reports whether (x,y) names a cell of the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to its row-major offset; callers check InBounds first.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Get reports whether cell (x,y) is occupied.
// Returns ErrOutOfBounds for indices outside [0,W)×[0,H).
// Complexity: O(1).
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, gridErrorf("Get", ErrOutOfBounds, x, y)
	}

	return g.cells[g.index(x, y)], nil
}

// FillRect marks every cell in [x,x+w)×[y,y+h) occupied.
// The rectangle must lie inside the grid and have w, h > 0; otherwise
// ErrOutOfBounds is returned and the grid is left untouched.
// Complexity: O(w×h).
func (g *Grid) FillRect(x, y, w, h int) error {
	// validate everything before the first write
	if w <= 0 || h <= 0 || x < 0 || y < 0 || w > g.width-x || h > g.height-y {
		return gridErrorf("FillRect", ErrOutOfBounds, x, y, w, h)
	}
	for ny := y; ny < y+h; ny++ {
		row := g.index(x, ny)
		for i := row; i < row+w; i++ {
			g.cells[i] = true
		}
	}

	return nil
}

// ContainsPoint reports whether p lies in [0,W)×[0,H): lower bounds
// inclusive, upper bounds exclusive.
// Complexity: O(1).
func (g *Grid) ContainsPoint(p geometry.Point) bool {
	b := g.Bounds()
	return p.X >= b.LLx && p.X < b.URx && p.Y >= b.LLy && p.Y < b.URy
}

// Occupied returns the number of occupied cells.
// Complexity: O(W×H).
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of g.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}
