package occupancy

import (
	"fmt"
	"strings"
)

// Glyphs used by Render and accepted by Parse.
const (
	GlyphOccupied = '#'
	GlyphFree     = '_'
)

// Render returns the grid as text: one newline-terminated line per row,
// from y=H-1 at the top down to y=0, one glyph per column in increasing x.
// The format is stable and may be compared byte for byte.
// Complexity: O(W×H).
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		row := g.index(0, y)
		for _, c := range g.cells[row : row+g.width] {
			if c {
				sb.WriteByte(GlyphOccupied)
			} else {
				sb.WriteByte(GlyphFree)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer; it is the same text as Render.
func (g *Grid) String() string {
	return g.Render()
}

// Parse reads text in the Render format back into a new Grid. The final
// newline is optional. Occupied cells are set through FillRect, so a parsed
// grid obeys the same invariants as one built by hand.
// Returns ErrMalformedGrid on empty input, rows of differing width, or any
// glyph other than '#' and '_'.
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("Parse: empty input: %w", ErrMalformedGrid)
	}
	width, height := len(lines[0]), len(lines)
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("Parse: line %d has width %d, want %d: %w", i+1, len(line), width, ErrMalformedGrid)
		}
		y := height - 1 - i // first line is the top row
		for x := 0; x < width; x++ {
			switch line[x] {
			case GlyphFree:
			case GlyphOccupied:
				if err = g.FillRect(x, y, 1, 1); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("Parse: line %d column %d: unexpected %q: %w", i+1, x+1, line[x], ErrMalformedGrid)
			}
		}
	}

	return g, nil
}
