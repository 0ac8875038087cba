// SPDX-License-Identifier: MIT

package occupancy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for occupancy operations. Returned values wrap these with
// call context; match them with errors.Is.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("occupancy: dimensions must be > 0")

	// ErrOutOfBounds indicates a cell, rectangle or point outside the grid.
	ErrOutOfBounds = errors.New("occupancy: out of bounds")

	// ErrMalformedGrid indicates rendered text that Parse cannot read back.
	ErrMalformedGrid = errors.New("occupancy: malformed grid text")
)

// gridErrorf wraps err with the Grid method and its integer arguments,
// e.g. "Grid.Get(5,0): occupancy: out of bounds".
func gridErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}

	return fmt.Errorf("Grid.%s(%s): %w", method, strings.Join(parts, ","), err)
}
