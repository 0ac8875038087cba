// SPDX-License-Identifier: MIT

package collision

import "errors"

// ErrAlreadyInside indicates the segment starts inside an occupied cell.
// Out-of-grid endpoints are reported with occupancy.ErrOutOfBounds.
var ErrAlreadyInside = errors.New("collision: segment starts inside an occupied cell")
