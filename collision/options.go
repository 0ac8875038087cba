// SPDX-License-Identifier: MIT

package collision

import (
	"math"

	"github.com/katalvlaran/tilecast/geometry"
)

// DefaultTolerance is the parallelism tolerance handed to
// geometry.Line.Intersect unless WithTolerance overrides it.
const DefaultTolerance = geometry.DefaultTolerance

const panicToleranceInvalid = "collision: WithTolerance: tol must be finite, non-negative"

// Option adjusts how a Walker computes crossings.
type Option func(*Options)

// Options holds the resolved settings. Fields are unexported; build them
// through Option values.
type Options struct {
	tol float64 // determinant magnitude below which lines count as parallel
}

// WithTolerance sets the parallelism tolerance used when intersecting the
// segment with each grid line. Panics if tol is NaN, infinite or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies user options over the defaults, last one wins.
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
