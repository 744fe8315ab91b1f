// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist implements probability distributions and a generic
// numerical engine for inverting them.
//
// Concrete distributions provide forward functions (CDF, SF, and PDF
// or PMF) plus their support and moments. Where a distribution has a
// closed-form inverse it provides that too, and InvCDF and InvSF
// simply return it. Otherwise they fall back to a bisection engine
// that brackets the target probability using Chebyshev's inequality
// and the declared support, and that stays correct on plateaus, at
// jump discontinuities, and when a distribution misreports its own
// moments.
package dist // import "github.com/probmath/go-distmath/dist"

import (
	"math"

	"github.com/probmath/go-distmath/tol"
)

var inf = math.Inf(1)
var nan = math.NaN()

// Panic messages for contract violations. A probability argument
// outside [0, 1] and a forward function returning NaN are both caller
// bugs; the engine refuses to return a plausible-looking guess for
// either.
const (
	badProb = "probability must be in [0, 1]"
	badCDF  = "CDF returned NaN"
	badSF   = "SF returned NaN"
)

func checkProb(p float64) {
	if !(p >= 0 && p <= 1) {
		// Also catches NaN.
		panic(badProb)
	}
}

// FuncTolerance is the tolerance under which the inversion engine
// considers two forward-function values indistinguishable.
//
// When the CDF (or SF) values at the two bracket endpoints agree
// under this tolerance, the function has run out of precision before
// the argument has, and further bisection cannot improve the result.
// The engine stops and returns the upper endpoint, which preserves
// the infimum convention. Widening this tolerance trades accuracy in
// nearly flat regions for fewer forward-function evaluations.
var FuncTolerance = tol.ULPs(2)

// BracketDoublings caps the number of range doublings the fallback
// bracket search performs in each direction when a distribution's
// self-reported moments cannot be used to bound the quantile.
//
// A unit step doubled just over a thousand times already exceeds the
// largest finite float64, so the default cannot cut the search short
// before the whole representable range has been covered.
var BracketDoublings = 1100
