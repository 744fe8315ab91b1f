// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probmath/go-distmath/mathx"
)

// A TDist is a Student's t-distribution with V degrees of freedom.
//
// TDist has no closed-form quantile function, so InvCDF and InvSF
// fall through to the numerical inversion engine. For V <= 2 the
// distribution also reports an infinite or nonexistent variance,
// which additionally exercises the engine's direct bracket search;
// V == 1 is the Cauchy distribution, which has no moments at all.
type TDist struct {
	V float64
}

func (t TDist) PDF(x float64) float64 {
	return math.Pow(1+(x*x)/t.V, -(t.V+1)/2) /
		(math.Sqrt(t.V) * mathx.Beta(t.V/2, 0.5))
}

// CDF evaluates the incomplete beta tail on each side of 0
// separately. NaN propagates.
func (t TDist) CDF(x float64) float64 {
	switch {
	case x == 0:
		return 0.5
	case x > 0:
		return 1 - 0.5*mathx.BetaInc(t.V/(t.V+x*x), t.V/2, 0.5)
	case x < 0:
		return 0.5 * mathx.BetaInc(t.V/(t.V+x*x), t.V/2, 0.5)
	}
	return nan
}

// SF returns the upper tail by symmetry. For x > 0 this evaluates
// the incomplete beta tail directly, keeping precision that
// 1-CDF(x) would round away.
func (t TDist) SF(x float64) float64 {
	return t.CDF(-x)
}

func (t TDist) Support() (float64, float64) {
	return -inf, inf
}

func (t TDist) SupportConnected() bool {
	return true
}

// Mean returns 0 for V > 1. For smaller V the mean does not exist.
func (t TDist) Mean() float64 {
	if t.V > 1 {
		return 0
	}
	return nan
}

// Variance returns V/(V-2) for V > 2 and +Inf for 1 < V <= 2. For
// V <= 1 the variance does not exist. The infinite and NaN cases
// are reported as such; the inversion engine knows not to trust
// them.
func (t TDist) Variance() float64 {
	switch {
	case t.V > 2:
		return t.V / (t.V - 2)
	case t.V > 1:
		return inf
	}
	return nan
}
