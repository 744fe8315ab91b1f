// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// invCDFNumeric inverts dist's CDF at p by bracketing and bisection,
// returning the infimum of {x : CDF(x) >= p}. It never fails on poor
// moment reporting; the worst a misbehaving distribution can get is a
// support bound. It panics only for p outside [0, 1] or a CDF that
// returns NaN.
func invCDFNumeric(dist DistCommon, p float64) float64 {
	checkProb(p)
	sLo, sHi := dist.Support()
	if p == 0 {
		return sLo
	}
	if p == 1 {
		return sHi
	}

	lo, hi, fLo, fHi := bracketCDF(dist, p)
	if fLo >= p {
		// Even the leftmost probe qualifies, so the infimum is
		// at or below the search floor.
		if lo == -math.MaxFloat64 {
			return sLo
		}
		return lo
	}
	if fHi < p {
		// No representable probe reached p.
		return sHi
	}
	return bisect(func(x float64) float64 { return checkedCDF(dist, x) },
		func(v float64) bool { return v >= p },
		p, dist.SupportConnected(), lo, hi, fLo, fHi)
}

// invSFNumeric inverts dist's SF at p, returning the infimum of
// {x : SF(x) <= p}. The survival function is probed directly, never
// reconstructed as 1-CDF, so tail precision survives the search.
func invSFNumeric(dist DistCommon, p float64) float64 {
	checkProb(p)
	sLo, sHi := dist.Support()
	if p == 0 {
		return sHi
	}
	if p == 1 {
		return sLo
	}

	lo, hi, fLo, fHi := bracketSF(dist, p)
	if fLo <= p {
		if lo == -math.MaxFloat64 {
			return sLo
		}
		return lo
	}
	if fHi > p {
		return sHi
	}
	return bisect(func(x float64) float64 { return checkedSF(dist, x) },
		func(v float64) bool { return v <= p },
		p, dist.SupportConnected(), lo, hi, fLo, fHi)
}
