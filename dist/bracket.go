// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// chebyshev derives a candidate bracket for the p quantile from the
// one-sided Chebyshev (Cantelli) inequality: for any k > 0, at most
// 1/(1+k²) of the mass lies more than kσ above the mean, and likewise
// below it. Solving 1/(1+k²) = p for each side puts the p quantile of
// the CDF inside
//
//	[μ - σ·sqrt((1-p)/p), μ + σ·sqrt(p/(1-p))]
//
// and, for sf inversion, the point where SF falls to p inside
//
//	[μ - σ·sqrt(p/(1-p)), μ + σ·sqrt((1-p)/p)].
//
// The bound is only a heuristic here. Distributions may misreport μ
// and σ², so the caller must validate the candidate against the
// actual forward function before trusting it; chebyshev itself only
// refuses moments that cannot work at all (non-finite mean; zero,
// infinite, or NaN variance) and candidates that overflow.
func chebyshev(dist DistCommon, p float64, sf bool) (lo, hi float64, ok bool) {
	mu := dist.Mean()
	v := dist.Variance()
	if math.IsNaN(mu) || math.IsInf(mu, 0) || math.IsNaN(v) || math.IsInf(v, 1) || v <= 0 {
		return 0, 0, false
	}
	sd := math.Sqrt(v)
	if sf {
		lo = mu - sd*math.Sqrt(p/(1-p))
		hi = mu + sd*math.Sqrt((1-p)/p)
	} else {
		lo = mu - sd*math.Sqrt((1-p)/p)
		hi = mu + sd*math.Sqrt(p/(1-p))
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, false
	}
	// The quantile also cannot lie outside the support.
	sLo, sHi := dist.Support()
	if lo < sLo {
		lo = sLo
	}
	if hi > sHi {
		hi = sHi
	}
	return lo, hi, true
}

// anchor returns a finite starting point for the doubling bracket
// search: the mean if it is finite, otherwise 0 if 0 is within the
// support, otherwise the finite support bound.
func anchor(dist DistCommon) float64 {
	if mu := dist.Mean(); !math.IsNaN(mu) && !math.IsInf(mu, 0) {
		return mu
	}
	sLo, sHi := dist.Support()
	if sLo <= 0 && 0 <= sHi {
		return 0
	}
	if !math.IsInf(sLo, 0) {
		return sLo
	}
	return sHi
}

// bracketCDF returns lo, hi and the CDF values there such that
// CDF(lo) < p <= CDF(hi) whenever such a bracket is reachable. If the
// search runs off the representable range or out of doublings without
// establishing one side, that side's value reports the failure and
// the caller falls back to the support bound; bracketing itself never
// fails.
func bracketCDF(dist DistCommon, p float64) (lo, hi, fLo, fHi float64) {
	var ok bool
	lo, hi, ok = chebyshev(dist, p, false)
	if ok {
		fLo = checkedCDF(dist, lo)
		fHi = checkedCDF(dist, hi)
		if fLo < p && p <= fHi {
			return lo, hi, fLo, fHi
		}
		// The moments lied. Search directly.
	}

	x := anchor(dist)
	lo, hi = x, x
	fLo = checkedCDF(dist, x)
	fHi = fLo
	step := 1.0
	for i := 0; fLo >= p && lo > -math.MaxFloat64 && i < BracketDoublings; i++ {
		lo -= step
		if math.IsInf(lo, -1) {
			lo = -math.MaxFloat64
		}
		fLo = checkedCDF(dist, lo)
		step *= 2
	}
	step = 1.0
	for i := 0; fHi < p && hi < math.MaxFloat64 && i < BracketDoublings; i++ {
		hi += step
		if math.IsInf(hi, 1) {
			hi = math.MaxFloat64
		}
		fHi = checkedCDF(dist, hi)
		step *= 2
	}
	return lo, hi, fLo, fHi
}

// bracketSF is bracketCDF's mirror image for survival inversion: it
// aims for SF(lo) > p >= SF(hi).
func bracketSF(dist DistCommon, p float64) (lo, hi, fLo, fHi float64) {
	var ok bool
	lo, hi, ok = chebyshev(dist, p, true)
	if ok {
		fLo = checkedSF(dist, lo)
		fHi = checkedSF(dist, hi)
		if fLo > p && p >= fHi {
			return lo, hi, fLo, fHi
		}
	}

	x := anchor(dist)
	lo, hi = x, x
	fLo = checkedSF(dist, x)
	fHi = fLo
	step := 1.0
	for i := 0; fLo <= p && lo > -math.MaxFloat64 && i < BracketDoublings; i++ {
		lo -= step
		if math.IsInf(lo, -1) {
			lo = -math.MaxFloat64
		}
		fLo = checkedSF(dist, lo)
		step *= 2
	}
	step = 1.0
	for i := 0; fHi > p && hi < math.MaxFloat64 && i < BracketDoublings; i++ {
		hi += step
		if math.IsInf(hi, 1) {
			hi = math.MaxFloat64
		}
		fHi = checkedSF(dist, hi)
		step *= 2
	}
	return lo, hi, fLo, fHi
}
