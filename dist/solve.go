// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// checkedCDF evaluates dist.CDF(x) and panics if the result is NaN.
// The engine only ever probes at non-NaN points, so a NaN here is a
// bug in the distribution, not in the caller's probability.
func checkedCDF(dist DistCommon, x float64) float64 {
	v := dist.CDF(x)
	if math.IsNaN(v) {
		panic(badCDF)
	}
	return v
}

// checkedSF evaluates dist.SF(x) and panics if the result is NaN.
func checkedSF(dist DistCommon, x float64) float64 {
	v := dist.SF(x)
	if math.IsNaN(v) {
		panic(badSF)
	}
	return v
}

// bisect returns the smallest x in (lo, hi] for which ok(f(x)) holds.
//
// f must be monotonic in the sense that ok∘f is false up to some
// threshold in [lo, hi] and true from there on; the caller
// establishes this by passing fLo = f(lo) with !ok(fLo) and
// fHi = f(hi) with ok(fHi). Bisection then runs until lo and hi are
// adjacent float64 values, so absent an early exit the result is
// exact: the least representable qualifying x.
//
// Two early exits apply. If f(mid) equals target exactly and
// connected is true, mid is the unique preimage of target and is
// returned as is. If f(lo) and f(hi) agree under FuncTolerance, f has
// lost precision before the argument has and the qualifying endpoint
// hi is returned.
func bisect(f func(float64) float64, ok func(float64) bool, target float64, connected bool, lo, hi, fLo, fHi float64) float64 {
	for {
		if FuncTolerance.Test(fLo, fHi) {
			return hi
		}
		mid := (lo + hi) / 2
		if math.IsInf(mid, 0) {
			// lo+hi overflowed; halve before adding.
			mid = lo/2 + hi/2
		}
		if mid == lo || mid == hi {
			return hi
		}
		fMid := f(mid)
		if !ok(fMid) {
			lo, fLo = mid, fMid
			continue
		}
		if fMid == target && connected {
			return mid
		}
		hi, fHi = mid, fMid
	}
}
