// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Extended-precision kernels for a handful of operations where the
// naive float64 formula loses accuracy at the edges of the exponent
// range: squaring values near the overflow or underflow boundary,
// multiplying by an irrational constant, and exponentiating a large
// negative square. Each kernel tracks the rounding remainder of its
// intermediate steps as a second float64 and folds it back into the
// final result. The (high, low) pairs are internal; callers only ever
// see a single rounded float64.
//
// T. J. Dekker (1971), A floating-point technique for extending the
// available precision, Numerische Mathematik 18, 224–242.

const (
	// sqrt(2π) as an extended-precision pair: sqrt2Pi is the nearest
	// float64 to sqrt(2π) and sqrt2PiR is the remainder
	// sqrt(2π) - sqrt2Pi. Together they carry the constant to roughly
	// 106 bits. Both are literals, never computed at init, so results
	// are reproducible bit-for-bit across platforms.
	sqrt2Pi  = 2.5066282746310007
	sqrt2PiR = -1.8328579980459167e-16

	// splitMul is Dekker's multiplier 2²⁷+1 for splitting a 53-bit
	// significand into two 26-bit halves.
	splitMul = 134217729.0

	// Magnitudes at or above safeSplit overflow inside the splitting
	// multiply and must be rescaled by an exact power of two first.
	safeSplit = 0x1p996

	// Squaring a value outside [2⁻⁵⁰⁰, 2⁵⁰⁰] can underflow or
	// overflow, so such values are pulled toward 1 by 2^±600 before
	// squaring and the result is scaled back afterwards. Both scales
	// are exact.
	sqBig     = 0x1p500
	sqSmall   = 0x1p-500
	scaleUp   = 0x1p600
	scaleDown = 0x1p-600

	// exp(-z/2) underflows to zero for z above expZMax (math.Exp
	// returns 0 below about -745.2).
	expZMax = 1491.0
)

// Sqrt2XX returns sqrt(2·x²) without the premature overflow or
// underflow of the naive formula: the result is finite whenever
// sqrt(2)·|x| is representable, subnormal inputs do not collapse to
// zero, and the error stays well below one ULP. Negative x is squared
// as usual. NaN propagates. ±Inf, and any x whose true result exceeds
// MaxFloat64, return +Inf.
func Sqrt2XX(x float64) float64 {
	a := math.Abs(x)
	switch {
	case a == 0:
		return 0
	case a > sqBig:
		if math.IsInf(a, 1) {
			return a
		}
		return sqrt2aa(a*scaleDown) * scaleUp
	case a < sqSmall:
		return sqrt2aa(a*scaleUp) * scaleDown
	}
	return sqrt2aa(a)
}

// sqrt2aa computes sqrt(2·a²) for a in a range where a² neither
// overflows nor underflows. The square is formed as an exact
// double-length pair, doubled (exactly), and the root of the high part
// is corrected by one step of Dekker's sqrt2 recurrence.
func sqrt2aa(a float64) float64 {
	hi := highPart(a)
	lo := a - hi
	z := a * a
	zz := squareLow(hi, lo, z)
	z, zz = 2*z, 2*zz
	c := math.Sqrt(z)
	hc := highPart(c)
	lc := c - hc
	u := c * c
	uu := squareLow(hc, lc, u)
	cc := (z - u - uu + zz) * 0.5 / c
	return c + cc
}

// XSqrt2Pi returns x·sqrt(2π). Multiplying by the nearest float64 to
// sqrt(2π) alone bakes the constant's representation error (~0.41 ULP)
// into every product; carrying the constant as a two-term pair and the
// product's own remainder removes both. x ∈ {±0, ±Inf, NaN} pass
// through with IEEE semantics.
func XSqrt2Pi(x float64) float64 {
	if x == 0 {
		return x * sqrt2Pi // keeps the sign of zero
	}
	a := math.Abs(x)
	switch {
	case a >= safeSplit:
		if math.IsInf(a, 1) {
			return x * sqrt2Pi
		}
		return xsqrt2pi(x*0x1p-30) * 0x1p30
	case a < sqSmall:
		return xsqrt2pi(x*scaleUp) * scaleDown
	}
	return xsqrt2pi(x)
}

func xsqrt2pi(x float64) float64 {
	p := x * sqrt2Pi
	e := productLow(x, sqrt2Pi, p)
	return p + (x*sqrt2PiR + e)
}

// ExpMHalfXX returns exp(-x²/2), the unnormalized Gaussian. The
// rounding remainder of x² is carried into the exponential through the
// first-order correction exp(a+b) ≈ exp(a)·(1+b), |b| ≪ 1. An error of
// e in the exponent perturbs the result by a relative e, so discarding
// the remainder costs up to a few hundred ULPs near the underflow
// boundary. Exactly 1 at x=0; exactly symmetric in ±x; underflows
// cleanly to 0 for |x| ≳ 38.6, including when x² itself overflows.
func ExpMHalfXX(x float64) float64 {
	z := x * x
	if z > expZMax {
		// Covers x = ±Inf and every x whose square overflows.
		return 0
	}
	hi := highPart(x)
	lo := x - hi
	zz := squareLow(hi, lo, z)
	ea := math.Exp(-0.5 * z)
	return ea + ea*(-0.5*zz)
}

// highPart returns the leading 26 significand bits of x as an exact
// float64, so that hi := highPart(x) and lo := x - hi split x into
// halves whose pairwise products are exact. |x| must be below
// safeSplit.
func highPart(x float64) float64 {
	c := splitMul * x
	return c - (c - x)
}

// squareLow returns the rounding remainder of sq = fl(x·x) given the
// split halves hi+lo = x: sq + squareLow(hi, lo, sq) is exactly x².
func squareLow(hi, lo, sq float64) float64 {
	return lo*lo - ((sq - hi*hi) - 2*lo*hi)
}

// productLow returns the rounding remainder of p = fl(x·y):
// p + productLow(x, y, p) is exactly x·y.
func productLow(x, y, p float64) float64 {
	hx := highPart(x)
	lx := x - hx
	hy := highPart(y)
	ly := y - hy
	return lx*ly - (((p - hx*hy) - lx*hy) - hx*ly)
}
