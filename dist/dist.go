// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// A DistCommon is a statistical distribution. DistCommon is a base
// interface provided by both continuous and discrete distributions.
type DistCommon interface {
	// CDF returns the cumulative probability Pr[X <= x].
	//
	// For continuous distributions, the CDF is the integral of
	// the PDF from -inf to x.
	//
	// For discrete distributions, the CDF is the sum of the PMF
	// at all defined points from -inf to x, inclusive. Note that
	// the CDF of a discrete distribution is defined for the whole
	// real line (unlike the PMF) but has discontinuities where
	// the PMF is non-zero.
	//
	// The CDF is non-decreasing over the whole real line, with
	// CDF(-inf)==0 and CDF(inf)==1. It must not return NaN for a
	// non-NaN argument; the inversion engine treats a NaN from
	// the CDF as a contract violation and panics.
	CDF(x float64) float64

	// SF returns the survival probability Pr[X > x].
	//
	// Mathematically SF(x) == 1-CDF(x), but implementations
	// should compute the upper tail directly when they can. Deep
	// in the tail SF carries precision that 1-CDF(x) has already
	// rounded away, which is exactly where survival probabilities
	// are wanted.
	SF(x float64) float64

	// Support returns the bounds of the smallest interval outside
	// which the CDF is constant. Either or both bounds may be
	// infinite.
	Support() (float64, float64)

	// SupportConnected reports whether the support is a single
	// interval over which the CDF is strictly increasing. When
	// true, any x with CDF(x) equal to a target probability is
	// the unique preimage, and the inversion engine may return it
	// immediately; when false, the engine keeps narrowing toward
	// the infimum of the matching set.
	SupportConnected() bool

	// Mean returns the mean of the distribution, or NaN if the
	// mean does not exist.
	Mean() float64

	// Variance returns the variance of the distribution. It may
	// be 0, +Inf, or NaN; the inversion engine treats those
	// values as unusable for bracketing and falls back to a
	// direct search, so a distribution that cannot compute its
	// variance exactly should prefer returning NaN over guessing.
	Variance() float64
}

// A Dist is a continuous statistical distribution.
type Dist interface {
	DistCommon

	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64
}

// A DiscreteDist is a discrete statistical distribution.
//
// Most discrete distributions are defined only at integral values of
// the random variable. However, some are defined at other intervals,
// so this interface takes a float64 value for the random variable.
// The probability mass function rounds down to the nearest defined
// point. Note that float64 values can exactly represent integer
// values between ±2**53, so this generally shouldn't be an issue for
// integer-valued distributions (likewise, for half-integer-valued
// distributions, float64 can exactly represent all values between
// ±2**52).
type DiscreteDist interface {
	DistCommon

	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// defined point on the distribution.
	//
	// Note for implementers: for integer-valued distributions,
	// round x using int(math.Floor(x)). Do not use int(x), since
	// that truncates toward zero (unless all x <= 0 are handled
	// the same).
	PMF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64
}

// InvCDF returns the inverse CDF (also known as the quantile function
// or the percent point function) of the given distribution.
//
// The returned function maps p to the infimum of {x : CDF(x) >= p}.
// Where the CDF is only weakly monotonic, that is, constant at value
// p over a plateau [a, b], this is the left edge a rather than an
// arbitrary interior point; where the CDF jumps past p without ever
// equaling it, it is the point just after the jump. For convenience
// at the extremes, p == 0 maps to the lower support bound and p == 1
// to the upper one, either of which may be infinite. The returned
// function panics if p < 0, p > 1, or p is NaN.
//
// If dist implements InvCDF(float64) float64, this returns that
// method. Otherwise, it returns a numerical inverse: bisection over a
// bracket seeded from the distribution's declared moments, falling
// back to a doubling search when the moments are unusable. For a
// DiscreteDist the search runs on the distribution's lattice, so the
// result is always a defined point.
func InvCDF(dist DistCommon) func(p float64) (x float64) {
	type invCDF interface {
		InvCDF(float64) float64
	}
	if dist, ok := dist.(invCDF); ok {
		return dist.InvCDF
	}
	if dist, ok := dist.(DiscreteDist); ok {
		return func(p float64) float64 {
			return invCDFLattice(dist, p)
		}
	}
	return func(p float64) float64 {
		return invCDFNumeric(dist, p)
	}
}

// InvSF returns the inverse survival function of the given
// distribution.
//
// The returned function maps p to the infimum of {x : SF(x) <= p}.
// It inverts SF directly rather than computing InvCDF(1-p): for
// small p the subtraction 1-p would round away exactly the tail
// precision that SF exists to provide. For convenience at the
// extremes, p == 0 maps to the upper support bound and p == 1 to the
// lower one. The returned function panics if p < 0, p > 1, or p is
// NaN.
//
// If dist implements InvSF(float64) float64, this returns that
// method. Otherwise, it returns a numerical inverse analogous to the
// one InvCDF returns.
func InvSF(dist DistCommon) func(p float64) (x float64) {
	type invSF interface {
		InvSF(float64) float64
	}
	if dist, ok := dist.(invSF); ok {
		return dist.InvSF
	}
	if dist, ok := dist.(DiscreteDist); ok {
		return func(p float64) float64 {
			return invSFLattice(dist, p)
		}
	}
	return func(p float64) float64 {
		return invSFNumeric(dist, p)
	}
}

// Rand returns a random number generator that draws from the given
// distribution. The returned generator takes an optional source of
// randomness; if this is nil, it uses the default global source.
//
// If dist implements Rand(*rand.Rand) float64, Rand returns that
// method. Otherwise, it returns a generic generator based on dist's
// inverse CDF (which may in turn use an efficient closed form or the
// generic numerical inverse; see InvCDF).
func Rand(dist DistCommon) func(*rand.Rand) float64 {
	type distRand interface {
		Rand(*rand.Rand) float64
	}
	if dist, ok := dist.(distRand); ok {
		return dist.Rand
	}

	// Otherwise, draw by inverse transform sampling.
	inv := InvCDF(dist)
	return func(r *rand.Rand) float64 {
		var p float64
		for p == 0 {
			if r == nil {
				p = rand.Float64()
			} else {
				p = r.Float64()
			}
		}
		return inv(p)
	}
}

// LogPDF returns the log-density function of the given continuous
// distribution.
//
// If dist implements LogPDF(float64) float64, this returns that
// method; distributions whose densities underflow in the far tails
// should provide one. Otherwise, it returns the composition of
// math.Log with dist.PDF.
func LogPDF(dist Dist) func(x float64) float64 {
	type logPDF interface {
		LogPDF(float64) float64
	}
	if dist, ok := dist.(logPDF); ok {
		return dist.LogPDF
	}
	return func(x float64) float64 {
		return math.Log(dist.PDF(x))
	}
}
