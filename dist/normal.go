// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mathext"

	"github.com/probmath/go-distmath/mathx"
)

// A Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma. Sigma must be positive.
type Normal struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution.
var StdNormal = Normal{0, 1}

// PDF returns the density at x. The half-square exponential and the
// multiplication by σ√(2π) run through the compensated kernels in
// package mathx, which keeps the density accurate far into the tails
// where the naive formula loses several digits to the squaring of
// (x-μ)/σ.
func (n Normal) PDF(x float64) float64 {
	z := (x - n.Mu) / n.Sigma
	return mathx.ExpMHalfXX(z) / mathx.XSqrt2Pi(n.Sigma)
}

// LogPDF returns the log of the density at x. It stays finite long
// after PDF has underflowed to 0.
func (n Normal) LogPDF(x float64) float64 {
	z := (x - n.Mu) / n.Sigma
	return -0.5*z*z - math.Log(mathx.XSqrt2Pi(n.Sigma))
}

func (n Normal) CDF(x float64) float64 {
	return 0.5 * math.Erfc(-(x-n.Mu)/(n.Sigma*math.Sqrt2))
}

// SF returns the upper tail directly from erfc rather than as 1-CDF,
// so SF(x) keeps full precision even where CDF(x) has rounded to 1.
func (n Normal) SF(x float64) float64 {
	return 0.5 * math.Erfc((x-n.Mu)/(n.Sigma*math.Sqrt2))
}

// InvCDF returns the p quantile using the closed-form normal quantile
// function. InvCDF(0) is -Inf and InvCDF(1) is +Inf. It panics if p
// is outside [0, 1].
func (n Normal) InvCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return n.Mu + n.Sigma*mathext.NormalQuantile(p)
}

// InvSF returns the x at which the survival function falls to p. By
// symmetry this is the reflection of InvCDF(p) about the mean, which
// avoids ever forming 1-p.
func (n Normal) InvSF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return inf
	case 1:
		return -inf
	}
	return n.Mu - n.Sigma*mathext.NormalQuantile(p)
}

func (n Normal) Support() (float64, float64) {
	return -inf, inf
}

func (n Normal) SupportConnected() bool {
	return true
}

func (n Normal) Mean() float64 {
	return n.Mu
}

func (n Normal) Variance() float64 {
	return n.Sigma * n.Sigma
}

// Rand returns a random sample drawn from the distribution. If r is
// nil it uses the default global source.
func (n Normal) Rand(r *rand.Rand) float64 {
	var g float64
	if r == nil {
		g = rand.NormFloat64()
	} else {
		g = r.NormFloat64()
	}
	return n.Mu + n.Sigma*g
}
