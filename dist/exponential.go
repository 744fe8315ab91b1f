// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// An Exponential is an exponential distribution with rate parameter
// Rate (the reciprocal of the mean). Rate must be positive.
type Exponential struct {
	Rate float64
}

func (e Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.Rate * math.Exp(-e.Rate*x)
}

func (e Exponential) LogPDF(x float64) float64 {
	if x < 0 {
		return -inf
	}
	return math.Log(e.Rate) - e.Rate*x
}

func (e Exponential) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return -math.Expm1(-e.Rate * x)
}

func (e Exponential) SF(x float64) float64 {
	if x < 0 {
		return 1
	}
	return math.Exp(-e.Rate * x)
}

// InvCDF returns the p quantile, -log1p(-p)/Rate, which is exact to
// rounding even for p small enough that 1-p == 1.
func (e Exponential) InvCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	return -math.Log1p(-p) / e.Rate
}

// InvSF returns the x at which the survival function falls to p. The
// survival function inverts in closed form without reference to the
// CDF, so deep-tail probabilities map to exact deep-tail quantiles:
// InvSF(1e-300) is meaningful even though InvCDF(1-1e-300) would
// collapse to InvCDF(1).
func (e Exponential) InvSF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return inf
	case 1:
		return 0
	}
	return -math.Log(p) / e.Rate
}

func (e Exponential) Support() (float64, float64) {
	return 0, inf
}

func (e Exponential) SupportConnected() bool {
	return true
}

func (e Exponential) Mean() float64 {
	return 1 / e.Rate
}

func (e Exponential) Variance() float64 {
	return 1 / (e.Rate * e.Rate)
}

// Rand returns a random sample drawn from the distribution. If r is
// nil it uses the default global source.
func (e Exponential) Rand(r *rand.Rand) float64 {
	var g float64
	if r == nil {
		g = rand.ExpFloat64()
	} else {
		g = r.ExpFloat64()
	}
	return g / e.Rate
}
