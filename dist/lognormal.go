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

// A LogNormal is the distribution of exp(N) where N is normal with
// mean Mu and standard deviation Sigma. Sigma must be positive.
type LogNormal struct {
	Mu, Sigma float64
}

func (l LogNormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := (math.Log(x) - l.Mu) / l.Sigma
	// x·(σ√2π) == (xσ)·√2π, so a single compensated multiply
	// covers the whole normalizer.
	return mathx.ExpMHalfXX(z) / mathx.XSqrt2Pi(x*l.Sigma)
}

func (l LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 0.5 * math.Erfc(-(math.Log(x)-l.Mu)/(l.Sigma*math.Sqrt2))
}

func (l LogNormal) SF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return 0.5 * math.Erfc((math.Log(x)-l.Mu)/(l.Sigma*math.Sqrt2))
}

func (l LogNormal) InvCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	return math.Exp(l.Mu + l.Sigma*mathext.NormalQuantile(p))
}

func (l LogNormal) InvSF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return inf
	case 1:
		return 0
	}
	return math.Exp(l.Mu - l.Sigma*mathext.NormalQuantile(p))
}

func (l LogNormal) Support() (float64, float64) {
	return 0, inf
}

func (l LogNormal) SupportConnected() bool {
	return true
}

func (l LogNormal) Mean() float64 {
	return math.Exp(l.Mu + 0.5*l.Sigma*l.Sigma)
}

func (l LogNormal) Variance() float64 {
	s2 := l.Sigma * l.Sigma
	return math.Expm1(s2) * math.Exp(2*l.Mu+s2)
}

// Rand returns a random sample drawn from the distribution. If r is
// nil it uses the default global source.
func (l LogNormal) Rand(r *rand.Rand) float64 {
	var g float64
	if r == nil {
		g = rand.NormFloat64()
	} else {
		g = r.NormFloat64()
	}
	return math.Exp(l.Mu + l.Sigma*g)
}
