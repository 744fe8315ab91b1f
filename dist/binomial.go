// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probmath/go-distmath/mathx"
)

// Binomial is a binomial distribution.
//
// Binomial has no closed-form quantile function; InvCDF and InvSF
// run the lattice inversion engine, so both always return an
// integral number of successes.
type Binomial struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF is the probability of getting exactly int(k) successes in b.N
// independent Bernoulli trials with probability b.P.
func (b Binomial) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > b.N {
		return 0
	}
	switch b.P {
	case 0:
		if ki == 0 {
			return 1
		}
		return 0
	case 1:
		if ki == b.N {
			return 1
		}
		return 0
	}
	// Work in logs so the binomial coefficient cannot overflow
	// for large N.
	return math.Exp(mathx.Lchoose(b.N, ki) +
		float64(ki)*math.Log(b.P) + float64(b.N-ki)*math.Log1p(-b.P))
}

// CDF is the probability of getting k or fewer successes in b.N
// independent Bernoulli trials with probability b.P.
func (b Binomial) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= b.N {
		return 1
	}

	return mathx.BetaInc(1-b.P, float64(b.N-ki), k+1)
}

// SF is the probability of getting more than k successes. Like CDF,
// it reduces to a single regularized incomplete beta function, so the
// upper tail is computed directly rather than as 1-CDF(k).
func (b Binomial) SF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 1
	} else if ki >= b.N {
		return 0
	}

	return mathx.BetaInc(b.P, k+1, float64(b.N-ki))
}

func (b Binomial) Support() (float64, float64) {
	return 0, float64(b.N)
}

// SupportConnected returns false: the mass sits only on the
// integers, so the CDF is flat between lattice points.
func (b Binomial) SupportConnected() bool {
	return false
}

func (b Binomial) Step() float64 {
	return 1
}

func (b Binomial) Mean() float64 {
	return float64(b.N) * b.P
}

func (b Binomial) Variance() float64 {
	return float64(b.N) * b.P * (1 - b.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution b.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (b Binomial) NormalApprox() Normal {
	return Normal{Mu: b.Mean(), Sigma: math.Sqrt(b.Variance())}
}
