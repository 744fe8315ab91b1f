// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math/rand"

// A Delta is a degenerate distribution: a point mass that takes the
// value T with probability 1.
type Delta struct {
	T float64
}

// PDF returns +Inf at T and 0 elsewhere. The density of a point mass
// does not exist as a function; the infinity marks the atom.
func (d Delta) PDF(x float64) float64 {
	if x == d.T {
		return inf
	}
	return 0
}

func (d Delta) CDF(x float64) float64 {
	if x < d.T {
		return 0
	}
	return 1
}

func (d Delta) SF(x float64) float64 {
	if x < d.T {
		return 1
	}
	return 0
}

func (d Delta) InvCDF(p float64) float64 {
	checkProb(p)
	return d.T
}

func (d Delta) InvSF(p float64) float64 {
	checkProb(p)
	return d.T
}

func (d Delta) Support() (float64, float64) {
	return d.T, d.T
}

func (d Delta) SupportConnected() bool {
	return true
}

func (d Delta) Mean() float64 {
	return d.T
}

func (d Delta) Variance() float64 {
	return 0
}

// Rand returns T regardless of the source.
func (d Delta) Rand(r *rand.Rand) float64 {
	return d.T
}
