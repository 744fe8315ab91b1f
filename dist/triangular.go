// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// A Triangular is a triangular distribution on [Min, Max] with its
// peak at Mode. Min <= Mode <= Max and Min < Max. Mode == Min or
// Mode == Max give the one-sided (right- and left-triangular)
// shapes.
type Triangular struct {
	Min, Mode, Max float64
}

func (t Triangular) PDF(x float64) float64 {
	w := t.Max - t.Min
	switch {
	case x < t.Min || x > t.Max:
		return 0
	case x < t.Mode:
		return 2 * (x - t.Min) / (w * (t.Mode - t.Min))
	case x == t.Mode:
		return 2 / w
	}
	return 2 * (t.Max - x) / (w * (t.Max - t.Mode))
}

func (t Triangular) CDF(x float64) float64 {
	w := t.Max - t.Min
	switch {
	case x <= t.Min:
		return 0
	case x >= t.Max:
		return 1
	case x <= t.Mode:
		d := x - t.Min
		return d * d / (w * (t.Mode - t.Min))
	}
	d := t.Max - x
	return 1 - d*d/(w*(t.Max-t.Mode))
}

// SF computes the upper tail from the Max side directly, so tiny
// survival probabilities near Max do not pass through 1-CDF.
func (t Triangular) SF(x float64) float64 {
	w := t.Max - t.Min
	switch {
	case x <= t.Min:
		return 1
	case x >= t.Max:
		return 0
	case x >= t.Mode:
		d := t.Max - x
		return d * d / (w * (t.Max - t.Mode))
	}
	d := x - t.Min
	return 1 - d*d/(w*(t.Mode-t.Min))
}

func (t Triangular) InvCDF(p float64) float64 {
	checkProb(p)
	w := t.Max - t.Min
	pm := (t.Mode - t.Min) / w
	switch {
	case p == 0:
		return t.Min
	case p == 1:
		return t.Max
	case p < pm:
		return t.Min + math.Sqrt(p*w*(t.Mode-t.Min))
	case p > pm:
		return t.Max - math.Sqrt((1-p)*w*(t.Max-t.Mode))
	}
	return t.Mode
}

func (t Triangular) InvSF(p float64) float64 {
	checkProb(p)
	w := t.Max - t.Min
	qm := (t.Max - t.Mode) / w
	switch {
	case p == 0:
		return t.Max
	case p == 1:
		return t.Min
	case p < qm:
		return t.Max - math.Sqrt(p*w*(t.Max-t.Mode))
	case p > qm:
		return t.Min + math.Sqrt((1-p)*w*(t.Mode-t.Min))
	}
	return t.Mode
}

func (t Triangular) Support() (float64, float64) {
	return t.Min, t.Max
}

func (t Triangular) SupportConnected() bool {
	return true
}

func (t Triangular) Mean() float64 {
	return (t.Min + t.Mode + t.Max) / 3
}

func (t Triangular) Variance() float64 {
	a, c, b := t.Min, t.Mode, t.Max
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

// Rand returns a random sample drawn from the distribution. If r is
// nil it uses the default global source.
func (t Triangular) Rand(r *rand.Rand) float64 {
	var g float64
	if r == nil {
		g = rand.Float64()
	} else {
		g = r.Float64()
	}
	return t.InvCDF(g)
}
