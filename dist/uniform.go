// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math/rand"

// A Uniform is a continuous uniform distribution on [Min, Max].
// Min must be less than Max.
type Uniform struct {
	Min, Max float64
}

func (u Uniform) PDF(x float64) float64 {
	if x < u.Min || x > u.Max {
		return 0
	}
	return 1 / (u.Max - u.Min)
}

func (u Uniform) CDF(x float64) float64 {
	switch {
	case x < u.Min:
		return 0
	case x > u.Max:
		return 1
	}
	return (x - u.Min) / (u.Max - u.Min)
}

func (u Uniform) SF(x float64) float64 {
	switch {
	case x < u.Min:
		return 1
	case x > u.Max:
		return 0
	}
	return (u.Max - x) / (u.Max - u.Min)
}

// InvCDF returns the p quantile. The extremes are returned exactly:
// InvCDF(0) == Min and InvCDF(1) == Max with no rounding from the
// interpolation.
func (u Uniform) InvCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return u.Min
	case 1:
		return u.Max
	}
	return u.Min + p*(u.Max-u.Min)
}

func (u Uniform) InvSF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return u.Max
	case 1:
		return u.Min
	}
	return u.Max - p*(u.Max-u.Min)
}

func (u Uniform) Support() (float64, float64) {
	return u.Min, u.Max
}

func (u Uniform) SupportConnected() bool {
	return true
}

func (u Uniform) Mean() float64 {
	return (u.Min + u.Max) / 2
}

func (u Uniform) Variance() float64 {
	w := u.Max - u.Min
	return w * w / 12
}

// Rand returns a random sample drawn from the distribution. If r is
// nil it uses the default global source.
func (u Uniform) Rand(r *rand.Rand) float64 {
	var g float64
	if r == nil {
		g = rand.Float64()
	} else {
		g = r.Float64()
	}
	return u.Min + g*(u.Max-u.Min)
}
