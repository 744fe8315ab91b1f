// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// A Mixture is a weighted mixture of component distributions: it
// draws from Dists[i] with probability proportional to Weights[i].
// Dists must be non-empty.
//
// Weights may be nil, in which case the components are weighted
// equally. Otherwise Weights must have the same length as Dists and
// hold nonnegative values with a positive sum. Weights need not sum
// to 1; they are normalized on use.
//
// Mixture has no closed-form quantile function, so InvCDF and InvSF
// run the numerical inversion engine. Components with disjoint
// supports produce a CDF with plateaus in the gaps, which the engine
// resolves to the leftmost qualifying point.
type Mixture struct {
	Dists   []Dist
	Weights []float64
}

// total returns the weight normalizer.
func (m Mixture) total() float64 {
	if m.Weights == nil {
		return float64(len(m.Dists))
	}
	if len(m.Dists) != len(m.Weights) {
		panic("len(Dists) != len(Weights)")
	}
	w := 0.0
	for _, wi := range m.Weights {
		w += wi
	}
	return w
}

func (m Mixture) weight(i int) float64 {
	if m.Weights == nil {
		return 1
	}
	return m.Weights[i]
}

func (m Mixture) PDF(x float64) float64 {
	w := m.total()
	y := 0.0
	for i, d := range m.Dists {
		y += m.weight(i) * d.PDF(x)
	}
	return y / w
}

func (m Mixture) CDF(x float64) float64 {
	w := m.total()
	y := 0.0
	for i, d := range m.Dists {
		y += m.weight(i) * d.CDF(x)
	}
	return y / w
}

// SF sums the component survival functions directly, so a mixture
// keeps whatever tail precision its components provide.
func (m Mixture) SF(x float64) float64 {
	w := m.total()
	y := 0.0
	for i, d := range m.Dists {
		y += m.weight(i) * d.SF(x)
	}
	return y / w
}

// Support returns the hull of the component supports. The hull may
// cover gaps where no component has mass.
func (m Mixture) Support() (float64, float64) {
	lo, hi := inf, -inf
	for _, d := range m.Dists {
		dLo, dHi := d.Support()
		lo = math.Min(lo, dLo)
		hi = math.Max(hi, dHi)
	}
	return lo, hi
}

// SupportConnected returns false: components may leave gaps between
// their supports, and connectivity of the union is not worth proving
// when the inversion engine only uses it as a shortcut.
func (m Mixture) SupportConnected() bool {
	return false
}

func (m Mixture) Mean() float64 {
	w := m.total()
	mu := 0.0
	for i, d := range m.Dists {
		mu += m.weight(i) * d.Mean()
	}
	return mu / w
}

// Variance applies the law of total variance: the weighted component
// variances plus the variance of the component means. If any
// component reports NaN moments the result is NaN, which the
// inversion engine treats as unusable.
func (m Mixture) Variance() float64 {
	w := m.total()
	mu := m.Mean()
	v := 0.0
	for i, d := range m.Dists {
		mi := d.Mean()
		v += m.weight(i) * (d.Variance() + mi*mi)
	}
	return v/w - mu*mu
}

// Rand picks a component with probability proportional to its weight
// and draws from it. If r is nil it uses the default global source.
func (m Mixture) Rand(r *rand.Rand) float64 {
	var u float64
	if r == nil {
		u = rand.Float64()
	} else {
		u = r.Float64()
	}
	u *= m.total()
	for i, d := range m.Dists {
		u -= m.weight(i)
		if u < 0 {
			return Rand(d)(r)
		}
	}
	// Rounding pushed u past the last cumulative weight.
	return Rand(m.Dists[len(m.Dists)-1])(r)
}
