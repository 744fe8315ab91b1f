// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
	"testing"
)

func TestMixture(t *testing.T) {
	// Equal-weight mixture of two unit uniforms with a gap between
	// them.
	m := Mixture{Dists: []Dist{
		Uniform{Min: 0, Max: 1},
		Uniform{Min: 2, Max: 3},
	}}
	testFunc(t, "PDF", m.PDF, map[float64]float64{
		-1: 0, 0.5: 0.5, 1.5: 0, 2.5: 0.5, 4: 0,
	})
	testFunc(t, "CDF", m.CDF, map[float64]float64{
		-1: 0, 0: 0, 0.5: 0.25, 1: 0.5, 1.5: 0.5, 2: 0.5, 2.5: 0.75, 3: 1, 4: 1,
	})
	testFunc(t, "SF", m.SF, map[float64]float64{
		-1: 1, 0.5: 0.75, 1.5: 0.5, 2.5: 0.25, 4: 0,
	})

	if got := m.Mean(); !aeq(1.5, got) {
		t.Errorf("want Mean() = 1.5, got %v", got)
	}
	// Law of total variance: 1/12 within components plus 1 between.
	if got := m.Variance(); !aeq(1.0/12+1, got) {
		t.Errorf("want Variance() = %v, got %v", 1.0/12+1, got)
	}
	if lo, hi := m.Support(); lo != 0 || hi != 3 {
		t.Errorf("want support [0, 3], got [%v, %v]", lo, hi)
	}
}

func TestMixtureInvert(t *testing.T) {
	// The gap between the components is a CDF plateau at 0.5; the
	// engine must resolve p=0.5 to its left edge.
	m := Mixture{Dists: []Dist{
		Uniform{Min: 0, Max: 1},
		Uniform{Min: 2, Max: 3},
	}}
	inv, invSF := InvCDF(m), InvSF(m)
	if got := inv(0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("want InvCDF(0.5) = 1, got %v", got)
	}
	if got := invSF(0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("want InvSF(0.5) = 1, got %v", got)
	}
	testFunc(t, "InvCDF", inv, map[float64]float64{
		0.125: 0.25, 0.25: 0.5, 0.75: 2.5, 0.875: 2.75,
	})
	testExtremes(t, "Mixture", m)
	testProbPanics(t, "Mixture", m)

	// A weighted mixture shifts the plateau's probability.
	m = Mixture{
		Dists:   []Dist{Uniform{Min: 0, Max: 1}, Uniform{Min: 2, Max: 3}},
		Weights: []float64{3, 1},
	}
	if got := m.CDF(1.5); got != 0.75 {
		t.Errorf("want CDF(1.5) = 0.75, got %v", got)
	}
	if got := InvCDF(m)(0.75); math.Abs(got-1) > 1e-9 {
		t.Errorf("want InvCDF(0.75) = 1, got %v", got)
	}
	if got := InvCDF(m)(0.375); !aeq(0.5, got) {
		t.Errorf("want InvCDF(0.375) = 0.5, got %v", got)
	}
}

func TestMixtureBimodalNormal(t *testing.T) {
	// A bimodal normal mixture: continuous everywhere, nearly flat
	// between the modes. Moments are reported exactly, so the
	// Chebyshev bracket applies; quantile and survival inversions
	// must agree with each other by symmetry about 5.
	m := Mixture{Dists: []Dist{
		Normal{Mu: 0, Sigma: 1},
		Normal{Mu: 10, Sigma: 1},
	}}
	if got := m.Mean(); !aeq(5, got) {
		t.Errorf("want Mean() = 5, got %v", got)
	}
	if got := m.Variance(); !aeq(26, got) {
		t.Errorf("want Variance() = 26, got %v", got)
	}
	inv, invSF := InvCDF(m), InvSF(m)
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		if got := m.CDF(inv(p)); !aeq(p, got) {
			t.Errorf("want CDF(InvCDF(%v)) = %v, got %v", p, p, got)
		}
		if got, want := inv(p)+invSF(p), 10.0; math.Abs(got-want) > 1e-6 {
			t.Errorf("want InvCDF(%v) + InvSF(%v) = 10, got %v", p, p, got)
		}
	}
}

func TestMixtureWeightPanics(t *testing.T) {
	m := Mixture{
		Dists:   []Dist{StdNormal},
		Weights: []float64{1, 2},
	}
	defer func() {
		if recover() == nil {
			t.Errorf("mismatched Weights length should panic")
		}
	}()
	m.PDF(0)
}

func TestMixtureRand(t *testing.T) {
	m := Mixture{
		Dists:   []Dist{Uniform{Min: 0, Max: 1}, Uniform{Min: 2, Max: 3}},
		Weights: []float64{1, 3},
	}
	r := rand.New(rand.NewSource(5))
	nLow := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		x := m.Rand(r)
		switch {
		case 0 <= x && x < 1:
			nLow++
		case 2 <= x && x < 3:
		default:
			t.Fatalf("draw %v outside both components", x)
		}
	}
	// A binomial(10000, ¼) is within ±5σ ≈ ±217 of 2500
	// essentially always; a seeded source makes it deterministic
	// anyway.
	if nLow < 2283 || nLow > 2717 {
		t.Errorf("want ~2500 draws from the low component, got %v", nLow)
	}
}
