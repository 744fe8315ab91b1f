// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestUniform(t *testing.T) {
	u := Uniform{Min: -2, Max: 6}
	want := distuv.Uniform{Min: -2, Max: 6}
	testFunc(t, "PDF", u.PDF, map[float64]float64{
		-3: 0, -2: 0.125, 0: 0.125, 6: 0.125, 7: 0,
	})
	for _, x := range []float64{-1.5, 0, 3, 5.5} {
		if got := u.CDF(x); !aeq(want.CDF(x), got) {
			t.Errorf("want CDF(%v) = %v, got %v", x, want.CDF(x), got)
		}
		if got := u.SF(x); !aeq(want.Survival(x), got) {
			t.Errorf("want SF(%v) = %v, got %v", x, want.Survival(x), got)
		}
	}
	testFunc(t, "CDF", u.CDF, map[float64]float64{-5: 0, 8: 1})
	testFunc(t, "SF", u.SF, map[float64]float64{-5: 1, 8: 0})

	// The closed-form inverse hits the bounds exactly, with no
	// interpolation rounding.
	if got := u.InvCDF(0); got != -2 {
		t.Errorf("want InvCDF(0) = -2 exactly, got %v", got)
	}
	if got := u.InvCDF(1); got != 6 {
		t.Errorf("want InvCDF(1) = 6 exactly, got %v", got)
	}
	for _, p := range []float64{0.125, 0.5, 0.875} {
		if got := u.InvCDF(p); !aeq(want.Quantile(p), got) {
			t.Errorf("want InvCDF(%v) = %v, got %v", p, want.Quantile(p), got)
		}
	}
	testInvert(t, "Uniform", u, 0.01, 0.25, 0.5, 0.75, 0.99)
	testExtremes(t, "Uniform", u)
	testProbPanics(t, "Uniform", u)

	if got := u.Mean(); got != 2 {
		t.Errorf("want Mean() = 2, got %v", got)
	}
	if got := u.Variance(); !aeq(64.0/12, got) {
		t.Errorf("want Variance() = 16/3, got %v", got)
	}
}

func TestUniformRand(t *testing.T) {
	u := Uniform{Min: 10, Max: 20}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		x := u.Rand(r)
		if x < 10 || x >= 20 {
			t.Fatalf("want draw in [10, 20), got %v", x)
		}
	}
}
