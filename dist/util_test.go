// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
	"testing"
)

// aeq returns true if expect and got are equal to 8 significant
// figures (1 part in 100 million).
func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999999 <= got && got*0.99999999 <= expect
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if want == got || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v) = %v, got %v", name, x, want, got)
	}
}

// testInvert checks that inverting the forward function recovers p
// for each p in ps, both for the CDF and for the SF. It applies to
// distributions whose forward functions are strictly increasing
// across the probed quantiles (no plateaus; plateau policy has its
// own tests).
func testInvert(t *testing.T, name string, dist DistCommon, ps ...float64) {
	t.Helper()
	invCDF, invSF := InvCDF(dist), InvSF(dist)
	for _, p := range ps {
		x := invCDF(p)
		if got := dist.CDF(x); !aeq(p, got) {
			t.Errorf("%s: want CDF(InvCDF(%v)) = %v, got %v (x=%v)", name, p, p, got, x)
		}
		x = invSF(p)
		if got := dist.SF(x); !aeq(p, got) {
			t.Errorf("%s: want SF(InvSF(%v)) = %v, got %v (x=%v)", name, p, p, got, x)
		}
	}
}

// testExtremes checks the p==0 and p==1 conventions: InvCDF maps
// them to the support bounds and InvSF to the reversed bounds.
func testExtremes(t *testing.T, name string, dist DistCommon) {
	t.Helper()
	sLo, sHi := dist.Support()
	check := func(desc string, want, got float64) {
		t.Helper()
		if want != got && !(math.IsNaN(want) && math.IsNaN(got)) {
			t.Errorf("%s: want %s = %v, got %v", name, desc, want, got)
		}
	}
	check("InvCDF(0)", sLo, InvCDF(dist)(0))
	check("InvCDF(1)", sHi, InvCDF(dist)(1))
	check("InvSF(0)", sHi, InvSF(dist)(0))
	check("InvSF(1)", sLo, InvSF(dist)(1))
}

// testProbPanics checks that the inverse functions reject
// probabilities outside [0, 1], NaN included.
func testProbPanics(t *testing.T, name string, dist DistCommon) {
	t.Helper()
	for _, f := range []func(float64) float64{InvCDF(dist), InvSF(dist)} {
		for _, p := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
			func() {
				defer func() {
					t.Helper()
					if r := recover(); r != badProb {
						t.Errorf("%s: inverting p=%v should panic %q, got %v", name, p, badProb, r)
					}
				}()
				f(p)
			}()
		}
	}
}

// testDiscreteCDF checks that dist's CDF is consistent with summing
// its PMF across the support, and that the CDF steps exactly at
// lattice points.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	lo, hi := dist.Support()
	step := dist.Step()
	sum := 0.0
	for x := lo; x <= hi; x += step {
		sum += dist.PMF(x)
		if got := dist.CDF(x); !aeq(sum, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, x, sum, got)
		}
		// Between lattice points the CDF is flat.
		if got := dist.CDF(x + step/2); !aeq(sum, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, x+step/2, sum, got)
		}
		if got := dist.SF(x); !aeq(1, sum+got) {
			t.Errorf("want %s.SF(%v)+CDF(%v) = 1, got %v", name, x, x, sum+got)
		}
	}
	if got := dist.CDF(lo - step); got != 0 {
		t.Errorf("want %s(%v) = 0, got %v", name, lo-step, got)
	}
	if got := dist.CDF(hi + step); got != 1 {
		t.Errorf("want %s(%v) = 1, got %v", name, hi+step, got)
	}
}
