// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
	"testing"
)

func TestInvCDFDispatch(t *testing.T) {
	// A distribution with a closed-form inverse gets it back
	// unchanged from the dispatcher.
	n := Normal{Mu: 3, Sigma: 2}
	inv := InvCDF(n)
	for _, p := range []float64{0.1, 0.5, 0.9} {
		if got, want := inv(p), n.InvCDF(p); got != want {
			t.Errorf("want InvCDF dispatch to closed form at %v: %v, got %v", p, want, got)
		}
	}
	invSF := InvSF(n)
	for _, p := range []float64{0.1, 0.5, 0.9} {
		if got, want := invSF(p), n.InvSF(p); got != want {
			t.Errorf("want InvSF dispatch to closed form at %v: %v, got %v", p, want, got)
		}
	}

	// A DiscreteDist routes to the lattice engine: results land on
	// lattice points even for interior probabilities.
	b := Binomial{N: 10, P: 0.3}
	x := InvCDF(b)(0.6)
	if x != math.Floor(x) {
		t.Errorf("want lattice InvCDF to return an integer, got %v", x)
	}
}

func TestRand(t *testing.T) {
	// A native sampler is dispatched to directly: same seed, same
	// draws as calling the method.
	n := Normal{Mu: 1, Sigma: 2}
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	f := Rand(n)
	for i := 0; i < 10; i++ {
		if got, want := f(r1), n.Rand(r2); got != want {
			t.Errorf("want native Rand draw %v, got %v", want, got)
		}
	}

	// A distribution without a sampler draws by inverse transform:
	// the draw is InvCDF applied to the uniform variate the
	// generator produces.
	d := TDist{V: 4}
	r1 = rand.New(rand.NewSource(7))
	r2 = rand.New(rand.NewSource(7))
	f = Rand(d)
	inv := InvCDF(d)
	for i := 0; i < 4; i++ {
		got := f(r1)
		p := r2.Float64()
		for p == 0 {
			p = r2.Float64()
		}
		if want := inv(p); got != want {
			t.Errorf("want inverse-transform draw %v for p=%v, got %v", want, p, got)
		}
	}

	// Draws from an unbounded distribution are always finite: the
	// generator rejects p == 0 rather than emit -Inf.
	r1 = rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		if x := f(r1); math.IsInf(x, 0) || math.IsNaN(x) {
			t.Fatalf("want finite draw, got %v", x)
		}
	}
}

func TestLogPDFDispatch(t *testing.T) {
	// Normal provides LogPDF; the dispatcher must return the
	// method, which stays finite where PDF has underflowed.
	n := StdNormal
	lf := LogPDF(n)
	if got, want := lf(1.5), n.LogPDF(1.5); got != want {
		t.Errorf("want LogPDF dispatch to method: %v, got %v", want, got)
	}
	if n.PDF(50) != 0 {
		t.Errorf("want PDF(50) to underflow, got %v", n.PDF(50))
	}
	if got := lf(50); math.IsInf(got, 0) || !aeq(-0.5*50*50-math.Log(math.Sqrt(2*math.Pi)), got) {
		t.Errorf("want LogPDF(50) ≈ %v, got %v", -0.5*50*50-math.Log(math.Sqrt(2*math.Pi)), got)
	}

	// TDist has no LogPDF method; the fallback is log∘PDF.
	d := TDist{V: 4}
	lf = LogPDF(d)
	for _, x := range []float64{-2, 0, 3} {
		if got, want := lf(x), math.Log(d.PDF(x)); got != want {
			t.Errorf("want LogPDF fallback log(PDF(%v)) = %v, got %v", x, want, got)
		}
	}
}
