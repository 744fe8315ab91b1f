// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tol implements named, composable equality policies for
// float64 values.
//
// Floating-point code rarely wants plain ==. Depending on context the
// right question is "same bits", "within n ULPs", "within an absolute
// epsilon", or "within a relative epsilon", and the answer for special
// values like NaN and signed zero differs between these. A Tolerance
// captures one such policy as a value that can be passed around,
// combined with And, Or, and Not, and printed in test failures.
package tol // import "github.com/probmath/go-distmath/tol"

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// A Tolerance reports whether two float64 values should be considered
// equal. The zero Tolerance is not valid; use Exact or one of the
// constructors.
type Tolerance struct {
	test func(a, b float64) bool
	desc string
}

// Test reports whether a and b are equal under the tolerance.
func (t Tolerance) Test(a, b float64) bool {
	return t.test(a, b)
}

func (t Tolerance) String() string {
	return t.desc
}

// Exact considers a and b equal if they have identical bits, or if
// both are NaN. +0 and -0 are distinct under Exact.
var Exact = Tolerance{
	test: func(a, b float64) bool {
		if math.IsNaN(a) && math.IsNaN(b) {
			return true
		}
		return math.Float64bits(a) == math.Float64bits(b)
	},
	desc: "exact",
}

// ULPs returns a Tolerance under which a and b are equal if they are
// within n units in the last place of each other. Two NaNs are equal;
// a NaN never equals a non-NaN. +0 and -0 are equal.
func ULPs(n uint) Tolerance {
	return Tolerance{
		test: func(a, b float64) bool {
			if math.IsNaN(a) && math.IsNaN(b) {
				return true
			}
			return scalar.EqualWithinULP(a, b, n)
		},
		desc: fmt.Sprintf("ulps(%d)", n),
	}
}

// Abs returns a Tolerance under which a and b are equal if
// |a-b| <= eps. Two NaNs are equal; a NaN never equals a non-NaN.
// +0 and -0 are equal.
func Abs(eps float64) Tolerance {
	return Tolerance{
		test: func(a, b float64) bool {
			if math.IsNaN(a) && math.IsNaN(b) {
				return true
			}
			return scalar.EqualWithinAbs(a, b, eps)
		},
		desc: fmt.Sprintf("abs(%g)", eps),
	}
}

// Rel returns a Tolerance under which a and b are equal if their
// difference is within eps relative to the larger magnitude. Unlike
// the other tolerances, NaN is never equal to anything, including
// itself. +0 and -0 are equal.
func Rel(eps float64) Tolerance {
	return Tolerance{
		test: func(a, b float64) bool {
			return scalar.EqualWithinRel(a, b, eps)
		},
		desc: fmt.Sprintf("rel(%g)", eps),
	}
}

// And returns a Tolerance that is satisfied when both t and u are.
func (t Tolerance) And(u Tolerance) Tolerance {
	return Tolerance{
		test: func(a, b float64) bool {
			return t.test(a, b) && u.test(a, b)
		},
		desc: "(" + t.desc + " && " + u.desc + ")",
	}
}

// Or returns a Tolerance that is satisfied when either t or u is.
func (t Tolerance) Or(u Tolerance) Tolerance {
	return Tolerance{
		test: func(a, b float64) bool {
			return t.test(a, b) || u.test(a, b)
		},
		desc: "(" + t.desc + " || " + u.desc + ")",
	}
}

// Not returns the negation of t. Not is an involution: t.Not().Not()
// accepts exactly the pairs t accepts.
func (t Tolerance) Not() Tolerance {
	return Tolerance{
		test: func(a, b float64) bool {
			return !t.test(a, b)
		},
		desc: "!" + t.desc,
	}
}
