// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Choose returns the binomial coefficient of n and k, often written
// "n choose k".
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		// Every prefix product is itself a binomial
		// coefficient, so it remains integral and exact until
		// it exceeds 2⁵³.
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}

// Lchoose returns math.Log(Choose(n, k)). Unlike Choose, it does not
// overflow for large n.
func Lchoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}
	return lgamma(float64(n+1)) - lgamma(float64(k+1)) - lgamma(float64(n-k+1))
}
