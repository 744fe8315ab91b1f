// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// maxLatticeIndex bounds the lattice search. Above 2⁵³ adjacent
// integers are no longer representable as float64, so no meaningful
// lattice extends beyond it.
const maxLatticeIndex = 1 << 53

// latticeBounds returns the search range for dist in lattice index
// units, extending one point below the support so the lower endpoint
// is always unqualified.
func latticeBounds(dist DiscreteDist, step float64) (iMin, iMax float64) {
	sLo, sHi := dist.Support()
	iMin = -maxLatticeIndex
	if !math.IsInf(sLo, -1) {
		iMin = math.Floor(sLo/step) - 1
	}
	iMax = maxLatticeIndex
	if !math.IsInf(sHi, 1) {
		iMax = math.Ceil(sHi / step)
	}
	return iMin, iMax
}

// latticeAnchor returns a starting index for the doubling search: the
// index nearest the mean when the mean is finite, otherwise 0,
// clamped into [iMin, iMax].
func latticeAnchor(dist DiscreteDist, step, iMin, iMax float64) float64 {
	i := 0.0
	if mu := dist.Mean(); !math.IsNaN(mu) && !math.IsInf(mu, 0) {
		i = math.Round(mu / step)
	}
	return math.Min(math.Max(i, iMin), iMax)
}

// invCDFLattice inverts the CDF of a discrete distribution at p. The
// CDF of a discrete distribution only changes value at lattice
// points, so the infimum of {x : CDF(x) >= p} is itself a lattice
// point and the search can run on integer indices: a doubling
// expansion to establish CDF < p at iLo and CDF >= p at iHi, then
// integer bisection, which terminates exactly when the indices are
// adjacent.
func invCDFLattice(dist DiscreteDist, p float64) float64 {
	checkProb(p)
	sLo, sHi := dist.Support()
	if p == 0 {
		return sLo
	}
	if p == 1 {
		return sHi
	}

	step := dist.Step()
	iMin, iMax := latticeBounds(dist, step)

	iLo := latticeAnchor(dist, step, iMin, iMax)
	iHi := iLo
	fLo := checkedCDF(dist, iLo*step)
	fHi := fLo
	d := 1.0
	for fLo >= p && iLo > iMin {
		iLo = math.Max(iLo-d, iMin)
		fLo = checkedCDF(dist, iLo*step)
		d *= 2
	}
	d = 1.0
	for fHi < p && iHi < iMax {
		iHi = math.Min(iHi+d, iMax)
		fHi = checkedCDF(dist, iHi*step)
		d *= 2
	}
	if fLo >= p {
		// Only possible when the support is unbounded below;
		// for a bounded support the point below it has CDF 0.
		return sLo
	}
	if fHi < p {
		return sHi
	}

	for iHi-iLo > 1 {
		iMid := iLo + math.Floor((iHi-iLo)/2)
		if checkedCDF(dist, iMid*step) >= p {
			iHi = iMid
		} else {
			iLo = iMid
		}
	}
	return iHi * step
}

// invSFLattice inverts the SF of a discrete distribution at p,
// returning the lattice point that is the infimum of
// {x : SF(x) <= p}.
func invSFLattice(dist DiscreteDist, p float64) float64 {
	checkProb(p)
	sLo, sHi := dist.Support()
	if p == 0 {
		return sHi
	}
	if p == 1 {
		return sLo
	}

	step := dist.Step()
	iMin, iMax := latticeBounds(dist, step)

	iLo := latticeAnchor(dist, step, iMin, iMax)
	iHi := iLo
	fLo := checkedSF(dist, iLo*step)
	fHi := fLo
	d := 1.0
	for fLo <= p && iLo > iMin {
		iLo = math.Max(iLo-d, iMin)
		fLo = checkedSF(dist, iLo*step)
		d *= 2
	}
	d = 1.0
	for fHi > p && iHi < iMax {
		iHi = math.Min(iHi+d, iMax)
		fHi = checkedSF(dist, iHi*step)
		d *= 2
	}
	if fLo <= p {
		return sLo
	}
	if fHi > p {
		return sHi
	}

	for iHi-iLo > 1 {
		iMid := iLo + math.Floor((iHi-iLo)/2)
		if checkedSF(dist, iMid*step) <= p {
			iHi = iMid
		} else {
			iLo = iMid
		}
	}
	return iHi * step
}
