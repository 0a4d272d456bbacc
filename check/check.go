// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package check compares kernel outputs against reference results within
// numerical tolerances.
//
// An element passes when it is within the absolute tolerance, the relative
// tolerance, or the ULP (units in the last place) tolerance. The Result
// accumulates the worst observed errors so failures can be reported with
// context rather than a bare boolean.
package check

import (
	"math"
)

// Tolerance bounds the acceptable difference between a computed element and
// its reference value. An element passes if it satisfies any of the three
// bounds, so exact zeros pass the absolute bound and large magnitudes pass
// the relative or ULP bound.
type Tolerance struct {
	Abs float64 // Maximum absolute difference.
	Rel float64 // Maximum relative difference.
	ULP uint64  // Maximum bit distance between float representations.
}

// Default tolerances per routine family. Banded matvec does O(k) additions
// per element; rank-2k updates accumulate over 2k products and need more
// slack in float32.
var (
	// SbmvTolerance32 covers float32 symmetric band matvec.
	SbmvTolerance32 = Tolerance{Abs: 1e-4, Rel: 1e-4, ULP: 16}
	// SbmvTolerance64 covers float64 symmetric band matvec.
	SbmvTolerance64 = Tolerance{Abs: 1e-12, Rel: 1e-12, ULP: 16}
	// Her2kTolerance32 covers complex64 rank-2k updates.
	Her2kTolerance32 = Tolerance{Abs: 1e-3, Rel: 1e-3, ULP: 64}
	// Her2kTolerance64 covers complex128 rank-2k updates.
	Her2kTolerance64 = Tolerance{Abs: 1e-10, Rel: 1e-10, ULP: 64}
)

// Result accumulates element comparisons.
type Result struct {
	Checked int     // Elements compared.
	Errors  int     // Elements outside tolerance.
	MaxAbs  float64 // Largest absolute difference seen.
	MaxRel  float64 // Largest relative difference seen.
	MaxULP  uint64  // Largest ULP distance seen (real comparisons only).

	// FirstBad is the flat index of the first failing element, -1 if none.
	FirstBad int
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{FirstBad: -1}
}

// Ok reports whether every compared element was within tolerance.
func (r *Result) Ok() bool {
	return r.Errors == 0
}

func (r *Result) record(idx int, abs, rel float64, ulp uint64, ok bool) {
	r.Checked++
	if abs > r.MaxAbs {
		r.MaxAbs = abs
	}
	if rel > r.MaxRel {
		r.MaxRel = rel
	}
	if ulp > r.MaxULP {
		r.MaxULP = ulp
	}
	if !ok {
		r.Errors++
		if r.FirstBad < 0 {
			r.FirstBad = idx
		}
	}
}

// within applies the any-of acceptance rule.
func (t Tolerance) within(abs, rel float64, ulp uint64) bool {
	switch {
	case abs != abs: // NaN difference never passes
		return false
	case abs <= t.Abs:
		return true
	case rel <= t.Rel:
		return true
	default:
		return ulp <= t.ULP
	}
}

// ULPDistance64 returns the number of representable float64 values between a
// and b. NaNs are infinitely far from everything; +0 and -0 are adjacent.
func ULPDistance64(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxUint64
	}
	ia := orderedBits64(a)
	ib := orderedBits64(b)
	if ia > ib {
		ia, ib = ib, ia
	}
	return uint64(ib - ia)
}

// ULPDistance32 returns the number of representable float32 values between a
// and b.
func ULPDistance32(a, b float32) uint64 {
	if a != a || b != b {
		return math.MaxUint64
	}
	ia := orderedBits32(a)
	ib := orderedBits32(b)
	if ia > ib {
		ia, ib = ib, ia
	}
	return uint64(ib - ia)
}

// orderedBits64 maps float bits onto a monotonic integer line so the bit
// distance between two floats counts representable values between them.
func orderedBits64(f float64) int64 {
	b := int64(math.Float64bits(f))
	if b < 0 {
		b = math.MinInt64 - b
	}
	return b
}

func orderedBits32(f float32) int32 {
	b := int32(math.Float32bits(f))
	if b < 0 {
		b = math.MinInt32 - b
	}
	return b
}

func relDiff(abs, ref float64) float64 {
	if ref == 0 {
		if abs == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return abs / math.Abs(ref)
}

// Float32 compares a single element pair.
func (r *Result) Float32(idx int, got, want float32, tol Tolerance) {
	abs := math.Abs(float64(got) - float64(want))
	rel := relDiff(abs, float64(want))
	ulp := ULPDistance32(got, want)
	r.record(idx, abs, rel, ulp, tol.within(abs, rel, ulp))
}

// Float64 compares a single element pair.
func (r *Result) Float64(idx int, got, want float64, tol Tolerance) {
	abs := math.Abs(got - want)
	rel := relDiff(abs, want)
	ulp := ULPDistance64(got, want)
	r.record(idx, abs, rel, ulp, tol.within(abs, rel, ulp))
}

// Complex64 compares a single element pair component-wise, like the unit
// checks of vendor suites (real and imaginary parts are separate elements).
func (r *Result) Complex64(idx int, got, want complex64, tol Tolerance) {
	r.Float32(idx, real(got), real(want), tol)
	r.Float32(idx, imag(got), imag(want), tol)
}

// Floats32 compares two equally-sized slices elementwise.
func Floats32(got, want []float32, tol Tolerance) *Result {
	r := NewResult()
	for i := range want {
		r.Float32(i, got[i], want[i], tol)
	}
	return r
}

// Floats64 compares two equally-sized slices elementwise.
func Floats64(got, want []float64, tol Tolerance) *Result {
	r := NewResult()
	for i := range want {
		r.Float64(i, got[i], want[i], tol)
	}
	return r
}

// Complex64s compares two equally-sized slices elementwise.
func Complex64s(got, want []complex64, tol Tolerance) *Result {
	r := NewResult()
	for i := range want {
		r.Complex64(i, got[i], want[i], tol)
	}
	return r
}
