// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package check

import (
	"github.com/veriblas/veriblas/blas"
)

// Structured comparisons. Only the meaningful elements of a panel are
// compared; leading-dimension padding and the unreferenced triangle are
// ignored, mirroring the unit checks of vendor conformance suites.

// StridedFloats32 compares n logical vector elements walked through inc.
// Negative increments follow the netlib starting-index rule.
func StridedFloats32(n, inc int, got, want []float32, tol Tolerance) *Result {
	r := NewResult()
	idx := 0
	if inc < 0 {
		idx = -(n - 1) * inc
	}
	for i := 0; i < n; i++ {
		r.Float32(idx, got[idx], want[idx], tol)
		idx += inc
	}
	return r
}

// StridedFloats64 compares n logical vector elements walked through inc.
func StridedFloats64(n, inc int, got, want []float64, tol Tolerance) *Result {
	r := NewResult()
	idx := 0
	if inc < 0 {
		idx = -(n - 1) * inc
	}
	for i := 0; i < n; i++ {
		r.Float64(idx, got[idx], want[idx], tol)
		idx += inc
	}
	return r
}

// BatchStridedFloats32 compares every batch entry of a strided vector batch,
// accumulating into one result.
func BatchStridedFloats32(n, inc int, got, want [][]float32, tol Tolerance) *Result {
	r := NewResult()
	for b := range want {
		idx := 0
		if inc < 0 {
			idx = -(n - 1) * inc
		}
		for i := 0; i < n; i++ {
			r.Float32(b*n+i, got[b][idx], want[b][idx], tol)
			idx += inc
		}
	}
	return r
}

// TriangleComplex64s compares the stored triangle of an n×n column-major
// Hermitian panel with leading dimension ldc.
func TriangleComplex64s(uplo blas.Uplo, n, ldc int, got, want []complex64, tol Tolerance) *Result {
	r := NewResult()
	for j := 0; j < n; j++ {
		lo, hi := 0, j
		if uplo == blas.Lower {
			lo, hi = j, n-1
		}
		for i := lo; i <= hi; i++ {
			r.Complex64(i+j*ldc, got[i+j*ldc], want[i+j*ldc], tol)
		}
	}
	return r
}
