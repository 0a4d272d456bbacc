// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package conformance drives accelerated engines through parametrized BLAS
// cases and diffs their outputs against the pure-Go reference kernels.
//
// Each case follows the same flow: validate arguments before any allocation,
// populate host buffers with deterministic pseudo-random data, run the engine
// under test, run the reference on untouched copies of the same inputs, and
// compare the results within a numerical tolerance.
package conformance

import (
	"fmt"

	"github.com/veriblas/veriblas/blas"
	"github.com/veriblas/veriblas/check"
	"github.com/veriblas/veriblas/internal/datagen"
)

// Arguments parametrizes a single conformance case. Field meaning follows
// the BLAS routine being tested; unused fields are ignored.
type Arguments struct {
	M int // Rows/order for matvec routines.
	N int // Order of C for rank-k routines.
	K int // Band width (sbmv) or inner dimension (her2k).

	Lda int
	Ldb int
	Ldc int

	IncX int
	IncY int

	BatchCount int

	Uplo  blas.Uplo
	Trans blas.Transpose

	Alpha     float64
	AlphaImag float64 // Imaginary part of alpha for complex routines.
	Beta      float64 // Real by definition for her2k.

	// Iters repeats the engine call on fresh output copies for timing;
	// the last iteration's result is the one compared. Zero means one.
	Iters int

	// Seed for the deterministic data generator. Zero means DefaultSeed.
	Seed int64

	// Tol overrides the routine's default tolerance when non-nil.
	Tol *check.Tolerance
}

func (a Arguments) seed() int64 {
	if a.Seed == 0 {
		return datagen.DefaultSeed
	}
	return a.Seed
}

func (a Arguments) iters() int {
	return max(1, a.Iters)
}

func (a Arguments) alpha32() float32 {
	return float32(a.Alpha)
}

func (a Arguments) beta32() float32 {
	return float32(a.Beta)
}

func (a Arguments) alphaC64() complex64 {
	return complex(float32(a.Alpha), float32(a.AlphaImag))
}

func (a Arguments) String() string {
	return fmt.Sprintf("uplo=%s trans=%s M=%d N=%d K=%d lda=%d ldb=%d ldc=%d incx=%d incy=%d batch=%d alpha=(%g,%g) beta=%g",
		a.Uplo, a.Trans, a.M, a.N, a.K, a.Lda, a.Ldb, a.Ldc, a.IncX, a.IncY, a.BatchCount, a.Alpha, a.AlphaImag, a.Beta)
}
