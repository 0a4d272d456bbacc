// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package blas

// Engine is the kernel surface an accelerated backend exposes to the
// conformance harness. The float32/complex64 types match what every backend
// can execute; the pure-Go reference additionally provides float64 and
// complex128 entry points as plain functions.
//
// Batched arguments are slices of per-batch buffers, the host-side rendition
// of the device pointer arrays in batched BLAS APIs. Engines must leave every
// input untouched and write results only into y (sbmv) or c (her2k).
type Engine interface {
	// Name identifies the backend in reports and logs.
	Name() string

	// SbmvBatched computes, for each batch entry b,
	//
	//	y[b] = alpha * A[b] * x[b] + beta * y[b]
	//
	// where each A[b] is an m×m symmetric band matrix with k
	// super-diagonals in column-major banded storage (lda >= k+1).
	// Increments may be negative; a negative increment walks the vector
	// from its far end.
	SbmvBatched(uplo Uplo, m, k int, alpha float32, a [][]float32, lda int,
		x [][]float32, incX int, beta float32, y [][]float32, incY int) error

	// Her2k computes one of the Hermitian rank-2k updates
	//
	//	C = alpha*A*B^H + conj(alpha)*B*A^H + beta*C   if trans == NoTrans
	//	C = alpha*A^H*B + conj(alpha)*B^H*A + beta*C   if trans == ConjTrans
	//
	// where C is an n×n Hermitian matrix, beta is real, and A and B are
	// n×k (NoTrans) or k×n (ConjTrans) column-major matrices. Only the
	// triangle of C selected by uplo is referenced and updated, and the
	// imaginary parts of the diagonal are set to zero on return.
	Her2k(uplo Uplo, trans Transpose, n, k int, alpha complex64, a []complex64, lda int,
		b []complex64, ldb int, beta float32, c []complex64, ldc int) error
}
