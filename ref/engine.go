// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ref

import (
	"github.com/veriblas/veriblas/blas"
)

// Typed entry points mirroring the cblas routine names.

// Ssbmv computes y = alpha*A*x + beta*y for a float32 symmetric band matrix.
func Ssbmv(uplo blas.Uplo, n, k int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	Sbmv(uplo, n, k, alpha, a, lda, x, incX, beta, y, incY)
}

// Dsbmv computes y = alpha*A*x + beta*y for a float64 symmetric band matrix.
func Dsbmv(uplo blas.Uplo, n, k int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	Sbmv(uplo, n, k, alpha, a, lda, x, incX, beta, y, incY)
}

// SbmvBatched applies Sbmv to each batch entry in order.
func SbmvBatched[T Float](uplo blas.Uplo, n, k int, alpha T, a [][]T, lda int, x [][]T, incX int, beta T, y [][]T, incY int) {
	for b := range a {
		Sbmv(uplo, n, k, alpha, a[b], lda, x[b], incX, beta, y[b], incY)
	}
}

// SsbmvBatched applies Ssbmv to each batch entry in order.
func SsbmvBatched(uplo blas.Uplo, n, k int, alpha float32, a [][]float32, lda int, x [][]float32, incX int, beta float32, y [][]float32, incY int) {
	SbmvBatched(uplo, n, k, alpha, a, lda, x, incX, beta, y, incY)
}

// DsbmvBatched applies Dsbmv to each batch entry in order.
func DsbmvBatched(uplo blas.Uplo, n, k int, alpha float64, a [][]float64, lda int, x [][]float64, incX int, beta float64, y [][]float64, incY int) {
	SbmvBatched(uplo, n, k, alpha, a, lda, x, incX, beta, y, incY)
}

// Engine adapts the reference kernels to the blas.Engine interface so the
// harness can drive the reference like any other backend.
type Engine struct{}

// Compile-time check that Engine implements blas.Engine.
var _ blas.Engine = Engine{}

// Name returns the backend name.
func (Engine) Name() string {
	return "reference"
}

// SbmvBatched implements blas.Engine.
func (Engine) SbmvBatched(uplo blas.Uplo, m, k int, alpha float32, a [][]float32, lda int, x [][]float32, incX int, beta float32, y [][]float32, incY int) error {
	SsbmvBatched(uplo, m, k, alpha, a, lda, x, incX, beta, y, incY)
	return nil
}

// Her2k implements blas.Engine.
func (Engine) Her2k(uplo blas.Uplo, trans blas.Transpose, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta float32, c []complex64, ldc int) error {
	Cher2k(uplo, trans, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	return nil
}
