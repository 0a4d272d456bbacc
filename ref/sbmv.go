// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ref

import (
	"github.com/veriblas/veriblas/blas"
)

// Float is the constraint for real-valued kernel elements.
type Float interface {
	~float32 | ~float64
}

// Sbmv performs the matrix-vector operation
//
//	y = alpha * A * x + beta * y
//
// where A is an n×n symmetric band matrix with k super-diagonals in
// column-major banded storage: column j of the band panel holds the stored
// entries of column j of A, with the diagonal at row k (uplo == Upper) or
// row 0 (uplo == Lower). lda must be at least k+1. Rows of the panel below
// the band are neither read nor written.
func Sbmv[T Float](uplo blas.Uplo, n, k int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	switch {
	case !uplo.Valid():
		panic(badUplo)
	case n < 0:
		panic(nLT0)
	case k < 0:
		panic(kLT0)
	case lda < k+1:
		panic(badLdA)
	case incX == 0:
		panic(zeroIncX)
	case incY == 0:
		panic(zeroIncY)
	}

	// Quick return if possible.
	if n == 0 {
		return
	}

	if len(a) < lda*(n-1)+k+1 {
		panic(shortA)
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}

	// Quick return if possible.
	if alpha == 0 && beta == 1 {
		return
	}

	// Starting indexes for negative increments walk from the far end.
	var kx, ky int
	if incX < 0 {
		kx = -(n - 1) * incX
	}
	if incY < 0 {
		ky = -(n - 1) * incY
	}

	// Form y = beta * y.
	if beta != 1 {
		iy := ky
		if beta == 0 {
			for i := 0; i < n; i++ {
				y[iy] = 0
				iy += incY
			}
		} else {
			for i := 0; i < n; i++ {
				y[iy] *= beta
				iy += incY
			}
		}
	}

	if alpha == 0 {
		return
	}

	if uplo == blas.Upper {
		// Diagonal of A stored in row k of the band panel.
		jx, jy := kx, ky
		for j := 0; j < n; j++ {
			temp1 := alpha * x[jx]
			var temp2 T
			ix, iy := kx, ky
			for i := max(0, j-k); i < j; i++ {
				v := a[k-j+i+j*lda]
				y[iy] += temp1 * v
				temp2 += v * x[ix]
				ix += incX
				iy += incY
			}
			y[jy] += temp1*a[k+j*lda] + alpha*temp2
			jx += incX
			jy += incY
			if j >= k {
				kx += incX
				ky += incY
			}
		}
		return
	}

	// Diagonal of A stored in row 0 of the band panel.
	jx, jy := kx, ky
	for j := 0; j < n; j++ {
		temp1 := alpha * x[jx]
		var temp2 T
		y[jy] += temp1 * a[j*lda]
		ix, iy := jx, jy
		for i := j + 1; i <= min(n-1, j+k); i++ {
			ix += incX
			iy += incY
			v := a[i-j+j*lda]
			y[iy] += temp1 * v
			temp2 += v * x[ix]
		}
		y[jy] += alpha * temp2
		jx += incX
		jy += incY
	}
}
