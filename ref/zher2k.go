// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ref

import (
	"math/cmplx"

	"github.com/veriblas/veriblas/blas"
)

// Zher2k performs one of the Hermitian rank-2k operations
//
//	C = alpha*A*B^H + conj(alpha)*B*A^H + beta*C   if trans == NoTrans
//	C = alpha*A^H*B + conj(alpha)*B^H*A + beta*C   if trans == ConjTrans
//
// where alpha and beta are scalars with beta real, C is an n×n Hermitian
// matrix in column-major storage, and A and B are n×k matrices in the first
// case and k×n matrices in the second. Only the triangle of C selected by
// uplo is referenced; the imaginary parts of its diagonal are assumed zero
// and are set to zero on return.
func Zher2k(uplo blas.Uplo, trans blas.Transpose, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta float64, c []complex128, ldc int) {
	var rows, cols int
	switch trans {
	default:
		panic(badTranspose)
	case blas.NoTrans:
		rows, cols = n, k
	case blas.ConjTrans:
		rows, cols = k, n
	}
	switch {
	case !uplo.Valid():
		panic(badUplo)
	case n < 0:
		panic(nLT0)
	case k < 0:
		panic(kLT0)
	case lda < max(1, rows):
		panic(badLdA)
	case ldb < max(1, rows):
		panic(badLdB)
	case ldc < max(1, n):
		panic(badLdC)
	}

	// Quick return if possible.
	if n == 0 {
		return
	}

	if cols > 0 {
		if len(a) < lda*(cols-1)+rows {
			panic(shortA)
		}
		if len(b) < ldb*(cols-1)+rows {
			panic(shortB)
		}
	}
	if len(c) < ldc*(n-1)+n {
		panic(shortC)
	}

	if (alpha == 0 || k == 0) && beta == 1 {
		return
	}

	if alpha == 0 {
		scaleHermTriangle128(uplo, n, beta, c, ldc)
		return
	}

	if trans == blas.NoTrans {
		// C = alpha*A*B^H + conj(alpha)*B*A^H + beta*C.
		for j := 0; j < n; j++ {
			lo, hi := triRange(uplo, n, j)
			scaleHermColumn128(j, lo, hi, beta, c, ldc)
			for l := 0; l < k; l++ {
				ajl := a[j+l*lda]
				bjl := b[j+l*ldb]
				if ajl == 0 && bjl == 0 {
					continue
				}
				temp1 := alpha * cmplx.Conj(bjl)
				temp2 := cmplx.Conj(alpha * ajl)
				for i := lo; i <= hi; i++ {
					if i == j {
						cjj := a[j+l*lda]*temp1 + b[j+l*ldb]*temp2
						c[j+j*ldc] += complex(real(cjj), 0)
						continue
					}
					c[i+j*ldc] += a[i+l*lda]*temp1 + b[i+l*ldb]*temp2
				}
			}
		}
		return
	}

	// C = alpha*A^H*B + conj(alpha)*B^H*A + beta*C.
	conjalpha := cmplx.Conj(alpha)
	for j := 0; j < n; j++ {
		lo, hi := triRange(uplo, n, j)
		for i := lo; i <= hi; i++ {
			var temp1, temp2 complex128
			for l := 0; l < k; l++ {
				temp1 += cmplx.Conj(a[l+i*lda]) * b[l+j*ldb]
				temp2 += cmplx.Conj(b[l+i*ldb]) * a[l+j*lda]
			}
			sum := alpha*temp1 + conjalpha*temp2
			switch {
			case i == j && beta == 0:
				c[j+j*ldc] = complex(real(sum), 0)
			case i == j:
				c[j+j*ldc] = complex(beta*real(c[j+j*ldc])+real(sum), 0)
			case beta == 0:
				c[i+j*ldc] = sum
			default:
				c[i+j*ldc] = complex(beta, 0)*c[i+j*ldc] + sum
			}
		}
	}
}

func scaleHermTriangle128(uplo blas.Uplo, n int, beta float64, c []complex128, ldc int) {
	for j := 0; j < n; j++ {
		lo, hi := triRange(uplo, n, j)
		scaleHermColumn128(j, lo, hi, beta, c, ldc)
	}
}

func scaleHermColumn128(j, lo, hi int, beta float64, c []complex128, ldc int) {
	for i := lo; i <= hi; i++ {
		switch {
		case i == j && beta == 0:
			c[j+j*ldc] = 0
		case i == j:
			c[j+j*ldc] = complex(beta*real(c[j+j*ldc]), 0)
		case beta == 0:
			c[i+j*ldc] = 0
		default:
			c[i+j*ldc] *= complex(beta, 0)
		}
	}
}
