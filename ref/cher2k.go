// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ref

import (
	"github.com/veriblas/veriblas/blas"
)

func conj64(z complex64) complex64 {
	return complex(real(z), -imag(z))
}

// Cher2k performs one of the Hermitian rank-2k operations
//
//	C = alpha*A*B^H + conj(alpha)*B*A^H + beta*C   if trans == NoTrans
//	C = alpha*A^H*B + conj(alpha)*B^H*A + beta*C   if trans == ConjTrans
//
// where alpha and beta are scalars with beta real, C is an n×n Hermitian
// matrix in column-major storage, and A and B are n×k matrices in the first
// case and k×n matrices in the second. Only the triangle of C selected by
// uplo is referenced; the imaginary parts of its diagonal are assumed zero
// and are set to zero on return.
func Cher2k(uplo blas.Uplo, trans blas.Transpose, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta float32, c []complex64, ldc int) {
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
		scaleHermTriangle64(uplo, n, beta, c, ldc)
		return
	}

	if trans == blas.NoTrans {
		// C = alpha*A*B^H + conj(alpha)*B*A^H + beta*C.
		for j := 0; j < n; j++ {
			lo, hi := triRange(uplo, n, j)
			scaleHermColumn64(j, lo, hi, beta, c, ldc)
			for l := 0; l < k; l++ {
				ajl := a[j+l*lda]
				bjl := b[j+l*ldb]
				if ajl == 0 && bjl == 0 {
					continue
				}
				temp1 := alpha * conj64(bjl)
				temp2 := conj64(alpha * ajl)
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
	conjalpha := conj64(alpha)
	for j := 0; j < n; j++ {
		lo, hi := triRange(uplo, n, j)
		for i := lo; i <= hi; i++ {
			var temp1, temp2 complex64
			for l := 0; l < k; l++ {
				temp1 += conj64(a[l+i*lda]) * b[l+j*ldb]
				temp2 += conj64(b[l+i*ldb]) * a[l+j*lda]
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

// triRange returns the inclusive row range [lo, hi] of the stored triangle
// within column j.
func triRange(uplo blas.Uplo, n, j int) (lo, hi int) {
	if uplo == blas.Upper {
		return 0, j
	}
	return j, n - 1
}

// scaleHermTriangle64 forms C = beta*C over the stored triangle, keeping the
// diagonal real.
func scaleHermTriangle64(uplo blas.Uplo, n int, beta float32, c []complex64, ldc int) {
	for j := 0; j < n; j++ {
		lo, hi := triRange(uplo, n, j)
		scaleHermColumn64(j, lo, hi, beta, c, ldc)
	}
}

// scaleHermColumn64 scales rows [lo, hi] of column j by real beta, zeroing
// the imaginary part of the diagonal entry.
func scaleHermColumn64(j, lo, hi int, beta float32, c []complex64, ldc int) {
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
