package cpu

import (
	"github.com/veriblas/veriblas/blas"
	"github.com/veriblas/veriblas/internal/parallel"
	"github.com/veriblas/veriblas/ref"
)

// her2kPanel is the number of C columns each work unit owns. In column-major
// storage every column of C is written by exactly one unit, so panels need no
// synchronization.
const her2kPanel = 32

func conj64(z complex64) complex64 {
	return complex(real(z), -imag(z))
}

// Her2k computes the Hermitian rank-2k update of C, parallelized over column
// panels of C.
func (c *CPUBackend) Her2k(uplo blas.Uplo, trans blas.Transpose, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta float32, cc []complex64, ldc int) error {
	if !uplo.Valid() {
		return invalidf("cpu: her2k uplo %q", byte(uplo))
	}
	if trans != blas.NoTrans && trans != blas.ConjTrans {
		return invalidf("cpu: her2k trans %q", byte(trans))
	}
	rows := n
	if trans == blas.ConjTrans {
		rows = k
	}
	if n < 0 || k < 0 || ldc < max(1, n) || lda < max(1, rows) || ldb < max(1, rows) {
		return invalidf("cpu: her2k n=%d k=%d lda=%d ldb=%d ldc=%d", n, k, lda, ldb, ldc)
	}

	if n == 0 {
		return nil
	}
	if alpha == 0 || k == 0 {
		// Degenerate update reduces to a triangle scale; no parallel win.
		ref.Cher2k(uplo, trans, n, k, alpha, a, lda, b, ldb, beta, cc, ldc)
		return nil
	}

	parallel.ForColumns(n, her2kPanel, func(lo, hi int) {
		her2kColumns(uplo, trans, n, k, alpha, a, lda, b, ldb, beta, cc, ldc, lo, hi)
	}, c.cfg)
	return nil
}

// her2kColumns updates columns [lo, hi) of C only.
func her2kColumns(uplo blas.Uplo, trans blas.Transpose, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta float32, c []complex64, ldc int, lo, hi int) {
	conjalpha := conj64(alpha)
	for j := lo; j < hi; j++ {
		rlo, rhi := 0, j
		if uplo == blas.Lower {
			rlo, rhi = j, n-1
		}

		if trans == blas.NoTrans {
			scaleColumn(j, rlo, rhi, beta, c, ldc)
			for l := 0; l < k; l++ {
				ajl := a[j+l*lda]
				bjl := b[j+l*ldb]
				if ajl == 0 && bjl == 0 {
					continue
				}
				temp1 := alpha * conj64(bjl)
				temp2 := conj64(alpha * ajl)
				for i := rlo; i <= rhi; i++ {
					if i == j {
						cjj := ajl*temp1 + bjl*temp2
						c[j+j*ldc] += complex(real(cjj), 0)
						continue
					}
					c[i+j*ldc] += a[i+l*lda]*temp1 + b[i+l*ldb]*temp2
				}
			}
			continue
		}

		for i := rlo; i <= rhi; i++ {
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

// scaleColumn forms rows [lo, hi] of column j of beta*C, keeping the
// diagonal entry real.
func scaleColumn(j, lo, hi int, beta float32, c []complex64, ldc int) {
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
