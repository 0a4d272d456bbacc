package ref

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriblas/veriblas/blas"
)

// naiveHer2k computes the full update with dense complex128 arithmetic and
// no storage tricks, as an independent cross-check.
func naiveHer2k(trans blas.Transpose, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta float64, c []complex128, ldc int) []complex128 {
	at := func(m []complex128, ld, i, j int) complex128 { return m[i+j*ld] }
	out := make([]complex128, len(c))
	copy(out, c)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			var s1, s2 complex128
			for l := 0; l < k; l++ {
				if trans == blas.NoTrans {
					s1 += at(a, lda, i, l) * cmplx.Conj(at(b, ldb, j, l))
					s2 += at(b, ldb, i, l) * cmplx.Conj(at(a, lda, j, l))
				} else {
					s1 += cmplx.Conj(at(a, lda, l, i)) * at(b, ldb, l, j)
					s2 += cmplx.Conj(at(b, ldb, l, i)) * at(a, lda, l, j)
				}
			}
			v := alpha*s1 + cmplx.Conj(alpha)*s2 + complex(beta, 0)*at(c, ldc, i, j)
			if i == j {
				v = complex(real(v), 0)
			}
			out[i+j*ldc] = v
		}
	}
	return out
}

func her2kOperands(trans blas.Transpose, n, k, lda, ldb, ldc int) (a, b, c []complex128) {
	rows, cols := n, k
	if trans == blas.ConjTrans {
		rows, cols = k, n
	}
	a = make([]complex128, lda*max(1, cols))
	b = make([]complex128, ldb*max(1, cols))
	c = make([]complex128, ldc*n)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			a[i+j*lda] = complex(float64(i+1), float64(j+2))
			b[i+j*ldb] = complex(float64(2*j+1), float64(-i))
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			c[i+j*ldc] = complex(float64(i-j), float64(i+j)) // diag has imag garbage on purpose
		}
	}
	return a, b, c
}

func TestZher2k_MatchesNaive(t *testing.T) {
	const n, k = 4, 3
	alpha := complex(1.5, -0.5)

	for _, trans := range []blas.Transpose{blas.NoTrans, blas.ConjTrans} {
		for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower} {
			for _, beta := range []float64{0, 1, 0.75} {
				lda, ldb, ldc := n+1, n+2, n+1
				if trans == blas.ConjTrans {
					lda, ldb = k+1, k+2
				}
				a, b, c := her2kOperands(trans, n, k, lda, ldb, ldc)
				want := naiveHer2k(trans, n, k, alpha, a, lda, b, ldb, beta, c, ldc)

				Zher2k(uplo, trans, n, k, alpha, a, lda, b, ldb, beta, c, ldc)

				for j := 0; j < n; j++ {
					lo, hi := 0, j
					if uplo == blas.Lower {
						lo, hi = j, n-1
					}
					for i := lo; i <= hi; i++ {
						got := c[i+j*ldc]
						assert.InDeltaf(t, real(want[i+j*ldc]), real(got), 1e-10,
							"uplo=%s trans=%s beta=%g C(%d,%d) real", uplo, trans, beta, i, j)
						assert.InDeltaf(t, imag(want[i+j*ldc]), imag(got), 1e-10,
							"uplo=%s trans=%s beta=%g C(%d,%d) imag", uplo, trans, beta, i, j)
					}
				}
			}
		}
	}
}

func TestZher2k_UnreferencedTriangleUntouched(t *testing.T) {
	const n, k, ld = 3, 2, 3
	a, b, c := her2kOperands(blas.NoTrans, n, k, ld, ld, ld)
	orig := append([]complex128(nil), c...)

	Zher2k(blas.Upper, blas.NoTrans, n, k, complex(1, 1), a, ld, b, ld, 0.5, c, ld)

	for j := 0; j < n; j++ {
		for i := j + 1; i < n; i++ {
			assert.Equalf(t, orig[i+j*ld], c[i+j*ld], "lower C(%d,%d) modified", i, j)
		}
	}
}

func TestZher2k_DiagonalReal(t *testing.T) {
	const n, k, ld = 4, 2, 4
	for _, beta := range []float64{0, 1, 2} {
		a, b, c := her2kOperands(blas.ConjTrans, n, k, k, k, ld)
		Zher2k(blas.Lower, blas.ConjTrans, n, k, complex(0.5, 2), a, k, b, k, beta, c, ld)
		for i := 0; i < n; i++ {
			assert.Zerof(t, imag(c[i+i*ld]), "beta=%g diag C(%d,%d)", beta, i, i)
		}
	}
}

func TestZher2k_AlphaZeroScalesOnly(t *testing.T) {
	const n, k, ld = 3, 2, 3
	a, b, c := her2kOperands(blas.NoTrans, n, k, ld, ld, ld)
	orig := append([]complex128(nil), c...)

	Zher2k(blas.Upper, blas.NoTrans, n, k, 0, a, ld, b, ld, 2, c, ld)

	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			want := 2 * orig[i+j*ld]
			if i == j {
				want = complex(2*real(orig[i+j*ld]), 0)
			}
			assert.Equalf(t, want, c[i+j*ld], "C(%d,%d)", i, j)
		}
	}
}

func TestCher2k_MatchesZher2k(t *testing.T) {
	const n, k, ld = 4, 3, 4
	alpha64 := complex(float32(1.25), float32(-0.5))
	a64 := make([]complex64, ld*k)
	b64 := make([]complex64, ld*k)
	c64 := make([]complex64, ld*n)
	a128 := make([]complex128, ld*k)
	b128 := make([]complex128, ld*k)
	c128 := make([]complex128, ld*n)
	for i := range a64 {
		a64[i] = complex(float32(i%5+1), float32(i%3))
		b64[i] = complex(float32(i%4), float32(i%7+1))
		a128[i] = complex128(a64[i])
		b128[i] = complex128(b64[i])
	}
	for i := range c64 {
		c64[i] = complex(float32(i%6), float32(i%2))
		c128[i] = complex128(c64[i])
	}

	Cher2k(blas.Lower, blas.NoTrans, n, k, alpha64, a64, ld, b64, ld, 0.5, c64, ld)
	Zher2k(blas.Lower, blas.NoTrans, n, k, complex128(alpha64), a128, ld, b128, ld, 0.5, c128, ld)

	for j := 0; j < n; j++ {
		for i := j; i < n; i++ {
			idx := i + j*ld
			assert.InDeltaf(t, real(c128[idx]), float64(real(c64[idx])), 1e-3, "C(%d,%d) real", i, j)
			assert.InDeltaf(t, imag(c128[idx]), float64(imag(c64[idx])), 1e-3, "C(%d,%d) imag", i, j)
		}
	}
}

func TestHer2k_PanicsOnBadArguments(t *testing.T) {
	a := make([]complex128, 12)
	c := make([]complex128, 16)

	require.PanicsWithValue(t, badTranspose, func() {
		Zher2k(blas.Upper, blas.Trans, 4, 3, 1, a, 4, a, 4, 1, c, 4)
	})
	require.PanicsWithValue(t, nLT0, func() {
		Zher2k(blas.Upper, blas.NoTrans, -1, 3, 1, a, 4, a, 4, 1, c, 4)
	})
	require.PanicsWithValue(t, badLdC, func() {
		Zher2k(blas.Upper, blas.NoTrans, 4, 3, 1, a, 4, a, 4, 1, c, 3)
	})
	require.PanicsWithValue(t, badLdA, func() {
		Zher2k(blas.Upper, blas.NoTrans, 4, 3, 1, a, 3, a, 4, 1, c, 4)
	})
}
