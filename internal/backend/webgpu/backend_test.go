package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriblas/veriblas/blas"
	"github.com/veriblas/veriblas/check"
	"github.com/veriblas/veriblas/internal/datagen"
	"github.com/veriblas/veriblas/ref"
)

// newTestBackend returns a live backend or skips when no adapter or native
// library is present.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := New()
	if err != nil {
		t.Skipf("webgpu not available: %v", err)
	}
	t.Cleanup(b.Release)
	return b
}

func TestIsAvailable(t *testing.T) {
	// Must not panic either way; the result just mirrors New.
	avail := IsAvailable()
	b, err := New()
	if avail {
		require.NoError(t, err)
		b.Release()
	} else {
		require.Error(t, err)
	}
}

func TestSbmvBatched_MatchesReference(t *testing.T) {
	b := newTestBackend(t)

	const m, k, batch = 33, 5, 4
	lda := k + 1
	for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower} {
		for _, inc := range []int{1, 2, -1} {
			a := make([][]float32, batch)
			x := make([][]float32, batch)
			yGPU := make([][]float32, batch)
			yRef := make([][]float32, batch)
			g := datagen.New(datagen.DefaultSeed)
			ai := inc
			if ai < 0 {
				ai = -ai
			}
			for e := range a {
				a[e] = make([]float32, lda*m)
				x[e] = make([]float32, ai*(m-1)+1)
				yGPU[e] = make([]float32, ai*(m-1)+1)
				datagen.FillMatrix(g, a[e], k+1, m, lda)
				datagen.FillVector(g, x[e], m, inc)
				datagen.FillVector(g, yGPU[e], m, inc)
				yRef[e] = append([]float32(nil), yGPU[e]...)
			}

			require.NoError(t, b.SbmvBatched(uplo, m, k, 1.5, a, lda, x, inc, 0.5, yGPU, inc))
			ref.SsbmvBatched(uplo, m, k, 1.5, a, lda, x, inc, 0.5, yRef, inc)

			for e := range yGPU {
				r := check.StridedFloats32(m, inc, yGPU[e], yRef[e], check.SbmvTolerance32)
				assert.Truef(t, r.Ok(), "uplo=%s inc=%d batch %d: %d mismatches, first at %d",
					uplo, inc, e, r.Errors, r.FirstBad)
			}
		}
	}
}

func TestHer2k_MatchesReference(t *testing.T) {
	b := newTestBackend(t)

	const n, k = 20, 4
	for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower} {
		for _, trans := range []blas.Transpose{blas.NoTrans, blas.ConjTrans} {
			rows, cols := n, k
			if trans == blas.ConjTrans {
				rows, cols = k, n
			}
			lda, ldc := rows, n
			am := make([]complex64, lda*cols)
			bm := make([]complex64, lda*cols)
			cGPU := make([]complex64, ldc*n)
			g := datagen.New(datagen.DefaultSeed)
			datagen.FillMatrixComplex64(g, am, rows, cols, lda)
			datagen.FillMatrixComplex64(g, bm, rows, cols, lda)
			datagen.FillMatrixComplex64(g, cGPU, n, n, ldc)
			cRef := append([]complex64(nil), cGPU...)

			alpha := complex64(complex(1, -0.5))
			require.NoError(t, b.Her2k(uplo, trans, n, k, alpha, am, lda, bm, lda, 0.75, cGPU, ldc))
			ref.Cher2k(uplo, trans, n, k, alpha, am, lda, bm, lda, 0.75, cRef, ldc)

			r := check.TriangleComplex64s(uplo, n, ldc, cGPU, cRef, check.Her2kTolerance32)
			assert.Truef(t, r.Ok(), "uplo=%s trans=%s: %d mismatches, first at %d",
				uplo, trans, r.Errors, r.FirstBad)
		}
	}
}

func TestHer2k_UnreferencedTriangleSurvivesReadback(t *testing.T) {
	b := newTestBackend(t)

	const n, k, ld = 8, 2, 8
	am := make([]complex64, ld*k)
	cm := make([]complex64, ld*n)
	g := datagen.New(3)
	datagen.FillMatrixComplex64(g, am, n, k, ld)
	datagen.FillMatrixComplex64(g, cm, n, n, ld)
	orig := append([]complex64(nil), cm...)

	require.NoError(t, b.Her2k(blas.Upper, blas.NoTrans, n, k, complex(1, 1), am, ld, am, ld, 0, cm, ld))

	for j := 0; j < n; j++ {
		for i := j + 1; i < n; i++ {
			assert.Equalf(t, orig[i+j*ld], cm[i+j*ld], "lower C(%d,%d) modified", i, j)
		}
	}
}

func TestSbmvBatched_InvalidBeforeDispatch(t *testing.T) {
	// Argument errors surface before any device work, so a dead backend
	// value is enough to exercise them.
	b := &Backend{}
	v := [][]float32{make([]float32, 4)}
	a := [][]float32{make([]float32, 8)}

	assert.ErrorIs(t, b.SbmvBatched(blas.Uplo('X'), 4, 1, 1, a, 2, v, 1, 1, v, 1), blas.ErrInvalidValue)
	assert.ErrorIs(t, b.SbmvBatched(blas.Upper, 4, 1, 1, a, 0, v, 1, 1, v, 1), blas.ErrInvalidValue)
	assert.ErrorIs(t, b.SbmvBatched(blas.Upper, 4, 1, 1, a, 2, v, 0, 1, v, 1), blas.ErrInvalidValue)
	assert.ErrorIs(t, b.Her2k(blas.Upper, blas.Trans, 4, 1, 1, nil, 4, nil, 4, 1, make([]complex64, 16), 4), blas.ErrInvalidValue)
	assert.NoError(t, b.SbmvBatched(blas.Upper, 4, 1, 1, nil, 2, nil, 1, 1, nil, 1))
	assert.NoError(t, b.Her2k(blas.Upper, blas.NoTrans, 0, 1, 1, nil, 1, nil, 1, 1, nil, 1))
}

func TestPackScatterStrided(t *testing.T) {
	dst := make([]float32, 4)
	require.NoError(t, packStrided(dst, []float32{1, 9, 2, 9, 3, 9, 4}, 4, 2))
	assert.Equal(t, []float32{1, 2, 3, 4}, dst)

	// Negative increment starts from the far end.
	require.NoError(t, packStrided(dst, []float32{4, 3, 2, 1}, 4, -1))
	assert.Equal(t, []float32{1, 2, 3, 4}, dst)

	out := make([]float32, 4)
	scatterStrided(out, dst, 4, -1)
	assert.Equal(t, []float32{4, 3, 2, 1}, out)

	assert.ErrorIs(t, packStrided(dst, []float32{1, 2}, 4, 1), blas.ErrInvalidValue)
}
