package ref

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriblas/veriblas/blas"
)

// Tridiagonal test matrix
//
//	[4 1 0 0]
//	[1 5 2 0]
//	[0 2 6 3]
//	[0 0 3 7]
//
// in banded storage (k=1, lda=2). Padding slots hold 999 so a kernel that
// reads them is caught.
func upperBand() []float32 {
	return []float32{999, 4, 1, 5, 2, 6, 3, 7}
}

func lowerBand() []float32 {
	return []float32{4, 1, 5, 2, 6, 3, 7, 999}
}

func TestSbmv_Upper(t *testing.T) {
	a := upperBand()
	x := []float32{1, 2, 3, 4}
	y := []float32{1, 1, 1, 1}

	// A*x = [6 17 34 37]; y = 2*A*x + 3*y.
	Sbmv(blas.Upper, 4, 1, float32(2), a, 2, x, 1, float32(3), y, 1)
	assert.Equal(t, []float32{15, 37, 71, 77}, y)
}

func TestSbmv_Lower(t *testing.T) {
	a := lowerBand()
	x := []float32{1, 2, 3, 4}
	y := []float32{1, 1, 1, 1}

	Sbmv(blas.Lower, 4, 1, float32(2), a, 2, x, 1, float32(3), y, 1)
	assert.Equal(t, []float32{15, 37, 71, 77}, y)
}

func TestSbmv_NegativeIncrements(t *testing.T) {
	a := upperBand()
	// Logical vectors walk from the far end with negative increments, so
	// the stored order is reversed.
	x := []float32{4, 3, 2, 1}
	y := []float32{1, 1, 1, 1}

	Sbmv(blas.Upper, 4, 1, float32(2), a, 2, x, -1, float32(3), y, -1)
	assert.Equal(t, []float32{77, 71, 37, 15}, y)
}

func TestSbmv_StridedVectors(t *testing.T) {
	a := upperBand()
	x := []float32{1, 999, 2, 999, 3, 999, 4}
	y := []float32{1, 999, 1, 999, 1, 999, 1}

	Sbmv(blas.Upper, 4, 1, float32(2), a, 2, x, 2, float32(3), y, 2)
	assert.Equal(t, []float32{15, 999, 37, 999, 71, 999, 77}, y)
}

func TestSbmv_BetaZeroIgnoresY(t *testing.T) {
	a := upperBand()
	x := []float32{1, 2, 3, 4}
	nan := float32(math.NaN())
	y := []float32{nan, nan, nan, nan}

	// beta == 0 must not read y, so NaN garbage cannot leak through.
	Sbmv(blas.Upper, 4, 1, float32(1), a, 2, x, 1, float32(0), y, 1)
	assert.Equal(t, []float32{6, 17, 34, 37}, y)
}

func TestSbmv_QuickReturn(t *testing.T) {
	a := upperBand()
	x := []float32{1, 2, 3, 4}
	y := []float32{5, 6, 7, 8}

	// alpha == 0, beta == 1 leaves y untouched.
	Sbmv(blas.Upper, 4, 1, float32(0), a, 2, x, 1, float32(1), y, 1)
	assert.Equal(t, []float32{5, 6, 7, 8}, y)

	// n == 0 touches nothing at all.
	Sbmv(blas.Upper, 0, 1, float32(2), a, 2, x, 1, float32(3), y, 1)
	assert.Equal(t, []float32{5, 6, 7, 8}, y)
}

func TestSbmv_Float64(t *testing.T) {
	a := []float64{999, 4, 1, 5, 2, 6, 3, 7}
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 1, 1, 1}

	Sbmv(blas.Upper, 4, 1, 2.0, a, 2, x, 1, 3.0, y, 1)
	assert.Equal(t, []float64{15, 37, 71, 77}, y)
}

func TestSbmv_WideBandMatchesDense(t *testing.T) {
	// k >= n-1 stores the full triangle; cross-check against a dense
	// matvec computed directly.
	const n, k, lda = 5, 4, 6
	a := make([]float64, lda*n)
	dense := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			v := float64(1 + i + 2*j)
			a[k-j+i+j*lda] = v
			dense[i*n+j] = v
			dense[j*n+i] = v
		}
	}
	x := []float64{1, -2, 3, -4, 5}
	y := make([]float64, n)
	want := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want[i] += dense[i*n+j] * x[j]
		}
	}

	Sbmv(blas.Upper, n, k, 1.0, a, lda, x, 1, 0.0, y, 1)
	for i := range want {
		assert.InDelta(t, want[i], y[i], 1e-12)
	}
}

func TestSbmv_PanicsOnBadArguments(t *testing.T) {
	a := upperBand()
	x := []float32{1, 2, 3, 4}
	y := []float32{1, 1, 1, 1}

	require.PanicsWithValue(t, nLT0, func() {
		Sbmv(blas.Upper, -1, 1, float32(1), a, 2, x, 1, float32(1), y, 1)
	})
	require.PanicsWithValue(t, kLT0, func() {
		Sbmv(blas.Upper, 4, -1, float32(1), a, 2, x, 1, float32(1), y, 1)
	})
	require.PanicsWithValue(t, badLdA, func() {
		Sbmv(blas.Upper, 4, 1, float32(1), a, 1, x, 1, float32(1), y, 1)
	})
	require.PanicsWithValue(t, zeroIncX, func() {
		Sbmv(blas.Upper, 4, 1, float32(1), a, 2, x, 0, float32(1), y, 1)
	})
	require.PanicsWithValue(t, zeroIncY, func() {
		Sbmv(blas.Upper, 4, 1, float32(1), a, 2, x, 1, float32(1), y, 0)
	})
	require.PanicsWithValue(t, badUplo, func() {
		Sbmv(blas.Uplo('X'), 4, 1, float32(1), a, 2, x, 1, float32(1), y, 1)
	})
	require.PanicsWithValue(t, shortX, func() {
		Sbmv(blas.Upper, 4, 1, float32(1), a, 2, x[:3], 1, float32(1), y, 1)
	})
}
