package cpu

import (
	"github.com/veriblas/veriblas/blas"
	"github.com/veriblas/veriblas/internal/parallel"
	"github.com/veriblas/veriblas/ref"
)

// SbmvBatched computes y[b] = alpha*A[b]*x[b] + beta*y[b] for each batch
// entry. Batch entries are independent, so they fan out across the worker
// pool one entry per work unit.
func (c *CPUBackend) SbmvBatched(uplo blas.Uplo, m, k int, alpha float32, a [][]float32, lda int, x [][]float32, incX int, beta float32, y [][]float32, incY int) error {
	if !uplo.Valid() {
		return invalidf("cpu: sbmv uplo %q", byte(uplo))
	}
	if m < 0 || k < 0 || lda < k+1 || incX == 0 || incY == 0 {
		return invalidf("cpu: sbmv m=%d k=%d lda=%d incx=%d incy=%d", m, k, lda, incX, incY)
	}
	if len(a) != len(x) || len(a) != len(y) {
		return invalidf("cpu: sbmv batch lengths a=%d x=%d y=%d", len(a), len(x), len(y))
	}

	parallel.For(len(a), func(b int) {
		ref.Ssbmv(uplo, m, k, alpha, a[b], lda, x[b], incX, beta, y[b], incY)
	}, c.cfg)
	return nil
}
