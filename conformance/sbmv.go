// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package conformance

import (
	"fmt"
	"time"

	"github.com/veriblas/veriblas/blas"
	"github.com/veriblas/veriblas/check"
	"github.com/veriblas/veriblas/internal/datagen"
	"github.com/veriblas/veriblas/ref"
)

// FuncSbmvBatched names the batched symmetric band matvec case.
const FuncSbmvBatched = "sbmv_batched"

// RunSbmvBatched checks an engine's batched sbmv against the reference.
//
// Argument sanity is verified before any buffer is allocated; invalid cases
// return blas.ErrInvalidValue and a zero batch count is a quick success.
func RunSbmvBatched(eng blas.Engine, args Arguments) (*Report, error) {
	m, k := args.M, args.K
	lda, incX, incY := args.Lda, args.IncX, args.IncY
	batch := args.BatchCount

	rep := &Report{Function: FuncSbmvBatched, Engine: eng.Name(), Args: args, Iters: args.iters()}

	if m < 0 || k < 0 || lda < k+1 || incX == 0 || incY == 0 || batch < 0 {
		return nil, fmt.Errorf("conformance: sbmv_batched %s: %w", args, blas.ErrInvalidValue)
	}
	if batch == 0 || m == 0 {
		rep.QuickReturn = true
		return rep, nil
	}

	xLen := (m-1)*abs(incX) + 1
	yLen := (m-1)*abs(incY) + 1

	hA := make([][]float32, batch)
	hX := make([][]float32, batch)
	hY := make([][]float32, batch)
	for b := 0; b < batch; b++ {
		hA[b] = make([]float32, lda*m)
		hX[b] = make([]float32, xLen)
		hY[b] = make([]float32, yLen)

		// Fold the batch index into the seed: entries differ, runs stay
		// reproducible.
		g := datagen.New(args.seed() + int64(b))
		datagen.FillMatrix(g, hA[b], k+1, m, lda)
		datagen.FillVector(g, hX[b], m, incX)
		datagen.FillVector(g, hY[b], m, incY)
	}

	alpha, beta := args.alpha32(), args.beta32()

	// Engine result, timed over iters fresh runs; the last run is compared.
	var (
		yEng   [][]float32
		engDur time.Duration
	)
	for it := 0; it < rep.Iters; it++ {
		yEng = cloneBatch(hY)
		start := time.Now()
		if err := eng.SbmvBatched(args.Uplo, m, k, alpha, hA, lda, hX, incX, beta, yEng, incY); err != nil {
			return nil, fmt.Errorf("conformance: sbmv_batched engine %s: %w", eng.Name(), err)
		}
		engDur += time.Since(start)
	}
	rep.EngineTime = engDur

	// Reference on untouched copies of the same inputs.
	yRef := cloneBatch(hY)
	start := time.Now()
	ref.SsbmvBatched(args.Uplo, m, k, alpha, hA, lda, hX, incX, beta, yRef, incY)
	rep.RefTime = time.Since(start)

	tol := check.SbmvTolerance32
	if args.Tol != nil {
		tol = *args.Tol
	}
	rep.Check = check.BatchStridedFloats32(m, incY, yEng, yRef, tol)
	return rep, nil
}

func cloneBatch(src [][]float32) [][]float32 {
	out := make([][]float32, len(src))
	for i, s := range src {
		out[i] = append([]float32(nil), s...)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
