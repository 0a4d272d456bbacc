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

// FuncHer2k names the Hermitian rank-2k update case.
const FuncHer2k = "her2k"

// RunHer2k checks an engine's her2k against the reference.
//
// A and B are n×k when trans is NoTrans and k×n when trans is ConjTrans;
// plain Trans is not defined for Hermitian updates and is rejected.
func RunHer2k(eng blas.Engine, args Arguments) (*Report, error) {
	n, k := args.N, args.K
	lda, ldb, ldc := args.Lda, args.Ldb, args.Ldc

	rep := &Report{Function: FuncHer2k, Engine: eng.Name(), Args: args, Iters: args.iters()}

	if args.Trans != blas.NoTrans && args.Trans != blas.ConjTrans {
		return nil, fmt.Errorf("conformance: her2k %s: %w", args, blas.ErrInvalidValue)
	}
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("conformance: her2k %s: %w", args, blas.ErrInvalidValue)
	}
	if n == 0 {
		rep.QuickReturn = true
		return rep, nil
	}
	rows, cols := n, k
	if args.Trans == blas.ConjTrans {
		rows, cols = k, n
	}
	if ldc < n || lda < max(1, rows) || ldb < max(1, rows) {
		return nil, fmt.Errorf("conformance: her2k %s: %w", args, blas.ErrInvalidValue)
	}

	aSize := lda * max(1, cols)
	bSize := ldb * max(1, cols)
	cSize := ldc * n

	hA := make([]complex64, aSize)
	hB := make([]complex64, bSize)
	hC := make([]complex64, cSize)

	g := datagen.New(args.seed())
	datagen.FillMatrixComplex64(g, hA, rows, cols, lda)
	datagen.FillMatrixComplex64(g, hB, rows, cols, ldb)
	datagen.FillMatrixComplex64(g, hC, n, n, ldc)

	alpha := args.alphaC64()
	beta := args.beta32()

	var (
		cEng   []complex64
		engDur time.Duration
	)
	for it := 0; it < rep.Iters; it++ {
		cEng = append([]complex64(nil), hC...)
		start := time.Now()
		if err := eng.Her2k(args.Uplo, args.Trans, n, k, alpha, hA, lda, hB, ldb, beta, cEng, ldc); err != nil {
			return nil, fmt.Errorf("conformance: her2k engine %s: %w", eng.Name(), err)
		}
		engDur += time.Since(start)
	}
	rep.EngineTime = engDur

	cRef := append([]complex64(nil), hC...)
	start := time.Now()
	ref.Cher2k(args.Uplo, args.Trans, n, k, alpha, hA, lda, hB, ldb, beta, cRef, ldc)
	rep.RefTime = time.Since(start)

	tol := check.Her2kTolerance32
	if args.Tol != nil {
		tol = *args.Tol
	}
	rep.Check = check.TriangleComplex64s(args.Uplo, n, ldc, cEng, cRef, tol)
	return rep, nil
}
