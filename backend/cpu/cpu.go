// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/veriblas/veriblas/blas"
	internalcpu "github.com/veriblas/veriblas/internal/backend/cpu"
	"github.com/veriblas/veriblas/internal/parallel"
)

// Backend is the tuned CPU engine.
//
// It executes the same arithmetic as the reference kernels but spreads
// independent work units (batch entries, column panels) across a worker pool.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements blas.Engine.
var _ blas.Engine = (*Backend)(nil)

// New creates a tuned CPU engine.
//
// Example:
//
//	eng := cpu.New()
//	err := eng.SbmvBatched(blas.Upper, m, k, alpha, a, lda, x, incx, beta, y, incy)
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU engine with parallelism disabled. Useful for
// deterministic profiling and for isolating worker-pool bugs.
func NewSequential() *Backend {
	return internalcpu.NewWithConfig(parallel.Config{})
}
