// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package conformance

import (
	"time"

	"github.com/veriblas/veriblas/check"
)

// Report is the outcome of one conformance case.
type Report struct {
	Function string
	Engine   string
	Args     Arguments

	// QuickReturn marks degenerate cases (zero batch, zero order) that
	// succeed without running any kernel.
	QuickReturn bool

	// Check holds the elementwise comparison, nil for quick returns.
	Check *check.Result

	EngineTime time.Duration // Total kernel time across iterations.
	RefTime    time.Duration // Reference kernel time.
	Iters      int
}

// Passed reports whether the case succeeded.
func (r *Report) Passed() bool {
	if r.QuickReturn {
		return true
	}
	return r.Check != nil && r.Check.Ok()
}

// GFlops returns the engine's throughput in GFLOP/s, zero when unmeasured.
func (r *Report) GFlops() float64 {
	if r.EngineTime <= 0 || r.Iters <= 0 {
		return 0
	}
	perIter := r.EngineTime.Seconds() / float64(r.Iters)
	if perIter <= 0 {
		return 0
	}
	return r.flops() / perIter / 1e9
}

func (r *Report) flops() float64 {
	switch r.Function {
	case FuncSbmvBatched:
		return sbmvFlops(r.Args.M, r.Args.K) * float64(r.Args.BatchCount)
	case FuncHer2k:
		return her2kFlops(r.Args.N, r.Args.K)
	default:
		return 0
	}
}

// sbmvFlops counts multiply-adds for one banded matvec: each of the m rows
// touches at most 2k+1 band elements.
func sbmvFlops(m, k int) float64 {
	return 2 * float64(m) * (2*float64(k) + 1)
}

// her2kFlops counts flops for the complex rank-2k update: two n×n×k complex
// multiply-accumulate passes over the full matrix, halved for the triangle.
func her2kFlops(n, k int) float64 {
	return 8 * float64(n) * float64(n) * float64(k)
}
