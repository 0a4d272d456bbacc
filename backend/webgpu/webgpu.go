// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package webgpu

import (
	"github.com/veriblas/veriblas/blas"
	internalwebgpu "github.com/veriblas/veriblas/internal/backend/webgpu"
)

// Backend is the GPU engine built on WebGPU compute pipelines.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements blas.Engine.
var _ blas.Engine = (*Backend)(nil)

// New creates a WebGPU engine. Returns an error if no adapter or device can
// be acquired (headless machines, missing native library). Call Release when
// done.
//
// Example:
//
//	eng, err := webgpu.New()
//	if err != nil {
//	    // fall back to the CPU engine
//	}
//	defer eng.Release()
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable reports whether a WebGPU device can be acquired.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
