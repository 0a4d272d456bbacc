// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package blas

import "errors"

// Sentinel errors reported by engines and the conformance harness. Callers
// match them with errors.Is.
var (
	// ErrInvalidValue reports an argument that fails the routine's sanity
	// checks (negative dimension, undersized leading dimension, zero
	// increment). Returned before any allocation happens.
	ErrInvalidValue = errors.New("blas: invalid value")

	// ErrAllocFailed reports a failed device or host buffer allocation.
	ErrAllocFailed = errors.New("blas: allocation failed")

	// ErrNotSupported reports a routine or data type the engine does not
	// implement.
	ErrNotSupported = errors.New("blas: not supported")

	// ErrExecutionFailed reports a kernel launch or device submission that
	// did not complete.
	ErrExecutionFailed = errors.New("blas: execution failed")
)
