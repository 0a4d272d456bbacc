// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ref provides the pure-Go reference BLAS kernels the conformance
// harness compares accelerated engines against.
//
// The kernels follow the netlib Fortran reference routines: column-major
// storage, explicit leading dimensions, increments that may be negative, and
// quick returns for degenerate arguments. They favor clarity over speed;
// tuned implementations live in the backend packages.
//
// Argument violations are programmer errors and panic with a descriptive
// message, matching the convention of pure-Go BLAS implementations. Callers
// that receive dimensions from untrusted input should validate first (the
// conformance harness does).
package ref
