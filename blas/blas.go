// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package blas defines the shared vocabulary of the VeriBLAS conformance kit:
// triangle and transpose selectors, the error values engines report, and the
// Engine interface every accelerated backend implements.
//
// All matrix arguments use column-major storage with an explicit leading
// dimension, matching the netlib BLAS conventions. Symmetric band matrices
// use the compact lda×n banded layout where column j holds the band entries
// of column j of the full matrix.
//
// Example:
//
//	eng := cpu.New()
//	err := eng.SbmvBatched(blas.Upper, m, k, alpha, a, lda, x, incx, beta, y, incy)
package blas

import "fmt"

// Uplo selects the triangle of a symmetric or Hermitian matrix that is
// stored and referenced.
type Uplo byte

const (
	// Upper references the upper triangle.
	Upper Uplo = 'U'
	// Lower references the lower triangle.
	Lower Uplo = 'L'
)

// String returns the one-letter BLAS name for the triangle.
func (u Uplo) String() string {
	switch u {
	case Upper:
		return "U"
	case Lower:
		return "L"
	default:
		return fmt.Sprintf("Uplo(%q)", byte(u))
	}
}

// Valid reports whether u is one of the defined triangle selectors.
func (u Uplo) Valid() bool {
	return u == Upper || u == Lower
}

// ParseUplo converts the one-letter BLAS character ('U', 'u', 'L', 'l')
// into an Uplo value.
func ParseUplo(c byte) (Uplo, error) {
	switch c {
	case 'U', 'u':
		return Upper, nil
	case 'L', 'l':
		return Lower, nil
	default:
		return 0, fmt.Errorf("blas: invalid uplo character %q: %w", c, ErrInvalidValue)
	}
}

// Transpose selects the operation applied to a matrix operand.
type Transpose byte

const (
	// NoTrans uses the operand as stored.
	NoTrans Transpose = 'N'
	// Trans uses the transpose of the operand.
	Trans Transpose = 'T'
	// ConjTrans uses the conjugate transpose of the operand.
	ConjTrans Transpose = 'C'
)

// String returns the one-letter BLAS name for the operation.
func (t Transpose) String() string {
	switch t {
	case NoTrans:
		return "N"
	case Trans:
		return "T"
	case ConjTrans:
		return "C"
	default:
		return fmt.Sprintf("Transpose(%q)", byte(t))
	}
}

// Valid reports whether t is one of the defined transpose selectors.
func (t Transpose) Valid() bool {
	return t == NoTrans || t == Trans || t == ConjTrans
}

// ParseTranspose converts the one-letter BLAS character ('N', 'T', 'C' and
// lowercase variants) into a Transpose value.
func ParseTranspose(c byte) (Transpose, error) {
	switch c {
	case 'N', 'n':
		return NoTrans, nil
	case 'T', 't':
		return Trans, nil
	case 'C', 'c':
		return ConjTrans, nil
	default:
		return 0, fmt.Errorf("blas: invalid transpose character %q: %w", c, ErrInvalidValue)
	}
}
