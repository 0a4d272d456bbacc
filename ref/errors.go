// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ref

// Panic strings for argument violations.
const (
	badUplo      = "ref: illegal triangle"
	badTranspose = "ref: illegal transpose"
	nLT0         = "ref: n < 0"
	kLT0         = "ref: k < 0"
	badLdA       = "ref: bad leading dimension of A"
	badLdB       = "ref: bad leading dimension of B"
	badLdC       = "ref: bad leading dimension of C"
	zeroIncX     = "ref: zero x index increment"
	zeroIncY     = "ref: zero y index increment"
	shortA       = "ref: insufficient length of a"
	shortB       = "ref: insufficient length of b"
	shortC       = "ref: insufficient length of c"
	shortX       = "ref: insufficient length of x"
	shortY       = "ref: insufficient length of y"
)
