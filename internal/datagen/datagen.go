// Package datagen produces the deterministic pseudo-random inputs the
// conformance harness feeds both engines. Values are small positive integers
// stored in floating point, so short accumulations stay exact and mismatches
// point at indexing bugs rather than rounding.
package datagen

import (
	"math/rand"
)

// DefaultSeed is the fixed seed conformance cases start from, so every run
// sees identical data.
const DefaultSeed = 1

// RNG is a deterministic value source for matrix and vector fills.
type RNG struct {
	r *rand.Rand
}

// New returns a generator seeded with seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// value returns the next element in [1, 10].
func (g *RNG) value() int {
	return g.r.Intn(10) + 1
}

// Float is the constraint for real element types.
type Float interface {
	~float32 | ~float64
}

// FillMatrix fills an m×n column-major panel with leading dimension ld.
// Only the m stored rows of each column are written; padding rows keep
// whatever they held, so tests catch kernels that touch padding.
func FillMatrix[T Float](g *RNG, a []T, m, n, ld int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			a[i+j*ld] = T(g.value())
		}
	}
}

// FillVector fills n logical elements spaced |inc| apart. Gap elements are
// left untouched for the same reason as matrix padding.
func FillVector[T Float](g *RNG, x []T, n, inc int) {
	if inc < 0 {
		inc = -inc
	}
	if inc == 0 {
		inc = 1
	}
	for i := 0; i < n; i++ {
		x[i*inc] = T(g.value())
	}
}

// FillMatrixComplex64 fills an m×n column-major complex panel; both
// components draw from the generator in real-then-imaginary order.
func FillMatrixComplex64(g *RNG, a []complex64, m, n, ld int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			re := float32(g.value())
			im := float32(g.value())
			a[i+j*ld] = complex(re, im)
		}
	}
}

// FillMatrixComplex128 fills an m×n column-major complex panel.
func FillMatrixComplex128(g *RNG, a []complex128, m, n, ld int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			re := float64(g.value())
			im := float64(g.value())
			a[i+j*ld] = complex(re, im)
		}
	}
}
