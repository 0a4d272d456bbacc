package datagen

import "testing"

func TestDeterministic(t *testing.T) {
	a := make([]float32, 24)
	b := make([]float32, 24)
	FillMatrix(New(DefaultSeed), a, 4, 6, 4)
	FillMatrix(New(DefaultSeed), b, 4, 6, 4)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("element %d differs between identically seeded fills: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestValueRange(t *testing.T) {
	x := make([]float64, 1000)
	FillVector(New(42), x, len(x), 1)
	for i, v := range x {
		if v < 1 || v > 10 {
			t.Errorf("x[%d] = %v outside [1, 10]", i, v)
		}
		if v != float64(int(v)) {
			t.Errorf("x[%d] = %v is not integral", i, v)
		}
	}
}

func TestFillMatrixLeavesPadding(t *testing.T) {
	const m, n, ld = 3, 4, 5
	a := make([]float32, ld*n)
	for i := range a {
		a[i] = -7
	}
	FillMatrix(New(1), a, m, n, ld)
	for j := 0; j < n; j++ {
		for i := m; i < ld; i++ {
			if a[i+j*ld] != -7 {
				t.Errorf("padding slot (%d,%d) overwritten", i, j)
			}
		}
	}
}

func TestFillVectorGapsUntouched(t *testing.T) {
	x := make([]float32, 7)
	for i := range x {
		x[i] = -7
	}
	FillVector(New(1), x, 4, 2)
	for _, i := range []int{1, 3, 5} {
		if x[i] != -7 {
			t.Errorf("gap slot %d overwritten", i)
		}
	}
	for _, i := range []int{0, 2, 4, 6} {
		if x[i] == -7 {
			t.Errorf("element slot %d not filled", i)
		}
	}
}

func TestFillVectorNegativeIncrement(t *testing.T) {
	a := make([]float32, 8)
	b := make([]float32, 8)
	FillVector(New(3), a, 4, 2)
	FillVector(New(3), b, 4, -2)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("inc -2 fill differs from inc 2 fill at slot %d", i)
		}
	}
}

func TestFillMatrixComplexComponentOrder(t *testing.T) {
	g := New(9)
	want := make([]float32, 4)
	for i := range want {
		want[i] = float32(g.value())
	}

	c := make([]complex64, 2)
	FillMatrixComplex64(New(9), c, 2, 1, 2)
	got := []float32{real(c[0]), imag(c[0]), real(c[1]), imag(c[1])}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
