package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForSequential(t *testing.T) {
	cfg := Config{Enabled: false}
	got := make([]int, 8)
	For(8, func(i int) { got[i] = i * i }, cfg)
	for i, v := range got {
		if v != i*i {
			t.Errorf("got[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestForParallelCoversAllIndices(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}
	const n = 100
	var hits [n]int32
	For(n, func(i int) { atomic.AddInt32(&hits[i], 1) }, cfg)
	for i, h := range hits {
		if h != 1 {
			t.Errorf("index %d executed %d times", i, h)
		}
	}
}

func TestForSmallNStaysSequential(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 16}
	// Below MinChunkSize the body runs on the calling goroutine in order.
	var order []int
	For(5, func(i int) { order = append(order, i) }, cfg)
	if len(order) != 5 {
		t.Fatalf("executed %d iterations, want 5", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Errorf("iteration %d ran index %d", i, v)
		}
	}
}

func TestForZeroIterations(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	if called {
		t.Error("body called for n == 0")
	}
}

func TestForColumnsPanels(t *testing.T) {
	cfg := Config{Enabled: false}
	var panels [][2]int
	ForColumns(10, 4, func(lo, hi int) { panels = append(panels, [2]int{lo, hi}) }, cfg)

	want := [][2]int{{0, 4}, {4, 8}, {8, 10}}
	if len(panels) != len(want) {
		t.Fatalf("got %d panels, want %d", len(panels), len(want))
	}
	for i := range want {
		if panels[i] != want[i] {
			t.Errorf("panel %d = %v, want %v", i, panels[i], want[i])
		}
	}
}

func TestForColumnsCoversRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}
	const n = 37
	var hits [n]int32
	ForColumns(n, 5, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)
	for i, h := range hits {
		if h != 1 {
			t.Errorf("column %d covered %d times", i, h)
		}
	}
}
