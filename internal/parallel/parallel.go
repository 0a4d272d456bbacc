// Package parallel provides the worker-pool primitives the tuned CPU engine
// uses to fan kernel work out across cores.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4, // Batch entries and column panels are coarse units.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too
// small to amortize goroutine overhead.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForColumns splits [0, n) into contiguous column panels and executes
// f(lo, hi) for each half-open panel. Column-major kernels that write whole
// columns independently use this to keep each worker on adjacent memory.
func ForColumns(n, panel int, f func(lo, hi int), cfg Config) {
	if panel <= 0 {
		panel = 1
	}
	panels := (n + panel - 1) / panel
	For(panels, func(p int) {
		lo := p * panel
		f(lo, min(lo+panel, n))
	}, cfg)
}
