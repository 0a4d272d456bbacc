// Package cpu implements the tuned CPU engine. It keeps the reference
// kernels' arithmetic but spreads independent work units (batch entries,
// column panels) across a worker pool.
package cpu

import (
	"fmt"

	"github.com/veriblas/veriblas/blas"
	"github.com/veriblas/veriblas/internal/parallel"
)

// CPUBackend executes kernels on the host with data parallelism.
type CPUBackend struct {
	cfg parallel.Config
}

// New creates a tuned CPU engine with worker defaults based on CPU count.
func New() *CPUBackend {
	return &CPUBackend{cfg: parallel.DefaultConfig()}
}

// NewWithConfig creates a tuned CPU engine with an explicit parallel
// configuration. Used by tests to force sequential execution.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{cfg: cfg}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "cpu"
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, blas.ErrInvalidValue)...)
}
