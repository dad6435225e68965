// Package parallel provides fan-out helpers for independent
// differentiation scopes.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinPerCall int  // Minimum items before goroutines pay off.
}

// DefaultConfig returns sensible defaults based on CPU count. Derivative
// evaluations are orders of magnitude heavier than loop overhead, so the
// threshold is just "more than one".
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinPerCall: 2,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// too small. Each index must be independent of the others; derivative
// scopes are, since every scope owns a distinct tag.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinPerCall {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.NumWorkers)
	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			f(i)
			<-sem
		}(i)
	}
	wg.Wait()
}

// Map collects f(i) for i in [0, n) into a slice, in index order,
// evaluating the calls with the default parallelism.
func Map(n int, f func(i int) any) []any {
	out := make([]any, n)
	For(n, func(i int) {
		out[i] = f(i)
	}, DefaultConfig())
	return out
}
