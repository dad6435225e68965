package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(5, func(i int) { order = append(order, i) }, cfg)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_BelowThresholdStaysSequential(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinPerCall: 10}

	// Appending without a lock is only safe if execution is sequential.
	var order []int
	For(5, func(i int) { order = append(order, i) }, cfg)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_Parallel(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinPerCall: 2}

	var calls atomic.Int64
	hit := make([]atomic.Bool, 100)
	For(100, func(i int) {
		calls.Add(1)
		hit[i].Store(true)
	}, cfg)

	assert.Equal(t, int64(100), calls.Load())
	for i := range hit {
		assert.True(t, hit[i].Load(), "index %d never executed", i)
	}
}

func TestFor_Empty(t *testing.T) {
	For(0, func(i int) { t.Fatal("must not be called") }, DefaultConfig())
}

func TestMap_OrderPreserved(t *testing.T) {
	got := Map(6, func(i int) any { return i * i })
	assert.Equal(t, []any{0, 1, 4, 9, 16, 25}, got)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.MinPerCall)
	assert.Greater(t, cfg.NumWorkers, 0)
}
