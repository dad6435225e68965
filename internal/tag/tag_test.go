package tag

import (
	"sync"
	"testing"
)

// TestAllocator_Monotonic tests that tags grow strictly.
func TestAllocator_Monotonic(t *testing.T) {
	a := NewAllocator()
	prev := a.Fresh()
	for i := 0; i < 1000; i++ {
		next := a.Fresh()
		if next <= prev {
			t.Fatalf("Fresh() = %d, want > %d", next, prev)
		}
		prev = next
	}
}

// TestAllocator_ConcurrentFreshness tests that N goroutines minting M tags
// each produce N*M pairwise-distinct tags.
func TestAllocator_ConcurrentFreshness(t *testing.T) {
	const (
		goroutines = 8
		perWorker  = 1000
	)
	a := NewAllocator()

	var wg sync.WaitGroup
	results := make([][]Tag, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			tags := make([]Tag, perWorker)
			for i := range tags {
				tags[i] = a.Fresh()
			}
			results[g] = tags
		}(g)
	}
	wg.Wait()

	seen := make(map[Tag]bool, goroutines*perWorker)
	for _, tags := range results {
		for _, tg := range tags {
			if seen[tg] {
				t.Fatalf("tag %d allocated twice", tg)
			}
			seen[tg] = true
		}
	}
	if len(seen) != goroutines*perWorker {
		t.Fatalf("got %d distinct tags, want %d", len(seen), goroutines*perWorker)
	}
}

func TestSet_WithKeepsOrder(t *testing.T) {
	s := NewSet(5, 2, 9)
	want := Set{2, 5, 9}
	if !s.Equal(want) {
		t.Fatalf("NewSet = %v, want %v", s, want)
	}

	if _, ok := s.With(5); ok {
		t.Error("With(5) on a set containing 5 should report annihilation")
	}

	s2, ok := s.With(7)
	if !ok || !s2.Equal(Set{2, 5, 7, 9}) {
		t.Fatalf("With(7) = %v, %v", s2, ok)
	}
}

func TestSet_Union(t *testing.T) {
	a := NewSet(1, 3)
	b := NewSet(2, 4)
	u, ok := a.Union(b)
	if !ok || !u.Equal(Set{1, 2, 3, 4}) {
		t.Fatalf("Union = %v, %v", u, ok)
	}

	// Intersecting sets annihilate the product term.
	c := NewSet(3, 5)
	if _, ok := a.Union(c); ok {
		t.Error("Union of intersecting sets should report annihilation")
	}
}

func TestSet_Rename(t *testing.T) {
	s := NewSet(1, 3)

	r, ok := s.Rename(1, 7)
	if !ok || !r.Equal(Set{3, 7}) {
		t.Fatalf("Rename(1, 7) = %v, %v", r, ok)
	}

	// Renaming onto an existing member collapses the term.
	if _, ok := s.Rename(1, 3); ok {
		t.Error("Rename(1, 3) should report annihilation")
	}

	// Renaming an absent tag is a no-op.
	r, ok = s.Rename(9, 4)
	if !ok || !r.Equal(s) {
		t.Fatalf("Rename(9, 4) = %v, %v, want no-op", r, ok)
	}
}

func TestSet_Compare(t *testing.T) {
	cases := []struct {
		a, b Set
		want int
	}{
		{nil, NewSet(1), -1},
		{NewSet(1), nil, 1},
		{NewSet(1), NewSet(1), 0},
		{NewSet(1), NewSet(2), -1},
		{NewSet(2, 3), NewSet(1), 1},
		{NewSet(1, 3), NewSet(1, 4), -1},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSet_MaxAndContains(t *testing.T) {
	if _, ok := (Set{}).Max(); ok {
		t.Error("empty set should have no max")
	}
	s := NewSet(4, 9, 2)
	m, ok := s.Max()
	if !ok || m != 9 {
		t.Fatalf("Max = %d, %v, want 9", m, ok)
	}
	if !s.Contains(4) || s.Contains(5) {
		t.Error("Contains misreports membership")
	}
}
