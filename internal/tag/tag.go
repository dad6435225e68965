// Package tag provides unique identifiers for differentiation scopes.
//
// Every activation of the derivative operator mints a fresh tag marking
// that scope's infinitesimal direction. Tags are totally ordered by
// allocation time: a tag minted during the evaluation of a nested
// derivative is always numerically greater than the tags of its enclosing
// scopes. The extraction machinery in internal/perturb relies on this
// ordering to tell a scope's own tag from an ancestor's.
package tag

import "sync/atomic"

// Tag identifies one differentiation scope's infinitesimal direction.
// The zero value is never allocated.
type Tag uint64

// Allocator mints process-unique tags. The counter is a single atomic
// increment, so concurrent top-level differentiations never serialize on
// a lock. Tags are never reused.
//
// Most code uses the package-level Fresh; tests construct their own
// Allocator for deterministic isolation.
type Allocator struct {
	last atomic.Uint64
}

// NewAllocator creates an independent allocator starting from zero.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Fresh returns a tag distinct from every tag this allocator has issued.
func (a *Allocator) Fresh() Tag {
	return Tag(a.last.Add(1))
}

var global = NewAllocator()

// Fresh mints a tag from the process-wide allocator.
func Fresh() Tag {
	return global.Fresh()
}
