// Copyright 2026 Tangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package diff provides the public API for Differential values and tags.
//
// A Differential is a generalized dual number: a sum of terms, each a
// coefficient times a product of infinitesimal tags. Most code never
// builds one directly — the deriv package seeds and extracts them — but
// container implementers and tests work with the structure through this
// package.
//
// Example:
//
//	t := diff.Fresh()
//	x := diff.Bundle(3.0, 1.0, t)       // 3 + 1·ε
//	y := arith.Mul(x, x)                // 9 + 6·ε
//	_, dy := diff.Extract(y, t)         // 6
package diff

import (
	"github.com/tangent-ml/tangent/internal/diff"
	"github.com/tangent-ml/tangent/internal/tag"
)

// Tag identifies one differentiation scope's infinitesimal direction.
type Tag = tag.Tag

// Set is a canonical (sorted, duplicate-free) tag-set.
type Set = tag.Set

// Allocator mints process-unique tags.
type Allocator = tag.Allocator

// NewAllocator creates an independent tag allocator, mainly for tests.
func NewAllocator() *Allocator { return tag.NewAllocator() }

// Fresh mints a tag from the process-wide allocator.
func Fresh() Tag { return tag.Fresh() }

// Differential is a sum-of-terms dual number supporting nested and
// multiple infinitesimal directions.
type Differential = diff.Differential

// Term is one (tag-set, coefficient) monomial inside a Differential.
type Term = diff.Term

// NewTerm builds a term from a tag-set and a coefficient.
func NewTerm(tags Set, coeff any) Term { return diff.NewTerm(tags, coeff) }

// FromTerms builds a canonical value from a term list, collapsing to a
// plain value when no tagged term survives.
func FromTerms(terms []Term) any { return diff.FromTerms(terms) }

// Bundle seeds primal with a tangent coefficient in the direction of t.
func Bundle(primal, tangent any, t Tag) any { return diff.Bundle(primal, tangent, t) }

// Extract recovers t's tangent from v along with the primal remainder.
func Extract(v any, t Tag) (primal any, tangent any) { return diff.Extract(v, t) }

// PrimalValue strips all perturbation structure from v.
func PrimalValue(v any) any { return diff.PrimalValue(v) }

// StrictEqual compares full term structure; tests and introspection only.
func StrictEqual(a, b any) bool { return diff.StrictEqual(a, b) }
