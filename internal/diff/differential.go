// Package diff implements the Differential value: a generalized dual
// number supporting any number of nested infinitesimal directions.
//
// A Differential is a finite sum of terms, each a coefficient times a
// product of zero or more tags (an infinitesimal monomial):
//
//	x0 + a·ε1 + b·ε2 + c·ε1ε2 + ...
//
// The empty-tag-set term is the primal part; every other term carries
// derivative information for some combination of differentiation scopes.
// Because infinitesimals square to zero, a term whose tag-set would repeat
// a tag vanishes, which is exactly what truncates the algebra to first
// order per scope while still tracking mixed partials across scopes.
//
// Differentials are immutable values. All arithmetic goes through the
// generic dispatch in internal/arith (see register.go), so coefficients
// may themselves be values of further-extended types.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tangent-ml/tangent/internal/arith"
	"github.com/tangent-ml/tangent/internal/tag"
)

// Term is one monomial contribution: coeff · Π(tags).
type Term struct {
	tags  tag.Set
	coeff any
}

// NewTerm builds a term from a canonical tag-set and a coefficient.
func NewTerm(tags tag.Set, coeff any) Term {
	return Term{tags: tags, coeff: coeff}
}

// Tags returns the term's tag-set.
func (t Term) Tags() tag.Set { return t.tags }

// Coeff returns the term's coefficient.
func (t Term) Coeff() any { return t.coeff }

// Differential is an immutable sum of terms, kept in canonical order:
// sorted by tag-set (primal term first), no zero coefficients, no two
// terms with the same tag-set, and never fewer than two reasons to exist
// (a bare number or a single primal term collapses to the plain value in
// FromTerms).
type Differential struct {
	terms []Term
}

// Terms returns the canonical term list. Callers must not mutate it.
func (d *Differential) Terms() []Term { return d.terms }

// FromTerms builds a value from a list of terms, establishing every
// invariant: Differential-valued coefficients are flattened (the tag-set
// distributes over the inner terms, with intersecting products vanishing),
// terms are sorted, same-tag-set terms are summed with the generic Add,
// and zero terms are dropped. The result collapses to a plain value when
// no tagged term survives.
func FromTerms(terms []Term) any {
	flat := make([]Term, 0, len(terms))
	for _, t := range terms {
		flat = appendFlattened(flat, t)
	}

	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].tags.Compare(flat[j].tags) < 0
	})

	merged := make([]Term, 0, len(flat))
	for _, t := range flat {
		if n := len(merged); n > 0 && merged[n-1].tags.Equal(t.tags) {
			merged[n-1].coeff = arith.Add(merged[n-1].coeff, t.coeff)
			continue
		}
		merged = append(merged, t)
	}

	kept := merged[:0]
	for _, t := range merged {
		if arith.IsZero(t.coeff) {
			continue
		}
		kept = append(kept, t)
	}

	switch {
	case len(kept) == 0:
		return 0.0
	case len(kept) == 1 && len(kept[0].tags) == 0:
		return kept[0].coeff
	}
	return &Differential{terms: kept}
}

func appendFlattened(dst []Term, t Term) []Term {
	if inner, ok := t.coeff.(*Differential); ok {
		for _, it := range inner.terms {
			u, disjoint := t.tags.Union(it.tags)
			if !disjoint {
				continue
			}
			dst = appendFlattened(dst, Term{tags: u, coeff: it.coeff})
		}
		return dst
	}
	if arith.IsZero(t.coeff) {
		return dst
	}
	return append(dst, t)
}

// Bundle seeds primal with a tangent coefficient in the direction of t.
// A zero tangent is suppressed, collapsing the result back to primal.
func Bundle(primal, tangent any, t tag.Tag) any {
	return FromTerms([]Term{
		{tags: nil, coeff: primal},
		{tags: tag.Set{t}, coeff: tangent},
	})
}

// primalTerm returns the empty-tag-set coefficient, or exact zero when the
// value has no primal term.
func (d *Differential) primalTerm() any {
	if len(d.terms) > 0 && len(d.terms[0].tags) == 0 {
		return d.terms[0].coeff
	}
	return 0.0
}

// PrimalValue strips all perturbation structure from v, recursively.
func PrimalValue(v any) any {
	for {
		d, ok := v.(*Differential)
		if !ok {
			return v
		}
		v = d.primalTerm()
	}
}

// MaxTag returns the greatest tag occurring in any term. By construction a
// Differential always has at least one tagged term.
func (d *Differential) MaxTag() tag.Tag {
	var m tag.Tag
	for _, t := range d.terms {
		if last, ok := t.tags.Max(); ok && last > m {
			m = last
		}
	}
	return m
}

// HasTag reports whether t occurs in any term's tag-set.
func (d *Differential) HasTag(t tag.Tag) bool {
	for _, tm := range d.terms {
		if tm.tags.Contains(t) {
			return true
		}
	}
	return false
}

// StrictEqual compares full term structure, coefficients included. It is
// meant for tests and introspection; host control flow must use the
// primal-only comparisons in internal/arith instead.
func StrictEqual(a, b any) bool {
	da, okA := a.(*Differential)
	db, okB := b.(*Differential)
	if okA != okB {
		return false
	}
	if !okA {
		fa, numA := arith.Float(a)
		fb, numB := arith.Float(b)
		return numA && numB && fa == fb
	}
	if len(da.terms) != len(db.terms) {
		return false
	}
	for i := range da.terms {
		if !da.terms[i].tags.Equal(db.terms[i].tags) {
			return false
		}
		if !StrictEqual(da.terms[i].coeff, db.terms[i].coeff) {
			return false
		}
	}
	return true
}

// String renders the term sum, tagging infinitesimal factors as eN.
func (d *Differential) String() string {
	var b strings.Builder
	b.WriteString("diff[")
	for i, t := range d.terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%v", t.coeff)
		for _, x := range t.tags {
			fmt.Fprintf(&b, "*e%d", uint64(x))
		}
	}
	b.WriteString("]")
	return b.String()
}
