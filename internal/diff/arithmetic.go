package diff

import (
	"github.com/tangent-ml/tangent/internal/arith"
	"github.com/tangent-ml/tangent/internal/tag"
)

// termsOf views any value as a term list: a Differential contributes its
// terms, everything else is a single primal term.
func termsOf(v any) []Term {
	if d, ok := v.(*Differential); ok {
		return d.terms
	}
	return []Term{{tags: nil, coeff: v}}
}

// add unions the term sets, summing coefficients where tag-sets coincide.
func add(a, b any) any {
	ta, tb := termsOf(a), termsOf(b)
	out := make([]Term, 0, len(ta)+len(tb))
	out = append(out, ta...)
	out = append(out, tb...)
	return FromTerms(out)
}

// mul emits the pairwise term products. Intersecting tag-sets vanish
// (ε² = 0); disjoint ones union, with coefficients multiplied generically.
func mul(a, b any) any {
	ta, tb := termsOf(a), termsOf(b)
	out := make([]Term, 0, len(ta)*len(tb))
	for _, x := range ta {
		for _, y := range tb {
			u, disjoint := x.tags.Union(y.tags)
			if !disjoint {
				continue
			}
			out = append(out, Term{tags: u, coeff: arith.Mul(x.coeff, y.coeff)})
		}
	}
	return FromTerms(out)
}

// neg negates every coefficient. Exact, no chain rule needed.
func neg(v any) any {
	ts := termsOf(v)
	out := make([]Term, 0, len(ts))
	for _, t := range ts {
		out = append(out, Term{tags: t.tags, coeff: arith.Neg(t.coeff)})
	}
	return FromTerms(out)
}

// splitOn partitions v by membership of t: the finite part (terms without
// t) and the infinitesimal part (terms with t, tag retained). A value not
// containing t is entirely finite; the nil infinitesimal tells callers to
// skip that operand's chain-rule contribution.
func splitOn(v any, t tag.Tag) (finite any, infinitesimal any) {
	d, ok := v.(*Differential)
	if !ok {
		return v, nil
	}
	var fin, inf []Term
	for _, tm := range d.terms {
		if tm.tags.Contains(t) {
			inf = append(inf, tm)
		} else {
			fin = append(fin, tm)
		}
	}
	if len(inf) == 0 {
		return d, nil
	}
	return FromTerms(fin), &Differential{terms: inf}
}

// applyUnary lifts a primitive g with derivative g' over a Differential by
// the chain rule, splitting on the operand's maximal tag:
//
//	g(x) = g(finite) + g'(finite)·infinitesimal
//
// g and g' are the generic operations, so when the finite part still
// carries lower tags the recursion through the dispatch layer picks them
// up — that is what produces the second-order cross terms of nested
// differentiation. Splitting on the empty-tag-set primal instead would
// silently lose them.
func applyUnary(fn, dfn func(x any) any, x any) any {
	d := x.(*Differential)
	finite, infinitesimal := splitOn(d, d.MaxTag())
	return add(fn(finite), mul(dfn(finite), infinitesimal))
}

// applyBinary lifts a two-argument primitive f by the multivariate chain
// rule on the shared maximal tag t:
//
//	f(x, y) = f(xe, ye) + ∂₁f(xe, ye)·dx + ∂₂f(xe, ye)·dy
//
// where xe, dx (ye, dy) split the operands on t. Lower tags recurse
// through the generic f, ∂₁f, ∂₂f exactly as in applyUnary.
func applyBinary(fn, d1, d2 func(a, b any) any, a, b any) any {
	t := maxTagOf(a, b)
	xe, dx := splitOn(a, t)
	ye, dy := splitOn(b, t)
	res := fn(xe, ye)
	if dx != nil {
		res = add(res, mul(d1(xe, ye), dx))
	}
	if dy != nil {
		res = add(res, mul(d2(xe, ye), dy))
	}
	return res
}

func maxTagOf(a, b any) tag.Tag {
	var m tag.Tag
	if d, ok := a.(*Differential); ok {
		m = d.MaxTag()
	}
	if d, ok := b.(*Differential); ok {
		if t := d.MaxTag(); t > m {
			m = t
		}
	}
	return m
}
