// Package perturb generalizes tangent extraction to container- and
// function-valued results, so the derivative operator can differentiate
// functions returning sequences, maps, tuples, or other functions.
//
// Four operations make up the protocol:
//
//   - IsPerturbed: does the value (recursively) carry a given tag?
//   - InsertTag: push a tag's (zero) perturbation down to every numeric leaf.
//   - ExtractTangent: pull a tag's tangent out of every leaf, rebuilding
//     the same container shape.
//   - RenameTag: rewrite one tag to another throughout a value.
//
// The built-in containers are numbers, Differentials, []any sequences,
// []float64 vectors, map[string]any, the fixed two-slot Pair, and
// functions (see function.go for the tag-hygiene protocol those need).
// Any other type flows through D by implementing Perturbable.
//
// Extraction for a tag that occurs nowhere is never an error: it yields
// the structurally-correct zero of the same shape, idempotently.
package perturb

import (
	"fmt"

	"github.com/tangent-ml/tangent/internal/arith"
	"github.com/tangent-ml/tangent/internal/diff"
	"github.com/tangent-ml/tangent/internal/tag"
)

// Perturbable is the open extension point: a container type whose values
// should flow through the derivative operator implements these four
// methods, recursing into its own elements via the package-level
// functions. Implementations must follow the tag-renaming discipline
// exactly; a violation is undetectable at runtime and shows up only as a
// wrong numeric answer.
type Perturbable interface {
	IsPerturbed(t tag.Tag) bool
	InsertTag(t tag.Tag) any
	ExtractTangent(t tag.Tag) any
	RenameTag(from, to tag.Tag) any
}

// Pair is a fixed-shape two-slot tuple.
type Pair struct {
	First  any
	Second any
}

// IsPerturbed reports whether v carries a term tagged with t anywhere.
// Functions are opaque, so they conservatively report true.
func IsPerturbed(v any, t tag.Tag) bool {
	switch x := v.(type) {
	case *diff.Differential:
		if x.HasTag(t) {
			return true
		}
		for _, tm := range x.Terms() {
			if IsPerturbed(tm.Coeff(), t) {
				return true
			}
		}
		return false
	case []any:
		for _, e := range x {
			if IsPerturbed(e, t) {
				return true
			}
		}
		return false
	case []float64:
		return false
	case map[string]any:
		for _, e := range x {
			if IsPerturbed(e, t) {
				return true
			}
		}
		return false
	case Pair:
		return IsPerturbed(x.First, t) || IsPerturbed(x.Second, t)
	case Perturbable:
		return x.IsPerturbed(t)
	}
	if _, ok := AsFn(v); ok {
		return true
	}
	return false
}

// InsertTag seeds t at every numeric leaf of v with a zero tangent.
// Since zero coefficients are suppressed, this is the identity on values
// already free of t; it exists to make arguments shape-compatible before
// they meet an already-perturbed value.
func InsertTag(v any, t tag.Tag) any {
	switch x := v.(type) {
	case *diff.Differential:
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = InsertTag(e, t)
		}
		return out
	case []float64:
		return x
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = InsertTag(e, t)
		}
		return out
	case Pair:
		return Pair{First: InsertTag(x.First, t), Second: InsertTag(x.Second, t)}
	case Perturbable:
		return x.InsertTag(t)
	}
	if f, ok := AsFn(v); ok {
		return insertFunctionTag(f, t)
	}
	if arith.IsNumber(v) {
		return diff.Bundle(v, arith.ZeroLike(v), t)
	}
	panic(fmt.Sprintf("perturb: value of type %T does not implement Perturbable", v))
}

// ExtractTangent recovers t's tangent component from v, preserving the
// container shape. Numbers with no trace of t yield their typed zero;
// function values yield the rewritten function described in function.go.
func ExtractTangent(v any, t tag.Tag) any {
	switch x := v.(type) {
	case *diff.Differential:
		_, tangent := diff.Extract(x, t)
		return tangent
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ExtractTangent(e, t)
		}
		return out
	case []float64:
		return make([]float64, len(x))
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = ExtractTangent(e, t)
		}
		return out
	case Pair:
		return Pair{First: ExtractTangent(x.First, t), Second: ExtractTangent(x.Second, t)}
	case Perturbable:
		return x.ExtractTangent(t)
	}
	if f, ok := AsFn(v); ok {
		return extractFunctionTangent(f, t)
	}
	if arith.IsNumber(v) {
		return arith.ZeroLike(v)
	}
	panic(fmt.Sprintf("perturb: value of type %T does not implement Perturbable", v))
}

// RenameTag rewrites every occurrence of from into to throughout v.
// A term whose tag-set already contains to is annihilated by the renaming
// (the repeated tag squares to zero).
func RenameTag(v any, from, to tag.Tag) any {
	if from == to {
		return v
	}
	switch x := v.(type) {
	case *diff.Differential:
		terms := x.Terms()
		out := make([]diff.Term, 0, len(terms))
		for _, tm := range terms {
			tags, alive := tm.Tags().Rename(from, to)
			if !alive {
				continue
			}
			out = append(out, diff.NewTerm(tags, RenameTag(tm.Coeff(), from, to)))
		}
		return diff.FromTerms(out)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = RenameTag(e, from, to)
		}
		return out
	case []float64:
		return x
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = RenameTag(e, from, to)
		}
		return out
	case Pair:
		return Pair{
			First:  RenameTag(x.First, from, to),
			Second: RenameTag(x.Second, from, to),
		}
	case Perturbable:
		return x.RenameTag(from, to)
	}
	if f, ok := AsFn(v); ok {
		return renameFunctionTag(f, from, to)
	}
	return v
}
