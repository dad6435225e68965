package perturb

import "github.com/tangent-ml/tangent/internal/tag"

// Functions are perturbation-capable containers too, and the delicate
// ones: a function returned from differentiated code closes over the
// differentiation context, so its perturbation structure only becomes
// visible when it is eventually applied — possibly from a context that is
// itself differentiating with a tag of the same name. The wrappers below
// keep those scopes apart by renaming through freshly minted tags at each
// application. Tags grow monotonically, so a tag minted here is always
// distinguishable from any tag an ancestor scope is still holding.

// Fn is the canonical shape of a differentiable function value.
type Fn func(args ...any) any

// AsFn normalizes the supported function shapes to Fn.
func AsFn(v any) (Fn, bool) {
	switch f := v.(type) {
	case Fn:
		return f, true
	case func(args ...any) any:
		return f, true
	case func(any) any:
		return func(args ...any) any { return f(args[0]) }, true
	}
	return nil, false
}

// extractFunctionTangent builds the tangent of a function-valued result.
// The returned function, at each application:
//
//  1. mints a brand-new tag u,
//  2. rewrites every occurrence of t inside the arguments to u, protecting
//     the caller's own use of t from the capture about to happen,
//  3. applies the original function,
//  4. extracts t's tangent from the result, and
//  5. rewrites residual u back to t, so an enclosing extraction still
//     finds what it expects.
//
// Skipping the renames looks sufficient — until the same returned function
// is applied inside another differentiation of the same tag, where the two
// scopes' tangents silently unify. See the nested-shift regression tests.
func extractFunctionTangent(f Fn, t tag.Tag) Fn {
	return func(args ...any) any {
		u := tag.Fresh()
		shielded := make([]any, len(args))
		for i, a := range args {
			shielded[i] = RenameTag(a, t, u)
		}
		return RenameTag(ExtractTangent(f(shielded...), t), u, t)
	}
}

// renameFunctionTag renames a captured tag inside a function value. The
// wrapper must be transparent for functions that never captured from: an
// argument carrying from (the caller's own, unrelated use of the name) has
// to survive the round trip untouched, while captured occurrences still
// come out renamed. That takes a shield tag eps around the application:
// the caller's from goes into hiding first, to's occurrences take the
// inside name from, and after the body runs the renames unwind in the
// opposite order.
func renameFunctionTag(f Fn, from, to tag.Tag) Fn {
	return func(args ...any) any {
		eps := tag.Fresh()
		shielded := make([]any, len(args))
		for i, a := range args {
			shielded[i] = RenameTag(RenameTag(a, from, eps), to, from)
		}
		out := f(shielded...)
		return RenameTag(RenameTag(out, from, to), eps, from)
	}
}

// insertFunctionTag defers tag insertion to each application's result.
func insertFunctionTag(f Fn, t tag.Tag) Fn {
	return func(args ...any) any {
		return InsertTag(f(args...), t)
	}
}
