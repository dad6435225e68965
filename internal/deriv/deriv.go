// Package deriv implements the forward-mode derivative operator.
//
// D(f) returns a function computing f's derivative at a point. Each
// application mints a fresh tag, seeds the argument with a unit tangent in
// that direction, runs f (whose arithmetic is intercepted by the lifted
// operations in internal/diff), and extracts the tangent for that tag from
// whatever f returned — a number, a container, or another function.
//
// Because every application allocates its own tag, D composes freely with
// itself: higher-order derivatives and mixed partials need no special
// machinery beyond the multi-tag term algebra.
package deriv

import (
	"fmt"

	"github.com/tangent-ml/tangent/internal/diff"
	"github.com/tangent-ml/tangent/internal/parallel"
	"github.com/tangent-ml/tangent/internal/perturb"
	"github.com/tangent-ml/tangent/internal/tag"
)

// Fn is the canonical differentiable-function shape.
type Fn = perturb.Fn

// mustFn normalizes the supported function shapes. Construction-time
// wrapping never fails for a function value; a non-function is the one
// user error reported here.
func mustFn(f any) Fn {
	fn, ok := perturb.AsFn(f)
	if !ok {
		panic(fmt.Sprintf("deriv: %T is not a differentiable function shape", f))
	}
	return fn
}

// Apply calls a function value of any supported shape.
func Apply(f any, args ...any) any {
	return mustFn(f)(args...)
}

// D returns the derivative of f, a function of one argument. The result
// mirrors the shape of f's result: a number for numeric f, a same-shaped
// container for container-valued f, and a function for function-valued f
// (with the extraction hygiene handled by internal/perturb). A constant f
// yields the structural zero of its result shape.
func D(f any) Fn {
	fn := mustFn(f)
	return func(args ...any) any {
		if len(args) != 1 {
			panic(fmt.Sprintf("deriv: D-derived function takes 1 argument, got %d; use Partial for multi-argument functions", len(args)))
		}
		t := tag.Fresh()
		return perturb.ExtractTangent(fn(diff.Bundle(args[0], 1.0, t)), t)
	}
}

// Partial returns the operator taking f to its partial derivative with
// respect to argument i; the other arguments pass through unbundled.
func Partial(i int) func(f any) Fn {
	return func(f any) Fn {
		fn := mustFn(f)
		return func(args ...any) any {
			if i < 0 || i >= len(args) {
				panic(fmt.Sprintf("deriv: partial index %d out of range for %d arguments", i, len(args)))
			}
			t := tag.Fresh()
			bundled := make([]any, len(args))
			copy(bundled, args)
			bundled[i] = diff.Bundle(args[i], 1.0, t)
			return perturb.ExtractTangent(fn(bundled...), t)
		}
	}
}

// Nth composes D with itself n times. Nth(0, f) is f normalized.
func Nth(n int, f any) Fn {
	if n < 0 {
		panic(fmt.Sprintf("deriv: negative derivative order %d", n))
	}
	fn := mustFn(f)
	for k := 0; k < n; k++ {
		fn = D(fn)
	}
	return fn
}

// Gradient evaluates every partial derivative of f at the given point.
// Each partial runs in its own differentiation scope with its own tag, so
// the evaluations fan out across a worker pool.
func Gradient(f any, xs ...any) []any {
	fn := mustFn(f)
	return parallel.Map(len(xs), func(i int) any {
		return Partial(i)(fn)(xs...)
	})
}
