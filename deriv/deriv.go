// Copyright 2026 Tangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package deriv provides the public API for the derivative operator.
//
// D turns a function into its derivative; each application runs in its own
// differentiation scope, so D nests freely — including through functions
// that return functions, and functions that call D internally.
//
// Example:
//
//	square := func(x any) any { return arith.Mul(x, x) }
//	dsq := deriv.D(square)
//	fmt.Println(dsq(3.0)) // 6
//
//	// Partial derivatives and gradients
//	f := func(args ...any) any { return arith.Mul(args[0], args[1]) }
//	fx := deriv.Partial(0)(f)
//	grad := deriv.Gradient(f, 2.0, 5.0) // [5, 2]
package deriv

import (
	"github.com/tangent-ml/tangent/internal/deriv"
	"github.com/tangent-ml/tangent/internal/perturb"
	"github.com/tangent-ml/tangent/internal/tag"
)

// Fn is the canonical differentiable-function shape.
type Fn = deriv.Fn

// Pair is a fixed-shape two-slot tuple that flows through D.
type Pair = perturb.Pair

// Perturbable is the extension point for user container types that should
// flow through D transparently.
type Perturbable = perturb.Perturbable

// D returns the derivative of f, a function of one argument.
func D(f any) Fn { return deriv.D(f) }

// Partial returns the operator taking f to its partial derivative with
// respect to argument i.
func Partial(i int) func(f any) Fn { return deriv.Partial(i) }

// Nth composes D with itself n times.
func Nth(n int, f any) Fn { return deriv.Nth(n, f) }

// Gradient evaluates every partial derivative of f at the given point.
func Gradient(f any, xs ...any) []any { return deriv.Gradient(f, xs...) }

// Apply calls a function value of any supported shape.
func Apply(f any, args ...any) any { return deriv.Apply(f, args...) }

// Operator is an element of the ring of operators over functions.
type Operator = deriv.Operator

// NewOperator wraps an explicit function transformer as an Operator.
func NewOperator(name string, apply func(f Fn) Fn) Operator {
	return deriv.NewOperator(name, apply)
}

// DOp returns D as a first-class operator.
func DOp() Operator { return deriv.DOperator() }

// IdentityOp returns the multiplicative unit of the operator ring.
func IdentityOp() Operator { return deriv.Identity() }

// SumOp returns the pointwise sum of two operators.
func SumOp(a, b Operator) Operator { return deriv.Sum(a, b) }

// ProductOp returns the composition of two operators.
func ProductOp(a, b Operator) Operator { return deriv.Product(a, b) }

// ScaleOp returns the operator scaled by a constant.
func ScaleOp(c any, o Operator) Operator { return deriv.Scale(c, o) }

// ExpOp returns the truncated exponential series of eps·o.
func ExpOp(o Operator, eps any, order int) Operator { return deriv.Exp(o, eps, order) }

// IsPerturbed reports whether v carries tag t anywhere.
func IsPerturbed(v any, t tag.Tag) bool { return perturb.IsPerturbed(v, t) }

// InsertTag seeds t at every numeric leaf of v with a zero tangent.
func InsertTag(v any, t tag.Tag) any { return perturb.InsertTag(v, t) }

// ExtractTangent recovers t's tangent component from v, preserving shape.
func ExtractTangent(v any, t tag.Tag) any { return perturb.ExtractTangent(v, t) }

// RenameTag rewrites every occurrence of from into to throughout v.
func RenameTag(v any, from, to tag.Tag) any { return perturb.RenameTag(v, from, to) }
