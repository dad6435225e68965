// Copyright 2026 Tangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arith provides the public API for generic arithmetic.
//
// Every operation accepts plain numbers (float64, int) as well as any
// registered extension type — in particular the Differential values that
// flow through differentiated code. Comparisons look only at primal
// parts, so ordinary control flow works unchanged inside functions being
// differentiated.
//
// Example:
//
//	y := arith.Mul(x, x)        // works for numbers and Differentials
//	if arith.Less(y, 1.0) {     // primal-only comparison
//	    y = arith.Neg(y)
//	}
package arith

import (
	"github.com/tangent-ml/tangent/internal/arith"

	// Register the Differential handlers for every primitive.
	_ "github.com/tangent-ml/tangent/internal/diff"
)

// Op names a primitive operation in the dispatch registry.
type Op = arith.Op

// UnsupportedError reports an operand type with no rule for an operation.
type UnsupportedError = arith.UnsupportedError

// RegisterUnary adds a dispatch handler for a unary operation.
// Must be called during package initialization.
func RegisterUnary(op Op, match func(x any) bool, apply func(x any) any) {
	arith.RegisterUnary(op, match, apply)
}

// RegisterBinary adds a dispatch handler for a binary operation.
// Must be called during package initialization.
func RegisterBinary(op Op, match func(a, b any) bool, apply func(a, b any) any) {
	arith.RegisterBinary(op, match, apply)
}

// Add computes a + b.
func Add(a, b any) any { return arith.Add(a, b) }

// Sub computes a - b.
func Sub(a, b any) any { return arith.Sub(a, b) }

// Mul computes a * b.
func Mul(a, b any) any { return arith.Mul(a, b) }

// Div computes a / b.
func Div(a, b any) any { return arith.Div(a, b) }

// Pow computes a raised to the power b.
func Pow(a, b any) any { return arith.Pow(a, b) }

// Atan2 computes the two-argument arctangent.
func Atan2(y, x any) any { return arith.Atan2(y, x) }

// Neg computes -x.
func Neg(x any) any { return arith.Neg(x) }

// Invert computes 1 / x.
func Invert(x any) any { return arith.Invert(x) }

// Abs computes the absolute value of x.
func Abs(x any) any { return arith.Abs(x) }

// Square computes x * x.
func Square(x any) any { return arith.Square(x) }

// Cube computes x * x * x.
func Cube(x any) any { return arith.Cube(x) }

// Sqrt computes the square root of x.
func Sqrt(x any) any { return arith.Sqrt(x) }

// Exp computes e**x.
func Exp(x any) any { return arith.Exp(x) }

// Log computes the natural logarithm of x.
func Log(x any) any { return arith.Log(x) }

// Sin computes sin(x).
func Sin(x any) any { return arith.Sin(x) }

// Cos computes cos(x).
func Cos(x any) any { return arith.Cos(x) }

// Tan computes tan(x).
func Tan(x any) any { return arith.Tan(x) }

// Asin computes arcsin(x).
func Asin(x any) any { return arith.Asin(x) }

// Acos computes arccos(x).
func Acos(x any) any { return arith.Acos(x) }

// Atan computes arctan(x).
func Atan(x any) any { return arith.Atan(x) }

// Sinh computes the hyperbolic sine of x.
func Sinh(x any) any { return arith.Sinh(x) }

// Cosh computes the hyperbolic cosine of x.
func Cosh(x any) any { return arith.Cosh(x) }

// Tanh computes the hyperbolic tangent of x.
func Tanh(x any) any { return arith.Tanh(x) }

// Less compares the primal parts of a and b.
func Less(a, b any) bool { return arith.Less(a, b) }

// LessEq compares the primal parts of a and b.
func LessEq(a, b any) bool { return arith.LessEq(a, b) }

// Greater compares the primal parts of a and b.
func Greater(a, b any) bool { return arith.Greater(a, b) }

// GreaterEq compares the primal parts of a and b.
func GreaterEq(a, b any) bool { return arith.GreaterEq(a, b) }

// NumEq reports numeric equality of the primal parts of a and b.
func NumEq(a, b any) bool { return arith.NumEq(a, b) }
