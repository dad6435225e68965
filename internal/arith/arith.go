// Package arith implements generic arithmetic over dynamically-typed values.
//
// Every primitive operation (Add, Mul, Sin, Exp, ...) first tries the
// built-in numeric kernels (float64 and int, with ints promoting to float64
// when mixed), then consults a registry of handlers keyed by operation.
// Extension packages register handlers for their own operand types; the
// Differential type in internal/diff registers a handler for every
// primitive here, and those handlers call back into this package's generic
// entry points on their sub-values, so coefficients of further-extended
// types keep working.
//
// Operand types with no kernel and no registered handler panic with
// *UnsupportedError at first use. Nothing is ever silently approximated.
package arith

// Op names a primitive operation in the registry.
type Op string

// Primitive operations.
const (
	OpAdd    Op = "add"
	OpSub    Op = "sub"
	OpMul    Op = "mul"
	OpDiv    Op = "div"
	OpPow    Op = "pow"
	OpAtan2  Op = "atan2"
	OpNeg    Op = "neg"
	OpInvert Op = "invert"
	OpAbs    Op = "abs"
	OpSign   Op = "sign"
	OpSquare Op = "square"
	OpCube   Op = "cube"
	OpSqrt   Op = "sqrt"
	OpExp    Op = "exp"
	OpLog    Op = "log"
	OpSin    Op = "sin"
	OpCos    Op = "cos"
	OpTan    Op = "tan"
	OpAsin   Op = "asin"
	OpAcos   Op = "acos"
	OpAtan   Op = "atan"
	OpSinh   Op = "sinh"
	OpCosh   Op = "cosh"
	OpTanh   Op = "tanh"
)

// Float coerces a built-in numeric value to float64.
func Float(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

// IsNumber reports whether v is a built-in numeric value.
func IsNumber(v any) bool {
	_, ok := Float(v)
	return ok
}

// IsZero reports whether v is an exactly-zero number. Non-numeric values
// are never zero: a function or container coefficient is always kept.
func IsZero(v any) bool {
	switch x := v.(type) {
	case float64:
		return x == 0
	case int:
		return x == 0
	}
	return false
}

// IsOne reports whether v is an exactly-one number.
func IsOne(v any) bool {
	switch x := v.(type) {
	case float64:
		return x == 1
	case int:
		return x == 1
	}
	return false
}

// ZeroLike returns the zero of v's numeric type, defaulting to float64
// zero for anything non-numeric.
func ZeroLike(v any) any {
	if _, ok := v.(int); ok {
		return 0
	}
	return 0.0
}
