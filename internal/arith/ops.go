package arith

import "math"

// Add computes a + b. Integer addition stays exact.
func Add(a, b any) any {
	if x, ok := a.(int); ok {
		if y, ok := b.(int); ok {
			return x + y
		}
	}
	if x, ok := Float(a); ok {
		if y, ok := Float(b); ok {
			return x + y
		}
	}
	return dispatchBinary(OpAdd, a, b)
}

// Sub computes a - b.
func Sub(a, b any) any {
	if x, ok := a.(int); ok {
		if y, ok := b.(int); ok {
			return x - y
		}
	}
	if x, ok := Float(a); ok {
		if y, ok := Float(b); ok {
			return x - y
		}
	}
	return dispatchBinary(OpSub, a, b)
}

// Mul computes a * b. Integer multiplication stays exact.
func Mul(a, b any) any {
	if x, ok := a.(int); ok {
		if y, ok := b.(int); ok {
			return x * y
		}
	}
	if x, ok := Float(a); ok {
		if y, ok := Float(b); ok {
			return x * y
		}
	}
	return dispatchBinary(OpMul, a, b)
}

// Div computes a / b.
func Div(a, b any) any {
	if x, ok := Float(a); ok {
		if y, ok := Float(b); ok {
			return x / y
		}
	}
	return dispatchBinary(OpDiv, a, b)
}

// Pow computes a raised to the power b.
func Pow(a, b any) any {
	if x, ok := Float(a); ok {
		if y, ok := Float(b); ok {
			return math.Pow(x, y)
		}
	}
	return dispatchBinary(OpPow, a, b)
}

// Atan2 computes the two-argument arctangent atan2(y, x).
func Atan2(y, x any) any {
	if fy, ok := Float(y); ok {
		if fx, ok := Float(x); ok {
			return math.Atan2(fy, fx)
		}
	}
	return dispatchBinary(OpAtan2, y, x)
}

// Neg computes -x. Integer negation stays exact.
func Neg(x any) any {
	switch v := x.(type) {
	case int:
		return -v
	case float64:
		return -v
	}
	return dispatchUnary(OpNeg, x)
}

// Invert computes 1 / x.
func Invert(x any) any {
	if v, ok := Float(x); ok {
		return 1 / v
	}
	return dispatchUnary(OpInvert, x)
}

// Abs computes the absolute value of x.
func Abs(x any) any {
	switch v := x.(type) {
	case int:
		if v < 0 {
			return -v
		}
		return v
	case float64:
		return math.Abs(v)
	}
	return dispatchUnary(OpAbs, x)
}

// Sign returns -1.0, 0.0, or 1.0 according to the sign of x.
func Sign(x any) any {
	if v, ok := Float(x); ok {
		switch {
		case v > 0:
			return 1.0
		case v < 0:
			return -1.0
		}
		return 0.0
	}
	return dispatchUnary(OpSign, x)
}

// Square computes x * x.
func Square(x any) any {
	if v, ok := Float(x); ok {
		return v * v
	}
	return dispatchUnary(OpSquare, x)
}

// Cube computes x * x * x.
func Cube(x any) any {
	if v, ok := Float(x); ok {
		return v * v * v
	}
	return dispatchUnary(OpCube, x)
}

// Sqrt computes the square root of x.
func Sqrt(x any) any {
	if v, ok := Float(x); ok {
		return math.Sqrt(v)
	}
	return dispatchUnary(OpSqrt, x)
}

// Exp computes e**x.
func Exp(x any) any {
	if v, ok := Float(x); ok {
		return math.Exp(v)
	}
	return dispatchUnary(OpExp, x)
}

// Log computes the natural logarithm of x.
func Log(x any) any {
	if v, ok := Float(x); ok {
		return math.Log(v)
	}
	return dispatchUnary(OpLog, x)
}

// Sin computes sin(x).
func Sin(x any) any {
	if v, ok := Float(x); ok {
		return math.Sin(v)
	}
	return dispatchUnary(OpSin, x)
}

// Cos computes cos(x).
func Cos(x any) any {
	if v, ok := Float(x); ok {
		return math.Cos(v)
	}
	return dispatchUnary(OpCos, x)
}

// Tan computes tan(x).
func Tan(x any) any {
	if v, ok := Float(x); ok {
		return math.Tan(v)
	}
	return dispatchUnary(OpTan, x)
}

// Asin computes arcsin(x).
func Asin(x any) any {
	if v, ok := Float(x); ok {
		return math.Asin(v)
	}
	return dispatchUnary(OpAsin, x)
}

// Acos computes arccos(x).
func Acos(x any) any {
	if v, ok := Float(x); ok {
		return math.Acos(v)
	}
	return dispatchUnary(OpAcos, x)
}

// Atan computes arctan(x).
func Atan(x any) any {
	if v, ok := Float(x); ok {
		return math.Atan(v)
	}
	return dispatchUnary(OpAtan, x)
}

// Sinh computes the hyperbolic sine of x.
func Sinh(x any) any {
	if v, ok := Float(x); ok {
		return math.Sinh(v)
	}
	return dispatchUnary(OpSinh, x)
}

// Cosh computes the hyperbolic cosine of x.
func Cosh(x any) any {
	if v, ok := Float(x); ok {
		return math.Cosh(v)
	}
	return dispatchUnary(OpCosh, x)
}

// Tanh computes the hyperbolic tangent of x.
func Tanh(x any) any {
	if v, ok := Float(x); ok {
		return math.Tanh(v)
	}
	return dispatchUnary(OpTanh, x)
}
