package diff

import "github.com/tangent-ml/tangent/internal/arith"

// This file wires the Differential type into the generic dispatch layer:
// one handler per primitive, each expressed in terms of the generic
// operations so that coefficient sub-values of any extended type keep
// working. Derivative rules follow the table of elementary derivatives;
// Add, Sub, Mul and Neg work directly on the term algebra, which is exact
// and needs no chain rule.

func isDiff(x any) bool {
	_, ok := x.(*Differential)
	return ok
}

func eitherDiff(a, b any) bool {
	return isDiff(a) || isDiff(b)
}

func registerChain(op arith.Op, fn, dfn func(x any) any) {
	arith.RegisterUnary(op, isDiff, func(x any) any {
		return applyUnary(fn, dfn, x)
	})
}

func init() {
	arith.RegisterPrimal(func(v any) (any, bool) {
		d, ok := v.(*Differential)
		if !ok {
			return nil, false
		}
		return d.primalTerm(), true
	})

	arith.RegisterBinary(arith.OpAdd, eitherDiff, add)
	arith.RegisterBinary(arith.OpSub, eitherDiff, func(a, b any) any {
		return add(a, neg(b))
	})
	arith.RegisterBinary(arith.OpMul, eitherDiff, mul)

	arith.RegisterBinary(arith.OpDiv, eitherDiff, func(a, b any) any {
		return applyBinary(arith.Div,
			func(x, y any) any { return arith.Invert(y) },
			func(x, y any) any { return arith.Neg(arith.Div(x, arith.Square(y))) },
			a, b)
	})

	arith.RegisterBinary(arith.OpPow, eitherDiff, func(a, b any) any {
		return applyBinary(arith.Pow,
			func(x, y any) any { return arith.Mul(y, arith.Pow(x, arith.Sub(y, 1))) },
			func(x, y any) any { return arith.Mul(arith.Pow(x, y), arith.Log(x)) },
			a, b)
	})

	arith.RegisterBinary(arith.OpAtan2, eitherDiff, func(y, x any) any {
		return applyBinary(arith.Atan2,
			func(y, x any) any {
				return arith.Div(x, arith.Add(arith.Square(x), arith.Square(y)))
			},
			func(y, x any) any {
				return arith.Neg(arith.Div(y, arith.Add(arith.Square(x), arith.Square(y))))
			},
			y, x)
	})

	arith.RegisterUnary(arith.OpNeg, isDiff, neg)

	registerChain(arith.OpSin, arith.Sin, func(x any) any { return arith.Cos(x) })
	registerChain(arith.OpCos, arith.Cos, func(x any) any { return arith.Neg(arith.Sin(x)) })
	registerChain(arith.OpTan, arith.Tan, func(x any) any {
		return arith.Invert(arith.Square(arith.Cos(x)))
	})
	registerChain(arith.OpAsin, arith.Asin, func(x any) any {
		return arith.Invert(arith.Sqrt(arith.Sub(1.0, arith.Square(x))))
	})
	registerChain(arith.OpAcos, arith.Acos, func(x any) any {
		return arith.Neg(arith.Invert(arith.Sqrt(arith.Sub(1.0, arith.Square(x)))))
	})
	registerChain(arith.OpAtan, arith.Atan, func(x any) any {
		return arith.Invert(arith.Add(1.0, arith.Square(x)))
	})
	registerChain(arith.OpSinh, arith.Sinh, func(x any) any { return arith.Cosh(x) })
	registerChain(arith.OpCosh, arith.Cosh, func(x any) any { return arith.Sinh(x) })
	registerChain(arith.OpTanh, arith.Tanh, func(x any) any {
		return arith.Sub(1.0, arith.Square(arith.Tanh(x)))
	})
	registerChain(arith.OpExp, arith.Exp, func(x any) any { return arith.Exp(x) })
	registerChain(arith.OpLog, arith.Log, func(x any) any { return arith.Invert(x) })
	registerChain(arith.OpSqrt, arith.Sqrt, func(x any) any {
		return arith.Invert(arith.Mul(2.0, arith.Sqrt(x)))
	})
	registerChain(arith.OpSquare, arith.Square, func(x any) any { return arith.Mul(2.0, x) })
	registerChain(arith.OpCube, arith.Cube, func(x any) any {
		return arith.Mul(3.0, arith.Square(x))
	})
	registerChain(arith.OpInvert, arith.Invert, func(x any) any {
		return arith.Neg(arith.Invert(arith.Square(x)))
	})
	registerChain(arith.OpAbs, arith.Abs, func(x any) any { return arith.Sign(x) })

	// Sign is flat almost everywhere; its lift reads only the primal.
	arith.RegisterUnary(arith.OpSign, isDiff, func(x any) any {
		return arith.Sign(PrimalValue(x))
	})
}
