package deriv

import (
	"fmt"

	"github.com/tangent-ml/tangent/internal/arith"
)

// Operator is an element of the ring of operators over functions: addition
// is pointwise addition of results, multiplication is composition. D is
// the interesting generator — Sum, Product, Scale and Exp make things like
// D+D, D·D (the second derivative) and the truncated Taylor shift exp(ε·D)
// ordinary expressions.
type Operator struct {
	name  string
	apply func(f Fn) Fn
}

// NewOperator wraps an explicit function transformer.
func NewOperator(name string, apply func(f Fn) Fn) Operator {
	return Operator{name: name, apply: apply}
}

// Name returns a display name for the operator.
func (o Operator) Name() string { return o.name }

// Apply applies the operator to a function.
func (o Operator) Apply(f any) Fn {
	return o.apply(mustFn(f))
}

// DOperator returns D as a first-class operator.
func DOperator() Operator {
	return Operator{name: "D", apply: func(f Fn) Fn { return D(f) }}
}

// Identity returns the multiplicative unit of the operator ring.
func Identity() Operator {
	return Operator{name: "I", apply: func(f Fn) Fn { return f }}
}

// Sum returns the operator (a+b): f ↦ a(f) + b(f), pointwise.
func Sum(a, b Operator) Operator {
	return Operator{
		name: fmt.Sprintf("(%s + %s)", a.name, b.name),
		apply: func(f Fn) Fn {
			af, bf := a.apply(f), b.apply(f)
			return func(args ...any) any {
				return arith.Add(af(args...), bf(args...))
			}
		},
	}
}

// Product returns the operator a·b: f ↦ a(b(f)). Composition, so
// Product(DOperator(), DOperator()) is the second-derivative operator.
func Product(a, b Operator) Operator {
	return Operator{
		name: fmt.Sprintf("(%s %s)", a.name, b.name),
		apply: func(f Fn) Fn {
			return a.apply(b.apply(f))
		},
	}
}

// Scale returns the operator c·o: f ↦ (x ↦ c · o(f)(x)).
func Scale(c any, o Operator) Operator {
	return Operator{
		name: fmt.Sprintf("(%v %s)", c, o.name),
		apply: func(f Fn) Fn {
			of := o.apply(f)
			return func(args ...any) any {
				return arith.Mul(c, of(args...))
			}
		},
	}
}

// Pow returns o composed with itself n times.
func (o Operator) Pow(n int) Operator {
	if n < 0 {
		panic(fmt.Sprintf("deriv: negative operator power %d", n))
	}
	out := Identity()
	for k := 0; k < n; k++ {
		out = Product(o, out)
	}
	out.name = fmt.Sprintf("(%s^%d)", o.name, n)
	return out
}

// Exp returns the truncated exponential series of eps·o:
//
//	Σ_{k=0..order} eps^k/k! · o^k
//
// With o = D this is the order-limited Taylor shift: Exp(D, ε, n)(f)(x)
// approximates f(x+ε), exactly so for polynomials of degree ≤ n.
func Exp(o Operator, eps any, order int) Operator {
	if order < 0 {
		panic(fmt.Sprintf("deriv: negative series order %d", order))
	}
	return Operator{
		name: fmt.Sprintf("(exp %v %s)", eps, o.name),
		apply: func(f Fn) Fn {
			return func(args ...any) any {
				acc := f(args...)
				g := f
				factorial := 1.0
				epsPow := any(1.0)
				for k := 1; k <= order; k++ {
					g = o.apply(g)
					factorial *= float64(k)
					epsPow = arith.Mul(epsPow, eps)
					term := arith.Mul(arith.Div(epsPow, factorial), g(args...))
					acc = arith.Add(acc, term)
				}
				return acc
			}
		},
	}
}
