package deriv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tangent-ml/tangent/internal/arith"
)

func TestIdentityOperator(t *testing.T) {
	id := Identity()
	assert.InDelta(t, 9.0, num(t, id.Apply(square)(3.0)), 1e-15)
	assert.Equal(t, "I", id.Name())
}

func TestDOperator(t *testing.T) {
	d := DOperator()
	assert.InDelta(t, 6.0, num(t, d.Apply(square)(3.0)), 1e-15)
	assert.Equal(t, "D", d.Name())
}

// TestSumOperator tests (D+D)(x²)(3) = 2·2x = 12.
func TestSumOperator(t *testing.T) {
	dd := Sum(DOperator(), DOperator())
	assert.InDelta(t, 12.0, num(t, dd.Apply(square)(3.0)), 1e-15)
}

// TestProductOperator tests that D·D composes: (D·D)(x³)(2) = 6x = 12.
func TestProductOperator(t *testing.T) {
	d2 := Product(DOperator(), DOperator())
	assert.InDelta(t, 12.0, num(t, d2.Apply(cube)(2.0)), 1e-12)
}

func TestScaleOperator(t *testing.T) {
	twoD := Scale(2.0, DOperator())
	assert.InDelta(t, 12.0, num(t, twoD.Apply(square)(3.0)), 1e-15)
}

func TestOperatorPow(t *testing.T) {
	d3 := DOperator().Pow(3)
	assert.InDelta(t, 6.0, num(t, d3.Apply(cube)(2.0)), 1e-12)

	d0 := DOperator().Pow(0)
	assert.InDelta(t, 8.0, num(t, d0.Apply(cube)(2.0)), 1e-15)

	assert.Panics(t, func() { DOperator().Pow(-1) })
}

// TestExpOperator_PolynomialExact tests the truncated Taylor shift on a
// polynomial of degree equal to the truncation order, where the series is
// exact: exp(0.5·D)(x³)(1) = (1.5)³ = 3.375.
func TestExpOperator_PolynomialExact(t *testing.T) {
	shift := Exp(DOperator(), 0.5, 3)
	assert.InDelta(t, 3.375, num(t, shift.Apply(cube)(1.0)), 1e-12)
}

// TestExpOperator_Approximation tests convergence on a transcendental:
// exp(0.1·D)(sin)(1) approaches sin(1.1) as the order grows.
func TestExpOperator_Approximation(t *testing.T) {
	sin := func(x any) any { return arith.Sin(x) }
	want := math.Sin(1.1)

	loose := num(t, Exp(DOperator(), 0.1, 2).Apply(sin)(1.0))
	tight := num(t, Exp(DOperator(), 0.1, 6).Apply(sin)(1.0))

	assert.InDelta(t, want, tight, 1e-8)
	assert.Greater(t, math.Abs(loose-want), math.Abs(tight-want))
}

func TestExpOperator_OrderZero(t *testing.T) {
	id := Exp(DOperator(), 0.5, 0)
	assert.InDelta(t, 1.0, num(t, id.Apply(cube)(1.0)), 1e-15)

	assert.Panics(t, func() { Exp(DOperator(), 0.5, -1) })
}

func TestNewOperator(t *testing.T) {
	neg := NewOperator("neg", func(f Fn) Fn {
		return func(args ...any) any { return arith.Neg(f(args...)) }
	})
	assert.Equal(t, "neg", neg.Name())
	assert.InDelta(t, -9.0, num(t, neg.Apply(square)(3.0)), 1e-15)
}
