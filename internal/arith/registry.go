package arith

import "fmt"

// UnaryHandler computes op(x) for an extension type.
type UnaryHandler func(x any) any

// BinaryHandler computes op(a, b) where at least one operand is of an
// extension type.
type BinaryHandler func(a, b any) any

type unaryRule struct {
	match func(x any) bool
	apply UnaryHandler
}

type binaryRule struct {
	match func(a, b any) bool
	apply BinaryHandler
}

// The registry is written only during package initialization (extension
// packages register from init functions) and read on every dispatch, so it
// carries no lock.
var (
	unaryRules  = map[Op][]unaryRule{}
	binaryRules = map[Op][]binaryRule{}
	primalFns   []func(v any) (any, bool)
)

// RegisterUnary adds a handler for op, consulted when the operand is not a
// built-in number. Must be called during package initialization.
func RegisterUnary(op Op, match func(x any) bool, apply UnaryHandler) {
	unaryRules[op] = append(unaryRules[op], unaryRule{match, apply})
}

// RegisterBinary adds a handler for op, consulted when the operand pair has
// no built-in kernel. Must be called during package initialization.
func RegisterBinary(op Op, match func(a, b any) bool, apply BinaryHandler) {
	binaryRules[op] = append(binaryRules[op], binaryRule{match, apply})
}

// RegisterPrimal adds a projection used by the comparison operations:
// it maps a wrapped value to the ordinary value it stands for. Comparisons
// project both operands to fixed point before comparing numerically, which
// is what lets host control flow run undisturbed over wrapped values.
func RegisterPrimal(project func(v any) (any, bool)) {
	primalFns = append(primalFns, project)
}

// UnsupportedError reports an operand type with no kernel and no
// registered handler for an operation.
type UnsupportedError struct {
	Op   Op
	Type string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("arith: no rule for %q on operand type %s", e.Op, e.Type)
}

func dispatchUnary(op Op, x any) any {
	for _, r := range unaryRules[op] {
		if r.match(x) {
			return r.apply(x)
		}
	}
	panic(&UnsupportedError{Op: op, Type: fmt.Sprintf("%T", x)})
}

func dispatchBinary(op Op, a, b any) any {
	for _, r := range binaryRules[op] {
		if r.match(a, b) {
			return r.apply(a, b)
		}
	}
	offender := a
	if IsNumber(a) {
		offender = b
	}
	panic(&UnsupportedError{Op: op, Type: fmt.Sprintf("%T", offender)})
}
