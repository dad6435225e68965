package arith

import "fmt"

// primalOf projects v through registered primal projections until it
// reaches a plain number (or an unprojectable value).
func primalOf(v any) any {
	for {
		projected := false
		for _, project := range primalFns {
			if p, ok := project(v); ok {
				v = p
				projected = true
				break
			}
		}
		if !projected {
			return v
		}
	}
}

func comparePrimals(op Op, a, b any) (float64, float64) {
	pa, pb := primalOf(a), primalOf(b)
	fa, okA := Float(pa)
	if !okA {
		panic(&UnsupportedError{Op: op, Type: fmt.Sprintf("%T", pa)})
	}
	fb, okB := Float(pb)
	if !okB {
		panic(&UnsupportedError{Op: op, Type: fmt.Sprintf("%T", pb)})
	}
	return fa, fb
}

// Less compares the primal parts of a and b. Comparisons deliberately
// ignore all perturbation structure so that conditionals and loop guards
// in differentiated code behave exactly as they do on plain numbers.
func Less(a, b any) bool {
	fa, fb := comparePrimals("less", a, b)
	return fa < fb
}

// LessEq compares the primal parts of a and b.
func LessEq(a, b any) bool {
	fa, fb := comparePrimals("less-eq", a, b)
	return fa <= fb
}

// Greater compares the primal parts of a and b.
func Greater(a, b any) bool {
	fa, fb := comparePrimals("greater", a, b)
	return fa > fb
}

// GreaterEq compares the primal parts of a and b.
func GreaterEq(a, b any) bool {
	fa, fb := comparePrimals("greater-eq", a, b)
	return fa >= fb
}

// NumEq reports numeric equality of the primal parts of a and b. For a
// structural equality that sees perturbation terms, use diff.StrictEqual.
func NumEq(a, b any) bool {
	fa, fb := comparePrimals("num-eq", a, b)
	return fa == fb
}
