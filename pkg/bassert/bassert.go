package bassert

import (
	"cmp"

	"github.com/randalmurphal/bassert/pkg/bassert/expr"
)

// That checks a plain boolean condition. On failure the diagnostic
// names the condition's source text; no operand values are available
// for an already-evaluated boolean.
func That(cond bool, msgAndArgs ...any) {
	if cond {
		return
	}
	failBoolean("That", msgAndArgs)
}

// Eq checks lhs == rhs.
func Eq[T comparable](lhs, rhs T, msgAndArgs ...any) {
	if lhs == rhs {
		return
	}
	failComparison("Eq", expr.Eq, lhs, rhs, msgAndArgs)
}

// Ne checks lhs != rhs.
func Ne[T comparable](lhs, rhs T, msgAndArgs ...any) {
	if lhs != rhs {
		return
	}
	failComparison("Ne", expr.Ne, lhs, rhs, msgAndArgs)
}

// Gt checks lhs > rhs.
func Gt[T cmp.Ordered](lhs, rhs T, msgAndArgs ...any) {
	if lhs > rhs {
		return
	}
	failComparison("Gt", expr.Gt, lhs, rhs, msgAndArgs)
}

// Ge checks lhs >= rhs.
func Ge[T cmp.Ordered](lhs, rhs T, msgAndArgs ...any) {
	if lhs >= rhs {
		return
	}
	failComparison("Ge", expr.Ge, lhs, rhs, msgAndArgs)
}

// Lt checks lhs < rhs.
func Lt[T cmp.Ordered](lhs, rhs T, msgAndArgs ...any) {
	if lhs < rhs {
		return
	}
	failComparison("Lt", expr.Lt, lhs, rhs, msgAndArgs)
}

// Le checks lhs <= rhs.
func Le[T cmp.Ordered](lhs, rhs T, msgAndArgs ...any) {
	if lhs <= rhs {
		return
	}
	failComparison("Le", expr.Le, lhs, rhs, msgAndArgs)
}

// Is checks that the dynamic type of rhs matches the pattern type P.
// P may be a concrete type or an interface. The check depends only on
// the type assertion, never on equality of the value, and the
// diagnostic shows the pattern's source text on the left:
//
//	assertion failed: `*os.PathError = err`
//	err: `<value>`
func Is[P any](rhs any, msgAndArgs ...any) {
	if _, ok := rhs.(P); ok {
		return
	}
	failMatch[P]("Is", rhs, msgAndArgs)
}
