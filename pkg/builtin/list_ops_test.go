package builtin_test

import (
	"testing"

	"github.com/lumenlisp/lumen/pkg/evaluator"
)

func TestListBuildsQExpr(t *testing.T) {
	expectEqual(t, eval(t, "(list 1 2 3)"), eval(t, "{1 2 3}"))
	expectEqual(t, eval(t, "(list)"), eval(t, "{}"))

	// Arguments are evaluated before being quoted.
	expectEqual(t, eval(t, "(list (+ 1 2) 4)"), eval(t, "{3 4}"))
}

func TestHead(t *testing.T) {
	expectEqual(t, eval(t, "(head {1 2 3})"), eval(t, "{1}"))
	expectEqual(t, eval(t, "(head {{a b} c})"), eval(t, "{{a b}}"))
}

func TestTail(t *testing.T) {
	expectEqual(t, eval(t, "(tail {1 2 3})"), eval(t, "{2 3}"))
	expectEqual(t, eval(t, "(tail {1})"), eval(t, "{}"))
}

func TestInit(t *testing.T) {
	expectEqual(t, eval(t, "(init {1 2 3})"), eval(t, "{1 2}"))
	expectEqual(t, eval(t, "(init {1})"), eval(t, "{}"))
}

func TestDestructorsRejectEmpty(t *testing.T) {
	expectErrContains(t, eval(t, "(head {})"), "empty q-expression passed to 'head'")
	expectErrContains(t, eval(t, "(tail {})"), "empty q-expression passed to 'tail'")
	expectErrContains(t, eval(t, "(init {})"), "empty q-expression passed to 'init'")
}

func TestDestructorsRejectNonQExpr(t *testing.T) {
	expectErrContains(t, eval(t, "(head 1)"),
		"type mismatch - expected Q-Expression, received Integer")
	expectErrContains(t, eval(t, "(tail 1 2)"), "expects 1 argument, received 2")
}

func TestEvalDataAsCode(t *testing.T) {
	expectInt(t, eval(t, "(eval {+ 1 2})"), 3)
	expectInt(t, eval(t, "(eval (head {5 10 11}))"), 5)
	expectEqual(t, eval(t, "(eval {})"), evaluator.NewSExpr(nil))
}

func TestJoin(t *testing.T) {
	expectEqual(t, eval(t, "(join {1 2} {3} {} {4})"), eval(t, "{1 2 3 4}"))
	expectEqual(t, eval(t, "(join {a})"), eval(t, "{a}"))
	expectErrContains(t, eval(t, "(join {1} 2)"),
		"type mismatch - expected Q-Expression, received Integer")
}

func TestLen(t *testing.T) {
	expectInt(t, eval(t, "(len {})"), 0)
	expectInt(t, eval(t, "(len {1 2 3})"), 3)
	expectErrContains(t, eval(t, "(len 5)"),
		"type mismatch - expected Q-Expression, received Integer")
}

func TestCons(t *testing.T) {
	expectEqual(t, eval(t, "(cons 1 {2 3})"), eval(t, "{1 2 3}"))
	expectEqual(t, eval(t, "(cons 1 {})"), eval(t, "{1}"))
	expectEqual(t, eval(t, `(cons "x" {1})`), eval(t, `{"x" 1}`))
}

func TestConsValidation(t *testing.T) {
	expectErrContains(t, eval(t, "(cons {1} {2})"),
		"first 'cons' parameter should be a value or a function")
	expectErrContains(t, eval(t, "(cons 1 2)"),
		"second 'cons' parameter should be a q-expression")
	expectErrContains(t, eval(t, "(cons 1)"), "expects 2 argument, received 1")
}

func TestListAlgebra(t *testing.T) {
	// Destructuring and rebuilding a list round-trips.
	expectEqual(t,
		eval(t, "(join (head {1 2 3}) (tail {1 2 3}))"),
		eval(t, "{1 2 3}"))
	expectEqual(t,
		eval(t, "(cons (eval (head {1 2 3})) (tail {1 2 3}))"),
		eval(t, "{1 2 3}"))
}
