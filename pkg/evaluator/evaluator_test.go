package evaluator_test

import (
	"strings"
	"testing"

	"github.com/lumenlisp/lumen/pkg/evaluator"
)

// addBuiltin is a minimal integer addition used to exercise builtin
// dispatch without pulling in the full builtin library.
func addBuiltin(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	var sum int64
	for _, c := range args.Cells {
		n, ok := c.(evaluator.Int)
		if !ok {
			return evaluator.Errorf("function '%s' type mismatch - expected numeric, received %s",
				sym, evaluator.TypeName(c))
		}
		sum += n.N
	}
	return evaluator.NewInt(sum)
}

func newTestEnv() *evaluator.Env {
	root := evaluator.NewRootEnv()
	root.Put("add", evaluator.NewBuiltin("add", addBuiltin))
	return root.Child()
}

func sexpr(cells ...evaluator.Value) *evaluator.SExpr {
	return evaluator.NewSExpr(cells)
}

func TestEvaluateSelfEvaluating(t *testing.T) {
	env := newTestEnv()

	values := []evaluator.Value{
		evaluator.NewInt(5),
		evaluator.NewDec(1.5),
		evaluator.NewBool(true),
		evaluator.NewStr("s"),
		evaluator.Errorf("boom"),
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("unbound")}),
	}
	for _, v := range values {
		got := evaluator.Evaluate(env, v)
		if !evaluator.Equal(got, v) {
			t.Errorf("Evaluate(%s) = %s, want unchanged", evaluator.Format(v), evaluator.Format(got))
		}
	}
}

func TestEvaluateSymbolLookup(t *testing.T) {
	env := newTestEnv()
	env.Put("x", evaluator.NewInt(10))

	got := evaluator.Evaluate(env, evaluator.NewSym("x"))
	if !evaluator.Equal(got, evaluator.NewInt(10)) {
		t.Errorf("got %s, want 10", evaluator.Format(got))
	}

	miss := evaluator.Evaluate(env, evaluator.NewSym("nope"))
	e, ok := miss.(evaluator.Err)
	if !ok || !strings.Contains(e.Msg, "unbound symbol 'nope'") {
		t.Errorf("got %s, want unbound symbol error", evaluator.Format(miss))
	}
}

func TestEvaluateEmptySExpr(t *testing.T) {
	env := newTestEnv()
	got := evaluator.Evaluate(env, sexpr())
	s, ok := got.(*evaluator.SExpr)
	if !ok || s.Len() != 0 {
		t.Errorf("got %s, want ()", evaluator.Format(got))
	}
}

func TestEvaluateSingletonUnwraps(t *testing.T) {
	env := newTestEnv()
	got := evaluator.Evaluate(env, sexpr(evaluator.NewInt(7)))
	if !evaluator.Equal(got, evaluator.NewInt(7)) {
		t.Errorf("got %s, want 7", evaluator.Format(got))
	}
}

func TestEvaluateBuiltinApplication(t *testing.T) {
	env := newTestEnv()
	got := evaluator.Evaluate(env, sexpr(evaluator.NewSym("add"), evaluator.NewInt(1), evaluator.NewInt(2)))
	if !evaluator.Equal(got, evaluator.NewInt(3)) {
		t.Errorf("got %s, want 3", evaluator.Format(got))
	}
}

func TestEvaluateNonFunctionHead(t *testing.T) {
	env := newTestEnv()
	got := evaluator.Evaluate(env, sexpr(evaluator.NewInt(1), evaluator.NewInt(2)))
	e, ok := got.(evaluator.Err)
	if !ok {
		t.Fatalf("got %s, want error", evaluator.Format(got))
	}
	if !strings.Contains(e.Msg, "s-expression does not start with function, 'Integer'") {
		t.Errorf("message = %q", e.Msg)
	}
}

func TestEvaluateErrorShortCircuits(t *testing.T) {
	env := newTestEnv()

	// The unbound symbol errors before 'add' could reject the boolean,
	// so the unbound message must win.
	got := evaluator.Evaluate(env, sexpr(
		evaluator.NewSym("add"),
		evaluator.NewSym("missing"),
		evaluator.NewBool(true),
	))
	e, ok := got.(evaluator.Err)
	if !ok {
		t.Fatalf("got %s, want error", evaluator.Format(got))
	}
	if !strings.Contains(e.Msg, "unbound symbol 'missing'") {
		t.Errorf("message = %q, want the first error in the sequence", e.Msg)
	}
}

func TestApplyLambda(t *testing.T) {
	env := newTestEnv()

	// (\ {x y} {add x y})
	lambda := evaluator.NewLambda(
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("x"), evaluator.NewSym("y")}),
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("add"), evaluator.NewSym("x"), evaluator.NewSym("y")}),
		env,
	)

	got := evaluator.Evaluate(env, sexpr(lambda, evaluator.NewInt(2), evaluator.NewInt(3)))
	if !evaluator.Equal(got, evaluator.NewInt(5)) {
		t.Errorf("got %s, want 5", evaluator.Format(got))
	}

	// A second application must see a fresh body.
	lambda2 := evaluator.NewLambda(
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("x"), evaluator.NewSym("y")}),
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("add"), evaluator.NewSym("x"), evaluator.NewSym("y")}),
		env,
	).(*evaluator.Lambda)
	for i := int64(0); i < 3; i++ {
		args := sexpr(evaluator.Copy(lambda2), evaluator.NewInt(i), evaluator.NewInt(i))
		got := evaluator.Evaluate(env, args)
		if !evaluator.Equal(got, evaluator.NewInt(2*i)) {
			t.Errorf("application %d: got %s, want %d", i, evaluator.Format(got), 2*i)
		}
	}
}

func TestApplyLambdaArityMismatch(t *testing.T) {
	env := newTestEnv()
	lambda := evaluator.NewLambda(
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("x"), evaluator.NewSym("y")}),
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("x")}),
		env,
	)

	got := evaluator.Evaluate(env, sexpr(lambda, evaluator.NewInt(1)))
	e, ok := got.(evaluator.Err)
	if !ok {
		t.Fatalf("got %s, want arity error", evaluator.Format(got))
	}
	if !strings.Contains(e.Msg, "expects 2 argument, received 1") {
		t.Errorf("message = %q", e.Msg)
	}
}

func TestCallScopeDiscardedAfterReturn(t *testing.T) {
	env := newTestEnv()

	// Calling (\ {x} {x}) binds x only inside the call scope.
	lambda := evaluator.NewLambda(
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("x")}),
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("x")}),
		env,
	)
	got := evaluator.Evaluate(env, sexpr(lambda, evaluator.NewInt(42)))
	if !evaluator.Equal(got, evaluator.NewInt(42)) {
		t.Fatalf("call result = %s, want 42", evaluator.Format(got))
	}

	after := env.Get("x")
	if !evaluator.IsErr(after) {
		t.Errorf("x is still observable after the call returned: %s", evaluator.Format(after))
	}
}

func TestOuterBindingVisibleFromNestedScope(t *testing.T) {
	env := newTestEnv()
	env.Put("outer", evaluator.NewInt(1))

	lambda := evaluator.NewLambda(
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("x")}),
		evaluator.NewQExpr([]evaluator.Value{evaluator.NewSym("add"), evaluator.NewSym("x"), evaluator.NewSym("outer")}),
		env,
	)
	got := evaluator.Evaluate(env, sexpr(lambda, evaluator.NewInt(2)))
	if !evaluator.Equal(got, evaluator.NewInt(3)) {
		t.Errorf("got %s, want 3 (outer binding visible from call scope)", evaluator.Format(got))
	}
}
