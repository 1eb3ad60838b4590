package builtin_test

import (
	"strings"
	"testing"

	"github.com/lumenlisp/lumen/pkg/builtin"
	"github.com/lumenlisp/lumen/pkg/evaluator"
	"github.com/lumenlisp/lumen/pkg/parser"
)

// newEnv builds a child of a builtin-populated read-only root, the
// shape every program evaluates in.
func newEnv(t *testing.T) *evaluator.Env {
	t.Helper()
	root := evaluator.NewRootEnv()
	builtin.Register(root)
	return root.Child()
}

// evalIn parses source and evaluates its forms against env, returning
// the last result.
func evalIn(t *testing.T, env *evaluator.Env, src string) evaluator.Value {
	t.Helper()
	forms, err := parser.Parse(src, "test.lmn")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var last evaluator.Value = evaluator.NewSExpr(nil)
	for _, form := range forms {
		last = evaluator.Evaluate(env, form)
	}
	return last
}

// eval evaluates source in a fresh environment.
func eval(t *testing.T, src string) evaluator.Value {
	t.Helper()
	return evalIn(t, newEnv(t), src)
}

func expectInt(t *testing.T, v evaluator.Value, want int64) {
	t.Helper()
	n, ok := v.(evaluator.Int)
	if !ok {
		t.Fatalf("expected Integer, got %s (%T)", evaluator.Format(v), v)
	}
	if n.N != want {
		t.Errorf("got %d, want %d", n.N, want)
	}
}

func expectDec(t *testing.T, v evaluator.Value, want float64) {
	t.Helper()
	d, ok := v.(evaluator.Dec)
	if !ok {
		t.Fatalf("expected Decimal, got %s (%T)", evaluator.Format(v), v)
	}
	if d.F != want {
		t.Errorf("got %v, want %v", d.F, want)
	}
}

func expectBool(t *testing.T, v evaluator.Value, want bool) {
	t.Helper()
	b, ok := v.(evaluator.Bool)
	if !ok {
		t.Fatalf("expected Boolean, got %s (%T)", evaluator.Format(v), v)
	}
	if b.B != want {
		t.Errorf("got %v, want %v", b.B, want)
	}
}

func expectErrContains(t *testing.T, v evaluator.Value, want string) {
	t.Helper()
	e, ok := v.(evaluator.Err)
	if !ok {
		t.Fatalf("expected Error, got %s (%T)", evaluator.Format(v), v)
	}
	if !strings.Contains(e.Msg, want) {
		t.Errorf("error %q does not mention %q", e.Msg, want)
	}
}

func expectEqual(t *testing.T, got, want evaluator.Value) {
	t.Helper()
	if !evaluator.Equal(got, want) {
		t.Errorf("got %s, want %s", evaluator.Format(got), evaluator.Format(want))
	}
}
