// Package builtin provides the native operation set registered into
// the root environment.
package builtin

import (
	"github.com/lumenlisp/lumen/pkg/evaluator"
)

// Register installs all builtin operations into env. The target is
// normally the read-only root environment; insertion of a fresh name
// is permitted there, only rebinding is rejected.
func Register(env *evaluator.Env) {
	// Arithmetic
	register(env, "+", builtinArith)
	register(env, "-", builtinArith)
	register(env, "*", builtinArith)
	register(env, "/", builtinArith)
	register(env, "^", builtinArith)
	register(env, "%", builtinArith)
	register(env, "max", builtinArith)
	register(env, "min", builtinArith)

	// Comparison
	register(env, ">", builtinCompare)
	register(env, "<", builtinCompare)
	register(env, ">=", builtinCompare)
	register(env, "<=", builtinCompare)

	// Lists
	register(env, "list", builtinList)
	register(env, "head", builtinHead)
	register(env, "tail", builtinTail)
	register(env, "init", builtinInit)
	register(env, "eval", builtinEval)
	register(env, "join", builtinJoin)
	register(env, "len", builtinLen)
	register(env, "cons", builtinCons)

	// Binding, functions, control
	register(env, "def", builtinDef)
	register(env, "\\", builtinLambda)
	register(env, "if", builtinIf)
	register(env, "==", builtinEq)
	register(env, "!=", builtinNeq)
	register(env, "env", builtinEnv)
}

func register(env *evaluator.Env, name string, fn evaluator.BuiltinFn) {
	env.Put(name, evaluator.NewBuiltin(name, fn))
}

// Argument validation helpers. Each returns nil when the check passes
// and an error value otherwise; callers return the error untouched so
// no partial work is done on failure.

func wantArgCount(sym string, args *evaluator.SExpr, want int) evaluator.Value {
	if args.Len() != want {
		return evaluator.Errorf("function '%s' expects %d argument, received %d",
			sym, want, args.Len())
	}
	return nil
}

func wantArgType(sym string, args *evaluator.SExpr, idx int, want string) evaluator.Value {
	if got := evaluator.TypeName(args.Cells[idx]); got != want {
		return evaluator.Errorf("function '%s' type mismatch - expected %s, received %s",
			sym, want, got)
	}
	return nil
}
