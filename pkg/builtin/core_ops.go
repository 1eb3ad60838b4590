package builtin

import (
	"github.com/lumenlisp/lumen/pkg/evaluator"
)

// def binds symbols in the current environment. The first argument is
// a q-expression of symbols; each following argument is the value for
// the corresponding symbol. Binding is transactional: every name is
// validated, including protection of names bound in a read-only scope,
// before any binding happens, so a rejection leaves the environment
// untouched.
func builtinDef(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if args.Len() == 0 {
		return evaluator.Errorf("function '%s' expects a q-expression of symbols", sym)
	}
	if err := wantArgType(sym, args, 0, "Q-Expression"); err != nil {
		return err
	}

	syms := args.Cells[0].(*evaluator.QExpr)
	for _, cell := range syms.Cells {
		if _, ok := cell.(evaluator.Sym); !ok {
			return evaluator.Errorf("function '%s' type mismatch - expected Symbol, received %s",
				sym, evaluator.TypeName(cell))
		}
	}
	if syms.Len() != args.Len()-1 {
		return evaluator.Errorf("function '%s' argument mismatch - %d symbols, %d values",
			sym, syms.Len(), args.Len()-1)
	}
	for _, cell := range syms.Cells {
		name := cell.(evaluator.Sym).Name
		if env.Protected(name) {
			return evaluator.Errorf("function '%s' is a built-in", name)
		}
	}

	for i, cell := range syms.Cells {
		env.Put(cell.(evaluator.Sym).Name, args.Cells[i+1])
	}
	return evaluator.NewSExpr(nil)
}

// \ constructs a user function closing over the current environment.
// Both arguments are q-expressions: the formal parameter symbols and
// the unevaluated body.
func builtinLambda(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 2); err != nil {
		return err
	}
	if err := wantArgType(sym, args, 0, "Q-Expression"); err != nil {
		return err
	}
	if err := wantArgType(sym, args, 1, "Q-Expression"); err != nil {
		return err
	}

	formals := args.Cells[0].(*evaluator.QExpr)
	for _, cell := range formals.Cells {
		if _, ok := cell.(evaluator.Sym); !ok {
			return evaluator.Errorf("function '%s' type mismatch - expected Symbol, received %s",
				sym, evaluator.TypeName(cell))
		}
	}

	body := args.Cells[1].(*evaluator.QExpr)
	return evaluator.NewLambda(formals, body, env)
}

// if evaluates exactly one of two q-expression branches depending on
// a boolean condition.
func builtinIf(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 3); err != nil {
		return err
	}
	if err := wantArgType(sym, args, 0, "Boolean"); err != nil {
		return err
	}
	if err := wantArgType(sym, args, 1, "Q-Expression"); err != nil {
		return err
	}
	if err := wantArgType(sym, args, 2, "Q-Expression"); err != nil {
		return err
	}

	cond := args.Cells[0].(evaluator.Bool)
	branch := args.Cells[1].(*evaluator.QExpr)
	if !cond.B {
		branch = args.Cells[2].(*evaluator.QExpr)
	}
	return evaluator.Evaluate(env, evaluator.NewSExpr(branch.Cells))
}

// == compares any two values structurally.
func builtinEq(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 2); err != nil {
		return err
	}
	return evaluator.NewBool(evaluator.Equal(args.Cells[0], args.Cells[1]))
}

// != is the negation of ==.
func builtinNeq(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 2); err != nil {
		return err
	}
	return evaluator.NewBool(!evaluator.Equal(args.Cells[0], args.Cells[1]))
}

// env renders the current scope's table as a q-expression of
// {name value} pairs, for introspection.
func builtinEnv(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 0); err != nil {
		return err
	}
	return env.ToValue()
}
