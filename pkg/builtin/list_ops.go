package builtin

import (
	"github.com/lumenlisp/lumen/pkg/evaluator"
)

// list retags the already-evaluated argument bundle as a q-expression.
func builtinList(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	return evaluator.NewQExpr(args.Cells)
}

// head returns a one-element q-expression holding the first element.
func builtinHead(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	q, err := oneNonEmptyQExpr(sym, args)
	if err != nil {
		return err
	}
	return evaluator.NewQExpr([]evaluator.Value{q.Pop()})
}

// tail returns the elements remaining after dropping the first.
func builtinTail(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	q, err := oneNonEmptyQExpr(sym, args)
	if err != nil {
		return err
	}
	q.Pop()
	return q
}

// init returns all elements except the last.
func builtinInit(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	q, err := oneNonEmptyQExpr(sym, args)
	if err != nil {
		return err
	}
	q.Cells = q.Cells[:q.Len()-1]
	return q
}

// eval retags a q-expression as an s-expression and evaluates it,
// treating data as code.
func builtinEval(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 1); err != nil {
		return err
	}
	if err := wantArgType(sym, args, 0, "Q-Expression"); err != nil {
		return err
	}
	q := args.Pop().(*evaluator.QExpr)
	return evaluator.Evaluate(env, evaluator.NewSExpr(q.Cells))
}

// join concatenates q-expressions in argument order.
func builtinJoin(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	for i := range args.Cells {
		if err := wantArgType(sym, args, i, "Q-Expression"); err != nil {
			return err
		}
	}
	if args.Len() == 0 {
		return evaluator.NewQExpr(nil)
	}

	out := args.Pop().(*evaluator.QExpr)
	for args.Len() > 0 {
		next := args.Pop().(*evaluator.QExpr)
		out.Cells = append(out.Cells, next.Cells...)
	}
	return out
}

// len returns the element count of a q-expression as an integer.
func builtinLen(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 1); err != nil {
		return err
	}
	if err := wantArgType(sym, args, 0, "Q-Expression"); err != nil {
		return err
	}
	q := args.Cells[0].(*evaluator.QExpr)
	return evaluator.NewInt(int64(q.Len()))
}

// cons prepends a scalar or function value to a q-expression.
func builtinCons(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 2); err != nil {
		return err
	}
	if !consable(args.Cells[0]) {
		return evaluator.Errorf("first '%s' parameter should be a value or a function", sym)
	}
	if _, ok := args.Cells[1].(*evaluator.QExpr); !ok {
		return evaluator.Errorf("second '%s' parameter should be a q-expression", sym)
	}

	head := args.Pop()
	rest := args.Pop().(*evaluator.QExpr)
	cells := make([]evaluator.Value, 0, rest.Len()+1)
	cells = append(cells, head)
	cells = append(cells, rest.Cells...)
	return evaluator.NewQExpr(cells)
}

func consable(v evaluator.Value) bool {
	switch v.(type) {
	case evaluator.Int, evaluator.Dec, evaluator.Bool, evaluator.Str,
		evaluator.Builtin, *evaluator.Lambda:
		return true
	}
	return false
}

// oneNonEmptyQExpr validates the single-argument list destructors:
// exactly one argument, a q-expression, not empty. The q-expression is
// handed to the caller with ownership.
func oneNonEmptyQExpr(sym string, args *evaluator.SExpr) (*evaluator.QExpr, evaluator.Value) {
	if err := wantArgCount(sym, args, 1); err != nil {
		return nil, err
	}
	if err := wantArgType(sym, args, 0, "Q-Expression"); err != nil {
		return nil, err
	}
	q := args.Cells[0].(*evaluator.QExpr)
	if q.Len() == 0 {
		return nil, evaluator.Errorf("empty q-expression passed to '%s'", sym)
	}
	args.Pop()
	return q, nil
}
