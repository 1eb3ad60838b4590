package evaluator

// Evaluate reduces a value against an environment. Symbols resolve to
// their binding, s-expressions reduce by evaluating their children and
// applying the head function, and every other value evaluates to
// itself (q-expressions stay inert until explicitly retagged).
//
// Evaluation is a synchronous recursive tree walk: recursion depth
// equals expression nesting depth, and deeply nested programs exhaust
// the Go call stack. That is a documented resource limit, not a
// handled failure mode.
func Evaluate(env *Env, v Value) Value {
	switch val := v.(type) {
	case Sym:
		return env.Get(val.Name)
	case *SExpr:
		return evalSExpr(env, val)
	default:
		return v
	}
}

func evalSExpr(env *Env, s *SExpr) Value {
	// Evaluate children left-to-right in place, stopping at the
	// first error; the rest of the sequence is discarded.
	for i := range s.Cells {
		c := Evaluate(env, s.Cells[i])
		if IsErr(c) {
			return c
		}
		s.Cells[i] = c
	}

	if s.Len() == 0 {
		return s
	}
	if s.Len() == 1 {
		return s.Pop()
	}

	head := s.Pop()
	switch fn := head.(type) {
	case Builtin:
		return fn.Fn(env, fn.Name, s)
	case *Lambda:
		return applyLambda(fn, s)
	default:
		return Errorf("s-expression does not start with function, '%s'", TypeName(head))
	}
}

// applyLambda binds the argument bundle positionally into a fresh
// child of the captured scope and evaluates the body there as an
// s-expression. Arity is exact; there is no partial application.
func applyLambda(fn *Lambda, args *SExpr) Value {
	if args.Len() != fn.Formals.Len() {
		return Errorf("function expects %d argument, received %d",
			fn.Formals.Len(), args.Len())
	}

	scope := fn.Scope.Child()
	for i, formal := range fn.Formals.Cells {
		sym, ok := formal.(Sym)
		if !ok {
			return Errorf("function formal is not a symbol, '%s'", TypeName(formal))
		}
		scope.Put(sym.Name, args.Cells[i])
	}

	// The body is copied per call: evaluation mutates the sequence in
	// place and the closure may be applied again.
	body := Copy(fn.Body).(*QExpr)
	return evalSExpr(scope, NewSExpr(body.Cells))
}
