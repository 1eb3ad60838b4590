package builtin

import (
	"math"

	"github.com/lumenlisp/lumen/pkg/evaluator"
)

// numOp pairs the integer and decimal behavior of one operator. When
// both operands are integers the integer form runs; if either operand
// is a decimal both are promoted and the decimal form runs. Division
// has no integer form: it always produces a decimal so truncation
// never happens silently.
type numOp struct {
	onInt func(x, y int64) evaluator.Value
	onDec func(x, y float64) evaluator.Value
}

var numOps = map[string]numOp{
	"+": {
		onInt: func(x, y int64) evaluator.Value { return evaluator.NewInt(x + y) },
		onDec: func(x, y float64) evaluator.Value { return evaluator.NewDec(x + y) },
	},
	"-": {
		onInt: func(x, y int64) evaluator.Value { return evaluator.NewInt(x - y) },
		onDec: func(x, y float64) evaluator.Value { return evaluator.NewDec(x - y) },
	},
	"*": {
		onInt: func(x, y int64) evaluator.Value { return evaluator.NewInt(x * y) },
		onDec: func(x, y float64) evaluator.Value { return evaluator.NewDec(x * y) },
	},
	"/": {
		onDec: func(x, y float64) evaluator.Value {
			if y == 0 {
				return evaluator.Errorf("divide by zero")
			}
			return evaluator.NewDec(x / y)
		},
	},
	"^": {
		onInt: func(x, y int64) evaluator.Value {
			return evaluator.NewInt(int64(math.Pow(float64(x), float64(y))))
		},
		onDec: func(x, y float64) evaluator.Value { return evaluator.NewDec(math.Pow(x, y)) },
	},
	"%": {
		onInt: func(x, y int64) evaluator.Value {
			if y == 0 {
				return evaluator.Errorf("divide by zero")
			}
			return evaluator.NewInt(x % y)
		},
		onDec: func(x, y float64) evaluator.Value {
			if y == 0 {
				return evaluator.Errorf("divide by zero")
			}
			return evaluator.NewDec(math.Mod(x, y))
		},
	},
	"max": {
		onInt: func(x, y int64) evaluator.Value { return evaluator.NewInt(max(x, y)) },
		onDec: func(x, y float64) evaluator.Value { return evaluator.NewDec(math.Max(x, y)) },
	},
	"min": {
		onInt: func(x, y int64) evaluator.Value { return evaluator.NewInt(min(x, y)) },
		onDec: func(x, y float64) evaluator.Value { return evaluator.NewDec(math.Min(x, y)) },
	},
}

// builtinArith is the shared entry point for every arithmetic
// operator. The whole bundle is validated as numeric before any
// computation begins, then folded left-to-right. A lone operand under
// subtraction is negated (unary-minus convention).
func builtinArith(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	for _, c := range args.Cells {
		if !isNumeric(c) {
			return evaluator.Errorf("function '%s' type mismatch - expected numeric, received %s",
				sym, evaluator.TypeName(c))
		}
	}
	if args.Len() == 0 {
		return evaluator.Errorf("function '%s' expects at least 1 argument, received 0", sym)
	}

	x := args.Pop()
	if args.Len() == 0 && sym == "-" {
		switch v := x.(type) {
		case evaluator.Int:
			return evaluator.NewInt(-v.N)
		case evaluator.Dec:
			return evaluator.NewDec(-v.F)
		}
	}

	op := numOps[sym]
	for args.Len() > 0 {
		y := args.Pop()
		x = applyNumOp(op, x, y)
		if evaluator.IsErr(x) {
			return x
		}
	}
	return x
}

func applyNumOp(op numOp, x, y evaluator.Value) evaluator.Value {
	xi, xIsInt := x.(evaluator.Int)
	yi, yIsInt := y.(evaluator.Int)
	if xIsInt && yIsInt && op.onInt != nil {
		return op.onInt(xi.N, yi.N)
	}
	return op.onDec(asDec(x), asDec(y))
}

// builtinCompare implements the ordering operators. Comparison always
// happens in floating point regardless of operand kinds and yields a
// boolean.
func builtinCompare(env *evaluator.Env, sym string, args *evaluator.SExpr) evaluator.Value {
	if err := wantArgCount(sym, args, 2); err != nil {
		return err
	}
	for _, c := range args.Cells {
		if !isNumeric(c) {
			return evaluator.Errorf("function '%s' type mismatch - expected numeric, received %s",
				sym, evaluator.TypeName(c))
		}
	}

	x, y := asDec(args.Cells[0]), asDec(args.Cells[1])
	switch sym {
	case ">":
		return evaluator.NewBool(x > y)
	case "<":
		return evaluator.NewBool(x < y)
	case ">=":
		return evaluator.NewBool(x >= y)
	default:
		return evaluator.NewBool(x <= y)
	}
}

func isNumeric(v evaluator.Value) bool {
	switch v.(type) {
	case evaluator.Int, evaluator.Dec:
		return true
	}
	return false
}

func asDec(v evaluator.Value) float64 {
	switch n := v.(type) {
	case evaluator.Int:
		return float64(n.N)
	case evaluator.Dec:
		return n.F
	}
	return 0
}
