// Package evaluator implements the Lumen runtime: the tagged value
// model, lexically scoped environments, and the tree-walking evaluator.
package evaluator

import "fmt"

// Value is the interface for all Lumen runtime values.
// Use the sealed marker method to restrict implementations to this package.
type Value interface {
	value() // sealed marker
}

// Int is a signed 64-bit integer value.
type Int struct {
	N int64
}

func (Int) value() {}

// Dec is a 64-bit floating point value.
type Dec struct {
	F float64
}

func (Dec) value() {}

// Bool is a boolean value.
type Bool struct {
	B bool
}

func (Bool) value() {}

// Str is a string literal value.
type Str struct {
	S string
}

func (Str) value() {}

// Sym names a binding in an environment.
type Sym struct {
	Name string
}

func (Sym) value() {}

// Err is a first-class error value. Errors propagate as ordinary
// values; there is no exception mechanism.
type Err struct {
	Msg string
}

func (Err) value() {}

// SExpr is an ordered sequence of values pending evaluation.
type SExpr struct {
	Cells []Value
}

func (*SExpr) value() {}

// QExpr is an ordered sequence of values treated as literal data.
// It carries the same payload as SExpr and differs only in tag;
// retagging between the two is cheap and shares the cells.
type QExpr struct {
	Cells []Value
}

func (*QExpr) value() {}

// BuiltinFn is the signature of a native operation. It receives the
// environment of the call site, the name the operation was registered
// under, and the already-evaluated argument bundle, which it owns.
type BuiltinFn func(env *Env, sym string, args *SExpr) Value

// Builtin is a native operation registered into the root environment.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (Builtin) value() {}

// Lambda is a user-defined function: formal parameter symbols, an
// unevaluated body, and the environment captured at definition time.
// The captured scope is shared; it stays alive as long as any closure
// references it.
type Lambda struct {
	Formals *QExpr
	Body    *QExpr
	Scope   *Env
}

func (*Lambda) value() {}

// NewInt creates an integer value.
func NewInt(n int64) Value {
	return Int{N: n}
}

// NewDec creates a decimal value.
func NewDec(f float64) Value {
	return Dec{F: f}
}

// NewBool creates a boolean value.
func NewBool(b bool) Value {
	return Bool{B: b}
}

// NewStr creates a string value.
func NewStr(s string) Value {
	return Str{S: s}
}

// NewSym creates a symbol value.
func NewSym(name string) Value {
	return Sym{Name: name}
}

// NewSExpr creates an s-expression from the given cells.
func NewSExpr(cells []Value) *SExpr {
	return &SExpr{Cells: cells}
}

// NewQExpr creates a q-expression from the given cells.
func NewQExpr(cells []Value) *QExpr {
	return &QExpr{Cells: cells}
}

// NewBuiltin creates a builtin function value.
func NewBuiltin(name string, fn BuiltinFn) Value {
	return Builtin{Name: name, Fn: fn}
}

// NewLambda creates a user function closing over scope.
func NewLambda(formals, body *QExpr, scope *Env) Value {
	return &Lambda{Formals: formals, Body: body, Scope: scope}
}

// maxErrorLen caps rendered error messages. Longer messages are
// truncated, never rejected.
const maxErrorLen = 511

// Errorf creates an error value from a format template and arguments.
func Errorf(format string, args ...any) Value {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxErrorLen {
		msg = msg[:maxErrorLen]
	}
	return Err{Msg: msg}
}

// IsErr reports whether v is an error value.
func IsErr(v Value) bool {
	_, ok := v.(Err)
	return ok
}

// TypeName returns the user-facing type name for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Int:
		return "Integer"
	case Dec:
		return "Decimal"
	case Bool:
		return "Boolean"
	case Str:
		return "String"
	case Sym:
		return "Symbol"
	case Err:
		return "Error"
	case *SExpr:
		return "S-Expression"
	case *QExpr:
		return "Q-Expression"
	case Builtin, *Lambda:
		return "Function"
	default:
		return "Unknown"
	}
}

// Len returns the number of cells.
func (s *SExpr) Len() int { return len(s.Cells) }

// Len returns the number of cells.
func (q *QExpr) Len() int { return len(q.Cells) }

// Pop removes and returns the first cell, transferring its ownership
// to the caller. The remaining cells stay intact and ordered.
func (s *SExpr) Pop() Value {
	v := s.Cells[0]
	s.Cells = s.Cells[1:]
	return v
}

// Pop removes and returns the first cell, transferring its ownership
// to the caller. The remaining cells stay intact and ordered.
func (q *QExpr) Pop() Value {
	v := q.Cells[0]
	q.Cells = q.Cells[1:]
	return v
}

// Push appends a cell, taking ownership of it.
func (q *QExpr) Push(v Value) {
	q.Cells = append(q.Cells, v)
}

// Copy returns a deep copy of v. Composite values copy their cell
// sequences element by element; a Lambda copy also deep-copies its
// captured environment so the copy is independent of the original.
// Scalars and builtins are immutable and returned as-is.
func Copy(v Value) Value {
	switch val := v.(type) {
	case *SExpr:
		return &SExpr{Cells: copyCells(val.Cells)}
	case *QExpr:
		return &QExpr{Cells: copyCells(val.Cells)}
	case *Lambda:
		return &Lambda{
			Formals: Copy(val.Formals).(*QExpr),
			Body:    Copy(val.Body).(*QExpr),
			Scope:   val.Scope.Copy(),
		}
	default:
		return v
	}
}

func copyCells(cells []Value) []Value {
	out := make([]Value, len(cells))
	for i, c := range cells {
		out[i] = Copy(c)
	}
	return out
}

// Equal reports structural equality of two values. Integers and
// decimals compare equal when numerically equal. Builtins compare
// equal by the identity of the registered operation. Lambdas compare
// by formals and body, ignoring the captured environment.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		switch bv := b.(type) {
		case Int:
			return av.N == bv.N
		case Dec:
			return float64(av.N) == bv.F
		}
		return false
	case Dec:
		switch bv := b.(type) {
		case Dec:
			return av.F == bv.F
		case Int:
			return av.F == float64(bv.N)
		}
		return false
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.B == bv.B
	case Str:
		bv, ok := b.(Str)
		return ok && av.S == bv.S
	case Sym:
		bv, ok := b.(Sym)
		return ok && av.Name == bv.Name
	case Err:
		bv, ok := b.(Err)
		return ok && av.Msg == bv.Msg
	case Builtin:
		// Registration keys builtins by name one-to-one, so name
		// identity is operation identity.
		bv, ok := b.(Builtin)
		return ok && av.Name == bv.Name
	case *Lambda:
		bv, ok := b.(*Lambda)
		return ok && Equal(av.Formals, bv.Formals) && Equal(av.Body, bv.Body)
	case *SExpr:
		bv, ok := b.(*SExpr)
		return ok && equalCells(av.Cells, bv.Cells)
	case *QExpr:
		bv, ok := b.(*QExpr)
		return ok && equalCells(av.Cells, bv.Cells)
	}
	return false
}

func equalCells(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
