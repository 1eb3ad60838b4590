package evaluator

import "sort"

// Env is a scoped environment for symbol bindings. It supports
// parent-chained lookup for lexical scoping. The root environment is
// read-only: once a symbol is bound there it cannot be rebound.
type Env struct {
	parent   *Env
	table    map[string]Value
	readOnly bool
}

// NewEnv creates a new environment with an optional parent scope.
func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		table:  make(map[string]Value),
	}
}

// NewRootEnv creates a read-only environment with no parent. Bindings
// can be inserted once (builtin registration) but never overwritten.
func NewRootEnv() *Env {
	e := NewEnv(nil)
	e.readOnly = true
	return e
}

// Child creates a new child scope whose parent is this environment.
func (e *Env) Child() *Env {
	return NewEnv(e)
}

// Get looks up a symbol by name, traversing parent scopes. A
// successful lookup returns a copy of the bound value, never the
// stored value itself. A miss at the root yields an error value.
func (e *Env) Get(name string) Value {
	if v, ok := e.table[name]; ok {
		return Copy(v)
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Errorf("unbound symbol '%s'", name)
}

// Put binds a copy of v under name in this scope. If the scope is
// read-only and the name already bound, the binding is rejected and
// Put reports true; the table is left untouched. Non-read-only scopes
// accept overwrites unconditionally.
func (e *Env) Put(name string, v Value) bool {
	if e.readOnly {
		if _, exists := e.table[name]; exists {
			return true
		}
	}
	e.table[name] = Copy(v)
	return false
}

// Protected reports whether name is bound in a read-only scope
// anywhere on the chain starting at e.
func (e *Env) Protected(name string) bool {
	for env := e; env != nil; env = env.parent {
		if env.readOnly {
			if _, ok := env.table[name]; ok {
				return true
			}
		}
	}
	return false
}

// Copy produces an independent environment with the same parent link,
// the same read-only flag, and deep copies of every binding.
func (e *Env) Copy() *Env {
	out := &Env{
		parent:   e.parent,
		table:    make(map[string]Value, len(e.table)),
		readOnly: e.readOnly,
	}
	for name, v := range e.table {
		out.table[name] = Copy(v)
	}
	return out
}

// ToValue converts the environment's own table (parents excluded) to
// a q-expression of {name value} pairs, sorted by name.
func (e *Env) ToValue() *QExpr {
	names := make([]string, 0, len(e.table))
	for name := range e.table {
		names = append(names, name)
	}
	sort.Strings(names)

	out := NewQExpr(make([]Value, 0, len(names)))
	for _, name := range names {
		pair := NewQExpr([]Value{NewStr(name), Copy(e.table[name])})
		out.Push(pair)
	}
	return out
}
