// Package runtime wires together the Lumen components: it builds the
// read-only root environment, registers the builtin operation set,
// bootstraps the standard library and exposes the evaluation entry
// point used by the CLI.
package runtime

import (
	_ "embed" // Blank import required by embed.
	"fmt"

	"github.com/lumenlisp/lumen/pkg/builtin"
	"github.com/lumenlisp/lumen/pkg/evaluator"
	"github.com/lumenlisp/lumen/pkg/parser"
)

// Version is the interpreter version reported by the CLI.
const Version = "0.1.0"

//go:embed stdlib.lmn
var stdlibSource string

// Runtime holds the scope that top-level user expressions evaluate in:
// a child of the read-only root, populated by the standard library.
type Runtime struct {
	env *evaluator.Env
}

// New constructs the root environment, registers the builtins,
// then evaluates the embedded standard library in a fresh child
// scope. Any error value produced during bootstrap is fatal: no
// partially initialized runtime is returned.
func New() (*Runtime, error) {
	return newFromSource(stdlibSource)
}

func newFromSource(library string) (*Runtime, error) {
	root := evaluator.NewRootEnv()
	builtin.Register(root)

	env := root.Child()
	forms, err := parser.Parse(library, "stdlib.lmn")
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	for _, form := range forms {
		v := evaluator.Evaluate(env, form)
		if e, ok := v.(evaluator.Err); ok {
			return nil, fmt.Errorf("bootstrap: %s", e.Msg)
		}
	}

	return &Runtime{env: env}, nil
}

// Env returns the top-level evaluation scope.
func (rt *Runtime) Env() *evaluator.Env {
	return rt.env
}

// Eval parses source and evaluates its top-level forms in order,
// returning the last result. Evaluation stops at the first error
// value, which is returned as the result; a non-nil Go error is
// reported only for parse failures.
func (rt *Runtime) Eval(source, filename string) (evaluator.Value, error) {
	forms, err := parser.Parse(source, filename)
	if err != nil {
		return nil, err
	}

	var last evaluator.Value = evaluator.NewSExpr(nil)
	for _, form := range forms {
		last = evaluator.Evaluate(rt.env, form)
		if evaluator.IsErr(last) {
			return last, nil
		}
	}
	return last, nil
}
