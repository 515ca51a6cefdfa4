// Package eval implements the tree-walking evaluator: a function from an
// internal/ast node and an internal/env environment to a runtime
// internal/value.Value, threading the (possibly extended) environment
// alongside every result so callers can continue after an error.
package eval

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/diag"
	"github.com/akashmaji946/gomix/internal/env"
	"github.com/akashmaji946/gomix/internal/value"
)

// Evaluator holds the evaluator's ambient configuration: where `print`
// writes, and where debug events are logged. It carries no interpreter
// state of its own — environments are passed explicitly through Eval —
// so one Evaluator can safely be reused across unrelated top-level runs.
type Evaluator struct {
	Writer io.Writer
	Log    *logrus.Logger
}

// New returns an Evaluator that prints to os.Stdout and logs at
// logrus's default level (Info), which emits nothing unless the caller
// lowers it (the REPL's `:debug` toggles do this).
func New() *Evaluator {
	return &Evaluator{
		Writer: os.Stdout,
		Log:    logrus.New(),
	}
}

// Eval dispatches on node's concrete type and returns the value it
// produces together with the environment in effect afterwards. env' is
// env itself for pure expressions, and a superset of env for a
// declaration that successfully bound a new name.
func (e *Evaluator) Eval(node ast.Node, scope *env.Env) (value.Value, *env.Env, error) {
	switch n := node.(type) {
	case ast.Bool:
		return value.Bool{V: n.Value}, scope, nil
	case ast.Int:
		return value.Int{V: n.Value}, scope, nil
	case ast.Float:
		return value.Float{V: n.Value}, scope, nil
	case ast.Str:
		return value.String{V: n.Value}, scope, nil
	case ast.Print:
		return e.evalPrint(n, scope)
	case ast.Ident:
		return e.evalIdent(n, scope)
	case ast.Variable:
		return e.evalVariable(n, scope)
	case ast.Block:
		return e.evalBlock(n, scope)
	case ast.Conditional:
		return e.evalConditional(n, scope)
	case ast.Unary:
		return e.evalUnary(n, scope)
	case ast.Binary:
		return e.evalBinary(n, scope)
	case ast.Lambda:
		// A Lambda only ever appears nested inside an argument list; it
		// is bound directly by evalIdent's call path and never reached
		// here on its own, so referencing one bare is a grammar defect.
		return nil, scope, diag.NewSyntaxError("function literal used outside of argument position")
	default:
		return nil, scope, diag.NewSyntaxError(fmt.Sprintf("unhandled node type %T", n))
	}
}

func (e *Evaluator) evalPrint(n ast.Print, scope *env.Env) (value.Value, *env.Env, error) {
	v, next, err := e.Eval(n.Expr, scope)
	if err != nil {
		return nil, next, err
	}
	fmt.Fprintln(e.Writer, v.String())
	e.Log.WithField("value", v.String()).Debug("print")
	return value.Unit{}, next, nil
}

func (e *Evaluator) evalVariable(n ast.Variable, scope *env.Env) (value.Value, *env.Env, error) {
	decl := n
	next, ok := scope.Insert(n.Name, &decl)
	if !ok {
		return nil, scope, diag.NewMutation(n.Name)
	}
	e.Log.WithFields(logrus.Fields{"name": n.Name, "callable": n.IsCallable()}).Debug("bind")
	return value.Unit{}, next, nil
}

func (e *Evaluator) evalBlock(n ast.Block, scope *env.Env) (value.Value, *env.Env, error) {
	inner := env.Extend(scope, nil)
	var result value.Value = value.Unit{}
	for _, item := range n.Seq {
		v, next, err := e.Eval(item, inner)
		if err != nil {
			return nil, scope, err
		}
		result = v
		inner = next
	}
	return result, scope, nil
}

func (e *Evaluator) evalConditional(n ast.Conditional, scope *env.Env) (value.Value, *env.Env, error) {
	cond, next, err := e.Eval(n.Cond, scope)
	if err != nil {
		return nil, next, err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return nil, next, diag.NewSyntaxError(fmt.Sprintf("if condition must be Bool, got %s", cond.Kind()))
	}
	if b.V {
		return e.Eval(n.Then, next)
	}
	if n.Else != nil {
		return e.Eval(n.Else, next)
	}
	return value.Unit{}, next, nil
}

func (e *Evaluator) evalUnary(n ast.Unary, scope *env.Env) (value.Value, *env.Env, error) {
	child, next, err := e.Eval(n.Child, scope)
	if err != nil {
		return nil, next, err
	}
	switch n.Op {
	case ast.Minus:
		switch c := child.(type) {
		case value.Int:
			return value.Int{V: new(big.Int).Neg(c.V)}, next, nil
		case value.Float:
			return value.Float{V: -c.V}, next, nil
		default:
			return nil, next, diag.NewSyntaxError(fmt.Sprintf("cannot apply unary - to %s", child.Kind()))
		}
	case ast.Bang:
		b, ok := child.(value.Bool)
		if !ok {
			return nil, next, diag.NewSyntaxError(fmt.Sprintf("cannot apply unary ! to %s", child.Kind()))
		}
		return value.Bool{V: !b.V}, next, nil
	default:
		return nil, next, diag.NewSyntaxError(fmt.Sprintf("unsupported unary operator %s", n.Op))
	}
}
