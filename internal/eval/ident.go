package eval

import (
	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/diag"
	"github.com/akashmaji946/gomix/internal/env"
	"github.com/akashmaji946/gomix/internal/value"
)

// evalIdent resolves a name reference, which may be a plain value
// binding or a call. Call-by-need: an argument's AST is never evaluated
// here — it is wrapped as an unevaluated reference and evaluated each
// time the callee's body reads the corresponding formal parameter; the
// result is not cached.
func (e *Evaluator) evalIdent(n ast.Ident, scope *env.Env) (value.Value, *env.Env, error) {
	decl, ok := scope.Get(n.Name)
	if !ok {
		return nil, scope, diag.NewUnknownIdent(n.Name)
	}
	if !decl.IsCallable() {
		if len(n.Args) != 0 {
			return nil, scope, diag.NewFunctionParameters(0, len(n.Args))
		}
		v, _, err := e.Eval(decl.Body, scope)
		if err != nil {
			return nil, scope, err
		}
		return v, scope, nil
	}
	if len(n.Args) != len(decl.Params) {
		return nil, scope, diag.NewFunctionParameters(len(decl.Params), len(n.Args))
	}
	bindings := make(map[string]*ast.Variable, len(decl.Params))
	for i, formal := range decl.Params {
		bound := bindArgument(formal, n.Args[i])
		bindings[formal] = &bound
	}
	callFrame := env.Extend(scope, bindings)
	v, _, err := e.Eval(decl.Body, callFrame)
	if err != nil {
		return nil, scope, err
	}
	return v, scope, nil
}

// bindArgument turns an argument-position AST node into the Variable
// the call frame binds the formal parameter to. A Lambda argument
// becomes a real callable binding; anything else becomes a zero-param
// value binding re-evaluated at each reference against the environment
// current at that reference (never auto-invoked — see DESIGN.md's
// resolution of the call-argument ambiguity).
func bindArgument(formal string, arg ast.Node) ast.Variable {
	if lambda, ok := arg.(ast.Lambda); ok {
		return ast.Variable{Name: formal, Params: lambda.Params, Body: lambda.Body}
	}
	return ast.Variable{Name: formal, Params: nil, Body: arg}
}
