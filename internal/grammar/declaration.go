package grammar

import (
	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/combinator"
	"github.com/akashmaji946/gomix/internal/diag"
)

// parameter := IDENT
func parameter(state combinator.State) (combinator.Result[string], error) {
	return combinator.Trim(combinator.Identifier())(state)
}

// funcLiteral := "fn" parameter* block
//
// Both fun_decl (a named declaration's right-hand side) and
// fun_decl_literal (an argument-position function value) share this
// exact shape; callers decide whether the result becomes a named
// Variable or stays an anonymous Lambda.
func funcLiteral(state combinator.State) (combinator.Result[ast.Node], error) {
	kw, err := keyword("fn")(state)
	if err != nil {
		return nodeFail(state, kw.State.LastErr)
	}
	params, paramErr := combinator.ZeroOrMore(parameter)(kw.State)
	if paramErr != nil {
		return nodeFail(state, params.State.LastErr)
	}
	body, err := block(params.State)
	if err != nil {
		return nodeFail(state, body.State.LastErr)
	}
	return nodeOK(body.State.Remaining, ast.Lambda{Params: params.Value, Body: body.Value})
}

// funDecl := "fn" parameter* block
func funDecl(state combinator.State) (combinator.Result[ast.Node], error) {
	return funcLiteral(state)
}

// varDecl := IDENT "=" ( fun_decl | statement )
//
// var_decl is tried before statement in declaration so that an IDENT
// immediately followed by "=" claims the assignment role rather than
// being parsed as a bare expression (spec.md §4.4 note).
func varDecl(state combinator.State) (combinator.Result[ast.Node], error) {
	name, err := combinator.Trim(combinator.Identifier())(state)
	if err != nil {
		return nodeFail(state, name.State.LastErr)
	}
	eq, err := symbol("=")(name.State)
	if err != nil {
		return nodeFail(state, eq.State.LastErr)
	}
	rhs, err := combinator.Alternative(funDecl, statement)(eq.State)
	if err != nil {
		return nodeFail(state, rhs.State.LastErr)
	}
	if lambda, ok := rhs.Value.(ast.Lambda); ok {
		return nodeOK(rhs.State.Remaining, ast.Variable{Name: name.Value, Params: lambda.Params, Body: lambda.Body})
	}
	return nodeOK(rhs.State.Remaining, ast.Variable{Name: name.Value, Params: nil, Body: rhs.Value})
}

// declaration := var_decl | statement
func declaration(state combinator.State) (combinator.Result[ast.Node], error) {
	return combinator.Alternative(varDecl, statement)(state)
}

// block := "{" declaration* "}"
//
// A block introduces its own child scope at evaluation time; declarations
// made inside do not leak to the enclosing scope (spec.md §4.6/§4.7).
func block(state combinator.State) (combinator.Result[ast.Node], error) {
	open, err := symbol("{")(state)
	if err != nil {
		return nodeFail(state, open.State.LastErr)
	}
	items, itemsErr := combinator.ZeroOrMore(declaration)(open.State)
	if itemsErr != nil {
		return nodeFail(state, items.State.LastErr)
	}
	closeR, err := symbol("}")(items.State)
	if err != nil {
		return nodeFail(state, closeR.State.LastErr)
	}
	return nodeOK(closeR.State.Remaining, ast.Block{Seq: items.Value})
}

// Parse is the grammar package's top-level entry point: it parses a
// finite ordered sequence of declarations/statements (spec.md §4.2
// invariant 7), reporting the deepest recorded combinator failure as a
// *diag.ParseDiagnostic when the source is not fully consumed.
func Parse(source string) (*ast.Program, error) {
	state := combinator.NewState(source)
	items, err := combinator.ZeroOrMore(declaration)(state)
	if err != nil {
		return nil, &diag.ParseDiagnostic{Err: items.State.LastErr}
	}
	trailing, trailErr := combinator.Whitespace0()(items.State)
	if trailErr == nil {
		state = trailing.State
	} else {
		state = items.State
	}
	if state.Remaining != "" {
		// ZeroOrMore discards the failure that stopped it, so the
		// declaration that failed at the unconsumed input is retried to
		// recover its deepest recorded error.
		lastErr := &combinator.Error{Input: state.Remaining, Kind: combinator.KindTag}
		if r, declErr := declaration(state); declErr != nil && r.State.LastErr != nil {
			lastErr = r.State.LastErr
		}
		return nil, &diag.ParseDiagnostic{Err: lastErr}
	}
	return &ast.Program{Items: items.Value}, nil
}
