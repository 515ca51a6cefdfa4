package grammar

import (
	"math/big"

	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/combinator"
)

// primary := BOOL | STRING | NUMBER | "(" declaration ")" | IDENT
//
// Boolean literals are tried before a bare identifier so that "true" and
// "false" are never mistaken for name references (spec.md §4.4).
func primary(state combinator.State) (combinator.Result[ast.Node], error) {
	return combinator.Alternative(
		boolLiteral,
		stringLiteral,
		numberLiteral,
		parenthesized,
		identRef,
	)(state)
}

func boolLiteral(state combinator.State) (combinator.Result[ast.Node], error) {
	p := combinator.Trim(combinator.Pred(
		combinator.Identifier(),
		func(s string) bool { return s == "true" || s == "false" },
		combinator.KindTag,
	))
	r, err := p(state)
	if err != nil {
		return nodeFail(state, r.State.LastErr)
	}
	return nodeOK(r.State.Remaining, ast.Bool{Value: r.Value == "true"})
}

func stringLiteral(state combinator.State) (combinator.Result[ast.Node], error) {
	r, err := combinator.Trim(combinator.QuotedString())(state)
	if err != nil {
		return nodeFail(state, r.State.LastErr)
	}
	return nodeOK(r.State.Remaining, ast.Str{Value: r.Value})
}

func numberLiteral(state combinator.State) (combinator.Result[ast.Node], error) {
	r, err := combinator.Trim(combinator.NumberLit())(state)
	if err != nil {
		return nodeFail(state, r.State.LastErr)
	}
	if r.Value.IsFloat {
		f, _ := parseFloat(r.Value.Text)
		return nodeOK(r.State.Remaining, ast.Float{Value: f})
	}
	i := new(big.Int)
	i.SetString(r.Value.Text, 10)
	return nodeOK(r.State.Remaining, ast.Int{Value: i})
}

func parenthesized(state combinator.State) (combinator.Result[ast.Node], error) {
	open, err := symbol("(")(state)
	if err != nil {
		return nodeFail(state, open.State.LastErr)
	}
	inner, err := declaration(open.State)
	if err != nil {
		return nodeFail(state, inner.State.LastErr)
	}
	closeR, err := symbol(")")(inner.State)
	if err != nil {
		return nodeFail(state, closeR.State.LastErr)
	}
	return nodeOK(closeR.State.Remaining, inner.Value)
}

// reserved holds the grammar's keywords. identRef never accepts one as a
// name reference, so a keyword ends a call's argument list: in "a or b"
// the "or" is the operator, not an argument passed to a.
var reserved = map[string]bool{
	"print": true, "if": true, "then": true, "else": true, "fn": true,
	"and": true, "or": true, "true": true, "false": true,
}

func identRef(state combinator.State) (combinator.Result[ast.Node], error) {
	r, err := combinator.Trim(combinator.Pred(
		combinator.Identifier(),
		func(s string) bool { return !reserved[s] },
		combinator.KindIdent,
	))(state)
	if err != nil {
		return nodeFail(state, r.State.LastErr)
	}
	return nodeOK(r.State.Remaining, ast.Ident{Name: r.Value, Args: []ast.Node{}})
}

// nodeOK and nodeFail are small helpers to keep the hand-written
// recursive descent functions below free of combinator.Result
// boilerplate at every return site.
func nodeOK(remaining string, n ast.Node) (combinator.Result[ast.Node], error) {
	return combinator.Result[ast.Node]{State: combinator.State{Remaining: remaining}, Value: n}, nil
}

func nodeFail(state combinator.State, err *combinator.Error) (combinator.Result[ast.Node], error) {
	return combinator.Result[ast.Node]{State: combinator.State{Remaining: state.Remaining, LastErr: err}, Value: nil}, err
}
