package grammar

import (
	"strconv"

	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/combinator"
)

func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// call := primary argument*
//
// The grammar only attaches an argument list when primary turned out to
// be an identifier: "3 4" is never a call, but "f 4" is. A non-ident
// primary (a literal, a parenthesized expression) is returned unchanged
// even if more tokens follow — that's the caller's job to consume. An
// identifier that already carries arguments (a parenthesized call such
// as "(g 1)") is likewise returned unchanged, so following tokens never
// replace its argument list.
func call(state combinator.State) (combinator.Result[ast.Node], error) {
	r, err := primary(state)
	if err != nil {
		return r, err
	}
	ident, ok := r.Value.(ast.Ident)
	if !ok || len(ident.Args) != 0 {
		return r, nil
	}
	args, argErr := combinator.ZeroOrMore(argument)(r.State)
	if argErr != nil {
		return r, nil
	}
	ident.Args = args.Value
	return nodeOK(args.State.Remaining, ident)
}

// argument := fun_decl_literal | expression
//
// Each argument is a full expression, not merely a unary/call term — the
// source's own arguments parser is many0(expression), which is why
// "f g 1" parses as "f (g 1)" (g's own call greedily claims the 1) and
// not as two separate arguments to f. fun_decl_literal is tried first
// since it starts with a keyword no ordinary expression can produce.
//
// An argument never begins with "-": in "x - 4" the "-" is the binary
// operator applied to x, not a negated argument passed to x. A negative
// argument is written in parentheses, as in "f (-4)".
func argument(state combinator.State) (combinator.Result[ast.Node], error) {
	if _, err := symbol("-")(state); err == nil {
		return nodeFail(state, &combinator.Error{Input: state.Remaining, Kind: combinator.KindTag})
	}
	return combinator.Alternative(lambdaLiteral, expression)(state)
}

// lambdaLiteral is the argument grammar's fun_decl_literal: the same
// "fn" parameter* block shape as funDecl, used where a function value is
// wanted without a name (e.g. passed directly as an argument).
func lambdaLiteral(state combinator.State) (combinator.Result[ast.Node], error) {
	return funcLiteral(state)
}

var unaryOps = []opPair{
	{"-", ast.Minus},
	{"!", ast.Bang},
}

// unary := call | ("-" unary) | ("!" unary)
//
// Adjacent identical prefix operators cancel in pairs at parse time:
// "--x" folds to plain "x", "---x" folds to Unary{Minus, x}. This is an
// AST-level equivalence, not merely a value-level one (spec.md §4.4).
func unary(state combinator.State) (combinator.Result[ast.Node], error) {
	op, err := opToken(unaryOps)(state)
	if err != nil {
		return call(state)
	}
	inner, innerErr := unary(op.State)
	if innerErr != nil {
		return nodeFail(state, inner.State.LastErr)
	}
	if u, ok := inner.Value.(ast.Unary); ok && u.Op == op.Value {
		return nodeOK(inner.State.Remaining, u.Child)
	}
	return nodeOK(inner.State.Remaining, ast.Unary{Op: op.Value, Child: inner.Value})
}
