package grammar

import (
	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/combinator"
)

// printStmt := "print" ( if_else | if_then | expression )
//
// A conditional is accepted as print's operand, so
// `print if c then a else b` prints the value of the taken branch.
func printStmt(state combinator.State) (combinator.Result[ast.Node], error) {
	kw, err := keyword("print")(state)
	if err != nil {
		return nodeFail(state, kw.State.LastErr)
	}
	expr, err := combinator.Alternative(ifElse, ifThen, expression)(kw.State)
	if err != nil {
		return nodeFail(state, expr.State.LastErr)
	}
	return nodeOK(expr.State.Remaining, ast.Print{Expr: expr.Value})
}

// statement := print_stmt | if_else | if_then | expression | block
//
// if_else is tried before if_then so the longer alternative is not
// pre-empted; block and expression are tried last since block starts
// with a distinctive "{" and expression is the catch-all.
func statement(state combinator.State) (combinator.Result[ast.Node], error) {
	return combinator.Alternative(
		printStmt,
		ifElse,
		ifThen,
		block,
		expression,
	)(state)
}
