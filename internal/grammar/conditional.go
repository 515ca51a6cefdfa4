package grammar

import (
	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/combinator"
)

// ifElse := "if" expression "then" statement "else" statement
func ifElse(state combinator.State) (combinator.Result[ast.Node], error) {
	kw, err := keyword("if")(state)
	if err != nil {
		return nodeFail(state, kw.State.LastErr)
	}
	cond, err := expression(kw.State)
	if err != nil {
		return nodeFail(state, cond.State.LastErr)
	}
	thenKw, err := keyword("then")(cond.State)
	if err != nil {
		return nodeFail(state, thenKw.State.LastErr)
	}
	thenStmt, err := statement(thenKw.State)
	if err != nil {
		return nodeFail(state, thenStmt.State.LastErr)
	}
	elseKw, err := keyword("else")(thenStmt.State)
	if err != nil {
		return nodeFail(state, elseKw.State.LastErr)
	}
	elseStmt, err := statement(elseKw.State)
	if err != nil {
		return nodeFail(state, elseStmt.State.LastErr)
	}
	return nodeOK(elseStmt.State.Remaining, ast.Conditional{
		Cond: cond.Value,
		Then: thenStmt.Value,
		Else: elseStmt.Value,
	})
}

// ifThen := "if" expression "then" statement
//
// ifElse is tried first so a trailing "else" is never left unconsumed as
// stray input belonging to the enclosing declaration sequence.
func ifThen(state combinator.State) (combinator.Result[ast.Node], error) {
	kw, err := keyword("if")(state)
	if err != nil {
		return nodeFail(state, kw.State.LastErr)
	}
	cond, err := expression(kw.State)
	if err != nil {
		return nodeFail(state, cond.State.LastErr)
	}
	thenKw, err := keyword("then")(cond.State)
	if err != nil {
		return nodeFail(state, thenKw.State.LastErr)
	}
	thenStmt, err := statement(thenKw.State)
	if err != nil {
		return nodeFail(state, thenStmt.State.LastErr)
	}
	return nodeOK(thenStmt.State.Remaining, ast.Conditional{Cond: cond.Value, Then: thenStmt.Value, Else: nil})
}
