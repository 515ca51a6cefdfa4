package grammar

import (
	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/combinator"
)

// keywordLeftAssoc is leftAssoc specialised to a single word-boundary
// keyword operator ("and", "or"), since opToken's symbol matching is a
// bare prefix test and would wrongly accept "andx" as "and".
func keywordLeftAssoc(next combinator.Parser[ast.Node], word string, op ast.Operator) combinator.Parser[ast.Node] {
	return func(state combinator.State) (combinator.Result[ast.Node], error) {
		lhs, err := next(state)
		if err != nil {
			return lhs, err
		}
		cur := lhs.Value
		rest := lhs.State
		for {
			kwR, kwErr := keyword(word)(rest)
			if kwErr != nil {
				break
			}
			rhs, rhsErr := next(kwR.State)
			if rhsErr != nil {
				return nodeFail(state, rhs.State.LastErr)
			}
			cur = ast.Binary{Op: op, Lhs: cur, Rhs: rhs.Value}
			rest = rhs.State
		}
		return nodeOK(rest.Remaining, cur)
	}
}

// logicAnd := equality ("and" equality)*
func logicAnd(state combinator.State) (combinator.Result[ast.Node], error) {
	return keywordLeftAssoc(equality, "and", ast.And)(state)
}

// logicOr := logicAnd ("or" logicAnd)*
//
// "and" binds tighter than "or", matching the usual boolean-operator
// precedence and spec.md's expression grammar.
func logicOr(state combinator.State) (combinator.Result[ast.Node], error) {
	return keywordLeftAssoc(logicAnd, "or", ast.Or)(state)
}

// expression is the grammar's top precedence entry point.
func expression(state combinator.State) (combinator.Result[ast.Node], error) {
	return logicOr(state)
}
