package grammar

import (
	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/combinator"
)

// leftAssoc folds `next (op next)*` into a left-associative chain of
// ast.Binary nodes, sharing the fold shape across every binary
// precedence level (factor, term, comparison, equality).
func leftAssoc(next combinator.Parser[ast.Node], ops []opPair) combinator.Parser[ast.Node] {
	return func(state combinator.State) (combinator.Result[ast.Node], error) {
		lhs, err := next(state)
		if err != nil {
			return lhs, err
		}
		cur := lhs.Value
		rest := lhs.State
		for {
			opR, opErr := opToken(ops)(rest)
			if opErr != nil {
				break
			}
			rhs, rhsErr := next(opR.State)
			if rhsErr != nil {
				return nodeFail(state, rhs.State.LastErr)
			}
			cur = ast.Binary{Op: opR.Value, Lhs: cur, Rhs: rhs.Value}
			rest = rhs.State
		}
		return nodeOK(rest.Remaining, cur)
	}
}

var factorOps = []opPair{
	{"*", ast.Multiply},
	{"/", ast.Divide},
}

// factor := unary (("*" | "/") unary)*
func factor(state combinator.State) (combinator.Result[ast.Node], error) {
	return leftAssoc(unary, factorOps)(state)
}

var termOps = []opPair{
	{"+", ast.Plus},
	{"-", ast.Minus},
}

// term := factor (("+" | "-") factor)*
func term(state combinator.State) (combinator.Result[ast.Node], error) {
	return leftAssoc(factor, termOps)(state)
}

var comparisonOps = []opPair{
	{">=", ast.GreaterEqual},
	{"<=", ast.LessEqual},
	{">", ast.GreaterThan},
	{"<", ast.LessThan},
}

// comparison := term ((">" | ">=" | "<" | "<=") term)*
func comparison(state combinator.State) (combinator.Result[ast.Node], error) {
	return leftAssoc(term, comparisonOps)(state)
}

var equalityOps = []opPair{
	{"==", ast.Equality},
	{"!=", ast.NotEqual},
}

// equality := comparison (("==" | "!=") comparison)*
func equality(state combinator.State) (combinator.Result[ast.Node], error) {
	return leftAssoc(comparison, equalityOps)(state)
}
