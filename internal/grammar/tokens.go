// Package grammar implements the language's precedence-climbing
// recursive descent grammar (spec.md §4.4) over internal/combinator,
// producing internal/ast trees.
package grammar

import (
	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/combinator"
)

// keyword recognises a reserved word at an identifier's word boundary:
// it must consume a whole identifier-shaped token, not merely a prefix,
// so that e.g. "iffy" is never mistaken for the keyword "if".
func keyword(word string) combinator.Parser[string] {
	return combinator.Trim(combinator.Pred(
		combinator.Identifier(),
		func(s string) bool { return s == word },
		combinator.KindTag,
	))
}

// symbol recognises a literal operator/punctuation token, trimmed of
// surrounding whitespace.
func symbol(s string) combinator.Parser[string] {
	return combinator.Trim(combinator.Tag(s))
}

// opToken matches one of a set of operator symbols, trying the listed
// order — callers list longer symbols first so e.g. ">=" is tried before
// ">" (longer-match-first tie-break, spec.md §4.4).
func opToken(pairs []opPair) combinator.Parser[ast.Operator] {
	return func(state combinator.State) (combinator.Result[ast.Operator], error) {
		var lastErr *combinator.Error
		for _, pr := range pairs {
			r, err := symbol(pr.sym)(state)
			if err == nil {
				return combinator.Result[ast.Operator]{State: r.State, Value: pr.op}, nil
			}
			lastErr = r.State.LastErr
		}
		err := &combinator.Error{Input: state.Remaining, Kind: combinator.KindComparison}
		if lastErr != nil {
			err = lastErr
		}
		return combinator.Result[ast.Operator]{
			State: combinator.State{Remaining: state.Remaining, LastErr: err},
		}, err
	}
}

type opPair struct {
	sym string
	op  ast.Operator
}
