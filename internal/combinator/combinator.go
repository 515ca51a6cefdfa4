// Package combinator implements a minimalistic parser combinator kernel.
//
// A Parser[T] is a pure function from a cursor over the remaining source
// text to either a successful result (an advanced cursor plus a value) or
// a failure (the original cursor, untouched, plus a recorded Error). There
// is no backtracking state beyond the cursor itself: on failure the input
// is always returned unchanged so a caller composing alternatives can try
// another branch starting from the same place.
//
// The design mirrors the "parser combinator from scratch" style used by
// nom-like libraries: no parser-generator tooling, just small functions
// that compose into bigger ones via Pair, Either, Map and friends.
package combinator

import "fmt"

// ErrorKind classifies why a primitive recogniser declined its input.
type ErrorKind int

const (
	// KindTag means a literal prefix (tag) did not match.
	KindTag ErrorKind = iota
	// KindIdent means an identifier was expected but not found.
	KindIdent
	// KindFloat means a numeric literal was expected but not found.
	KindFloat
	// KindInt means an integer literal was expected but not found.
	KindInt
	// KindAnyChar means input was exhausted where any character would do.
	KindAnyChar
	// KindComparison means a comparison operator token was expected.
	KindComparison
)

func (k ErrorKind) String() string {
	switch k {
	case KindTag:
		return "Tag"
	case KindIdent:
		return "Ident"
	case KindFloat:
		return "Float"
	case KindInt:
		return "Int"
	case KindAnyChar:
		return "AnyChar"
	case KindComparison:
		return "Comparison"
	default:
		return "Unknown"
	}
}

// Error is a parse diagnostic: the offending input slice plus a kind, and
// for KindTag the literal that was expected (carried in Expected).
type Error struct {
	Input    string
	Kind     ErrorKind
	Expected string
}

func (e *Error) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: expected %q at %q", e.Kind, e.Expected, truncate(e.Input))
	}
	return fmt.Sprintf("%s: at %q", e.Kind, truncate(e.Input))
}

func truncate(s string) string {
	const max = 24
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// State is the parser's cursor: the remaining input, plus the most recent
// failure recorded along this parse (cleared whenever a parser advances).
// The outer program surfaces LastErr when a top-level parse misses,
// because it is usually the most informative failure: the deepest point
// the parse got to before every alternative ran out.
type State struct {
	Remaining string
	LastErr   *Error
}

// NewState begins a parse at the start of src.
func NewState(src string) State {
	return State{Remaining: src}
}

// Result is what a successful application of a Parser[T] produces.
type Result[T any] struct {
	State State
	Value T
}

// Parser is a function from parser state to a Result or an error. On
// success, the returned State's Remaining has advanced past what was
// consumed and LastErr is cleared. On failure, the returned State is
// state unchanged except that LastErr now records the failure, and the
// returned error is non-nil (it is also *Error, or wraps one).
type Parser[T any] func(State) (Result[T], error)

func fail[T any](state State, err *Error) (Result[T], error) {
	var zero T
	return Result[T]{State: State{Remaining: state.Remaining, LastErr: err}, Value: zero}, err
}

func succeed[T any](remaining string, value T) (Result[T], error) {
	return Result[T]{State: State{Remaining: remaining}, Value: value}, nil
}
