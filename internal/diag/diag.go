// Package diag is the language's two-layer error taxonomy: parse
// diagnostics (from internal/grammar) and evaluation errors (from
// internal/eval). Both implement Go's error interface so they compose
// with errors.Is/errors.As, while still exposing a Kind for callers that
// need to dispatch on the failure category.
package diag

import (
	"fmt"

	"github.com/akashmaji946/gomix/internal/combinator"
)

// ParseDiagnostic wraps a combinator.Error with the context the grammar
// had when it gave up: the deepest, most informative failure along the
// parse.
type ParseDiagnostic struct {
	Err *combinator.Error
}

func (d *ParseDiagnostic) Error() string {
	if d.Err == nil {
		return "parse error"
	}
	return d.Err.Error()
}

// Kind returns the offending combinator.ErrorKind, or KindTag if none was
// recorded (should not happen in practice).
func (d *ParseDiagnostic) Kind() combinator.ErrorKind {
	if d.Err == nil {
		return combinator.KindTag
	}
	return d.Err.Kind
}

// EvalKind classifies an evaluation-time failure.
type EvalKind int

const (
	// TypeError is an operand type disagreement with an operator.
	TypeError EvalKind = iota
	// SyntaxError is structurally valid but semantically malformed input
	// (e.g. "!" applied to a non-boolean).
	SyntaxError
	// UnknownIdent is a reference to an unbound name.
	UnknownIdent
	// Mutation is an attempt to rebind an existing name in the same scope.
	Mutation
	// MismatchedType is a logical operator (and/or) applied to
	// non-boolean operands.
	MismatchedType
	// FunctionParameters is a call with the wrong number of arguments.
	FunctionParameters
	// Arithmetic covers runtime arithmetic failures, such as integer
	// division by zero, that spec.md requires to surface as an EvalError
	// rather than a host panic.
	Arithmetic
)

func (k EvalKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case SyntaxError:
		return "SyntaxError"
	case UnknownIdent:
		return "UnknownIdent"
	case Mutation:
		return "Mutations"
	case MismatchedType:
		return "MismatchedType"
	case FunctionParameters:
		return "FunctionParameters"
	case Arithmetic:
		return "Arithmetic"
	default:
		return "Unknown"
	}
}

// EvalError is an evaluation-time failure: a human-readable message plus
// a Kind and, for errors naming a specific identifier or arity, the
// relevant detail fields.
type EvalError struct {
	Kind     EvalKind
	Message  string
	Name     string // set for UnknownIdent and Mutation
	Expected int    // set for FunctionParameters
	Got      int    // set for FunctionParameters
}

func (e *EvalError) Error() string { return e.Message }

// NewTypeError reports an operator applied to operands of disagreeing or
// unsupported types.
func NewTypeError(op fmt.Stringer, lhsKind, rhsKind fmt.Stringer) *EvalError {
	return &EvalError{
		Kind:    TypeError,
		Message: fmt.Sprintf("cannot apply %s to %s and %s", op, lhsKind, rhsKind),
	}
}

// NewSyntaxError reports a structurally valid but semantically malformed
// node, such as a unary operator applied to the wrong operand kind.
func NewSyntaxError(msg string) *EvalError {
	return &EvalError{Kind: SyntaxError, Message: msg}
}

// NewUnknownIdent reports a reference to a name with no binding in scope.
func NewUnknownIdent(name string) *EvalError {
	return &EvalError{
		Kind:    UnknownIdent,
		Message: fmt.Sprintf("%q is not defined", name),
		Name:    name,
	}
}

// NewMutation reports an attempt to rebind an already-bound name.
func NewMutation(name string) *EvalError {
	return &EvalError{
		Kind:    Mutation,
		Message: fmt.Sprintf("Mutations(%q): %q is already bound in this scope", name, name),
		Name:    name,
	}
}

// NewMismatchedType reports a logical operator (and/or) given non-boolean
// operands.
func NewMismatchedType(lhsKind, rhsKind fmt.Stringer) *EvalError {
	return &EvalError{
		Kind:    MismatchedType,
		Message: fmt.Sprintf("'and'/'or' require Bool operands, got %s and %s", lhsKind, rhsKind),
	}
}

// NewFunctionParameters reports a call whose argument count does not
// match the callee's formal parameter count.
func NewFunctionParameters(expected, got int) *EvalError {
	return &EvalError{
		Kind:     FunctionParameters,
		Message:  fmt.Sprintf("expected %d argument(s), got %d", expected, got),
		Expected: expected,
		Got:      got,
	}
}

// NewArithmeticError reports a runtime arithmetic failure such as integer
// division by zero; spec.md mandates this over a host panic.
func NewArithmeticError(msg string) *EvalError {
	return &EvalError{Kind: Arithmetic, Message: msg}
}
