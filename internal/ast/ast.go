// Package ast defines the language's abstract syntax tree: a closed,
// tagged sum of expression, statement, and declaration nodes produced by
// internal/grammar and consumed by internal/eval.
package ast

import "math/big"

// Operator is the closed set of unary and binary operators the grammar
// can produce.
type Operator int

const (
	Plus Operator = iota
	Minus
	Multiply
	Divide
	Bang
	Equality
	NotEqual
	GreaterThan
	GreaterEqual
	LessThan
	LessEqual
	Or
	And
)

func (o Operator) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Bang:
		return "!"
	case Equality:
		return "=="
	case NotEqual:
		return "!="
	case GreaterThan:
		return ">"
	case GreaterEqual:
		return ">="
	case LessThan:
		return "<"
	case LessEqual:
		return "<="
	case Or:
		return "or"
	case And:
		return "and"
	default:
		return "?"
	}
}

// Node is implemented by every AST variant. It is a closed set: case
// analysis over Node is exhaustive by construction (see internal/eval),
// not by interface dispatch into per-node behaviour.
type Node interface {
	isNode()
}

// Bool is a boolean literal.
type Bool struct{ Value bool }

// Int is an integer literal. The language specifies i128; Go has no
// native 128-bit integer, so big.Int stands in for it (see DESIGN.md).
type Int struct{ Value *big.Int }

// Equal lets go-cmp compare two Int nodes by numeric value rather than
// by the big.Int's internal pointer/slice representation.
func (i Int) Equal(other Int) bool {
	if i.Value == nil || other.Value == nil {
		return i.Value == other.Value
	}
	return i.Value.Cmp(other.Value) == 0
}

// Float is a floating point literal.
type Float struct{ Value float64 }

// Str is a string literal.
type Str struct{ Value string }

// Ident is a name reference. A non-empty Args denotes a call site; the
// grammar never produces a bare call, so a zero-arg reference always has
// an empty (non-nil) Args slice.
type Ident struct {
	Name string
	Args []Node
}

// Variable is a binding declaration. An empty Params means a value
// binding (including a zero-parameter "fn { ... }", which behaves
// identically to a plain value: referencing it evaluates Body again);
// a non-empty Params means a function of those formal parameters,
// callable only with a matching argument count.
type Variable struct {
	Name   string
	Params []string
	Body   Node
}

// IsCallable reports whether this declaration requires call syntax with
// a matching argument count, as opposed to behaving as a plain value
// reference.
func (v Variable) IsCallable() bool { return len(v.Params) > 0 }

// Block is an ordered sequence of nodes sharing one inner scope.
type Block struct{ Seq []Node }

// Conditional is `if cond then then [else else]`. Else is nil when the
// source had no else branch.
type Conditional struct {
	Cond Node
	Then Node
	Else Node
}

// Unary is a prefix operator applied to one operand.
type Unary struct {
	Op    Operator
	Child Node
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Op       Operator
	Lhs, Rhs Node
}

// Print is the built-in single-expression print statement.
type Print struct{ Expr Node }

// Lambda is an anonymous function literal appearing in argument
// position (the grammar's fun_decl_literal): "fn" parameter* block with
// no name. It only ever appears as an argument expression; a named
// function declaration is represented directly as a Variable.
type Lambda struct {
	Params []string
	Body   Node
}

func (Bool) isNode()        {}
func (Int) isNode()         {}
func (Float) isNode()       {}
func (Str) isNode()         {}
func (Ident) isNode()       {}
func (Variable) isNode()    {}
func (Block) isNode()       {}
func (Conditional) isNode() {}
func (Unary) isNode()       {}
func (Binary) isNode()      {}
func (Print) isNode()       {}
func (Lambda) isNode()      {}

// Program is the parser's top-level output: a finite ordered sequence of
// declarations or statements. The empty source parses to an empty
// Program.
type Program struct {
	Items []Node
}
