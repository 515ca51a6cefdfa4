package ast

import (
	"strconv"
	"strings"
)

// Render renders n back into source text accepted by internal/grammar's
// Parse, the mirror image of the grammar: one case per production that
// can build n, over-parenthesising wherever the grammar is not already
// unambiguous so that a value built one way never reparses a different
// way (spec.md §8's "parse, print, reparse" round-trip property).
func Render(n Node) string {
	switch v := n.(type) {
	case Print:
		return "print " + renderExpr(v.Expr)
	case Variable:
		// A declaration parsed from "fn" has a non-nil Params even with
		// no parameters; a plain value declaration has nil Params.
		if v.Params != nil {
			return v.Name + " = fn " + renderParams(v.Params) + " " + Render(v.Body)
		}
		return v.Name + " = " + Render(v.Body)
	case Block:
		var b strings.Builder
		b.WriteString("{ ")
		for _, item := range v.Seq {
			b.WriteString(Render(item))
			b.WriteString(" ")
		}
		b.WriteString("}")
		return b.String()
	case Conditional:
		then := Render(v.Then)
		if inner, ok := v.Then.(Conditional); ok && inner.Else == nil && v.Else != nil {
			// Unwrapped, the inner if-then would take this else as its own.
			then = "(" + then + ")"
		}
		s := "if " + renderExpr(v.Cond) + " then " + then
		if v.Else != nil {
			s += " else " + Render(v.Else)
		}
		return s
	case Lambda:
		return "fn " + renderParams(v.Params) + " " + Render(v.Body)
	default:
		// Every other variant is expression-shaped (Bool, Int, Float,
		// Str, Ident, Unary, Binary) and a bare expression is itself a
		// valid statement.
		return renderExpr(n)
	}
}

// RenderProgram renders every top-level item, one per line.
func RenderProgram(p *Program) string {
	lines := make([]string, len(p.Items))
	for i, item := range p.Items {
		lines[i] = Render(item)
	}
	return strings.Join(lines, "\n")
}

func renderParams(params []string) string {
	return strings.Join(params, " ")
}

// renderExpr renders n as an expression-grammar operand: the position
// reachable from Binary.Lhs/Rhs, Unary.Child, Conditional.Cond, and a
// call's argument list. Literals and identifiers print bare; Unary and
// Binary are always wrapped in parens, since the grammar itself has no
// precedence markers in its token stream besides parentheses, and
// wrapping unconditionally is always correct even when unnecessary. Any
// other node (which only a parenthesized declaration can place in
// operand position) is rendered with Render inside parens.
func renderExpr(n Node) string {
	switch v := n.(type) {
	case nil:
		return ""
	case Bool:
		if v.Value {
			return "true"
		}
		return "false"
	case Int:
		if v.Value == nil {
			return "0"
		}
		return v.Value.String()
	case Float:
		return renderFloat(v.Value)
	case Str:
		return `"` + v.Value + `"`
	case Ident:
		if len(v.Args) == 0 {
			return v.Name
		}
		parts := make([]string, 0, len(v.Args)+1)
		parts = append(parts, v.Name)
		for _, a := range v.Args {
			parts = append(parts, renderArgument(a))
		}
		return strings.Join(parts, " ")
	case Unary:
		return v.Op.String() + "(" + renderExpr(v.Child) + ")"
	case Binary:
		return "(" + renderExpr(v.Lhs) + " " + v.Op.String() + " " + renderExpr(v.Rhs) + ")"
	default:
		return "(" + Render(n) + ")"
	}
}

// renderArgument renders one call-argument slot. A Lambda argument
// takes the fun_decl_literal surface form. A nested call is wrapped in
// parens: bare, "g 1" followed by a sibling argument would take that
// sibling as its own argument, while the grammar's call rule leaves the
// argument list of a parenthesised call as it is. Everything else is an
// ordinary expression operand.
func renderArgument(n Node) string {
	if lambda, ok := n.(Lambda); ok {
		return "fn " + renderParams(lambda.Params) + " " + Render(lambda.Body)
	}
	if id, ok := n.(Ident); ok && len(id.Args) != 0 {
		return "(" + renderExpr(id) + ")"
	}
	return renderExpr(n)
}

// renderFloat formats f so NumberLit's "dot must be followed by a
// digit" rule reports it as a Float again, never as an Int (a whole
// number like 2.0 must not lose its decimal point).
func renderFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
