package eval

import (
	"math/big"

	"github.com/akashmaji946/gomix/internal/ast"
	"github.com/akashmaji946/gomix/internal/diag"
	"github.com/akashmaji946/gomix/internal/env"
	"github.com/akashmaji946/gomix/internal/value"
)

// evalBinary evaluates lhs then rhs, strict left-to-right (even for
// "and"/"or", which do not short-circuit), then dispatches on
// (lhs kind, rhs kind, op).
func (e *Evaluator) evalBinary(n ast.Binary, scope *env.Env) (value.Value, *env.Env, error) {
	lhs, next, err := e.Eval(n.Lhs, scope)
	if err != nil {
		return nil, next, err
	}
	rhs, next, err := e.Eval(n.Rhs, next)
	if err != nil {
		return nil, next, err
	}

	if n.Op == ast.And || n.Op == ast.Or {
		lb, lok := lhs.(value.Bool)
		rb, rok := rhs.(value.Bool)
		if !lok || !rok {
			return nil, next, diag.NewMismatchedType(lhs.Kind(), rhs.Kind())
		}
		if n.Op == ast.And {
			return value.Bool{V: lb.V && rb.V}, next, nil
		}
		return value.Bool{V: lb.V || rb.V}, next, nil
	}

	switch l := lhs.(type) {
	case value.Int:
		if r, ok := rhs.(value.Int); ok {
			return intBinary(n.Op, l, r, next)
		}
	case value.Float:
		if r, ok := rhs.(value.Float); ok {
			return floatBinary(n.Op, l, r, next)
		}
	case value.String:
		if r, ok := rhs.(value.String); ok {
			return stringBinary(n.Op, l, r, next)
		}
	case value.Bool:
		if r, ok := rhs.(value.Bool); ok {
			return boolBinary(n.Op, l, r, next)
		}
	}
	return nil, next, diag.NewTypeError(n.Op, lhs.Kind(), rhs.Kind())
}

func intBinary(op ast.Operator, l, r value.Int, next *env.Env) (value.Value, *env.Env, error) {
	switch op {
	case ast.Plus:
		return value.Int{V: new(big.Int).Add(l.V, r.V)}, next, nil
	case ast.Minus:
		return value.Int{V: new(big.Int).Sub(l.V, r.V)}, next, nil
	case ast.Multiply:
		return value.Int{V: new(big.Int).Mul(l.V, r.V)}, next, nil
	case ast.Divide:
		if r.V.Sign() == 0 {
			return nil, next, diag.NewArithmeticError("division by zero")
		}
		return value.Int{V: new(big.Int).Quo(l.V, r.V)}, next, nil
	case ast.GreaterThan:
		return value.Bool{V: l.V.Cmp(r.V) > 0}, next, nil
	case ast.GreaterEqual:
		return value.Bool{V: l.V.Cmp(r.V) >= 0}, next, nil
	case ast.LessThan:
		return value.Bool{V: l.V.Cmp(r.V) < 0}, next, nil
	case ast.LessEqual:
		return value.Bool{V: l.V.Cmp(r.V) <= 0}, next, nil
	case ast.Equality:
		return value.Bool{V: l.V.Cmp(r.V) == 0}, next, nil
	case ast.NotEqual:
		return value.Bool{V: l.V.Cmp(r.V) != 0}, next, nil
	default:
		return nil, next, diag.NewTypeError(op, l.Kind(), r.Kind())
	}
}

// floatBinary uses plain numeric equality for == and !=, the documented
// resolution of the source's oscillation between numeric equality and
// an epsilon comparison (see DESIGN.md).
func floatBinary(op ast.Operator, l, r value.Float, next *env.Env) (value.Value, *env.Env, error) {
	switch op {
	case ast.Plus:
		return value.Float{V: l.V + r.V}, next, nil
	case ast.Minus:
		return value.Float{V: l.V - r.V}, next, nil
	case ast.Multiply:
		return value.Float{V: l.V * r.V}, next, nil
	case ast.Divide:
		return value.Float{V: l.V / r.V}, next, nil
	case ast.GreaterThan:
		return value.Bool{V: l.V > r.V}, next, nil
	case ast.GreaterEqual:
		return value.Bool{V: l.V >= r.V}, next, nil
	case ast.LessThan:
		return value.Bool{V: l.V < r.V}, next, nil
	case ast.LessEqual:
		return value.Bool{V: l.V <= r.V}, next, nil
	case ast.Equality:
		return value.Bool{V: l.V == r.V}, next, nil
	case ast.NotEqual:
		return value.Bool{V: l.V != r.V}, next, nil
	default:
		return nil, next, diag.NewTypeError(op, l.Kind(), r.Kind())
	}
}

func stringBinary(op ast.Operator, l, r value.String, next *env.Env) (value.Value, *env.Env, error) {
	switch op {
	case ast.Plus:
		return value.String{V: l.V + r.V}, next, nil
	case ast.Equality:
		return value.Bool{V: l.V == r.V}, next, nil
	case ast.NotEqual:
		return value.Bool{V: l.V != r.V}, next, nil
	default:
		return nil, next, diag.NewTypeError(op, l.Kind(), r.Kind())
	}
}

func boolBinary(op ast.Operator, l, r value.Bool, next *env.Env) (value.Value, *env.Env, error) {
	switch op {
	case ast.Equality:
		return value.Bool{V: l.V == r.V}, next, nil
	case ast.NotEqual:
		return value.Bool{V: l.V != r.V}, next, nil
	case ast.GreaterThan:
		return value.Bool{V: value.BoolLess(r.V, l.V)}, next, nil
	case ast.GreaterEqual:
		return value.Bool{V: !value.BoolLess(l.V, r.V)}, next, nil
	case ast.LessThan:
		return value.Bool{V: value.BoolLess(l.V, r.V)}, next, nil
	case ast.LessEqual:
		return value.Bool{V: !value.BoolLess(r.V, l.V)}, next, nil
	default:
		return nil, next, diag.NewTypeError(op, l.Kind(), r.Kind())
	}
}
