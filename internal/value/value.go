// Package value defines the evaluator's runtime values, as distinct from
// internal/ast's syntax. A Value is a tagged sum: Int, Float, String,
// Bool, or Unit — the no-information value produced by declarations,
// prints, and conditionals without a taken branch.
package value

import (
	"fmt"
	"math/big"
)

// Kind names a Value's runtime type, matching the strings the error
// taxonomy and `value_type()` equivalent report to users.
type Kind string

const (
	KindInt    Kind = "Int"
	KindFloat  Kind = "Float"
	KindString Kind = "String"
	KindBool   Kind = "Bool"
	KindUnit   Kind = "NONE"
)

// String lets a Kind satisfy fmt.Stringer, so the error taxonomy's
// constructors (which take fmt.Stringer operand kinds) accept it
// directly.
func (k Kind) String() string { return string(k) }

// Value is implemented by every runtime value variant.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// Int is an arbitrary-precision integer value (the language specifies
// i128; see DESIGN.md for why this repository uses big.Int).
type Int struct{ V *big.Int }

func NewInt(i int64) Int    { return Int{V: big.NewInt(i)} }
func (Int) Kind() Kind       { return KindInt }
func (i Int) String() string { return i.V.String() }
func (Int) isValue()         {}

// Float is a 64-bit floating point value.
type Float struct{ V float64 }

func (Float) Kind() Kind       { return KindFloat }
func (f Float) String() string { return formatFloat(f.V) }
func (Float) isValue()         {}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}

// String is a string value.
type String struct{ V string }

func (String) Kind() Kind       { return KindString }
func (s String) String() string { return s.V }
func (String) isValue()         {}

// Bool is a boolean value.
type Bool struct{ V bool }

func (Bool) Kind() Kind       { return KindBool }
func (b Bool) String() string { return fmt.Sprintf("%t", b.V) }
func (Bool) isValue()         {}

// Unit is the value of declarations, prints, and conditionals without a
// taken branch. It displays as "NONE" but the REPL suppresses it.
type Unit struct{}

func (Unit) Kind() Kind      { return KindUnit }
func (Unit) String() string  { return "NONE" }
func (Unit) isValue()        {}

// IsUnit reports whether v is the Unit value, used by callers (the REPL,
// the file runner) deciding whether to print a result.
func IsUnit(v Value) bool {
	_, ok := v.(Unit)
	return ok
}

// Truthy extracts the bool out of a Bool value. Callers must already
// know v is a Bool (the evaluator's own type-checking guarantees this
// before Truthy is ever called); it panics otherwise, which is a bug in
// the caller, not a user-facing condition.
func Truthy(v Value) bool {
	b, ok := v.(Bool)
	if !ok {
		panic(fmt.Sprintf("value: Truthy called on non-Bool %s", v.Kind()))
	}
	return b.V
}

// BoolLess implements the ordering spec.md assigns booleans: false < true.
func BoolLess(a, b bool) bool {
	return !a && b
}
