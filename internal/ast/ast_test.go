package ast

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariable_IsCallable(t *testing.T) {
	value := Variable{Name: "x", Body: Int{Value: big.NewInt(1)}}
	require.False(t, value.IsCallable())

	zeroArgFn := Variable{Name: "f", Params: []string{}, Body: Int{Value: big.NewInt(1)}}
	require.False(t, zeroArgFn.IsCallable())

	fn := Variable{Name: "add", Params: []string{"a", "b"}, Body: Int{Value: big.NewInt(1)}}
	require.True(t, fn.IsCallable())
}

func TestInt_Equal(t *testing.T) {
	require.True(t, Int{Value: big.NewInt(3)}.Equal(Int{Value: big.NewInt(3)}))
	require.False(t, Int{Value: big.NewInt(3)}.Equal(Int{Value: big.NewInt(4)}))
	require.True(t, Int{}.Equal(Int{}))
}

func TestOperator_String(t *testing.T) {
	cases := map[Operator]string{
		Plus:         "+",
		Minus:        "-",
		Multiply:     "*",
		Divide:       "/",
		Bang:         "!",
		Equality:     "==",
		NotEqual:     "!=",
		GreaterThan:  ">",
		GreaterEqual: ">=",
		LessThan:     "<",
		LessEqual:    "<=",
		Or:           "or",
		And:          "and",
	}
	for op, want := range cases {
		require.Equal(t, want, op.String())
	}
}
