package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruthy_PanicsOnNonBool(t *testing.T) {
	require.Panics(t, func() { Truthy(NewInt(1)) })
}

func TestTruthy_ExtractsBool(t *testing.T) {
	require.True(t, Truthy(Bool{V: true}))
	require.False(t, Truthy(Bool{V: false}))
}

func TestIsUnit(t *testing.T) {
	require.True(t, IsUnit(Unit{}))
	require.False(t, IsUnit(NewInt(0)))
}

func TestBoolLess(t *testing.T) {
	require.True(t, BoolLess(false, true))
	require.False(t, BoolLess(true, false))
	require.False(t, BoolLess(true, true))
	require.False(t, BoolLess(false, false))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Int", NewInt(1).Kind().String())
	require.Equal(t, "NONE", Unit{}.Kind().String())
}
