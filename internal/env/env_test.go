package env

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/gomix/internal/ast"
)

func TestInsert_FailsOnRebindInSameScope(t *testing.T) {
	e := Fresh()
	decl := &ast.Variable{Name: "x", Body: ast.Int{}}
	e, ok := e.Insert("x", decl)
	require.True(t, ok)

	_, ok = e.Insert("x", decl)
	require.False(t, ok, "rebinding an existing name in the same scope must fail")
}

func TestInsert_DoesNotMutateOriginalEnv(t *testing.T) {
	e := Fresh()
	decl := &ast.Variable{Name: "x", Body: ast.Int{}}
	next, ok := e.Insert("x", decl)
	require.True(t, ok)

	_, found := e.Get("x")
	require.False(t, found, "Insert must not mutate the receiver")

	_, found = next.Get("x")
	require.True(t, found)
}

func TestGet_FallsBackToParent(t *testing.T) {
	parent := Fresh()
	parent, ok := parent.Insert("x", &ast.Variable{Name: "x", Body: ast.Int{}})
	require.True(t, ok)

	child := Extend(parent, nil)
	_, found := child.Get("x")
	require.True(t, found, "a child scope must see its parent's bindings")
}

func TestExtend_ChildShadowsWithoutMutatingParent(t *testing.T) {
	parent := Fresh()
	parent, ok := parent.Insert("x", &ast.Variable{Name: "x", Body: ast.Int{}})
	require.True(t, ok)

	child := Extend(parent, map[string]*ast.Variable{
		"x": {Name: "x", Body: ast.Str{Value: "shadowed"}},
	})
	decl, found := child.Get("x")
	require.True(t, found)
	str, ok := decl.Body.(ast.Str)
	require.True(t, ok)
	require.Equal(t, "shadowed", str.Value)

	parentDecl, _ := parent.Get("x")
	_, isInt := parentDecl.Body.(ast.Int)
	require.True(t, isInt, "shadowing in a child scope must not affect the parent")
}
