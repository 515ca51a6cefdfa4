package grammar

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/gomix/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := Parse(src)
	require.NoError(t, err, "source: %s", src)
	return program
}

func bigInt(i int64) *big.Int { return big.NewInt(i) }

func TestParse_EmptySourceYieldsEmptyProgram(t *testing.T) {
	program := mustParse(t, "")
	require.Empty(t, program.Items)
}

func TestParse_LeftAssociativeSubtraction(t *testing.T) {
	program := mustParse(t, "1 - 2 - 3")
	want := ast.Binary{
		Op:  ast.Minus,
		Lhs: ast.Binary{Op: ast.Minus, Lhs: ast.Int{Value: bigInt(1)}, Rhs: ast.Int{Value: bigInt(2)}},
		Rhs: ast.Int{Value: bigInt(3)},
	}
	requireEqualNode(t, want, program.Items[0])
}

func TestParse_MultiplicationBindsTighterThanAddition(t *testing.T) {
	program := mustParse(t, "1 + 2 * 3")
	want := ast.Binary{
		Op:  ast.Plus,
		Lhs: ast.Int{Value: bigInt(1)},
		Rhs: ast.Binary{Op: ast.Multiply, Lhs: ast.Int{Value: bigInt(2)}, Rhs: ast.Int{Value: bigInt(3)}},
	}
	requireEqualNode(t, want, program.Items[0])
}

func TestParse_AndBindsTighterThanOr(t *testing.T) {
	program := mustParse(t, "a or b and c")
	want := ast.Binary{
		Op:  ast.Or,
		Lhs: ast.Ident{Name: "a", Args: []ast.Node{}},
		Rhs: ast.Binary{
			Op:  ast.And,
			Lhs: ast.Ident{Name: "b", Args: []ast.Node{}},
			Rhs: ast.Ident{Name: "c", Args: []ast.Node{}},
		},
	}
	requireEqualNode(t, want, program.Items[0])
}

func TestParse_BangBindsTighterThanEquality(t *testing.T) {
	program := mustParse(t, "!x == y")
	want := ast.Binary{
		Op:  ast.Equality,
		Lhs: ast.Unary{Op: ast.Bang, Child: ast.Ident{Name: "x", Args: []ast.Node{}}},
		Rhs: ast.Ident{Name: "y", Args: []ast.Node{}},
	}
	requireEqualNode(t, want, program.Items[0])
}

func TestParse_UnaryStackingCancelsInPairs(t *testing.T) {
	cases := []struct {
		src  string
		want ast.Node
	}{
		{"--x", ast.Ident{Name: "x", Args: []ast.Node{}}},
		{"---x", ast.Unary{Op: ast.Minus, Child: ast.Ident{Name: "x", Args: []ast.Node{}}}},
		{"!!b", ast.Ident{Name: "b", Args: []ast.Node{}}},
	}
	for _, c := range cases {
		program := mustParse(t, c.src)
		requireEqualNode(t, c.want, program.Items[0])
	}
}

func TestParse_VarDeclClaimsAssignmentRole(t *testing.T) {
	program := mustParse(t, "x = 1 + 2")
	want := ast.Variable{
		Name: "x",
		Body: ast.Binary{Op: ast.Plus, Lhs: ast.Int{Value: bigInt(1)}, Rhs: ast.Int{Value: bigInt(2)}},
	}
	requireEqualNode(t, want, program.Items[0])
}

func TestParse_FunDeclProducesCallableVariable(t *testing.T) {
	program := mustParse(t, "add = fn x y { x + y }")
	v, ok := program.Items[0].(ast.Variable)
	require.True(t, ok)
	require.True(t, v.IsCallable())
	require.Equal(t, []string{"x", "y"}, v.Params)
}

func TestParse_CallArgumentIsGreedyOverFullExpression(t *testing.T) {
	// "f g 1" parses as "f (g 1)": g's own call greedily claims the 1,
	// so f receives exactly one argument, not two.
	program := mustParse(t, "f g 1")
	outer, ok := program.Items[0].(ast.Ident)
	require.True(t, ok)
	require.Equal(t, "f", outer.Name)
	require.Len(t, outer.Args, 1)
	inner, ok := outer.Args[0].(ast.Ident)
	require.True(t, ok)
	require.Equal(t, "g", inner.Name)
	require.Len(t, inner.Args, 1)
}

func TestParse_BlockIntroducesOwnSequence(t *testing.T) {
	program := mustParse(t, "{ x = 1\nprint x }")
	block, ok := program.Items[0].(ast.Block)
	require.True(t, ok)
	require.Len(t, block.Seq, 2)
}

func TestParse_IfThenElse(t *testing.T) {
	program := mustParse(t, `if true then "yes" else "no"`)
	want := ast.Conditional{
		Cond: ast.Bool{Value: true},
		Then: ast.Str{Value: "yes"},
		Else: ast.Str{Value: "no"},
	}
	requireEqualNode(t, want, program.Items[0])
}

func TestParse_LambdaArgument(t *testing.T) {
	program := mustParse(t, "apply fn x { x } 5")
	outer, ok := program.Items[0].(ast.Ident)
	require.True(t, ok)
	require.Equal(t, "apply", outer.Name)
	require.Len(t, outer.Args, 2)
	_, isLambda := outer.Args[0].(ast.Lambda)
	require.True(t, isLambda)
}

func requireEqualNode(t *testing.T, want, got ast.Node) {
	t.Helper()
	diff := cmp.Diff(want, got, cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}))
	if diff != "" {
		t.Fatalf("node mismatch (-want +got):\n%s", diff)
	}
}
