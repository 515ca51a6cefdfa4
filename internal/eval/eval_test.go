package eval

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/gomix/internal/diag"
	"github.com/akashmaji946/gomix/internal/env"
	"github.com/akashmaji946/gomix/internal/grammar"
	"github.com/akashmaji946/gomix/internal/value"
)

func runSource(t *testing.T, src string) (string, value.Value, error) {
	t.Helper()
	program, err := grammar.Parse(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	ev := &Evaluator{Writer: &buf, Log: log}

	scope := env.Fresh()
	var last value.Value = value.Unit{}
	for _, item := range program.Items {
		v, next, evalErr := ev.Eval(item, scope)
		if evalErr != nil {
			return buf.String(), nil, evalErr
		}
		last = v
		scope = next
	}
	return buf.String(), last, nil
}

func TestEndToEnd_OperatorPrecedencePrint(t *testing.T) {
	out, _, err := runSource(t, "print 1 + 2 * 3")
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestEndToEnd_VariableReferenceAndArithmetic(t *testing.T) {
	out, _, err := runSource(t, "x = 10\nprint x - 4")
	require.NoError(t, err)
	require.Equal(t, "6\n", out)
}

func TestEndToEnd_FunctionCallByNeedArguments(t *testing.T) {
	out, _, err := runSource(t, "add = fn x y { x + y }\nprint add 2 3")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestEndToEnd_ConditionalTakenBranch(t *testing.T) {
	out, _, err := runSource(t, `print if true then "yes" else "no"`)
	require.NoError(t, err)
	require.Equal(t, "yes\n", out)
}

func TestEndToEnd_RebindingIsMutationError(t *testing.T) {
	_, _, err := runSource(t, "x = 1\nx = 2")
	require.Error(t, err)
	evalErr, ok := err.(*diag.EvalError)
	require.True(t, ok)
	require.Equal(t, diag.Mutation, evalErr.Kind)
	require.Equal(t, "x", evalErr.Name)
}

func TestEndToEnd_StringConcatenation(t *testing.T) {
	out, _, err := runSource(t, `print "hi" + " " + "there"`)
	require.NoError(t, err)
	require.Equal(t, "hi there\n", out)
}

func TestTypeDiscipline_IntPlusFloatIsTypeError(t *testing.T) {
	_, _, err := runSource(t, "print 1 + 1.0")
	require.Error(t, err)
	evalErr, ok := err.(*diag.EvalError)
	require.True(t, ok)
	require.Equal(t, diag.TypeError, evalErr.Kind)
}

func TestTypeDiscipline_StringMinusIsTypeError(t *testing.T) {
	_, _, err := runSource(t, `print "a" - "b"`)
	require.Error(t, err)
	evalErr, ok := err.(*diag.EvalError)
	require.True(t, ok)
	require.Equal(t, diag.TypeError, evalErr.Kind)
}

func TestTypeDiscipline_AndRequiresBooleans(t *testing.T) {
	_, _, err := runSource(t, "print true and 1")
	require.Error(t, err)
	evalErr, ok := err.(*diag.EvalError)
	require.True(t, ok)
	require.Equal(t, diag.MismatchedType, evalErr.Kind)
}

func TestBlockScoping_InnerDeclarationsDoNotLeak(t *testing.T) {
	_, _, err := runSource(t, "{ y = 1 }\nprint y")
	require.Error(t, err)
	evalErr, ok := err.(*diag.EvalError)
	require.True(t, ok)
	require.Equal(t, diag.UnknownIdent, evalErr.Kind)
}

func TestIntDivisionByZero_IsEvalErrorNotPanic(t *testing.T) {
	_, _, err := runSource(t, "print 1 / 0")
	require.Error(t, err)
	evalErr, ok := err.(*diag.EvalError)
	require.True(t, ok)
	require.Equal(t, diag.Arithmetic, evalErr.Kind)
}

func TestFunctionCall_ArityMismatchIsFunctionParametersError(t *testing.T) {
	_, _, err := runSource(t, "add = fn x y { x + y }\nprint add 1")
	require.Error(t, err)
	evalErr, ok := err.(*diag.EvalError)
	require.True(t, ok)
	require.Equal(t, diag.FunctionParameters, evalErr.Kind)
	require.Equal(t, 2, evalErr.Expected)
	require.Equal(t, 1, evalErr.Got)
}

func TestUnknownIdentifier(t *testing.T) {
	_, _, err := runSource(t, "print nope")
	require.Error(t, err)
	evalErr, ok := err.(*diag.EvalError)
	require.True(t, ok)
	require.Equal(t, diag.UnknownIdent, evalErr.Kind)
	require.Equal(t, "nope", evalErr.Name)
}

func TestCallByNeed_UnevaluatedArgumentUsedAtEachReference(t *testing.T) {
	// "twice" references its argument expression twice; each reference
	// re-evaluates the unevaluated AST rather than a cached value. With
	// a pure argument this is only observable as the value being used
	// consistently on both references.
	out, _, err := runSource(t, "twice = fn x { print x\nprint x }\ntwice 1 + 1")
	require.NoError(t, err)
	require.Equal(t, "2\n2\n", out)
}

func TestLambdaArgument_IsCallableInsideCallee(t *testing.T) {
	out, _, err := runSource(t, "apply = fn f { f }\nprint apply fn { 9 }")
	require.NoError(t, err)
	require.Equal(t, "9\n", out)
}
