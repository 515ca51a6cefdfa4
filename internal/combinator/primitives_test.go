package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier_RejectsEmptyOrNonAlphabeticLead(t *testing.T) {
	_, err := Identifier()(NewState(""))
	assert.Error(t, err)

	_, err = Identifier()(NewState("1abc"))
	assert.Error(t, err)
}

func TestIdentifier_AllowsDigitsAndUnderscoreAfterLead(t *testing.T) {
	r, err := Identifier()(NewState("x_1y 2"))
	assert.NoError(t, err)
	assert.Equal(t, "x_1y", r.Value)
	assert.Equal(t, " 2", r.State.Remaining)
}

func TestNumberLit_IntVsFloat(t *testing.T) {
	r, err := NumberLit()(NewState("123 rest"))
	assert.NoError(t, err)
	assert.Equal(t, Number{Text: "123", IsFloat: false}, r.Value)

	r, err = NumberLit()(NewState("1.5 rest"))
	assert.NoError(t, err)
	assert.Equal(t, Number{Text: "1.5", IsFloat: true}, r.Value)
}

func TestNumberLit_RejectsNonNumericLead(t *testing.T) {
	_, err := NumberLit()(NewState("abc"))
	assert.Error(t, err)
}

func TestQuotedString_NoEscapeProcessing(t *testing.T) {
	r, err := QuotedString()(NewState(`"hi \n there" rest`))
	assert.NoError(t, err)
	assert.Equal(t, `hi \n there`, r.Value)
	assert.Equal(t, " rest", r.State.Remaining)
}

func TestQuotedString_FailsOnUnterminated(t *testing.T) {
	_, err := QuotedString()(NewState(`"hi`))
	assert.Error(t, err)
}

func TestWhitespace0_AlwaysSucceeds(t *testing.T) {
	r, err := Whitespace0()(NewState("abc"))
	assert.NoError(t, err)
	assert.Equal(t, "abc", r.State.Remaining)
}

func TestWhitespace1_FailsOnNone(t *testing.T) {
	_, err := Whitespace1()(NewState("abc"))
	assert.Error(t, err)
}

func TestAnyChar_FailsOnEmpty(t *testing.T) {
	_, err := AnyChar()(NewState(""))
	assert.Error(t, err)
}
