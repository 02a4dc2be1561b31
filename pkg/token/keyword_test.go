package token_test

import (
	"regexp"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sqlfront/pkg/token"
)

func TestKeywordPattern(t *testing.T) {
	re := regexp.MustCompile(`^(?:` + token.KeywordPattern("ANY_VALUE", "IGNORE") + `)`)

	tests := []struct {
		input string
		want  string
	}{
		{input: "select a", want: "select"},
		{input: "SELECTED", want: ""},
		{input: "any_value(x)", want: "any_value"},
		{input: "ignore nulls", want: "ignore"},
		{input: "in_list", want: ""},
		{input: "INNER JOIN", want: "INNER"},
		{input: "TRY_CAST(", want: "TRY_CAST"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, re.FindString(tt.input))
		})
	}
}

func TestIsReserved(t *testing.T) {
	assert.True(t, token.IsReserved("select"))
	assert.True(t, token.IsReserved("Nulls"))
	assert.False(t, token.IsReserved("any_value"))
	assert.False(t, token.IsReserved("arbitrary"))
}

func TestFromLexer(t *testing.T) {
	pos := token.FromLexer(lexer.Position{Line: 3, Column: 5, Offset: 20})
	assert.Equal(t, token.Position{Line: 3, LineOffset: 4, Offset: 20}, pos)
	assert.True(t, pos.IsValid())
	assert.False(t, token.Position{}.IsValid())
}
