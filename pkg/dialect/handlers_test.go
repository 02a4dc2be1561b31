package dialect_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

func TestLocation(t *testing.T) {
	loc := dialect.Location(token.Position{Line: 3, LineOffset: 4})
	assert.Equal(t, core.NewNodeLocation(3, 5), loc)

	// participle columns are already 1-based
	assert.Equal(t, core.NewNodeLocation(2, 7), dialect.LocationOf(lexer.Position{Line: 2, Column: 7}))
}

func TestUnquoteString(t *testing.T) {
	loc := core.NewNodeLocation(1, 1)
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `'it''s'`, want: "it's"},
		{raw: `''`, want: ""},
		{raw: `'abc'`, want: "abc"},
		{raw: `''''`, want: "'"},
		{raw: `'a\nb'`, want: `a\nb`},
		{raw: `'"'`, want: `"`},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := dialect.UnquoteString(tt.raw, loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnquote_Malformed(t *testing.T) {
	loc := core.NewNodeLocation(4, 2)
	for _, raw := range []string{"", "'", "abc", `'abc`} {
		_, err := dialect.UnquoteString(raw, loc)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, core.ErrMalformedToken)

		var coreErr *core.Error
		require.ErrorAs(t, err, &coreErr)
		assert.Equal(t, &loc, coreErr.Location)
	}
}

func TestUnquote_Identifiers(t *testing.T) {
	loc := core.NewNodeLocation(1, 1)
	got, err := dialect.Unquote(`"a""b"`, '"', loc)
	require.NoError(t, err)
	assert.Equal(t, `a"b`, got)

	got, err = dialect.Unquote("`x``y`", '`', loc)
	require.NoError(t, err)
	assert.Equal(t, "x`y", got)
}

func TestClassifyNumber(t *testing.T) {
	assert.Equal(t, dialect.Integer, dialect.ClassifyNumber("42"))
	assert.Equal(t, dialect.Decimal, dialect.ClassifyNumber("1.5"))
	assert.Equal(t, dialect.Decimal, dialect.ClassifyNumber(".5"))
	assert.Equal(t, dialect.Double, dialect.ClassifyNumber("1.5e3"))
	assert.Equal(t, dialect.Double, dialect.ClassifyNumber("2E-1"))
}

func TestNumericLiteral_DecimalPolicy(t *testing.T) {
	base := core.At(core.NewNodeLocation(1, 8))

	lit, err := dialect.NumericLiteral("1.5", base, core.AsDouble)
	require.NoError(t, err)
	assert.Equal(t, 1.5, lit.(*core.DoubleLiteral).Value)

	lit, err = dialect.NumericLiteral("1.50", base, core.AsDecimal)
	require.NoError(t, err)
	dec := lit.(*core.DecimalLiteral)
	assert.Equal(t, "1.50", dec.Text())
	assert.Equal(t, 2, dec.Scale)

	_, err = dialect.NumericLiteral("1.5", base, core.Reject)
	require.Error(t, err)
	var coreErr *core.Error
	require.ErrorAs(t, err, &coreErr)
	assert.Equal(t, core.UnsupportedLiteral, coreErr.Kind)
	assert.Equal(t, core.NewNodeLocation(1, 8), *coreErr.Location)
}

func TestNumericLiteral_PolicyOnlyForDecimals(t *testing.T) {
	base := core.BaseNode{}
	lit, err := dialect.NumericLiteral("1e3", base, core.Reject)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, lit.(*core.DoubleLiteral).Value)

	lit, err = dialect.NumericLiteral("7", base, core.Reject)
	require.NoError(t, err)
	assert.Equal(t, int64(7), lit.(*core.LongLiteral).Value)

	_, err = dialect.NumericLiteral("99999999999999999999", base, core.Reject)
	assert.ErrorIs(t, err, core.ErrUnsupportedLiteral)

	_, err = dialect.NumericLiteral("1e999", base, core.Reject)
	assert.ErrorIs(t, err, core.ErrUnsupportedLiteral)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "integer", dialect.TypeName("integer", nil))
	assert.Equal(t, "decimal(10,2)", dialect.TypeName("decimal", []string{"10", "2"}))
}

func TestSyntaxError(t *testing.T) {
	assert.NoError(t, dialect.SyntaxError(nil))

	err := dialect.SyntaxError(&lexer.Error{Msg: "invalid input text", Pos: lexer.Position{Line: 2, Column: 4}})
	var coreErr *core.Error
	require.ErrorAs(t, err, &coreErr)
	assert.Equal(t, core.SyntaxError, coreErr.Kind)
	assert.Equal(t, core.NewNodeLocation(2, 4), *coreErr.Location)
	assert.Equal(t, "invalid input text", coreErr.Message)
}
