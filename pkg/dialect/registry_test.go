package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
)

const fakeDialect = core.SQLDialect(99)

func newFake() *dialect.Dialect {
	return dialect.NewDialect(fakeDialect).
		Description("test dialect").
		IdentifierQuote('`').
		Keywords("select", "From").
		TypeAliases(map[string]string{"INT": "integer"}).
		Parsers(
			func(string, core.ParsingOptions) (core.Statement, error) { return &core.Query{}, nil },
			func(string, core.ParsingOptions) (core.Expression, error) { return &core.NullLiteral{}, nil },
		).
		Build()
}

func TestRegistry(t *testing.T) {
	dialect.Register(newFake())

	d, ok := dialect.Get(fakeDialect)
	require.True(t, ok)
	assert.Equal(t, "test dialect", d.Description)
	assert.Contains(t, dialect.List(), fakeDialect)

	stmt, err := d.ParseStatement("SELECT 1", core.DefaultParsingOptions())
	require.NoError(t, err)
	assert.IsType(t, &core.Query{}, stmt)

	_, err = dialect.Lookup(core.SQLDialect(100))
	assert.ErrorIs(t, err, core.ErrUnsupportedConstruct)
}

func TestDialectMetadata(t *testing.T) {
	d := newFake()
	assert.Equal(t, []string{"FROM", "SELECT"}, d.Keywords())
	assert.True(t, d.IsKeyword("from"))
	assert.False(t, d.IsKeyword("where"))
	assert.Equal(t, byte('`'), d.IdentifierQuote)

	assert.Equal(t, "integer", d.NormalizeType("Int"))
	assert.Equal(t, "varchar", d.NormalizeType("VARCHAR"))
	assert.Equal(t, map[string]string{"int": "integer"}, d.TypeAliases())
}

func TestBuildRequiresParsers(t *testing.T) {
	assert.Panics(t, func() { dialect.NewDialect(fakeDialect).Build() })
}
