package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	"github.com/leapstack-labs/sqlfront/pkg/dialects/sparksql"
	"github.com/leapstack-labs/sqlfront/pkg/dialects/trino"
	"github.com/leapstack-labs/sqlfront/pkg/format"
)

func decimalOptions(t *testing.T, d core.SQLDialect) core.ParsingOptions {
	t.Helper()
	opts, err := core.NewParsingOptionsWithDialect(core.AsDecimal, d)
	require.NoError(t, err)
	return opts
}

func TestFormat_Layout(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "simple select",
			input: "SELECT a, b FROM t",
			expected: `SELECT
  a,
  b
FROM t`,
		},
		{
			name:  "select with where",
			input: "select a from t where x = 1",
			expected: `SELECT
  a
FROM t
WHERE
  x = 1`,
		},
		{
			name:  "aliases and star",
			input: "SELECT t.*, a col1, count(*) AS n FROM db.t AS x",
			expected: `SELECT
  t.*,
  a AS col1,
  count(*) AS n
FROM db.t AS x`,
		},
		{
			name:  "joins",
			input: "SELECT 1 FROM a JOIN b ON a.id = b.id LEFT OUTER JOIN c ON b.id = c.id CROSS JOIN d",
			expected: `SELECT
  1
FROM a
JOIN b ON a.id = b.id
LEFT JOIN c ON b.id = c.id
CROSS JOIN d`,
		},
		{
			name:  "grouping ordering limit",
			input: "SELECT DISTINCT a FROM t GROUP BY a, b HAVING count(*) > 1 ORDER BY a DESC NULLS LAST, b LIMIT 10",
			expected: `SELECT DISTINCT
  a
FROM t
GROUP BY
  a,
  b
HAVING
  count(*) > 1
ORDER BY
  a DESC NULLS LAST,
  b
LIMIT 10`,
		},
		{
			name:  "subquery",
			input: "SELECT x FROM (SELECT 1 AS x) s WHERE x IN (SELECT 1)",
			expected: `SELECT
  x
FROM (
  SELECT
    1 AS x
) AS s
WHERE
  x IN (
    SELECT
      1
  )`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := trino.ParseStatement(tt.input, core.DefaultParsingOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format.Format(stmt))
		})
	}
}

func TestFormat_Expressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "(a + b) * c", expected: "(a + b) * c"},
		{input: "a - (b - c)", expected: "a - (b - c)"},
		{input: "a - b - c", expected: "a - b - c"},
		{input: "NOT (a OR b)", expected: "NOT (a OR b)"},
		{input: "(a OR b) AND c", expected: "(a OR b) AND c"},
		{input: "a OR b AND c", expected: "a OR b AND c"},
		{input: "- (-x)", expected: "-(-x)"},
		{input: "x NOT BETWEEN 1 AND 2", expected: "NOT x BETWEEN 1 AND 2"},
		{input: "x not in (1, 2)", expected: "NOT x IN (1, 2)"},
		{input: "x LIKE 'a%' ESCAPE '!'", expected: "x LIKE 'a%' ESCAPE '!'"},
		{input: "x IS NOT NULL", expected: "x IS NOT NULL"},
		{input: "'it''s'", expected: "'it''s'"},
		{input: `"Order"."select"`, expected: `"Order"."select"`},
		{input: "try_cast(x AS int)", expected: "TRY_CAST(x AS integer)"},
		{input: "CASE WHEN a THEN 1 ELSE 2 END", expected: "CASE WHEN a THEN 1 ELSE 2 END"},
		{input: "case x when 1 then 'a' end", expected: "CASE x WHEN 1 THEN 'a' END"},
		{input: "arbitrary(x)", expected: "any_value(x)"},
		{input: "f(DISTINCT a, b)", expected: "f(DISTINCT a, b)"},
		{input: "? + ?", expected: "? + ?"},
		{input: "1.50", expected: "1.50"},
		{input: "x || 'a'", expected: "concat(x, 'a')"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := trino.ParseExpression(tt.input, decimalOptions(t, core.Trino))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format.Format(expr))
		})
	}
}

func TestFormat_DoublePrintsExponent(t *testing.T) {
	assert.Equal(t, "1.5E+00", format.Format(&core.DoubleLiteral{Value: 1.5}))
	assert.Equal(t, "-(-2E+00)", format.Format(&core.ArithmeticUnaryExpression{
		Sign:  core.Minus,
		Value: &core.DoubleLiteral{Value: -2},
	}))
}

// A formatted statement re-parses to an equal tree.
func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"SELECT a, b AS c FROM t WHERE x = 1 AND (y < 2 OR z IS NULL)",
		`SELECT "Col", t.* FROM "Sch"."T" t LEFT JOIN u ON t.id = u.id, v ORDER BY 1 DESC NULLS FIRST LIMIT ALL`,
		"SELECT count(*), sum(DISTINCT x) FROM t GROUP BY y HAVING count(*) > 1.25",
		"SELECT CASE WHEN a > 1 THEN 'x''y' ELSE NULL END, CAST(b AS decimal(10,2)), -(-c), -1e3 FROM t",
		"SELECT ? FROM t WHERE a NOT LIKE ? AND b NOT IN (SELECT c FROM d) AND e BETWEEN 1 AND ?",
		"EXPLAIN SELECT x FROM (SELECT 1 AS x) AS s",
		"SELECT (a - (b - c)) * (d / e % f), a || b FROM t",
		"SELECT 1., 0., 12.000, .5 FROM t WHERE x > 100.",
	}
	opts := decimalOptions(t, core.Trino)
	for _, sql := range inputs {
		t.Run(sql, func(t *testing.T) {
			stmt, err := trino.ParseStatement(sql, opts)
			require.NoError(t, err)

			formatted := format.Format(stmt)
			again, err := trino.ParseStatement(formatted, opts)
			require.NoError(t, err, formatted)
			assert.True(t, core.Equal(stmt, again), formatted)
		})
	}
}

func TestFormatDialect_SparkRoundTrip(t *testing.T) {
	inputs := []string{
		"SELECT `my col`, ANY_VALUE(x IGNORE NULLS), any_value(y, false) FROM `db`.`t`",
		"SELECT 1.5BD, 2D, 3L, `ignore` FROM t WHERE a == b",
		"SELECT 1.5E2BD, 150BD, 1.50, 7. FROM `t`",
	}
	opts := decimalOptions(t, core.SparkSQL)
	for _, sql := range inputs {
		t.Run(sql, func(t *testing.T) {
			stmt, err := sparksql.ParseStatement(sql, opts)
			require.NoError(t, err)

			formatted := format.FormatDialect(stmt, sparksql.Dialect)
			assert.Contains(t, formatted, "`")
			again, err := sparksql.ParseStatement(formatted, opts)
			require.NoError(t, err, formatted)
			assert.True(t, core.Equal(stmt, again), formatted)
		})
	}
}

func TestFormat_ZeroScaleDecimal(t *testing.T) {
	trinoStmt, err := trino.ParseStatement("SELECT 1. FROM t", decimalOptions(t, core.Trino))
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  1.\nFROM t", format.Format(trinoStmt))

	sparkStmt, err := sparksql.ParseStatement("SELECT 1.5E2BD FROM t", decimalOptions(t, core.SparkSQL))
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  150BD\nFROM t", format.FormatDialect(sparkStmt, sparksql.Dialect))
	assert.Equal(t, "SELECT\n  150.\nFROM t", format.Format(sparkStmt))
}

// Exact decimals carry their suffix, so Spark output re-parses even when
// plain decimals are rejected.
func TestFormatDialect_SparkRoundTripUnderReject(t *testing.T) {
	rejecting, err := core.NewParsingOptionsWithDialect(core.Reject, core.SparkSQL)
	require.NoError(t, err)

	inputs := []string{
		"SELECT 1.5BD, 1.5E2BD, 150BD, 0.250BD FROM t",
		"SELECT 2D, 3L, 4S, 5Y, -1.5BD FROM t WHERE a > 10.BD",
	}
	for _, sql := range inputs {
		t.Run(sql, func(t *testing.T) {
			stmt, err := sparksql.ParseStatement(sql, rejecting)
			require.NoError(t, err)

			formatted := format.FormatDialect(stmt, sparksql.Dialect)
			again, err := sparksql.ParseStatement(formatted, rejecting)
			require.NoError(t, err, formatted)
			assert.True(t, core.Equal(stmt, again), formatted)
		})
	}
}

func TestQuoteString(t *testing.T) {
	loc := core.NewNodeLocation(1, 1)
	for _, s := range []string{"", "plain", "it's", "''", "a\nb", `back\slash`} {
		quoted := format.QuoteString(s)
		got, err := dialect.UnquoteString(quoted, loc)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "'it''s'", format.QuoteString("it's"))
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "abc", want: "abc"},
		{name: "Mixed_Case1", want: "Mixed_Case1"},
		{name: "select", want: `"select"`},
		{name: "my col", want: `"my col"`},
		{name: `a"b`, want: `"a""b"`},
		{name: "1abc", want: `"1abc"`},
		{name: "", want: `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.QuoteIdentifier(tt.name))
		})
	}
}

func TestFormat_Nil(t *testing.T) {
	assert.Empty(t, format.Format(nil))
}

func FuzzQuoteString(f *testing.F) {
	for _, seed := range []string{"", "plain", "it's", "''", "'", "a\nb", `back\slash`, "\"double\"", "ünïcødé", "\x00"} {
		f.Add(seed)
	}
	loc := core.NewNodeLocation(1, 1)
	f.Fuzz(func(t *testing.T, s string) {
		quoted := format.QuoteString(s)
		got, err := dialect.UnquoteString(quoted, loc)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})
}
