// Package sparksql provides the Apache Spark SQL dialect.
//
// Importing this package registers the dialect:
//
//	import _ "github.com/leapstack-labs/sqlfront/pkg/dialects/sparksql"
package sparksql

import (
	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Dialect is the Spark SQL dialect definition.
var Dialect *dialect.Dialect

func init() {
	Dialect = dialect.NewDialect(core.SparkSQL).
		Description("Apache Spark SQL").
		IdentifierQuote('`').
		DecimalSuffix("BD").
		Keywords(token.Reserved...).
		Keywords("ANY_VALUE", "IGNORE").
		TypeAliases(map[string]string{
			"int":    "integer",
			"long":   "bigint",
			"short":  "smallint",
			"byte":   "tinyint",
			"float":  "real",
			"string": "varchar",
		}).
		Parsers(ParseStatement, ParseExpression).
		Build()
	dialect.Register(Dialect)
}

// ParseStatement parses one Spark SQL statement.
func ParseStatement(sql string, opts core.ParsingOptions) (core.Statement, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tree, err := statementParser.ParseString("", sql)
	if err != nil {
		return nil, dialect.SyntaxError(err)
	}
	return NewAstBuilder(opts).BuildStatement(tree)
}

// ParseExpression parses one standalone Spark SQL expression.
func ParseExpression(sql string, opts core.ParsingOptions) (core.Expression, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tree, err := expressionParser.ParseString("", sql)
	if err != nil {
		return nil, dialect.SyntaxError(err)
	}
	return NewAstBuilder(opts).BuildExpression(tree)
}
