// Package trino provides the Trino SQL dialect.
//
// Importing this package registers the dialect:
//
//	import _ "github.com/leapstack-labs/sqlfront/pkg/dialects/trino"
package trino

import (
	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Dialect is the Trino dialect definition.
var Dialect *dialect.Dialect

func init() {
	Dialect = dialect.NewDialect(core.Trino).
		Description("Trino (formerly PrestoSQL)").
		IdentifierQuote('"').
		Keywords(token.Reserved...).
		TypeAliases(map[string]string{
			"int":              "integer",
			"double precision": "double",
			"float":            "real",
			"string":           "varchar",
		}).
		Parsers(ParseStatement, ParseExpression).
		Build()
	dialect.Register(Dialect)
}

// ParseStatement parses one Trino statement.
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

// ParseExpression parses one standalone Trino expression.
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
