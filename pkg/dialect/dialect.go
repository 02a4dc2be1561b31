// Package dialect provides the runtime contract for SQL dialects.
//
// A Dialect pairs a grammar with the AST builder that translates its parse trees
// into the canonical tree of pkg/core. Concrete dialects are registered from
// pkg/dialects/*/ packages.
package dialect

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

// StatementParser parses one statement of SQL text into a canonical Statement.
type StatementParser func(sql string, opts core.ParsingOptions) (core.Statement, error)

// ExpressionParser parses one standalone expression of SQL text.
type ExpressionParser func(sql string, opts core.ParsingOptions) (core.Expression, error)

// Dialect represents a registered SQL dialect.
type Dialect struct {
	Name        core.SQLDialect
	Description string

	// IdentifierQuote delimits quoted identifiers (" for Trino, ` for SparkSQL).
	IdentifierQuote byte

	// DecimalSuffix marks exact decimal literals that bypass the decimal
	// policy, e.g. BD in SparkSQL. Empty when the dialect has none.
	DecimalSuffix string

	keywords    map[string]struct{}
	typeAliases map[string]string

	parseStatement  StatementParser
	parseExpression ExpressionParser
}

// ParseStatement parses sql as a single statement with a fresh builder.
func (d *Dialect) ParseStatement(sql string, opts core.ParsingOptions) (core.Statement, error) {
	return d.parseStatement(sql, opts)
}

// ParseExpression parses sql as a single expression with a fresh builder.
func (d *Dialect) ParseExpression(sql string, opts core.ParsingOptions) (core.Expression, error) {
	return d.parseExpression(sql, opts)
}

// Keywords returns the dialect's reserved keywords, sorted.
func (d *Dialect) Keywords() []string {
	out := make([]string, 0, len(d.keywords))
	for k := range d.keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsKeyword reports whether word is reserved in this dialect.
func (d *Dialect) IsKeyword(word string) bool {
	_, ok := d.keywords[strings.ToUpper(word)]
	return ok
}

// NormalizeType maps a dialect type name to its canonical lower-case spelling.
// Unknown names are lower-cased.
func (d *Dialect) NormalizeType(name string) string {
	lower := strings.ToLower(name)
	if canonical, ok := d.typeAliases[lower]; ok {
		return canonical
	}
	return lower
}

// TypeAliases returns a copy of the dialect type name mapping.
func (d *Dialect) TypeAliases() map[string]string {
	out := make(map[string]string, len(d.typeAliases))
	for k, v := range d.typeAliases {
		out[k] = v
	}
	return out
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name core.SQLDialect) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name:            name,
			IdentifierQuote: '"',
			keywords:        make(map[string]struct{}),
			typeAliases:     make(map[string]string),
		},
	}
}

// Description sets a one-line summary shown by tooling.
func (b *Builder) Description(text string) *Builder {
	b.dialect.Description = text
	return b
}

// IdentifierQuote sets the identifier delimiter.
func (b *Builder) IdentifierQuote(quote byte) *Builder {
	b.dialect.IdentifierQuote = quote
	return b
}

// DecimalSuffix sets the exact decimal literal suffix.
func (b *Builder) DecimalSuffix(suffix string) *Builder {
	b.dialect.DecimalSuffix = suffix
	return b
}

// Keywords adds reserved keywords.
func (b *Builder) Keywords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.keywords[strings.ToUpper(w)] = struct{}{}
	}
	return b
}

// TypeAliases adds dialect type names and their canonical spelling.
func (b *Builder) TypeAliases(aliases map[string]string) *Builder {
	for k, v := range aliases {
		b.dialect.typeAliases[strings.ToLower(k)] = v
	}
	return b
}

// Parsers sets the statement and expression entry points.
func (b *Builder) Parsers(stmt StatementParser, expr ExpressionParser) *Builder {
	b.dialect.parseStatement = stmt
	b.dialect.parseExpression = expr
	return b
}

// Build returns the dialect. It panics if no parsers were set.
func (b *Builder) Build() *Dialect {
	if b.dialect.parseStatement == nil || b.dialect.parseExpression == nil {
		panic("dialect: " + b.dialect.Name.String() + " has no parsers")
	}
	return b.dialect
}
