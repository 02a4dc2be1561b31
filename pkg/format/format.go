package format

import (
	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Format renders node as Trino-flavoured SQL.
//
// Decimal literals print as plain digits and so re-parse only under the
// AS_DECIMAL treatment. FormatDialect with a dialect that has a decimal
// suffix prints it instead, which re-parses under any treatment. Doubles
// always print with an exponent.
func Format(node core.Node) string {
	return FormatDialect(node, nil)
}

// FormatDialect renders node using d's identifier quoting and keywords.
func FormatDialect(node core.Node, d *dialect.Dialect) string {
	if node == nil {
		return ""
	}
	p := newPrinter(d)
	p.node(node, precLowest)
	return p.String()
}

// QuoteString renders s as a single-quoted SQL string literal.
// It is the inverse of unquoting: every ' is doubled.
func QuoteString(s string) string {
	return quoteWith(s, '\'')
}

// QuoteIdentifier double-quotes name when it is not a bare identifier or is reserved.
func QuoteIdentifier(name string) string {
	if bareIdentifier.MatchString(name) && !token.IsReserved(name) {
		return name
	}
	return quoteWith(name, '"')
}
