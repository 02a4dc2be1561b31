// Package parser is the entry point for turning SQL text into the canonical AST.
//
// # Usage
//
//	opts, err := core.NewParsingOptionsWithDialect(core.AsDecimal, core.SparkSQL)
//	if err != nil {
//	    // handle error
//	}
//	stmt, err := parser.CreateStatement("SELECT any_value(x) FROM t", opts)
//
// The dialect named by the options selects the grammar and AST builder. Both
// bundled dialects are registered by importing this package.
package parser

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"

	// Register the bundled dialects.
	_ "github.com/leapstack-labs/sqlfront/pkg/dialects/sparksql"
	_ "github.com/leapstack-labs/sqlfront/pkg/dialects/trino"
)

// CreateStatement parses sql as a single statement in the dialect selected by opts.
func CreateStatement(sql string, opts core.ParsingOptions) (core.Statement, error) {
	d, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return d.ParseStatement(sql, opts)
}

// CreateExpression parses sql as a single standalone expression.
func CreateExpression(sql string, opts core.ParsingOptions) (core.Expression, error) {
	d, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return d.ParseExpression(sql, opts)
}

// CreateStatements parses independent statements concurrently. Results are in
// input order. The first failure cancels the remaining work and is returned
// with the index of the failing input.
func CreateStatements(ctx context.Context, sqls []string, opts core.ParsingOptions) ([]core.Statement, error) {
	d, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	results := make([]core.Statement, len(sqls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(Concurrency, 1))
	for i, sql := range sqls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stmt, err := d.ParseStatement(sql, opts)
			if err != nil {
				return &StatementError{Index: i, Err: err}
			}
			results[i] = stmt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Concurrency bounds the goroutines CreateStatements runs at once.
// Values below 1 mean one at a time.
var Concurrency = 8

func resolve(opts core.ParsingOptions) (*dialect.Dialect, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return dialect.Lookup(opts.SQLDialect())
}
