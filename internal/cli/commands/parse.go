package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Files      []string
	Expression bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [SQL...]",
		Short: "Parse SQL into the canonical AST",
		Long: `Parse Trino or SparkSQL text into the dialect-independent AST.

Each argument or file is one statement. Without arguments or files the SQL is
read from stdin. The tree can be printed as an outline, re-rendered as SQL, or
serialized as JSON or YAML.`,
		Example: `  # Show the tree for a Trino query
  sqlfront parse "SELECT a, b FROM t WHERE x = 1"

  # Normalize SparkSQL, keeping decimals exact
  sqlfront parse --dialect sparksql --decimal as_decimal -o sql "SELECT 1.5BD, x FROM t WHERE a == b"

  # Parse a standalone expression as JSON
  sqlfront parse --expression -o json "ANY_VALUE(x IGNORE NULLS)"

  # Read from a file or stdin
  sqlfront parse -f query.sql
  echo "SELECT 1" | sqlfront parse -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Files, "file", "f", nil, "Read SQL from file (repeatable)")
	cmd.Flags().BoolVarP(&opts.Expression, "expression", "e", false, "Parse standalone expressions instead of statements")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	cc := NewCommandContext(cmd)

	popts, d, err := cc.ParsingOptions()
	if err != nil {
		return err
	}

	sources, err := readSources(cmd, args, opts.Files)
	if err != nil {
		return err
	}

	start := time.Now()
	nodes, err := parseSources(cmd, sources, popts, opts.Expression)
	if err != nil {
		return err
	}
	cc.Logger.Debug("parsed input",
		"dialect", popts.SQLDialect(),
		"decimal", popts.DecimalLiteralTreatment(),
		"count", len(nodes),
		"elapsed", time.Since(start))

	return renderNodes(cc.Out, nodes, resolveOutput(cc.Cfg.Output, cc.Out), d)
}

// readSources collects SQL texts from arguments, then files, then stdin.
func readSources(cmd *cobra.Command, args, files []string) ([]string, error) {
	sources := append([]string(nil), args...)
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		sources = append(sources, string(content))
	}
	if len(sources) > 0 {
		return sources, nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return nil, errors.New("no SQL given (pass it as an argument, with --file, or on stdin)")
	}
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return nil, errors.New("no SQL given on stdin")
	}
	return []string{string(content)}, nil
}

func parseSources(cmd *cobra.Command, sources []string, opts core.ParsingOptions, expression bool) ([]core.Node, error) {
	nodes := make([]core.Node, 0, len(sources))
	if expression {
		for _, sql := range sources {
			expr, err := parser.CreateExpression(sql, opts)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, expr)
		}
		return nodes, nil
	}

	if len(sources) == 1 {
		stmt, err := parser.CreateStatement(sources[0], opts)
		if err != nil {
			return nil, err
		}
		return append(nodes, stmt), nil
	}

	stmts, err := parser.CreateStatements(cmd.Context(), sources, opts)
	if err != nil {
		return nil, err
	}
	for _, s := range stmts {
		nodes = append(nodes, s)
	}
	return nodes, nil
}
