package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	"github.com/leapstack-labs/sqlfront/internal/cli/testutil"
	"github.com/leapstack-labs/sqlfront/pkg/core"
)

func TestParseCommand_SQLOutput(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		stdin   string
		args    []string
		want    string
	}{
		{
			name:    "trino argument",
			dialect: "trino",
			args:    []string{"select a from t where x = 1"},
			want:    "SELECT\n  a\nFROM t\nWHERE\n  x = 1;\n",
		},
		{
			name:    "spark keeps backticks",
			dialect: "sparksql",
			args:    []string{"SELECT `my col` FROM t WHERE a == 1.5BD"},
			want:    "SELECT\n  `my col`\nFROM t\nWHERE\n  a = 1.5BD;\n",
		},
		{
			name:    "stdin",
			dialect: "trino",
			stdin:   "SELECT 1;\n",
			want:    "SELECT\n  1;\n",
		},
		{
			name:    "expression",
			dialect: "sparksql",
			args:    []string{"--expression", "ANY_VALUE(x) IGNORE NULLS"},
			want:    "any_value(x IGNORE NULLS)\n",
		},
		{
			name:    "several statements",
			dialect: "trino",
			args:    []string{"SELECT 1", "SELECT 2"},
			want:    "SELECT\n  1;\n\nSELECT\n  2;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testutil.Run(t, NewParseCommand(), testutil.Config(tt.dialect), tt.stdin, tt.args...)
			require.NoError(t, res.Err)
			assert.Equal(t, tt.want, res.Out)
		})
	}
}

func TestParseCommand_File(t *testing.T) {
	path := testutil.WriteSQLFile(t, "query.sql", "SELECT *\nFROM orders\nLIMIT 10\n")

	res := testutil.Run(t, NewParseCommand(), testutil.Config("trino"), "", "-f", path)
	require.NoError(t, res.Err)
	assert.Equal(t, "SELECT\n  *\nFROM orders\nLIMIT 10;\n", res.Out)
}

func TestParseCommand_JSON(t *testing.T) {
	cfg := testutil.Config("trino")
	cfg.Output = config.OutputJSON

	res := testutil.Run(t, NewParseCommand(), cfg, "", "--expression", "a + 1")
	require.NoError(t, res.Err)

	var view NodeView
	require.NoError(t, json.Unmarshal([]byte(res.Out), &view))
	assert.Equal(t, "ArithmeticBinaryExpression", view.Type)
	assert.Equal(t, "1:3", view.Location)
	assert.Equal(t, "ADD", view.Attrs["operator"])
	require.Len(t, view.Children, 2)
	assert.Equal(t, "Identifier", view.Children[0].Type)
	assert.Equal(t, "a", view.Children[0].Attrs["value"])
	assert.Equal(t, false, view.Children[0].Attrs["delimited"])
	assert.Equal(t, "LongLiteral", view.Children[1].Type)
	assert.Equal(t, float64(1), view.Children[1].Attrs["value"])
}

func TestParseCommand_YAML(t *testing.T) {
	cfg := testutil.Config("sparksql")
	cfg.Output = config.OutputYAML

	res := testutil.Run(t, NewParseCommand(), cfg, "", "--expression", "x IN (1, ?)")
	require.NoError(t, res.Err)

	var view NodeView
	require.NoError(t, yaml.Unmarshal([]byte(res.Out), &view))
	assert.Equal(t, "InPredicate", view.Type)
	require.Len(t, view.Children, 2)
	list := view.Children[1]
	assert.Equal(t, "InListExpression", list.Type)
	require.Len(t, list.Children, 2)
	assert.Equal(t, "Parameter", list.Children[1].Type)
	assert.Equal(t, 0, list.Children[1].Attrs["position"])
}

func TestParseCommand_Tree(t *testing.T) {
	cfg := testutil.Config("trino")
	cfg.Output = config.OutputTree

	res := testutil.Run(t, NewParseCommand(), cfg, "", "SELECT 'it''s' AS s")
	require.NoError(t, res.Err)
	testutil.AssertNoANSI(t, res.Out)
	for _, want := range []string{
		"Query @1:1",
		"QuerySpecification @1:1",
		"SingleColumn @1:8",
		`StringLiteral @1:8 value="it's"`,
		`Identifier @1:19 delimited=false value="s"`,
	} {
		assert.Contains(t, res.Out, want)
	}
}

func TestParseCommand_AutoOutputWithoutTerminal(t *testing.T) {
	cfg := testutil.Config("trino")
	cfg.Output = config.OutputAuto

	res := testutil.Run(t, NewParseCommand(), cfg, "", "--expression", "1")
	require.NoError(t, res.Err)
	assert.Equal(t, "1\n", res.Out)
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *config.Config
		stdin string
		args  []string
		want  error
		msg   string
	}{
		{
			name: "rejected decimal",
			cfg:  &config.Config{Dialect: "trino", DecimalLiteralTreatment: "reject", Output: config.OutputSQL},
			args: []string{"SELECT 1.5"},
			want: core.ErrUnsupportedLiteral,
			msg:  "line 1:8",
		},
		{
			name: "syntax error",
			cfg:  testutil.Config("trino"),
			args: []string{"SELECT FROM"},
			want: core.ErrSyntax,
		},
		{
			name: "second statement fails",
			cfg:  testutil.Config("trino"),
			args: []string{"SELECT 1", "SELECT a FROM t JOIN u"},
			want: core.ErrUnsupportedConstruct,
			msg:  "statement 2",
		},
		{
			name: "unknown dialect",
			cfg:  &config.Config{Dialect: "mysql", DecimalLiteralTreatment: "reject", Output: config.OutputSQL},
			args: []string{"SELECT 1"},
			want: core.ErrInvalidConfiguration,
		},
		{
			name: "empty stdin",
			cfg:  testutil.Config("trino"),
			stdin: "  \n",
			msg:  "no SQL given",
		},
		{
			name: "missing file",
			cfg:  testutil.Config("trino"),
			args: []string{"-f", "does-not-exist.sql"},
			msg:  "failed to read file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testutil.Run(t, NewParseCommand(), tt.cfg, tt.stdin, tt.args...)
			require.Error(t, res.Err)
			if tt.want != nil {
				assert.ErrorIs(t, res.Err, tt.want)
			}
			if tt.msg != "" {
				assert.Contains(t, res.Err.Error(), tt.msg)
			}
			assert.Empty(t, res.Out)
		})
	}
}

func TestParseCommand_Metadata(t *testing.T) {
	cmd := NewParseCommand()

	assert.Equal(t, "parse [SQL...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	for _, flag := range []string{"file", "expression"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}
