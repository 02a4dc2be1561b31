package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	cfgFile = ""
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_ParseWithFlags(t *testing.T) {
	out, _, err := run(t, "", "parse", "--dialect", "sparksql", "--decimal", "as_decimal", "-o", "sql",
		"SELECT any_value(x, true), 1.25 FROM `t`")
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  any_value(x IGNORE NULLS),\n  1.25BD\nFROM `t`;\n", out)
}

func TestRoot_DefaultsRejectDecimals(t *testing.T) {
	_, _, err := run(t, "", "parse", "-o", "sql", "SELECT 1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported literal")
}

func TestRoot_EnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dialect: sparksql\noutput: sql\n"), 0600))
	t.Setenv("SQLFRONT_DECIMAL_LITERAL_TREATMENT", "as_double")

	out, _, err := run(t, "", "--config", cfgPath, "parse", "--expression", "a == 2.5")
	require.NoError(t, err)
	assert.Equal(t, "a = 2.5E+00\n", out)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "SELECT 1", "-v", "-o", "sql", "parse")
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  1;\n", out)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "configuration loaded")
}

func TestRoot_InvalidFlag(t *testing.T) {
	_, _, err := run(t, "", "--output", "csv", "parse", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRoot_Dialects(t *testing.T) {
	out, _, err := run(t, "", "dialects", "-d", "spark")
	require.NoError(t, err)
	assert.Contains(t, out, "SPARKSQL")
	assert.Contains(t, out, "TRINO")
}

func TestRoot_Completion(t *testing.T) {
	out, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlfront")
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"parse", "shell", "dialects", "version", "completion"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
	for _, flag := range []string{"config", "dialect", "decimal", "output", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}
