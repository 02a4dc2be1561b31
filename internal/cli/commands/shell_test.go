package commands

import (
	"bytes"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	"github.com/leapstack-labs/sqlfront/internal/cli/testutil"
	logutil "github.com/leapstack-labs/sqlfront/internal/testutil"
)

// scriptedReader replays lines and then reports EOF.
type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	if line == "^C" {
		return "", readline.ErrInterrupt
	}
	return line, nil
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func newTestSession(t *testing.T, cfg *config.Config) (*shellSession, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	session, err := newShellSession(&CommandContext{
		Cfg:    cfg,
		Logger: logutil.NewTestLogger(t),
		Out:    out,
		ErrOut: errOut,
	})
	require.NoError(t, err)
	return session, out, errOut
}

func TestShell_MultiLineStatement(t *testing.T) {
	session, out, errOut := newTestSession(t, testutil.Config("trino"))
	rl := &scriptedReader{lines: []string{"SELECT a", "FROM t", "WHERE b;"}}

	require.NoError(t, session.run(rl))
	assert.Equal(t, "SELECT\n  a\nFROM t\nWHERE\n  b;\n", out.String())
	assert.Empty(t, errOut.String())
	assert.Equal(t, []string{continuationPrompt, continuationPrompt, "trino> "}, rl.prompts)
}

func TestShell_DotCommands(t *testing.T) {
	session, out, errOut := newTestSession(t, testutil.Config("trino"))
	rl := &scriptedReader{lines: []string{
		".dialect spark",
		".decimal as-double",
		".output json",
		".output bogus",
		".expr ANY_VALUE(x IGNORE NULLS)",
		".nope",
		".quit",
		"SELECT never;",
	}}

	require.NoError(t, session.run(rl))
	assert.Equal(t, "sparksql", session.cfg.Dialect)
	assert.Equal(t, "as_double", session.cfg.DecimalLiteralTreatment)
	assert.Equal(t, config.OutputJSON, session.cfg.Output)
	assert.Equal(t, "sparksql> ", session.prompt())

	assert.Contains(t, out.String(), "dialect set to SPARKSQL")
	assert.Contains(t, out.String(), `"type": "AnyValue"`)
	assert.Contains(t, out.String(), `"ignoreNulls": true`)
	assert.NotContains(t, out.String(), "never")
	assert.Contains(t, errOut.String(), `unknown output format "bogus"`)
	assert.Contains(t, errOut.String(), "Unknown command: .nope")
	assert.Equal(t, []string{"SELECT never;"}, rl.lines, "input after .quit is not read")
}

func TestShell_ErrorsDoNotStopTheLoop(t *testing.T) {
	session, out, errOut := newTestSession(t, &config.Config{
		Dialect:                 "trino",
		DecimalLiteralTreatment: "reject",
		Output:                  config.OutputSQL,
	})
	rl := &scriptedReader{lines: []string{
		"SELECT 1.5;",
		".dialect mysql",
		"SELECT partial",
		"^C",
		"SELECT 2;",
	}}

	require.NoError(t, session.run(rl))
	assert.Equal(t, "SELECT\n  2;\n", out.String())
	assert.Contains(t, errOut.String(), "Error: line 1:8: unsupported literal")
	assert.Contains(t, errOut.String(), "Error: invalid configuration")
}

func TestShell_DialectListing(t *testing.T) {
	session, out, _ := newTestSession(t, testutil.Config("sparksql"))
	assert.False(t, session.handleDotCommand(".dialect"))
	assert.Contains(t, out.String(), "SPARKSQL")
	assert.Contains(t, out.String(), "TRINO")
	assert.Contains(t, out.String(), "`")
}

func TestShell_InvalidStartingConfig(t *testing.T) {
	_, err := newShellSession(&CommandContext{
		Cfg:    &config.Config{Dialect: "trino", DecimalLiteralTreatment: "sometimes"},
		Logger: logutil.NewTestLogger(t),
	})
	require.Error(t, err)
}
