// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	logutil "github.com/leapstack-labs/sqlfront/internal/testutil"
)

// Result is the captured outcome of one command run.
type Result struct {
	Out    string
	ErrOut string
	Err    error
}

// Run executes cmd with args, feeding stdin and carrying cfg and a test
// logger on the context the way the root command does.
func Run(t *testing.T, cmd *cobra.Command, cfg *config.Config, stdin string, args ...string) Result {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	ctx := config.WithConfig(context.Background(), cfg)
	ctx = config.WithLogger(ctx, logutil.NewTestLogger(t))
	err := cmd.ExecuteContext(ctx)

	return Result{Out: out.String(), ErrOut: errOut.String(), Err: err}
}

// Config returns a config for the given dialect with AS_DECIMAL and sql output.
func Config(dialect string) *config.Config {
	return &config.Config{
		Dialect:                 dialect,
		DecimalLiteralTreatment: "as_decimal",
		Output:                  config.OutputSQL,
	}
}

// WriteSQLFile writes content to name inside a temp dir and returns its path.
func WriteSQLFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// StripANSI removes ANSI escape codes from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
