// Package commands implements the sqlfront subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Out    io.Writer
	ErrOut io.Writer
}

// NewCommandContext collects the config and logger stored on cmd's context by
// the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    config.FromContext(cmd.Context()),
		Logger: config.GetLogger(cmd.Context()),
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// ParsingOptions validates the configured dialect and decimal treatment and
// resolves the registered dialect.
func (c *CommandContext) ParsingOptions() (core.ParsingOptions, *dialect.Dialect, error) {
	opts, err := c.Cfg.ParsingOptions()
	if err != nil {
		return core.ParsingOptions{}, nil, err
	}
	d, err := dialect.Lookup(opts.SQLDialect())
	if err != nil {
		return core.ParsingOptions{}, nil, err
	}
	return opts, d, nil
}

// resolveOutput maps auto onto tree for terminals and sql for everything else.
func resolveOutput(format string, w io.Writer) string {
	if format != config.OutputAuto && format != "" {
		return format
	}
	if isTerminal(w) {
		return config.OutputTree
	}
	return config.OutputSQL
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}
