package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
)

const continuationPrompt = "    ...> "

// lineReader is the part of *readline.Instance the shell loop uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewShellCommand creates the interactive shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"repl"},
		Short:   "Parse SQL interactively",
		Long: `Start an interactive shell that parses each statement as it is entered.

Statements may span lines and end with a semicolon. Dot-commands change the
dialect, decimal treatment and output format for the rest of the session.`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	session, err := newShellSession(cc)
	if err != nil {
		return err
	}

	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".sqlfront_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          session.prompt(),
		HistoryFile:     historyFile,
		AutoComplete:    newShellCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cc.Out, "sqlfront shell")
	_, _ = fmt.Fprintln(cc.Out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cc.Out)

	return session.run(rl)
}

// shellSession holds the settings a shell can change while it runs.
type shellSession struct {
	cfg    config.Config
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newShellSession(cc *CommandContext) (*shellSession, error) {
	if _, _, err := cc.ParsingOptions(); err != nil {
		return nil, err
	}
	return &shellSession{cfg: *cc.Cfg, out: cc.Out, errOut: cc.ErrOut, logger: cc.Logger}, nil
}

func (s *shellSession) prompt() string {
	return strings.ToLower(s.cfg.Dialect) + "> "
}

// run reads lines until EOF or .quit.
func (s *shellSession) run(rl lineReader) error {
	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt(s.prompt())
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if buffer.Len() == 0 && strings.HasPrefix(line, ".") {
			if quit := s.handleDotCommand(line); quit {
				return nil
			}
			rl.SetPrompt(s.prompt())
			continue
		}

		// Accumulate multi-line SQL until semicolon
		buffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buffer.WriteString("\n")
			rl.SetPrompt(continuationPrompt)
			continue
		}
		rl.SetPrompt(s.prompt())

		sql := buffer.String()
		buffer.Reset()
		if err := s.parse(sql, false); err != nil {
			printError(s.errOut, err)
		}
	}
}

func (s *shellSession) parse(sql string, expression bool) error {
	opts, err := s.cfg.ParsingOptions()
	if err != nil {
		return err
	}
	d, err := dialect.Lookup(opts.SQLDialect())
	if err != nil {
		return err
	}

	var node core.Node
	if expression {
		node, err = parser.CreateExpression(sql, opts)
	} else {
		node, err = parser.CreateStatement(sql, opts)
	}
	if err != nil {
		return err
	}
	s.logger.Debug("parsed shell input", "dialect", opts.SQLDialect(), "expression", expression)
	return renderNodes(s.out, []core.Node{node}, resolveOutput(s.cfg.Output, s.out), d)
}

// handleDotCommand runs a dot-command and reports whether the shell should exit.
func (s *shellSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	arg := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printShellHelp(s.out)

	case ".dialect":
		if arg == "" {
			current, _ := core.ParseSQLDialect(s.cfg.Dialect)
			renderDialects(s.out, current)
			return false
		}
		d, err := core.ParseSQLDialect(arg)
		if err != nil {
			printError(s.errOut, err)
			return false
		}
		s.cfg.Dialect = strings.ToLower(d.String())
		_, _ = fmt.Fprintf(s.out, "dialect set to %s\n", d)

	case ".decimal":
		if arg == "" {
			_, _ = fmt.Fprintf(s.out, "decimal literal treatment: %s\n", s.cfg.DecimalLiteralTreatment)
			return false
		}
		t, err := core.ParseDecimalLiteralTreatment(arg)
		if err != nil {
			printError(s.errOut, err)
			return false
		}
		s.cfg.DecimalLiteralTreatment = strings.ToLower(t.String())
		_, _ = fmt.Fprintf(s.out, "decimal literal treatment set to %s\n", t)

	case ".output":
		if arg == "" {
			_, _ = fmt.Fprintf(s.out, "output: %s\n", s.cfg.Output)
			return false
		}
		format := strings.ToLower(arg)
		if !slices.Contains(config.OutputFormats, format) {
			printError(s.errOut, fmt.Errorf("unknown output format %q (want one of %s)", arg, strings.Join(config.OutputFormats, ", ")))
			return false
		}
		s.cfg.Output = format
		_, _ = fmt.Fprintf(s.out, "output set to %s\n", format)

	case ".expr":
		if arg == "" {
			_, _ = fmt.Fprintln(s.errOut, "Usage: .expr <expression>")
			return false
		}
		if err := s.parse(arg, true); err != nil {
			printError(s.errOut, err)
		}

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printShellHelp(w io.Writer) {
	help := `
Commands:
  .help               Show this help message
  .dialect [name]     Show dialects or switch to trino / sparksql
  .decimal [mode]     Show or set as_double / as_decimal / reject
  .output [format]    Show or set auto / tree / sql / json / yaml
  .expr <expression>  Parse a standalone expression
  .quit / .exit       Exit the shell

Tips:
  - SQL statements must end with a semicolon (;)
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

func newShellCompleter() *readline.PrefixCompleter {
	dialects := make([]readline.PrefixCompleterInterface, 0, 2)
	for _, name := range dialect.List() {
		dialects = append(dialects, readline.PcItem(strings.ToLower(name.String())))
	}
	outputs := make([]readline.PrefixCompleterInterface, 0, len(config.OutputFormats))
	for _, f := range config.OutputFormats {
		outputs = append(outputs, readline.PcItem(f))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialects...),
		readline.PcItem(".decimal",
			readline.PcItem("as_double"),
			readline.PcItem("as_decimal"),
			readline.PcItem("reject"),
		),
		readline.PcItem(".output", outputs...),
		readline.PcItem(".expr"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
