package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/sqlfront/internal/cli"
	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// outputFormats documents each -o value.
var outputFormats = map[string]string{
	config.OutputAuto: "tree on a terminal, sql otherwise",
	config.OutputTree: "indented outline of node types, locations and attributes",
	config.OutputSQL:  "canonical SQL in the selected dialect's quoting",
	config.OutputJSON: "node tree as JSON",
	config.OutputYAML: "node tree as YAML",
}

// generateCLIDocs writes index.md plus one page per visible command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	if err := writePage(outDir, "index.md", cliIndex(root)); err != nil {
		return err
	}
	for _, cmd := range visibleCommands(root) {
		if err := writePage(outDir, cmd.Name()+".md", commandPage(cmd)); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
	}
	return nil
}

func writePage(outDir, name string, w *MarkdownWriter) error {
	log.Printf("  Generated %s", name)
	return os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600)
}

func visibleCommands(parent *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range parent.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || strings.HasPrefix(cmd.Name(), "__") {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func cliIndex(root *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for sqlfront")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("sqlfront parses Trino and SparkSQL into one canonical tree and prints it as an outline, SQL, JSON or YAML.")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/sqlfront/cmd/sqlfront@latest\nsqlfront <command> [options]")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range visibleCommands(root) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Table(flagHeaders, flagRows(root.PersistentFlags()))

	w.Header(2, "Output Formats")
	var formats [][]string
	for _, name := range config.OutputFormats {
		formats = append(formats, []string{InlineCode(name), outputFormats[name]})
	}
	w.Table([]string{"Format", "Prints"}, formats)

	w.Header(2, "Environment Variables")
	var env [][]string
	for _, f := range getConfigSchema() {
		env = append(env, []string{InlineCode(f.EnvVar()), f.Description})
	}
	w.Table([]string{"Variable", "Description"}, env)
	w.Paragraph("Flags override environment variables, which override `sqlfront.yaml`.")

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Input parsed"},
		{InlineCode("1"), "Configuration, syntax or translation error on stderr"},
	})
	return w
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	w.Paragraph(desc)

	w.Header(2, "Usage")
	w.CodeBlock("bash", usageLine(cmd))

	if len(cmd.Aliases) > 0 {
		w.Header(2, "Aliases")
		aliases := make([]string, len(cmd.Aliases))
		for i, a := range cmd.Aliases {
			aliases[i] = InlineCode(a)
		}
		w.BulletList(aliases)
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		w.Header(2, "Subcommands")
		var rows [][]string
		for _, sub := range subs {
			rows = append(rows, []string{InlineCode(sub.Name()), cleanDescription(sub.Short)})
		}
		w.Table([]string{"Subcommand", "Description"}, rows)
	}

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		w.Table(flagHeaders, flagRows(cmd.LocalFlags()))
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}
	return w
}

func usageLine(cmd *cobra.Command) string {
	if cmd.HasSubCommands() {
		return fmt.Sprintf("sqlfront %s <subcommand> [options]", cmd.Name())
	}
	line := cmd.UseLine()
	if !strings.HasPrefix(line, "sqlfront") {
		line = "sqlfront " + line
	}
	return line
}

var flagHeaders = []string{"Option", "Short", "Default", "Description"}

func flagRows(flags *pflag.FlagSet) [][]string {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		short := ""
		if f.Shorthand != "" {
			short = InlineCode("-" + f.Shorthand)
		}
		def := f.DefValue
		if def != "" && def != "[]" && f.Value.Type() != "bool" {
			def = InlineCode(def)
		}
		if def == "[]" {
			def = ""
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, def, cleanDescription(f.Usage)})
	})
	return rows
}

// cleanExample strips the indentation shared by every non-blank line.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")
	common := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if common < 0 || n < common {
			common = n
		}
	}
	if common > 0 {
		for i, line := range lines {
			if len(line) >= common {
				lines[i] = line[common:]
			} else {
				lines[i] = ""
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
