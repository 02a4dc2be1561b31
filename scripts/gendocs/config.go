package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Flag        string
	Default     string
	Values      string
	Description string
}

// EnvVar returns the environment variable that sets the field.
func (f ConfigField) EnvVar() string {
	return config.DefaultEnvPrefix + strings.ToUpper(f.Name)
}

// getConfigSchema returns the configuration schema definition.
// This mirrors internal/cli/config/types.go Config.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "dialect", Flag: "--dialect", Default: config.DefaultDialect, Values: "trino, sparksql", Description: "Source SQL dialect"},
		{Name: "decimal_literal_treatment", Flag: "--decimal", Default: config.DefaultDecimal, Values: "as_double, as_decimal, reject", Description: "How literals such as 1.5 are represented"},
		{Name: "output", Flag: "--output", Default: config.DefaultOutput, Values: strings.Join(config.OutputFormats, ", "), Description: "Output format of parse and shell"},
		{Name: "verbose", Flag: "--verbose", Default: "false", Values: "true, false", Description: "Log debug records to stderr"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "sqlfront configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("sqlfront reads `sqlfront.yaml` (or `sqlfront.yml`) from the working directory, or the file named by `--config`.")

	headers := []string{"Field", "Flag", "Environment", "Default", "Values", "Description"}
	var rows [][]string
	for _, f := range getConfigSchema() {
		rows = append(rows, []string{
			InlineCode(f.Name),
			InlineCode(f.Flag),
			InlineCode(f.EnvVar()),
			InlineCode(f.Default),
			f.Values,
			f.Description,
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Precedence")
	w.Paragraph("Values are layered from lowest to highest priority: built-in defaults, the config file, environment variables, then flags given on the command line.")

	w.Header(2, "Example")
	w.CodeBlock("yaml", `# sqlfront.yaml
dialect: sparksql
decimal_literal_treatment: as_decimal
output: tree`)

	filename := filepath.Join(outDir, "configuration.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}
