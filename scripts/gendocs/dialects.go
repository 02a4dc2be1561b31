package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	_ "github.com/leapstack-labs/sqlfront/pkg/parser" // registers every dialect
)

// generateDialectDocs writes one reference page per registered dialect.
func generateDialectDocs(outDir string) error {
	log.Printf("Generating dialect docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, name := range dialect.List() {
		d, err := dialect.Lookup(name)
		if err != nil {
			return err
		}
		if err := generateDialectPage(d, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", name, err)
		}
		log.Printf("  Generated %s.md", strings.ToLower(name.String()))
	}
	return nil
}

func generateDialectPage(d *dialect.Dialect, outDir string) error {
	title := d.Name.String()
	w := NewMarkdownWriter()
	w.Frontmatter(title, d.Description)
	w.GeneratedMarker()

	w.Header(1, title)
	w.Paragraph(d.Description)

	w.Header(2, "Quoted Identifiers")
	w.Paragraph(fmt.Sprintf("Delimited identifiers are wrapped in %s. Doubling the quote escapes it.", InlineCode(string(d.IdentifierQuote))))

	w.Header(2, "Type Aliases")
	aliases := d.TypeAliases()
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var rows [][]string
	for _, k := range keys {
		rows = append(rows, []string{InlineCode(k), InlineCode(aliases[k])})
	}
	w.Table([]string{"Written", "Canonical"}, rows)

	w.Header(2, "Reserved Keywords")
	w.Paragraph("These words must be quoted to be used as identifiers:")
	keywords := d.Keywords()
	codes := make([]string, len(keywords))
	for i, kw := range keywords {
		codes[i] = InlineCode(kw)
	}
	w.Paragraph(strings.Join(codes, ", "))

	filename := filepath.Join(outDir, strings.ToLower(title)+".md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}
