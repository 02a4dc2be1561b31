package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownWriter_Table(t *testing.T) {
	w := NewMarkdownWriter()
	w.Table([]string{"Op", "Meaning"}, [][]string{{InlineCode("||"), "concat"}})
	assert.Equal(t, "| Op | Meaning |\n| --- | --- |\n| `\\|\\|` | concat |\n\n", w.String())
}

func TestInlineCode(t *testing.T) {
	assert.Equal(t, "`\"`", InlineCode(`"`))
	assert.Equal(t, "`` ` ``", InlineCode("`"))
}

func TestCleanExample(t *testing.T) {
	got := cleanExample("  # one\n  sqlfront parse x\n\n    nested")
	assert.Equal(t, "# one\nsqlfront parse x\n\n  nested", got)
}

func TestGenerateDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(filepath.Join(dir, "cli")))
	require.NoError(t, generateConfigDocs(filepath.Join(dir, "concepts")))
	require.NoError(t, generateDialectDocs(filepath.Join(dir, "dialects")))

	for _, page := range []string{"cli/index.md", "cli/parse.md", "cli/shell.md", "concepts/configuration.md", "dialects/trino.md", "dialects/sparksql.md"} {
		content, err := os.ReadFile(filepath.Join(dir, page))
		require.NoError(t, err, page)
		assert.Contains(t, string(content), generatedHeader, page)
	}

	index, err := os.ReadFile(filepath.Join(dir, "cli", "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "SQLFRONT_DECIMAL_LITERAL_TREATMENT")
	assert.Contains(t, string(index), "## Output Formats")
	assert.Contains(t, string(index), "[`parse`](/cli/parse)")
	assert.NotContains(t, string(index), "__complete")

	spark, err := os.ReadFile(filepath.Join(dir, "dialects", "sparksql.md"))
	require.NoError(t, err)
	assert.Contains(t, string(spark), "`` ` ``")
	assert.Contains(t, string(spark), "`ANY_VALUE`")
}
