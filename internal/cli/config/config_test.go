package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sqlfront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "", "SQL dialect")
	flags.String("decimal", "", "decimal literal treatment")
	flags.StringP("output", "o", "", "output format")
	flags.BoolP("verbose", "v", false, "verbose output")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())

	opts, err := cfg.ParsingOptions()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultParsingOptions(), opts)
}

func TestLoadConfig_DiscoversFileInWorkingDir(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlfront.yml"), []byte("dialect: spark\n"), 0600))
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "spark", cfg.Dialect)
	assert.Equal(t, "sqlfront.yml", GetConfigFileUsed())
}

// TestLoadConfig_Precedence checks defaults < file < env < flags for each key.
func TestLoadConfig_Precedence(t *testing.T) {
	cfgPath := writeConfig(t, `dialect: sparksql
decimal_literal_treatment: as_double
output: yaml
`)

	t.Run("file overrides defaults", func(t *testing.T) {
		ResetConfig()
		cfg, err := LoadConfig(cfgPath, nil)
		require.NoError(t, err)
		assert.Equal(t, "sparksql", cfg.Dialect)
		assert.Equal(t, "as_double", cfg.DecimalLiteralTreatment)
		assert.Equal(t, OutputYAML, cfg.Output)
		assert.Equal(t, cfgPath, GetConfigFileUsed())
	})

	t.Run("env overrides file", func(t *testing.T) {
		ResetConfig()
		t.Setenv("SQLFRONT_DECIMAL_LITERAL_TREATMENT", "as_decimal")
		t.Setenv("SQLFRONT_OUTPUT", "json")

		cfg, err := LoadConfig(cfgPath, testFlags())
		require.NoError(t, err)
		assert.Equal(t, "sparksql", cfg.Dialect)
		assert.Equal(t, "as_decimal", cfg.DecimalLiteralTreatment)
		assert.Equal(t, OutputJSON, cfg.Output, "unset flags must not shadow env vars")
	})

	t.Run("flags override env", func(t *testing.T) {
		ResetConfig()
		t.Setenv("SQLFRONT_DECIMAL_LITERAL_TREATMENT", "as_decimal")
		t.Setenv("SQLFRONT_DIALECT", "sparksql")

		flags := testFlags()
		require.NoError(t, flags.Set("decimal", "reject"))
		require.NoError(t, flags.Set("dialect", "trino"))
		require.NoError(t, flags.Set("output", "SQL"))
		require.NoError(t, flags.Set("verbose", "true"))

		cfg, err := LoadConfig(cfgPath, flags)
		require.NoError(t, err)
		assert.Equal(t, "trino", cfg.Dialect)
		assert.Equal(t, "reject", cfg.DecimalLiteralTreatment)
		assert.Equal(t, OutputSQL, cfg.Output)
		assert.True(t, cfg.Verbose)
	})
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "unknown dialect", content: "dialect: mysql\n", want: core.ErrInvalidConfiguration},
		{name: "unknown treatment", content: "decimal_literal_treatment: round\n", want: core.ErrInvalidConfiguration},
		{name: "unknown output", content: "output: csv\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_ParsingOptions(t *testing.T) {
	cfg := &Config{Dialect: "Spark-SQL", DecimalLiteralTreatment: "AS-DECIMAL", Output: OutputAuto}
	require.NoError(t, cfg.Validate())

	opts, err := cfg.ParsingOptions()
	require.NoError(t, err)
	assert.Equal(t, core.SparkSQL, opts.SQLDialect())
	assert.Equal(t, core.AsDecimal, opts.DecimalLiteralTreatment())
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "fallback logger")

	logger := NewLogger(os.Stderr, true)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Equal(t, loggerKey{}, LoggerKey())
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := &Config{Dialect: "sparksql", DecimalLiteralTreatment: "as_double", Output: OutputJSON}
	assert.Same(t, cfg, FromContext(WithConfig(context.Background(), cfg)))
}
