// Package config provides configuration management for the sqlfront CLI.
//
// Values are layered from defaults, an optional sqlfront.yaml file,
// SQLFRONT_* environment variables and explicitly set flags, in that order.
package config

// Default configuration values.
const (
	DefaultDialect   = "trino"
	DefaultDecimal   = "reject"
	DefaultOutput    = "auto" // Auto-detect: TTY=tree, non-TTY=sql
	DefaultEnvPrefix = "SQLFRONT_"
)

// Output formats accepted by --output.
const (
	OutputAuto = "auto"
	OutputTree = "tree"
	OutputSQL  = "sql"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// OutputFormats lists every accepted output format.
var OutputFormats = []string{OutputAuto, OutputTree, OutputSQL, OutputJSON, OutputYAML}

// Config holds all CLI configuration options.
type Config struct {
	Dialect                 string `koanf:"dialect"`
	DecimalLiteralTreatment string `koanf:"decimal_literal_treatment"`
	Output                  string `koanf:"output"`
	Verbose                 bool   `koanf:"verbose"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Dialect:                 DefaultDialect,
		DecimalLiteralTreatment: DefaultDecimal,
		Output:                  DefaultOutput,
	}
}
