package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/core"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.ParsingOptions(); err != nil {
		return err
	}
	if !slices.Contains(OutputFormats, strings.ToLower(c.Output)) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output, strings.Join(OutputFormats, ", "))
	}
	return nil
}

// ParsingOptions converts the dialect and decimal settings into validated
// builder options.
func (c *Config) ParsingOptions() (core.ParsingOptions, error) {
	d, err := core.ParseSQLDialect(c.Dialect)
	if err != nil {
		return core.ParsingOptions{}, err
	}
	t, err := core.ParseDecimalLiteralTreatment(c.DecimalLiteralTreatment)
	if err != nil {
		return core.ParsingOptions{}, err
	}
	return core.NewParsingOptionsWithDialect(t, d)
}
