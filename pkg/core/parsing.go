package core

import (
	"fmt"
	"strings"
)

// DecimalLiteralTreatment selects how literals such as 1.5 are represented.
// The zero value is unset and never valid.
type DecimalLiteralTreatment int

// DecimalLiteralTreatment values.
const (
	// AsDouble maps decimal literals to DoubleLiteral.
	AsDouble DecimalLiteralTreatment = iota + 1
	// AsDecimal maps decimal literals to DecimalLiteral, keeping precision and scale.
	AsDecimal
	// Reject fails translation with UnsupportedLiteral.
	Reject
)

// String returns the canonical upper-case name.
func (t DecimalLiteralTreatment) String() string {
	switch t {
	case AsDouble:
		return "AS_DOUBLE"
	case AsDecimal:
		return "AS_DECIMAL"
	case Reject:
		return "REJECT"
	default:
		return fmt.Sprintf("DecimalLiteralTreatment(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared values.
func (t DecimalLiteralTreatment) Valid() bool {
	return t >= AsDouble && t <= Reject
}

// ParseDecimalLiteralTreatment converts a case-insensitive name to a treatment.
// Both AS_DOUBLE and as-double spellings are accepted.
func ParseDecimalLiteralTreatment(s string) (DecimalLiteralTreatment, error) {
	switch normalizeEnum(s) {
	case "AS_DOUBLE":
		return AsDouble, nil
	case "AS_DECIMAL":
		return AsDecimal, nil
	case "REJECT":
		return Reject, nil
	default:
		return 0, Errorf(InvalidConfiguration, nil, ErrMsgUnknownTreatment, s)
	}
}

// SQLDialect names the source dialect of the input text.
// The zero value is unset and never valid.
type SQLDialect int

// SQLDialect values.
const (
	SparkSQL SQLDialect = iota + 1
	Trino
)

// String returns the canonical upper-case name.
func (d SQLDialect) String() string {
	switch d {
	case SparkSQL:
		return "SPARKSQL"
	case Trino:
		return "TRINO"
	default:
		return fmt.Sprintf("SQLDialect(%d)", int(d))
	}
}

// Valid reports whether d is one of the declared values.
func (d SQLDialect) Valid() bool {
	return d == SparkSQL || d == Trino
}

// ParseSQLDialect converts a case-insensitive name to a dialect.
// "spark" is accepted as an alias of SPARKSQL.
func ParseSQLDialect(s string) (SQLDialect, error) {
	switch normalizeEnum(s) {
	case "SPARKSQL", "SPARK", "SPARK_SQL":
		return SparkSQL, nil
	case "TRINO":
		return Trino, nil
	default:
		return 0, Errorf(InvalidConfiguration, nil, ErrMsgUnknownDialect, s)
	}
}

func normalizeEnum(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
}

// ParsingOptions is the immutable, validated configuration of an AST builder.
type ParsingOptions struct {
	decimalLiteralTreatment DecimalLiteralTreatment
	sqlDialect              SQLDialect
}

// DefaultParsingOptions returns REJECT and TRINO.
func DefaultParsingOptions() ParsingOptions {
	return ParsingOptions{decimalLiteralTreatment: Reject, sqlDialect: Trino}
}

// NewParsingOptions returns options with the given treatment and the TRINO dialect.
func NewParsingOptions(treatment DecimalLiteralTreatment) (ParsingOptions, error) {
	return NewParsingOptionsWithDialect(treatment, Trino)
}

// NewParsingOptionsWithDialect returns options with both fields set explicitly.
func NewParsingOptionsWithDialect(treatment DecimalLiteralTreatment, dialect SQLDialect) (ParsingOptions, error) {
	opts := ParsingOptions{decimalLiteralTreatment: treatment, sqlDialect: dialect}
	if err := opts.Validate(); err != nil {
		return ParsingOptions{}, err
	}
	return opts, nil
}

// Validate reports InvalidConfiguration when a field is unset or out of range.
// A zero ParsingOptions is never valid.
func (o ParsingOptions) Validate() error {
	if o.decimalLiteralTreatment == 0 {
		return Errorf(InvalidConfiguration, nil, ErrMsgMissingTreatment)
	}
	if !o.decimalLiteralTreatment.Valid() {
		return Errorf(InvalidConfiguration, nil, ErrMsgUnknownTreatment, o.decimalLiteralTreatment)
	}
	if o.sqlDialect == 0 {
		return Errorf(InvalidConfiguration, nil, ErrMsgMissingDialect)
	}
	if !o.sqlDialect.Valid() {
		return Errorf(InvalidConfiguration, nil, ErrMsgUnknownDialect, o.sqlDialect)
	}
	return nil
}

// DecimalLiteralTreatment returns the configured treatment.
func (o ParsingOptions) DecimalLiteralTreatment() DecimalLiteralTreatment {
	return o.decimalLiteralTreatment
}

// SQLDialect returns the configured dialect.
func (o ParsingOptions) SQLDialect() SQLDialect {
	return o.sqlDialect
}

func (o ParsingOptions) String() string {
	return fmt.Sprintf("ParsingOptions{decimalLiteralTreatment=%s, sqlDialect=%s}", o.decimalLiteralTreatment, o.sqlDialect)
}
