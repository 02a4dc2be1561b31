// This file contains the stateless handlers that form the "toolbox" of
// translation logic shared by every dialect builder.

package dialect

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// ---------- Locations ----------

// Location converts a token position: the line is kept and the 0-based
// offset within the line becomes a 1-based column.
func Location(pos token.Position) core.NodeLocation {
	return core.NewNodeLocation(pos.Line, pos.LineOffset+1)
}

// LocationOf converts a participle parse-tree position.
func LocationOf(pos lexer.Position) core.NodeLocation {
	return Location(token.FromLexer(pos))
}

// At returns a BaseNode located at a participle parse-tree position.
func At(pos lexer.Position) core.BaseNode {
	return core.At(LocationOf(pos))
}

// ---------- Quoted Tokens ----------

// Unquote strips the first and last character of raw and collapses every
// doubled quote to a single one. No other escapes are recognized.
func Unquote(raw string, quote byte, loc core.NodeLocation) (string, error) {
	if len(raw) < 2 || raw[0] != quote || raw[len(raw)-1] != quote {
		return "", core.ErrorAt(core.MalformedToken, loc, core.ErrMsgUnterminatedQuote, raw)
	}
	q := string(quote)
	return strings.ReplaceAll(raw[1:len(raw)-1], q+q, q), nil
}

// UnquoteString applies Unquote to a single-quoted SQL string literal.
func UnquoteString(raw string, loc core.NodeLocation) (string, error) {
	return Unquote(raw, '\'', loc)
}

// ---------- Numeric Literals ----------

// NumberKind classifies the digits of a numeric token.
type NumberKind int

// NumberKind values.
const (
	// Integer is digits only.
	Integer NumberKind = iota
	// Decimal is digits with a fractional point and no exponent.
	Decimal
	// Double has an exponent.
	Double
)

// ClassifyNumber returns the kind of an unsigned, unsuffixed numeric token.
func ClassifyNumber(text string) NumberKind {
	switch {
	case strings.ContainsAny(text, "eE"):
		return Double
	case strings.Contains(text, "."):
		return Decimal
	default:
		return Integer
	}
}

// NumericLiteral translates an unsuffixed numeric token according to its kind,
// applying the decimal literal policy to Decimal tokens.
func NumericLiteral(text string, base core.BaseNode, treatment core.DecimalLiteralTreatment) (core.Literal, error) {
	switch ClassifyNumber(text) {
	case Double:
		return DoubleLiteral(text, base)
	case Decimal:
		return DecimalLiteral(text, base, treatment)
	default:
		return LongLiteral(text, base)
	}
}

// DecimalLiteral applies the decimal literal policy to digits such as 1.5.
// AS_DOUBLE yields a DoubleLiteral, AS_DECIMAL a DecimalLiteral, and REJECT an
// UnsupportedLiteral error at the literal's location.
func DecimalLiteral(text string, base core.BaseNode, treatment core.DecimalLiteralTreatment) (core.Literal, error) {
	switch treatment {
	case core.AsDouble:
		return DoubleLiteral(text, base)
	case core.AsDecimal:
		return ExactDecimal(text, base)
	case core.Reject:
		return nil, core.Errorf(core.UnsupportedLiteral, base.Loc, core.ErrMsgRejectedDecimal, text)
	default:
		return nil, core.Errorf(core.InvalidConfiguration, base.Loc, core.ErrMsgUnknownTreatment, treatment)
	}
}

// ExactDecimal builds a DecimalLiteral regardless of policy.
func ExactDecimal(text string, base core.BaseNode) (core.Literal, error) {
	return core.NewDecimalLiteral(base, text)
}

// DoubleLiteral parses an approximate numeric literal.
func DoubleLiteral(text string, base core.BaseNode) (core.Literal, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) {
		return nil, core.Errorf(core.UnsupportedLiteral, base.Loc, core.ErrMsgInvalidNumber, text)
	}
	return &core.DoubleLiteral{BaseNode: base, Value: v}, nil
}

// LongLiteral parses an integer literal that must fit in 64 bits.
func LongLiteral(text string, base core.BaseNode) (core.Literal, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, core.Errorf(core.UnsupportedLiteral, base.Loc, core.ErrMsgInvalidNumber, text)
	}
	return &core.LongLiteral{BaseNode: base, Value: v}, nil
}

// RowCount translates a LIMIT count. Anything but plain digits is an
// UnsupportedConstruct in every dialect, whatever the decimal policy.
func RowCount(text string, pos lexer.Position) (*core.LongLiteral, error) {
	if text == "" || strings.Trim(text, "0123456789") != "" {
		return nil, Unsupported(pos, "non-integer LIMIT")
	}
	lit, err := LongLiteral(text, At(pos))
	if err != nil {
		return nil, err
	}
	return lit.(*core.LongLiteral), nil
}

// ---------- Types ----------

// TypeName renders a type with optional parameters, e.g. decimal(10,2).
func TypeName(name string, params []string) string {
	if len(params) == 0 {
		return name
	}
	return name + "(" + strings.Join(params, ",") + ")"
}

// ---------- Errors ----------

// SyntaxError converts a grammar or tokenizer error into a located core.Error.
func SyntaxError(err error) error {
	if err == nil {
		return nil
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		return core.ErrorAt(core.SyntaxError, LocationOf(perr.Position()), "%s", perr.Message())
	}
	return core.Errorf(core.SyntaxError, nil, "%s", err.Error())
}

// Unsupported reports a parse-tree shape with no translation rule.
func Unsupported(pos lexer.Position, what string) error {
	return core.ErrorAt(core.UnsupportedConstruct, LocationOf(pos), core.ErrMsgNoRule, what)
}
