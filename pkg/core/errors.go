package core

import (
	"fmt"
	"strings"
)

// ErrorKind classifies translation failures.
type ErrorKind int

// ErrorKind values.
const (
	// InvalidConfiguration means a ParsingOptions field was missing or out of range.
	InvalidConfiguration ErrorKind = iota + 1
	// UnsupportedLiteral means a literal was rejected by policy or could not be represented.
	UnsupportedLiteral
	// UnsupportedConstruct means a parse-tree shape has no translation rule.
	UnsupportedConstruct
	// MalformedToken means a token's raw text violated its lexical contract.
	MalformedToken
	// SyntaxError means the grammar could not parse the input text.
	SyntaxError
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case InvalidConfiguration:
		return "invalid configuration"
	case UnsupportedLiteral:
		return "unsupported literal"
	case UnsupportedConstruct:
		return "unsupported construct"
	case MalformedToken:
		return "malformed token"
	case SyntaxError:
		return "syntax error"
	default:
		return "unknown error"
	}
}

// Error is the single error type produced while building an AST.
type Error struct {
	Kind     ErrorKind
	Location *NodeLocation
	Message  string
	Cause    error
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrInvalidConfiguration = &Error{Kind: InvalidConfiguration}
	ErrUnsupportedLiteral   = &Error{Kind: UnsupportedLiteral}
	ErrUnsupportedConstruct = &Error{Kind: UnsupportedConstruct}
	ErrMalformedToken       = &Error{Kind: MalformedToken}
	ErrSyntax               = &Error{Kind: SyntaxError}
)

// Errorf returns an *Error of the given kind. loc may be nil.
func Errorf(kind ErrorKind, loc *NodeLocation, format string, args ...any) *Error {
	return &Error{Kind: kind, Location: loc, Message: fmt.Sprintf(format, args...)}
}

// ErrorAt is Errorf with a known location.
func ErrorAt(kind ErrorKind, loc NodeLocation, format string, args ...any) *Error {
	return Errorf(kind, &loc, format, args...)
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Location != nil {
		fmt.Fprintf(&sb, "line %d:%d: ", e.Location.Line, e.Location.Column)
	}
	sb.WriteString(e.Kind.String())
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// WithCause returns a copy of e wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.Cause = cause
	return &c
}

// Common error messages.
const (
	ErrMsgMissingTreatment  = "decimal literal treatment is required"
	ErrMsgMissingDialect    = "sql dialect is required"
	ErrMsgUnknownTreatment  = "unknown decimal literal treatment %q"
	ErrMsgUnknownDialect    = "unknown sql dialect %q"
	ErrMsgRejectedDecimal   = "decimal literal %s is not allowed; set decimal literal treatment to AS_DOUBLE or AS_DECIMAL"
	ErrMsgInvalidNumber     = "invalid numeric literal %s"
	ErrMsgUnterminatedQuote = "quoted token %q is shorter than its delimiters"
	ErrMsgNoRule            = "no translation for %s"
	ErrMsgNoDialect         = "dialect %s is not registered"
)
