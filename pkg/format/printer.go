// Package format renders canonical AST nodes back to SQL text.
package format

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

const indentSize = 2

var bareIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Printer handles SQL formatting with indentation. It is a core.Visitor whose
// context is the binding strength of the enclosing expression.
type Printer struct {
	dialect     *dialect.Dialect // optional; nil prints Trino quoting
	quote       byte
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter(d *dialect.Dialect) *Printer {
	p := &Printer{
		dialect:     d,
		quote:       '"',
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
	if d != nil {
		p.quote = d.IdentifierQuote
	}
	return p
}

// String returns the formatted output without a trailing newline.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n")
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) keyword(s string) {
	p.write(strings.ToUpper(s))
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// formatList prints a list of items with separators.
// count is the number of items, format is called for each index,
// sep is the separator string, multiline adds newlines after separators.
func (p *Printer) formatList(count int, format func(i int), sep string, multiline bool) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
			if multiline {
				p.writeln()
			}
		}
	}
}

// identifier writes a name part, quoting it when it was delimited in the
// source or would not lex as a bare identifier.
func (p *Printer) identifier(value string, delimited bool) {
	if !delimited && !p.needsQuote(value) {
		p.write(value)
		return
	}
	p.write(quoteWith(value, p.quote))
}

func (p *Printer) needsQuote(name string) bool {
	if !bareIdentifier.MatchString(name) {
		return true
	}
	if p.dialect != nil {
		return p.dialect.IsKeyword(name)
	}
	return token.IsReserved(name)
}

func quoteWith(s string, quote byte) string {
	q := string(quote)
	return q + strings.ReplaceAll(s, q, q+q) + q
}
