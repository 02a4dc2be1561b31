// Package token holds the lexical vocabulary shared by the dialect grammars:
// source positions and the reserved keyword table.
package token

import "github.com/alecthomas/participle/v2/lexer"

// Position is where a token starts, as reported by a tokenizer.
type Position struct {
	Line       int // 1-based line number
	LineOffset int // 0-based character offset within the line
	Offset     int // 0-based byte offset
}

// FromLexer converts a participle position, whose column is 1-based.
func FromLexer(pos lexer.Position) Position {
	return Position{Line: pos.Line, LineOffset: pos.Column - 1, Offset: pos.Offset}
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}
