// Package core defines the shared language of sqlfront.
//
// This package contains:
//   - ParsingOptions, the validated builder configuration
//   - The canonical AST (Node, Expression, Statement, Relation and their variants)
//   - Structural equality and hashing (Equal, Hash)
//   - Visitor dispatch (Accept) and traversal (Walk, VisitChildren)
//   - The Error type shared by every dialect
//
// The Golden Rule: pkg/core imports only stdlib and its value libraries
// (shopspring/decimal, cespare/xxhash). Dialects depend on core, never the reverse.
package core
