package core

import "fmt"

// NodeLocation is the 1-based line and column where a node starts in the source text.
// It is diagnostic only and never takes part in equality or hashing.
type NodeLocation struct {
	Line   int
	Column int
}

// NewNodeLocation returns the location for a 1-based line and column.
func NewNodeLocation(line, column int) NodeLocation {
	return NodeLocation{Line: line, Column: column}
}

// IsValid reports whether both coordinates are 1-based.
func (l NodeLocation) IsValid() bool {
	return l.Line > 0 && l.Column > 0
}

func (l NodeLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// BaseNode carries the optional source location shared by every node.
// Nodes synthesized outside a parse have a nil Loc.
type BaseNode struct {
	Loc *NodeLocation
}

// At returns a BaseNode located at loc.
func At(loc NodeLocation) BaseNode {
	return BaseNode{Loc: &loc}
}

// Location implements Node.
func (b BaseNode) Location() (NodeLocation, bool) {
	if b.Loc == nil {
		return NodeLocation{}, false
	}
	return *b.Loc, true
}
