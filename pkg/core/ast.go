package core

// Node is the base interface for all AST nodes.
//
// Node is sealed: only this package defines variants, so Equal, Hash and Accept
// can cover the whole family.
type Node interface {
	// Location returns where the node starts, if it came from source text.
	Location() (NodeLocation, bool)
	// Children returns the direct sub-nodes in rendering order.
	Children() []Node

	equal(other Node) bool
	hash(h *hasher)
}

// Expression is a marker interface for nodes that produce a value.
type Expression interface {
	Node
	expressionNode()
}

// Literal is a marker interface for constant expressions.
type Literal interface {
	Expression
	literalNode()
}

// Statement is a marker interface for top-level statements.
type Statement interface {
	Node
	statementNode()
}

// Relation is a marker interface for nodes that produce rows.
type Relation interface {
	Node
	relationNode()
}

// QueryBody is a relation that can stand as the body of a Query.
type QueryBody interface {
	Relation
	queryBodyNode()
}

// collect builds a child list, skipping absent optional children.
func collect(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if !isNil(n) {
			out = append(out, n)
		}
	}
	return out
}

// appendAll appends each element of a typed slice to dst.
func appendAll[T Node](dst []Node, src []T) []Node {
	for _, n := range src {
		dst = append(dst, n)
	}
	return dst
}
