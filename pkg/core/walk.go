package core

// Walk traverses an AST depth-first and calls fn for each node.
// If fn returns false, the node's children are skipped.
func Walk(node Node, fn func(node Node) bool) {
	if isNil(node) {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, fn)
	}
}

// Collect returns every node of type T under root, root included, in depth-first order.
func Collect[T Node](root Node) []T {
	var out []T
	Walk(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
