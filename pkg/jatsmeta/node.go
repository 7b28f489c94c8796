package jatsmeta

// Node is the read-only view of one XML node consumed by the engine.
// Implementations must be safe for concurrent reads; the engine never mutates a tree.
type Node interface {
	// Name returns the local element name, or "" for text nodes.
	Name() string

	// Attr returns the attribute value or "" when absent.
	// Prefixed names such as "xml:lang" and "xlink:href" must be accepted.
	Attr(name string) string

	// Text returns the concatenated text of the node and all its descendants.
	Text() string

	// Query evaluates a path expression relative to the node and returns
	// matching element nodes in document order. Invalid expressions match nothing.
	Query(expr string) []Node

	// Children returns element and text children in document order.
	Children() []Node
}

// QueryOne returns the first match of expr under n, or nil.
func QueryOne(n Node, expr string) Node {
	if n == nil {
		return nil
	}
	found := n.Query(expr)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
