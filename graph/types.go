// ABOUTME: Core data types for the labeled tree graph
// ABOUTME: Defines Node and NodeID structures

package graph

// NodeID is a unique identifier for a tree node. IDs start at 1; 0 is the
// virtual super-root used by the dominator computation.
type NodeID uint64

// Node represents a single labeled tree node
type Node struct {
	ID       NodeID   // Unique identifier, assigned in creation order
	Label    string   // Node label (e.g. "NP", "VBZ", "dog")
	Children []NodeID // IDs of child nodes, in insertion order
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
