// ABOUTME: Builds reverse edges for graph traversal
// ABOUTME: Maps nodes to their parents for ancestry walks and dominators

package graph

// ReverseEdges maps each node to the nodes that point to it
type ReverseEdges map[NodeID][]NodeID

// BuildReverseEdges creates a map of reverse edges
func BuildReverseEdges(g Graph) ReverseEdges {
	reverse := make(ReverseEdges)

	g.ForEachNode(func(n *Node) {
		for _, child := range n.Children {
			reverse[child] = append(reverse[child], n.ID)
		}
	})

	return reverse
}
