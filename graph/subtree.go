// ABOUTME: Counts the nodes each node dominates using the dominator tree
// ABOUTME: For a parsed tree this is the size of the subtree rooted at each node
package graph

// SubtreeSize computes, for each node reachable from the root, the number
// of nodes it dominates including itself. In a tree that is the size of the
// subtree rooted at the node.
func SubtreeSize(g Graph) map[NodeID]int {
	tree := DominatorTree(Dominators(g))

	sizes := make(map[NodeID]int)

	var compute func(NodeID) int
	compute = func(id NodeID) int {
		if size, done := sizes[id]; done {
			return size
		}
		size := 1
		for _, child := range tree[id] {
			size += compute(child)
		}
		sizes[id] = size
		return size
	}

	for id := range tree {
		compute(id)
	}

	delete(sizes, 0)

	return sizes
}

// SubtreeSizeOf computes subtree sizes only for the given nodes. Nodes that
// are absent or unreachable from the root are left out of the result.
func SubtreeSizeOf(g Graph, targets []NodeID) map[NodeID]int {
	result := make(map[NodeID]int)
	if len(targets) == 0 {
		return result
	}

	tree := DominatorTree(Dominators(g))
	computed := make(map[NodeID]int)

	var compute func(NodeID) int
	compute = func(id NodeID) int {
		if size, done := computed[id]; done {
			return size
		}
		size := 1
		for _, child := range tree[id] {
			size += compute(child)
		}
		computed[id] = size
		return size
	}

	for _, id := range targets {
		if _, reachable := tree[id]; reachable && id != 0 {
			result[id] = compute(id)
		}
	}

	return result
}
