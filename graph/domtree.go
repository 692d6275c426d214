// ABOUTME: Helpers over the dominator tree produced by Dominators
// ABOUTME: Depth, dominator chains and dominance checks keyed by NodeID
package graph

// DominatorDepth gives every node in tree its distance from the super-root.
// The super-root sits at depth 0 and the graph root at depth 1.
func DominatorDepth(tree map[NodeID][]NodeID) map[NodeID]int {
	depth := map[NodeID]int{0: 0}
	queue := []NodeID{0}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, child := range tree[parent] {
			if _, seen := depth[child]; seen {
				continue
			}
			depth[child] = depth[parent] + 1
			queue = append(queue, child)
		}
	}
	return depth
}

// DominatorPath lists node followed by each of its dominators, nearest
// first, ending at the super-root 0. A node missing from idom yields
// [node, 0].
func DominatorPath(idom map[NodeID]NodeID, node NodeID) []NodeID {
	if node == 0 {
		return []NodeID{0}
	}
	path := []NodeID{node}
	for next, ok := idom[node]; ok && next != 0; next, ok = idom[next] {
		path = append(path, next)
	}
	return append(path, 0)
}

// IsDominated reports whether dominator lies on node's dominator chain.
// Every node dominates itself, and the super-root dominates everything.
func IsDominated(idom map[NodeID]NodeID, node, dominator NodeID) bool {
	if node == dominator || dominator == 0 {
		return true
	}
	for up, ok := idom[node]; ok && up != 0; up, ok = idom[up] {
		if up == dominator {
			return true
		}
	}
	return false
}
