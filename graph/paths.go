// ABOUTME: BFS algorithms for reachability and ancestry paths
// ABOUTME: Reachable gives unit-weight distances, PathsToRoot walks parents with cycle detection

package graph

// Path represents a path from a node up to the root
type Path struct {
	IDs []NodeID // Sequence of node IDs from target to root
}

// Reachable computes every node reachable from source by following edges
// forward, mapped to its distance in edges. The source maps to 0.
// Returns nil if source is not in the graph.
func Reachable(g Graph, source NodeID) map[NodeID]int {
	if g.GetNode(source) == nil {
		return nil
	}

	dist := map[NodeID]int{source: 0}
	queue := []NodeID{source}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		n := g.GetNode(id)
		if n == nil {
			continue
		}
		for _, child := range n.Children {
			if _, seen := dist[child]; seen {
				continue
			}
			dist[child] = dist[id] + 1
			queue = append(queue, child)
		}
	}

	return dist
}

// PathsToRoot finds up to maxPaths paths from a node to the graph root
// using BFS over reverse edges. In a tree there is at most one.
func PathsToRoot(g Graph, from NodeID, maxPaths int) []Path {
	if maxPaths <= 0 || g.GetNode(from) == nil {
		return nil
	}

	reverse := BuildReverseEdges(g)
	root := g.Root()

	if from == root {
		return []Path{{IDs: []NodeID{from}}}
	}

	type searchNode struct {
		id   NodeID
		path []NodeID
	}

	var result []Path
	queue := []searchNode{{id: from, path: []NodeID{from}}}

	for len(queue) > 0 && len(result) < maxPaths {
		node := queue[0]
		queue = queue[1:]

		for _, parent := range reverse[node.id] {
			// Skip parents already on this path
			inPath := false
			for _, id := range node.path {
				if id == parent {
					inPath = true
					break
				}
			}
			if inPath {
				continue
			}

			newPath := make([]NodeID, len(node.path)+1)
			copy(newPath, node.path)
			newPath[len(node.path)] = parent

			if parent == root {
				result = append(result, Path{IDs: newPath})
				if len(result) >= maxPaths {
					break
				}
			} else {
				queue = append(queue, searchNode{id: parent, path: newPath})
			}
		}
	}

	return result
}

// PathToRoot returns the single ancestry chain from a node to the root,
// or nil if the node cannot reach the root.
func PathToRoot(g Graph, from NodeID) []NodeID {
	paths := PathsToRoot(g, from, 1)
	if len(paths) == 0 {
		return nil
	}
	return paths[0].IDs
}
