// ABOUTME: Implements Lengauer-Tarjan algorithm for computing dominators in directed graphs
// ABOUTME: Provides O(E α(E,V)) time complexity for finding immediate dominators
package graph

import "sort"

// Dominators computes the immediate dominator for each node reachable from
// the graph root. Uses the Lengauer-Tarjan algorithm.
// Returns a map from node ID to its immediate dominator ID.
// The super-root (ID 0) points at the root and has no dominator itself, so
// the root maps to 0. In a tree every other node maps to its parent.
func Dominators(g Graph) map[NodeID]NodeID {
	root := g.Root()
	if root == 0 || g.GetNode(root) == nil {
		return map[NodeID]NodeID{}
	}

	adj := make(map[NodeID][]NodeID)
	adj[0] = []NodeID{root}
	g.ForEachNode(func(n *Node) {
		if len(n.Children) > 0 {
			adj[n.ID] = append([]NodeID{}, n.Children...)
		}
	})

	preds := BuildReverseEdges(g)
	preds[root] = append(preds[root], 0)

	var dfsNum int
	vertex := make([]NodeID, 0, g.NumNodes()+1) // DFS number -> vertex ID
	parent := make(map[NodeID]int)              // vertex -> DFS number of parent in spanning tree
	dfnum := make(map[NodeID]int)               // vertex -> DFS number
	semi := make(map[NodeID]int)                // vertex -> DFS number of semidominator
	ancestor := make(map[NodeID]int)            // for link-eval forest
	idom := make(map[NodeID]NodeID)             // vertex -> immediate dominator
	samedom := make(map[NodeID]NodeID)          // for link-eval forest
	best := make(map[NodeID]NodeID)             // for link-eval forest
	bucket := make(map[int][]NodeID)            // semidominator -> list of vertices

	var dfs func(v NodeID, p int)
	dfs = func(v NodeID, p int) {
		if _, visited := dfnum[v]; visited {
			return
		}

		dfnum[v] = dfsNum
		vertex = append(vertex, v)
		parent[v] = p
		semi[v] = dfsNum
		ancestor[v] = -1
		best[v] = v
		samedom[v] = v
		dfsNum++

		for _, w := range adj[v] {
			dfs(w, dfnum[v])
		}
	}

	dfs(0, -1)

	var compress func(v NodeID)
	compress = func(v NodeID) {
		anc := ancestor[v]
		if anc == -1 {
			return
		}
		ancID := vertex[anc]
		if ancestor[ancID] != -1 {
			compress(ancID)
			if semi[best[ancID]] < semi[best[v]] {
				best[v] = best[ancID]
			}
			ancestor[v] = ancestor[ancID]
		}
	}

	eval := func(v NodeID) NodeID {
		if ancestor[v] == -1 {
			return v
		}
		compress(v)
		return best[v]
	}

	link := func(v NodeID, w int) {
		ancestor[v] = w
	}

	// Process vertices in reverse DFS order
	for i := dfsNum - 1; i > 0; i-- {
		w := vertex[i]

		// Semidominators from all predecessors of w
		for _, v := range preds[w] {
			processEdge(v, w, semi, dfnum, eval)
		}

		bucket[semi[w]] = append(bucket[semi[w]], w)

		if parent[w] != -1 {
			link(w, parent[w])
		}

		// Implicitly compute immediate dominators
		for _, v := range bucket[parent[w]] {
			u := eval(v)
			if semi[u] == semi[v] {
				idom[v] = vertex[parent[w]]
			} else {
				samedom[v] = u
			}
		}
		bucket[parent[w]] = nil
	}

	// Explicitly compute immediate dominators
	for i := 1; i < dfsNum; i++ {
		w := vertex[i]
		if samedom[w] != w {
			idom[w] = idom[samedom[w]]
		}
	}

	delete(idom, 0)

	return idom
}

func processEdge(v, w NodeID, semi map[NodeID]int, dfnum map[NodeID]int, eval func(NodeID) NodeID) {
	vNum, vReachable := dfnum[v]
	if !vReachable {
		return
	}

	var u NodeID
	if vNum <= dfnum[w] {
		u = v
	} else {
		u = eval(v)
	}

	if semi[u] < semi[w] {
		semi[w] = semi[u]
	}
}

// DominatorTree builds a tree structure from immediate dominators.
// Returns a map from each node to its immediately dominated nodes, sorted
// by ID so the result is deterministic.
func DominatorTree(idom map[NodeID]NodeID) map[NodeID][]NodeID {
	tree := make(map[NodeID][]NodeID)

	for node := range idom {
		tree[node] = []NodeID{}
	}
	tree[0] = []NodeID{} // super-root

	for node, dom := range idom {
		tree[dom] = append(tree[dom], node)
	}
	for _, children := range tree {
		sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	}

	return tree
}

