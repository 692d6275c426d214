// ABOUTME: Label-based structural queries over parsed trees
// ABOUTME: Dominance by reachability, dominance over all occurrences, distances and ancestry

// Package query answers structural questions about a tree graph by label.
//
// Labels are not unique. Dominates and Distances start from the first node
// created with the source label (the leftmost, outermost occurrence in
// pre-order). DominatesAny considers every occurrence.
package query

import (
	"errors"
	"fmt"

	"github.com/prateek/treelens/graph"
)

// ErrLabelNotFound is returned when no node carries a queried label
var ErrLabelNotFound = errors.New("label not found")

func lookup(idx *graph.LabelIndex, label string) ([]graph.NodeID, error) {
	ids := idx.Lookup(label)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}
	return ids, nil
}

// Dominates reports whether a node labeled dominated is reachable from the
// first node labeled dominator. A node does not dominate itself unless it
// has an edge to itself.
//
// If either label is missing the result is false with an error wrapping
// ErrLabelNotFound.
func Dominates(g graph.Graph, idx *graph.LabelIndex, dominator, dominated string) (bool, error) {
	sources, err := lookup(idx, dominator)
	if err != nil {
		return false, err
	}
	if _, err := lookup(idx, dominated); err != nil {
		return false, err
	}

	source := sources[0]
	for id, dist := range graph.Reachable(g, source) {
		if dist == 0 {
			continue
		}
		if n := g.GetNode(id); n != nil && n.Label == dominated {
			return true, nil
		}
	}

	if n := g.GetNode(source); n != nil && n.Label == dominated {
		for _, c := range n.Children {
			if c == source {
				return true, nil
			}
		}
	}
	return false, nil
}

// DominatesAny reports whether any node labeled dominator is a proper
// ancestor of any node labeled dominated, using the dominator tree rooted
// at the graph root.
func DominatesAny(g graph.Graph, idx *graph.LabelIndex, dominator, dominated string) (bool, error) {
	tops, err := lookup(idx, dominator)
	if err != nil {
		return false, err
	}
	bottoms, err := lookup(idx, dominated)
	if err != nil {
		return false, err
	}

	idom := graph.Dominators(g)
	for _, top := range tops {
		for _, bottom := range bottoms {
			if top != bottom && graph.IsDominated(idom, bottom, top) {
				return true, nil
			}
		}
	}
	return false, nil
}

// Distances returns every node reachable from the first node labeled
// label, with its distance in edges. The source itself is at distance 0.
func Distances(g graph.Graph, idx *graph.LabelIndex, label string) (map[graph.NodeID]int, error) {
	ids, err := lookup(idx, label)
	if err != nil {
		return nil, err
	}
	return graph.Reachable(g, ids[0]), nil
}

// Ancestry returns the chain from the first node labeled label up to the
// root, starting with that node.
func Ancestry(g graph.Graph, idx *graph.LabelIndex, label string) ([]graph.NodeID, error) {
	ids, err := lookup(idx, label)
	if err != nil {
		return nil, err
	}
	return graph.PathToRoot(g, ids[0]), nil
}
