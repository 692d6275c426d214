// ABOUTME: Tests for reachability and paths-to-root
// ABOUTME: Validates BFS distances, ancestry chains and cycle handling

package graph

import (
	"reflect"
	"testing"
)

func TestReachable(t *testing.T) {
	// 1 -> 2 -> 3
	//      2 -> 4
	// 5 disconnected
	g := newTestGraph(
		&Node{ID: 1, Label: "S", Children: []NodeID{2}},
		&Node{ID: 2, Label: "NP", Children: []NodeID{3, 4}},
		&Node{ID: 3, Label: "DT"},
		&Node{ID: 4, Label: "NN"},
		&Node{ID: 5, Label: "X"},
	)

	tests := []struct {
		name   string
		source NodeID
		want   map[NodeID]int
	}{
		{"from root", 1, map[NodeID]int{1: 0, 2: 1, 3: 2, 4: 2}},
		{"from inner node", 2, map[NodeID]int{2: 0, 3: 1, 4: 1}},
		{"from leaf", 4, map[NodeID]int{4: 0}},
		{"from disconnected node", 5, map[NodeID]int{5: 0}},
		{"unknown source", 99, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reachable(g, tt.source)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Reachable(%d) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestReachableShortestDistance(t *testing.T) {
	// 1 -> 2 -> 3 -> 4 and a shortcut 1 -> 4
	g := newTestGraph(
		&Node{ID: 1, Label: "a", Children: []NodeID{2, 4}},
		&Node{ID: 2, Label: "b", Children: []NodeID{3}},
		&Node{ID: 3, Label: "c", Children: []NodeID{4}},
		&Node{ID: 4, Label: "d", Children: []NodeID{1}},
	)

	got := Reachable(g, 1)
	want := map[NodeID]int{1: 0, 2: 1, 3: 2, 4: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable() = %v, want %v", got, want)
	}
}

func TestPathsToRoot(t *testing.T) {
	// 1 (root) -> 2 -> 3
	//               -> 4
	g := newTestGraph(
		&Node{ID: 1, Label: "root", Children: []NodeID{2}},
		&Node{ID: 2, Label: "middle", Children: []NodeID{3, 4}},
		&Node{ID: 3, Label: "leaf1"},
		&Node{ID: 4, Label: "leaf2"},
	)

	tests := []struct {
		name     string
		from     NodeID
		maxPaths int
		want     []Path
	}{
		{"Direct path from root", 1, 5, []Path{{IDs: []NodeID{1}}}},
		{"One hop from root", 2, 5, []Path{{IDs: []NodeID{2, 1}}}},
		{"Two hops from root", 3, 5, []Path{{IDs: []NodeID{3, 2, 1}}}},
		{"Another two hops path", 4, 5, []Path{{IDs: []NodeID{4, 2, 1}}}},
		{"Zero max paths", 4, 0, nil},
		{"Unknown node", 42, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := PathsToRoot(g, tt.from, tt.maxPaths)
			if !reflect.DeepEqual(paths, tt.want) {
				t.Errorf("PathsToRoot() = %v, want %v", paths, tt.want)
			}
		})
	}
}

func TestPathsWithCycles(t *testing.T) {
	// 1 (root) -> 2 -> 3 -> 2 (cycle)
	g := newTestGraph(
		&Node{ID: 1, Label: "root", Children: []NodeID{2}},
		&Node{ID: 2, Label: "cycle1", Children: []NodeID{3}},
		&Node{ID: 3, Label: "cycle2", Children: []NodeID{2}},
	)

	paths := PathsToRoot(g, 3, 5)
	want := []Path{{IDs: []NodeID{3, 2, 1}}}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("PathsToRoot() with cycle = %v, want %v", paths, want)
	}
}

func TestPathsDiamond(t *testing.T) {
	g := newTestGraph(
		&Node{ID: 1, Label: "root", Children: []NodeID{2, 3}},
		&Node{ID: 2, Label: "left", Children: []NodeID{4}},
		&Node{ID: 3, Label: "right", Children: []NodeID{4}},
		&Node{ID: 4, Label: "merge"},
	)

	if paths := PathsToRoot(g, 4, 5); len(paths) != 2 {
		t.Errorf("Expected 2 paths through the diamond, got %v", paths)
	}
	if paths := PathsToRoot(g, 4, 1); len(paths) != 1 {
		t.Errorf("Expected at most 1 path, got %d", len(paths))
	}
}

func TestUnreachableNode(t *testing.T) {
	g := newTestGraph(
		&Node{ID: 1, Label: "root", Children: []NodeID{2}},
		&Node{ID: 2, Label: "connected"},
		&Node{ID: 3, Label: "disconnected"},
	)

	if paths := PathsToRoot(g, 3, 5); len(paths) != 0 {
		t.Errorf("Expected no paths for unreachable node, got %v", paths)
	}
	if chain := PathToRoot(g, 3); chain != nil {
		t.Errorf("PathToRoot() = %v, want nil", chain)
	}
}

func TestPathToRoot(t *testing.T) {
	g := newTestGraph(
		&Node{ID: 1, Label: "ROOT", Children: []NodeID{2}},
		&Node{ID: 2, Label: "S", Children: []NodeID{3}},
		&Node{ID: 3, Label: "NP"},
	)

	want := []NodeID{3, 2, 1}
	if got := PathToRoot(g, 3); !reflect.DeepEqual(got, want) {
		t.Errorf("PathToRoot() = %v, want %v", got, want)
	}
}
