// ABOUTME: Graph interface and in-memory implementation
// ABOUTME: Provides methods for storing and querying labeled tree graphs

package graph

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNodeNotFound is returned when an edge references a node that does not exist
var ErrNodeNotFound = errors.New("node not found")

// Graph represents a directed graph of labeled nodes
type Graph interface {
	// AddNode adds a node to the graph, replacing any node with the same ID
	AddNode(n *Node)

	// AddEdge adds a directed edge from parent to child
	AddEdge(parent, child NodeID) error

	// GetNode retrieves a node by ID
	GetNode(id NodeID) *Node

	// NumNodes returns the total number of nodes
	NumNodes() int

	// NumEdges returns the total number of edges
	NumEdges() int

	// ForEachNode iterates over all nodes in ID order
	ForEachNode(fn func(*Node))

	// SetRoot sets the root node
	SetRoot(id NodeID)

	// Root returns the root node ID, or 0 if none was set
	Root() NodeID
}

// MemGraph is an in-memory implementation of Graph
type MemGraph struct {
	mu    sync.RWMutex
	nodes map[NodeID]*Node
	order []NodeID
	edges int
	root  NodeID
}

// NewMemGraph creates a new in-memory graph
func NewMemGraph() *MemGraph {
	return &MemGraph{
		nodes: make(map[NodeID]*Node),
	}
}

// AddNode adds a node to the graph
func (g *MemGraph) AddNode(n *Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if old, exists := g.nodes[n.ID]; exists {
		g.edges -= len(old.Children)
	} else {
		g.order = insertSorted(g.order, n.ID)
	}
	g.nodes[n.ID] = n
	g.edges += len(n.Children)
}

// AddEdge adds a directed edge from parent to child
func (g *MemGraph) AddEdge(parent, child NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.nodes[parent]
	if !ok {
		return fmt.Errorf("edge %d->%d: parent %w", parent, child, ErrNodeNotFound)
	}
	if _, ok := g.nodes[child]; !ok {
		return fmt.Errorf("edge %d->%d: child %w", parent, child, ErrNodeNotFound)
	}
	p.Children = append(p.Children, child)
	g.edges++
	return nil
}

// GetNode retrieves a node by ID
func (g *MemGraph) GetNode(id NodeID) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[id]
}

// NumNodes returns the total number of nodes
func (g *MemGraph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// NumEdges returns the total number of edges
func (g *MemGraph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}

// ForEachNode iterates over all nodes in ID order
func (g *MemGraph) ForEachNode(fn func(*Node)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, id := range g.order {
		fn(g.nodes[id])
	}
}

// SetRoot sets the root node
func (g *MemGraph) SetRoot(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.root = id
}

// Root returns the root node ID
func (g *MemGraph) Root() NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.root
}

// insertSorted keeps ids ascending; the builder appends increasing IDs so
// the common case is a plain append.
func insertSorted(ids []NodeID, id NodeID) []NodeID {
	i := len(ids)
	for i > 0 && ids[i-1] > id {
		i--
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
