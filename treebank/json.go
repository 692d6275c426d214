// ABOUTME: JSON treebank format: a list of trees given as explicit node lists
// ABOUTME: Reads documents into graphs and writes parsed trees back out

package treebank

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/prateek/treelens/graph"
)

// ErrInvalidTree is returned for a JSON tree whose nodes do not form a tree
var ErrInvalidTree = errors.New("invalid tree")

// Document is the serialized form of a set of trees
type Document struct {
	Trees []TreeDoc `json:"trees" yaml:"trees"`
}

// TreeDoc is one serialized tree
type TreeDoc struct {
	Root  graph.NodeID `json:"root" yaml:"root"`
	Nodes []NodeDoc    `json:"nodes" yaml:"nodes"`
}

// NodeDoc is one serialized node
type NodeDoc struct {
	ID       graph.NodeID   `json:"id" yaml:"id"`
	Label    string         `json:"label" yaml:"label"`
	Children []graph.NodeID `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewDocument serializes trees in order
func NewDocument(trees []*Tree) Document {
	doc := Document{Trees: make([]TreeDoc, 0, len(trees))}
	for _, t := range trees {
		td := TreeDoc{Root: t.Graph.Root()}
		t.Graph.ForEachNode(func(n *graph.Node) {
			td.Nodes = append(td.Nodes, NodeDoc{
				ID:       n.ID,
				Label:    n.Label,
				Children: append([]graph.NodeID(nil), n.Children...),
			})
		})
		doc.Trees = append(doc.Trees, td)
	}
	return doc
}

// WriteJSON writes trees as an indented JSON document
func WriteJSON(w io.Writer, trees []*Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(trees)); err != nil {
		return fmt.Errorf("encoding trees: %w", err)
	}
	return nil
}

// JSONParser reads Document JSON
type JSONParser struct{}

// Name returns "json"
func (p *JSONParser) Name() string { return "json" }

// CanParse checks that the input is a JSON object mentioning "trees"
func (p *JSONParser) CanParse(r io.Reader) bool {
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if err != nil {
			return false
		}
		if unicode.IsSpace(c) {
			continue
		}
		if c != '{' {
			return false
		}
		break
	}
	dec := json.NewDecoder(io.MultiReader(strings.NewReader("{"), br))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return false
	}
	key, err := dec.Token()
	return err == nil && key == "trees"
}

// Parse decodes the document and rebuilds each tree
func (p *JSONParser) Parse(r io.Reader) ([]Result, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	results := make([]Result, 0, len(doc.Trees))
	for i, td := range doc.Trees {
		tree, err := td.Build()
		results = append(results, Result{Line: i + 1, Tree: tree, Err: err})
	}
	return results, nil
}

// Build validates the serialized tree and turns it into a graph and index
func (td TreeDoc) Build() (*Tree, error) {
	if len(td.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidTree)
	}

	known := make(map[graph.NodeID]bool, len(td.Nodes))
	for i, n := range td.Nodes {
		if n.ID == 0 {
			return nil, fmt.Errorf("%w: node at index %d missing ID", ErrInvalidTree, i)
		}
		if known[n.ID] {
			return nil, fmt.Errorf("%w: duplicate node ID %d", ErrInvalidTree, n.ID)
		}
		known[n.ID] = true
	}
	if !known[td.Root] {
		return nil, fmt.Errorf("%w: root %d is not a node", ErrInvalidTree, td.Root)
	}

	parentOf := make(map[graph.NodeID]graph.NodeID, len(td.Nodes))
	for _, n := range td.Nodes {
		for _, c := range n.Children {
			if !known[c] {
				return nil, fmt.Errorf("%w: node %d has unknown child %d", ErrInvalidTree, n.ID, c)
			}
			if c == td.Root {
				return nil, fmt.Errorf("%w: root %d has a parent", ErrInvalidTree, c)
			}
			if p, dup := parentOf[c]; dup {
				return nil, fmt.Errorf("%w: node %d has parents %d and %d", ErrInvalidTree, c, p, n.ID)
			}
			parentOf[c] = n.ID
		}
	}
	g := graph.NewMemGraph()
	for _, n := range td.Nodes {
		g.AddNode(&graph.Node{
			ID:       n.ID,
			Label:    n.Label,
			Children: append([]graph.NodeID(nil), n.Children...),
		})
	}
	g.SetRoot(td.Root)

	if reached := len(graph.Reachable(g, td.Root)); reached != len(td.Nodes) {
		return nil, fmt.Errorf("%w: %d node(s) not connected to root %d", ErrInvalidTree, len(td.Nodes)-reached, td.Root)
	}

	return &Tree{Graph: g, Index: graph.BuildLabelIndex(g)}, nil
}

// init registers the JSON parser
func init() {
	Register(&JSONParser{})
}
