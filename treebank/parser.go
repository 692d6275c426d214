// ABOUTME: Parser interface for treebank formats
// ABOUTME: Defines the contract for pluggable tree readers and the parsed Tree type

package treebank

import (
	"io"

	"github.com/prateek/treelens/graph"
)

// Tree is a parsed tree: its graph and the label index built alongside it.
// Both are read-only once returned by a parser.
type Tree struct {
	Graph graph.Graph
	Index *graph.LabelIndex
}

// Result is the outcome of parsing one tree from a source.
// Exactly one of Tree and Err is set.
type Result struct {
	Line int    // 1-based source line (or position in the source for non line-based formats)
	Text string // Source text of the tree, when the format has one
	Tree *Tree
	Err  error
}

// Parser is the interface for treebank parsers
type Parser interface {
	// Name identifies the format, e.g. "bracket" or "json"
	Name() string

	// CanParse checks if this parser can handle the given input.
	// The reader should be treated as a preview - implementations should
	// read a small amount to detect format and not consume the entire stream
	CanParse(r io.Reader) bool

	// Parse reads every tree from r. A tree that fails to parse is reported
	// in its Result; the returned error is reserved for failures that stop
	// the whole read, such as I/O errors.
	Parse(r io.Reader) ([]Result, error)
}
