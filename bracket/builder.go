// ABOUTME: Tree builder turning canonical bracket text into a graph and label index
// ABOUTME: Tracks open nodes on a stack and enforces the trailing-content policy

package bracket

import (
	"fmt"
	"unicode"

	"github.com/prateek/treelens/graph"
)

// Options configures delimiters and parse policy
type Options struct {
	Open  rune // opens a node, default '('
	Close rune // closes a node, default ')'

	// Normalize runs NormalizeWith before building (used by Parse only)
	Normalize bool

	// IgnoreTrailing accepts and discards anything after the root closes.
	// By default trailing non-whitespace is a syntax error.
	IgnoreTrailing bool
}

// DefaultOptions returns parenthesis delimiters, normalization on and
// strict trailing-content handling.
func DefaultOptions() Options {
	return Options{Open: '(', Close: ')', Normalize: true}
}

// Validate checks that the delimiters are usable
func (o Options) Validate() error {
	switch {
	case o.Open == 0 || o.Close == 0:
		return fmt.Errorf("%w: delimiters must be set", ErrInvalidOptions)
	case o.Open == o.Close:
		return fmt.Errorf("%w: open and close delimiters are both %q", ErrInvalidOptions, o.Open)
	case unicode.IsSpace(o.Open) || unicode.IsSpace(o.Close):
		return fmt.Errorf("%w: delimiters must not be whitespace", ErrInvalidOptions)
	}
	return nil
}

// Parse normalizes text when opts.Normalize is set and builds it
func Parse(text string, opts Options) (graph.Graph, *graph.LabelIndex, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	if opts.Normalize {
		text = NormalizeWith(text, opts.Open, opts.Close)
	}
	return Build(text, opts)
}

// Build parses canonical bracketed text into a graph and label index.
// Node IDs are assigned from 1 in the order nodes open, the first node is
// the root, and each label's index entries follow that order.
func Build(text string, opts Options) (graph.Graph, *graph.LabelIndex, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	b := newBuilder(text, opts)
	if err := b.run(); err != nil {
		return nil, nil, err
	}
	return b.g, b.idx, nil
}

// builder owns the open-node stack together with the graph and index it
// fills, so no partially built state escapes a failed parse.
type builder struct {
	text       []rune
	pos        int
	opts       Options
	separators []rune

	stack  []graph.NodeID
	g      *graph.MemGraph
	idx    *graph.LabelIndex
	nextID graph.NodeID
}

func newBuilder(text string, opts Options) *builder {
	return &builder{
		text:       []rune(text),
		opts:       opts,
		separators: []rune{opts.Open, opts.Close, ' ', '\t', '\n', '\r', '\v', '\f'},
		g:          graph.NewMemGraph(),
		idx:        graph.NewLabelIndex(),
	}
}

func (b *builder) run() error {
	for b.pos < len(b.text) {
		c := b.text[b.pos]
		switch {
		case c == b.opts.Open:
			if err := b.openNode(); err != nil {
				return err
			}
		case c == b.opts.Close:
			done, err := b.closeNode()
			if err != nil {
				return err
			}
			if done {
				return b.checkTrailing()
			}
		case unicode.IsSpace(c):
			b.pos++
		default:
			return syntaxErrorf(b.pos, c, "unexpected character outside a label")
		}
	}

	if b.nextID == 0 {
		return syntaxErrorf(b.pos, 0, "empty tree")
	}
	return syntaxErrorf(b.pos, 0, "unterminated tree: %d node(s) still open", len(b.stack))
}

func (b *builder) openNode() error {
	first, last, err := findLabelSpan(b.text, b.pos, b.separators)
	if err != nil {
		return err
	}

	b.nextID++
	id := b.nextID
	label := string(b.text[first : last+1])
	b.g.AddNode(&graph.Node{ID: id, Label: label})
	if id == 1 {
		b.g.SetRoot(id)
	}
	b.idx.Add(label, id)
	b.stack = append(b.stack, id)

	b.pos = last + 1
	return nil
}

// closeNode reports done once the root itself closes
func (b *builder) closeNode() (bool, error) {
	switch len(b.stack) {
	case 0:
		return false, syntaxErrorf(b.pos, b.opts.Close, "close delimiter without open node")
	case 1:
		b.stack = b.stack[:0]
		b.pos++
		return true, nil
	}

	child := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	parent := b.stack[len(b.stack)-1]
	if err := b.g.AddEdge(parent, child); err != nil {
		return false, fmt.Errorf("closing node %d: %w", child, err)
	}
	b.pos++
	return false, nil
}

func (b *builder) checkTrailing() error {
	if b.opts.IgnoreTrailing {
		return nil
	}
	for i := b.pos; i < len(b.text); i++ {
		if !unicode.IsSpace(b.text[i]) {
			return syntaxErrorf(i, b.text[i], "trailing content after root")
		}
	}
	return nil
}
