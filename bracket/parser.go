// ABOUTME: Line-oriented treebank parser for bracket notation
// ABOUTME: Implements treebank.Parser with one tree per non-blank line

package bracket

import (
	"bufio"
	"io"
	"unicode"

	"github.com/prateek/treelens/treebank"
)

// maxLineSize bounds a single tree line
const maxLineSize = 16 * 1024 * 1024

// LineParser reads one bracketed tree per line
type LineParser struct {
	Options Options

	// MaxErrors stops Parse with ErrTooManyErrors once more lines than this
	// are malformed. Zero means no limit.
	MaxErrors int
}

// Ensure LineParser implements Parser interface
var _ treebank.Parser = (*LineParser)(nil)

// NewLineParser creates a parser with the given options
func NewLineParser(opts Options) *LineParser {
	return &LineParser{Options: opts}
}

// Name returns "bracket"
func (p *LineParser) Name() string { return "bracket" }

// CanParse checks that the first non-space character is the open delimiter
func (p *LineParser) CanParse(r io.Reader) bool {
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if err != nil {
			return false
		}
		if !unicode.IsSpace(c) {
			return c == p.Options.Open
		}
	}
}

// Parse reads every non-blank line as a tree. Malformed lines are reported
// in their Result and do not stop the read unless MaxErrors is exceeded, in
// which case the results so far are returned with the error.
func (p *LineParser) Parse(r io.Reader) ([]treebank.Result, error) {
	var results []treebank.Result
	sp := NewStreamingParser(r, p.Options, StreamCallbacks{
		OnTree: func(line int, text string, tree *treebank.Tree) error {
			results = append(results, treebank.Result{Line: line, Text: text, Tree: tree})
			return nil
		},
		OnError: func(line int, text string, err error) error {
			results = append(results, treebank.Result{Line: line, Text: text, Err: err})
			return nil
		},
	})
	sp.SetErrorRecovery(p.MaxErrors, true)

	err := sp.Parse()
	return results, err
}

// ParseTree parses a single tree string into a treebank.Tree
func ParseTree(text string, opts Options) (*treebank.Tree, error) {
	g, idx, err := Parse(text, opts)
	if err != nil {
		return nil, err
	}
	return &treebank.Tree{Graph: g, Index: idx}, nil
}

// Register the default bracket parser with the treebank package
func init() {
	treebank.Register(NewLineParser(DefaultOptions()))
}
