// ABOUTME: Tests for the streaming parser API
// ABOUTME: Validates streaming callbacks, progress reporting, and error recovery

package bracket

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prateek/treelens/treebank"
)

const streamInput = "(ROOT (NN dog))\n" +
	"\n" +
	"(ROOT (NN\n" +
	"(ROOT (VP (VBZ runs)))\n" +
	")\n"

func TestStreamingParseBasic(t *testing.T) {
	var treeLines, errLines []int
	var lastBytes, lastTrees int64

	sp := NewStreamingParser(strings.NewReader(streamInput), DefaultOptions(), StreamCallbacks{
		OnTree: func(line int, text string, tree *treebank.Tree) error {
			treeLines = append(treeLines, line)
			if tree.Graph.NumNodes() == 0 {
				t.Errorf("line %d: empty graph", line)
			}
			return nil
		},
		OnError: func(line int, text string, err error) error {
			errLines = append(errLines, line)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("line %d: error = %v, want ErrMalformedInput", line, err)
			}
			return nil
		},
		OnProgress: func(bytesRead, trees int64, elapsed time.Duration) {
			lastBytes, lastTrees = bytesRead, trees
		},
	})

	if err := sp.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if fmt.Sprint(treeLines) != "[1 4]" {
		t.Errorf("trees on lines %v, want [1 4]", treeLines)
	}
	if fmt.Sprint(errLines) != "[3 5]" {
		t.Errorf("errors on lines %v, want [3 5]", errLines)
	}
	if lastTrees != 2 {
		t.Errorf("final progress reported %d trees, want 2", lastTrees)
	}
	if lastBytes != int64(len(streamInput)) {
		t.Errorf("final progress reported %d bytes, want %d", lastBytes, len(streamInput))
	}
}

func TestStreamingErrorRecovery(t *testing.T) {
	tests := []struct {
		name        string
		maxErrors   int
		skipOnError bool
		wantErr     error
		wantTrees   int
	}{
		{"skip all", 0, true, nil, 2},
		{"budget of two", 2, true, nil, 2},
		{"budget of one", 1, true, ErrTooManyErrors, 2},
		{"stop on first", 0, false, ErrMalformedInput, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trees := 0
			sp := NewStreamingParser(strings.NewReader(streamInput), DefaultOptions(), StreamCallbacks{
				OnTree: func(int, string, *treebank.Tree) error {
					trees++
					return nil
				},
			})
			sp.SetErrorRecovery(tt.maxErrors, tt.skipOnError)

			err := sp.Parse()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			if trees != tt.wantTrees {
				t.Errorf("got %d trees, want %d", trees, tt.wantTrees)
			}
		})
	}
}

func TestStreamingCallbackErrors(t *testing.T) {
	stop := errors.New("stop")

	sp := NewStreamingParser(strings.NewReader(streamInput), DefaultOptions(), StreamCallbacks{
		OnTree: func(line int, _ string, _ *treebank.Tree) error {
			if line == 4 {
				return stop
			}
			return nil
		},
	})
	if err := sp.Parse(); !errors.Is(err, stop) {
		t.Errorf("OnTree error should stop the stream, got %v", err)
	}

	sp = NewStreamingParser(strings.NewReader(streamInput), DefaultOptions(), StreamCallbacks{
		OnError: func(int, string, error) error { return stop },
	})
	if err := sp.Parse(); !errors.Is(err, stop) {
		t.Errorf("OnError error should stop the stream, got %v", err)
	}
}

func TestStreamingProgress(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2*progressEvery+10; i++ {
		fmt.Fprintf(&b, "(S (NN w%d))\n", i)
	}

	calls := 0
	var last int64
	sp := NewStreamingParser(strings.NewReader(b.String()), DefaultOptions(), StreamCallbacks{
		OnProgress: func(_ int64, trees int64, _ time.Duration) {
			calls++
			if trees < last {
				t.Errorf("progress went backwards: %d after %d", trees, last)
			}
			last = trees
		},
	})
	if err := sp.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Two periodic reports plus the final one
	if calls != 3 {
		t.Errorf("OnProgress called %d times, want 3", calls)
	}
	if last != 2*progressEvery+10 {
		t.Errorf("final tree count = %d, want %d", last, 2*progressEvery+10)
	}
}

func TestLineParserMaxErrors(t *testing.T) {
	p := NewLineParser(DefaultOptions())
	p.MaxErrors = 1

	results, err := p.Parse(strings.NewReader(streamInput))
	if !errors.Is(err, ErrTooManyErrors) {
		t.Fatalf("Parse() error = %v, want ErrTooManyErrors", err)
	}
	// Line 1 parsed, line 3 malformed, line 4 parsed, line 5 over budget
	if len(results) != 4 {
		t.Errorf("got %d results before stopping, want 4", len(results))
	}
}
