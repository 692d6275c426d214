// ABOUTME: Streaming parser API for processing large treebanks one line at a time
// ABOUTME: Provides callbacks, progress reporting and an error budget for malformed lines

package bracket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prateek/treelens/treebank"
)

// ErrTooManyErrors is returned once malformed lines exceed the error budget
var ErrTooManyErrors = errors.New("too many malformed trees")

// progressEvery is how many lines pass between OnProgress calls
const progressEvery = 1000

// StreamingParser reads one tree per line and hands each to a callback
// without holding earlier trees in memory.
type StreamingParser struct {
	r         *bufio.Scanner
	opts      Options
	callbacks StreamCallbacks
	startTime time.Time

	// Error recovery
	maxErrors   int
	errorCount  int
	skipOnError bool

	bytesRead int64
	trees     int64
}

// StreamCallbacks defines callbacks for streaming parse events
type StreamCallbacks struct {
	// OnTree is called for each tree that parses
	OnTree func(line int, text string, tree *treebank.Tree) error

	// OnError is called for each malformed line. Returning an error stops
	// the stream.
	OnError func(line int, text string, err error) error

	// OnProgress is called every progressEvery lines and once at the end
	OnProgress func(bytesRead int64, treesParsed int64, elapsed time.Duration)
}

// NewStreamingParser creates a streaming parser over r. By default every
// malformed line is skipped.
func NewStreamingParser(r io.Reader, opts Options, callbacks StreamCallbacks) *StreamingParser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return &StreamingParser{
		r:           sc,
		opts:        opts,
		callbacks:   callbacks,
		skipOnError: true,
		startTime:   time.Now(),
	}
}

// SetErrorRecovery configures error recovery behavior. maxErrors of zero or
// less means no limit. With skipOnError false the first malformed line
// stops the stream.
func (p *StreamingParser) SetErrorRecovery(maxErrors int, skipOnError bool) {
	p.maxErrors = maxErrors
	p.skipOnError = skipOnError
}

// Parse performs the streaming parse with callbacks
func (p *StreamingParser) Parse() error {
	if err := p.opts.Validate(); err != nil {
		return err
	}

	line := 0
	for p.r.Scan() {
		line++
		text := p.r.Text()
		p.bytesRead += int64(len(text)) + 1

		if line%progressEvery == 0 {
			p.reportProgress()
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		tree, err := ParseTree(text, p.opts)
		if err != nil {
			if herr := p.handleError(line, text, err); herr != nil {
				return herr
			}
			continue
		}

		p.trees++
		if p.callbacks.OnTree != nil {
			if err := p.callbacks.OnTree(line, text, tree); err != nil {
				return err
			}
		}
	}
	if err := p.r.Err(); err != nil {
		return fmt.Errorf("reading line %d: %w", line+1, err)
	}

	p.reportProgress()
	return nil
}

// handleError reports a malformed line and decides whether to go on
func (p *StreamingParser) handleError(line int, text string, err error) error {
	p.errorCount++

	if p.callbacks.OnError != nil {
		if cbErr := p.callbacks.OnError(line, text, err); cbErr != nil {
			return cbErr
		}
	}

	if !p.skipOnError {
		return fmt.Errorf("line %d: %w", line, err)
	}
	if p.maxErrors > 0 && p.errorCount > p.maxErrors {
		return fmt.Errorf("%w: %d, last at line %d: %w", ErrTooManyErrors, p.errorCount, line, err)
	}
	return nil
}

func (p *StreamingParser) reportProgress() {
	if p.callbacks.OnProgress != nil {
		p.callbacks.OnProgress(p.bytesRead, p.trees, time.Since(p.startTime))
	}
}
