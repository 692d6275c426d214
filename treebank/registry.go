// ABOUTME: Registry for treebank parsers
// ABOUTME: Manages parser plugins and selects the appropriate parser for an input

package treebank

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

var (
	// ErrNoParser is returned when no parser can handle the input format
	ErrNoParser = errors.New("no parser found for treebank format")
)

// sniffSize is how much input is buffered for format detection
const sniffSize = 4096

// parserRegistry holds registered parsers
type parserRegistry struct {
	mu      sync.RWMutex
	parsers []Parser
}

// Global registry instance
var registry = &parserRegistry{
	parsers: make([]Parser, 0),
}

// Register adds a parser to the registry. A parser registered under an
// existing name replaces it.
func Register(p Parser) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for i, existing := range registry.parsers {
		if existing.Name() == p.Name() {
			registry.parsers[i] = p
			return
		}
	}
	registry.parsers = append(registry.parsers, p)
}

// Lookup returns the parser registered under name
func Lookup(name string) (Parser, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	for _, p := range registry.parsers {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoParser, name)
}

// Names lists the registered format names, sorted
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.parsers))
	for _, p := range registry.parsers {
		names = append(names, p.Name())
	}
	sort.Strings(names)
	return names
}

// Open reads trees from r using the first registered parser that
// recognises the input.
func Open(r io.Reader) ([]Result, error) {
	p, body, err := Detect(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(body)
}

// Detect picks the parser for r. The returned reader replays the sniffed
// prefix followed by the rest of r.
func Detect(r io.Reader) (Parser, io.Reader, error) {
	detectBuf := make([]byte, sniffSize)
	n, err := io.ReadFull(r, detectBuf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, nil, err
	}
	detectBuf = detectBuf[:n]

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	for _, parser := range registry.parsers {
		if parser.CanParse(bytes.NewReader(detectBuf)) {
			return parser, io.MultiReader(bytes.NewReader(detectBuf), r), nil
		}
	}

	return nil, nil, ErrNoParser
}
