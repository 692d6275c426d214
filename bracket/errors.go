// ABOUTME: Error values for bracket parsing
// ABOUTME: Sentinel errors plus SyntaxError carrying position and offending character

package bracket

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is matched by every parse failure
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidOptions is returned for unusable delimiter settings
	ErrInvalidOptions = errors.New("invalid bracket options")
)

// SyntaxError describes where and why input was rejected.
// Pos is a character (rune) offset into the parsed text.
type SyntaxError struct {
	Pos  int
	Char rune // offending character, 0 at end of text
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("malformed input at position %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("malformed input at position %d (%q): %s", e.Pos, e.Char, e.Msg)
}

// Unwrap lets errors.Is match ErrMalformedInput
func (e *SyntaxError) Unwrap() error {
	return ErrMalformedInput
}

func syntaxErrorf(pos int, ch rune, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Char: ch, Msg: fmt.Sprintf(format, args...)}
}
