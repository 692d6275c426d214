// ABOUTME: Label span scanner for bracket notation
// ABOUTME: Finds the rune range of the next label after a delimiter

package bracket

import (
	"slices"
	"unicode"
)

// FindLabelSpan returns the inclusive character range [first, last] of the
// next label in text at or after start. A label is a maximal run of runes
// that are neither in separators nor whitespace.
//
// The rune at start may be a separator (normally the open delimiter that
// introduces the label) and is stepped over, as is any whitespace after it.
// Reaching another delimiter or the end of text before a label rune is a
// *SyntaxError. Offsets count runes, not bytes.
func FindLabelSpan(text string, start int, separators []rune) (first, last int, err error) {
	return findLabelSpan([]rune(text), start, separators)
}

func findLabelSpan(text []rune, start int, separators []rune) (int, int, error) {
	if start < 0 || start >= len(text) {
		return -1, -1, syntaxErrorf(start, 0, "label expected beyond end of text")
	}

	isSep := func(r rune) bool {
		return unicode.IsSpace(r) || slices.Contains(separators, r)
	}

	i := start
	if isSep(text[i]) {
		i++
	}
	for ; i < len(text) && isSep(text[i]); i++ {
		if !unicode.IsSpace(text[i]) {
			return -1, -1, syntaxErrorf(i, text[i], "empty label")
		}
	}
	if i == len(text) {
		return -1, -1, syntaxErrorf(i, 0, "text ended before label")
	}

	first := i
	for i < len(text) && !isSep(text[i]) {
		i++
	}
	return first, i - 1, nil
}
