// ABOUTME: Normalizer that wraps bare leaf tokens in their own brackets
// ABOUTME: Produces canonical, whitespace-free text for the tree builder

package bracket

import (
	"strings"
	"unicode"
)

// Normalize wraps every bare leaf token of a "(" ")" tree in its own
// brackets and removes all whitespace:
//
//	(NP (PRP$ My) (NN dog))  ->  (NP(PRP$(My))(NN(dog)))
//
// Already canonical text comes back unchanged.
func Normalize(text string) string {
	return NormalizeWith(text, '(', ')')
}

// NormalizeWith is Normalize for an arbitrary delimiter pair.
//
// After whitespace a token may be a leaf. An open delimiter there starts a
// subtree instead. A token that starts right after whitespace gets a
// synthesized open delimiter, and the next close delimiter is doubled to
// close both the leaf and its parent. A close delimiter after whitespace
// with no leaf in between is copied once.
func NormalizeWith(text string, open, close rune) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	collecting := false
	afterSpace := false
	wrapped := false
	for _, c := range text {
		if unicode.IsSpace(c) {
			collecting = true
			afterSpace = true
			continue
		}
		leafStart := afterSpace
		afterSpace = false

		if collecting {
			switch {
			case c == open:
				collecting = false
				wrapped = false
			case c == close:
				if wrapped {
					b.WriteRune(close)
				}
				collecting = false
				wrapped = false
			case leafStart:
				b.WriteRune(open)
				wrapped = true
			}
		}
		b.WriteRune(c)
	}
	return b.String()
}
