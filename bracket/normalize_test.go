// ABOUTME: Tests for leaf normalization
// ABOUTME: Covers canonical output, idempotence and custom delimiters

package bracket

import (
	"errors"
	"testing"
)

const (
	rawSentence       = "(ROOT (S (NP (PRP$ My) (NN dog)) (ADVP (RB also)) (VP (VBZ likes) (S (VP (VBG eating) (NP (NN sausage))))) (. .)))"
	canonicalSentence = "(ROOT(S(NP(PRP$(My))(NN(dog)))(ADVP(RB(also)))(VP(VBZ(likes))(S(VP(VBG(eating))(NP(NN(sausage))))))(.(.))))"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"raw sentence", rawSentence, canonicalSentence},
		{"already canonical", canonicalSentence, canonicalSentence},
		{"fully bracketed leaves keep shape", "(S (NP (DT The) (NN dog)))", "(S(NP(DT(The))(NN(dog))))"},
		{"single preterminal", "(NN dog)", "(NN(dog))"},
		{"tabs and newlines", "(S\n\t(NP\t(NN dog)))", "(S(NP(NN(dog))))"},
		{"multi-byte leaf", "(NN café)", "(NN(café))"},
		{"whitespace before close", "(NP (NN dog) )", "(NP(NN(dog)))"},
		{"no leading wrapper at position 0", "ROOT", "ROOT"},
		{"empty", "", ""},
		{"only whitespace", " \t ", ""},
		// Two bare tokens nest and only one extra close is emitted, so the
		// result stays unbalanced and fails to build.
		{"bare token sequence", "(NP a b)", "(NP(a(b))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		rawSentence,
		"(S (NP (DT The) (NN dog)))",
		"(X (Y z) (W (V u)))",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeWithCustomDelimiters(t *testing.T) {
	got := NormalizeWith("[S [NP dog] [VP barks]]", '[', ']')
	want := "[S[NP[dog]][VP[barks]]]"
	if got != want {
		t.Errorf("NormalizeWith() = %q, want %q", got, want)
	}
}

func TestParseBareTokenSequence(t *testing.T) {
	g, idx, err := Parse("(NP a b)", DefaultOptions())
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("Parse() error = %v, want ErrMalformedInput", err)
	}
	if g != nil || idx != nil {
		t.Error("Failed parse must not return a partial graph or index")
	}
}
