package pairlex

import (
	"testing"

	"github.com/xcdnlgd/go-pairs/token"
)

// Each test uses its own buffer id so the shared global registry doesn't
// leak state between tests.

func TestParseBufferAndLineMatches(t *testing.T) {
	if !ParseBuffer(1001, "rust", []string{"{", "}"}, nil, nil, nil) {
		t.Fatal("ParseBuffer should succeed for rust")
	}
	matches := LineMatches(1001, 0, nil)
	if len(matches) != 1 || matches[0].Kind != token.Opening {
		t.Errorf("LineMatches = %v, want the opening brace", matches)
	}
}

func TestParseBufferUnknownFiletype(t *testing.T) {
	if ParseBuffer(1002, "not-a-real-language", []string{"x"}, nil, nil, nil) {
		t.Error("ParseBuffer should fail for an unknown filetype")
	}
}

func TestLineMatchesKindFilter(t *testing.T) {
	ParseBuffer(1003, "rust", []string{`"a" {`}, nil, nil, nil)

	stringFilter := int(token.FilterString)
	matches := LineMatches(1003, 0, &stringFilter)
	for _, m := range matches {
		if m.Token.Variant != token.VariantString {
			t.Errorf("matches = %v, want only string matches", matches)
		}
	}
	if len(matches) != 2 {
		t.Errorf("len(matches) = %d, want 2 (open+close quote)", len(matches))
	}
}

func TestMatchAtAndMatchPair(t *testing.T) {
	ParseBuffer(1004, "rust", []string{"(", ")"}, nil, nil, nil)

	m, ok := MatchAt(1004, 0, 0)
	if !ok || m.Kind != token.Opening {
		t.Fatalf("MatchAt = %v, %v, want the opening paren", m, ok)
	}
	opening, closing, ok := MatchPair(1004, 0, 0)
	if !ok || opening.Line != 0 || closing.Line != 1 {
		t.Errorf("MatchPair = %+v, %+v, %v, want lines 0/1", opening, closing, ok)
	}
}

func TestFiletypeTokens(t *testing.T) {
	toks, ok := FiletypeTokens("rust")
	if !ok || len(toks) == 0 {
		t.Fatal("FiletypeTokens(rust) should return a non-empty list")
	}
	if _, ok := FiletypeTokens("not-a-real-language"); ok {
		t.Error("FiletypeTokens should fail for an unknown filetype")
	}
}

func TestForget(t *testing.T) {
	ParseBuffer(1005, "rust", []string{"{"}, nil, nil, nil)
	Forget(1005)
	if _, ok := MatchAt(1005, 0, 0); ok {
		t.Error("MatchAt should fail after Forget")
	}
}

func TestFiletypesListsKnownLanguages(t *testing.T) {
	fts := Filetypes()
	found := false
	for _, ft := range fts {
		if ft == "rust" {
			found = true
		}
	}
	if !found {
		t.Errorf("Filetypes() = %v, want it to include \"rust\"", fts)
	}
}
