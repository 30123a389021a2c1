package buffer

import (
	"testing"

	"github.com/xcdnlgd/go-pairs/token"
)

func mustParse(t *testing.T, filetype string, lines []string) *ParsedBuffer {
	t.Helper()
	b, ok := Parse(filetype, lines)
	if !ok {
		t.Fatalf("Parse(%q, ...) failed", filetype)
	}
	return b
}

func intp(v int) *int { return &v }

func TestParseUnknownFiletype(t *testing.T) {
	if _, ok := Parse("not-a-real-language", []string{"x"}); ok {
		t.Error("Parse of an unknown filetype should fail")
	}
}

func TestMatchAtAndMatchPair(t *testing.T) {
	b := mustParse(t, "rust", []string{"fn f() {", "    g();", "}"})

	m, ok := b.MatchAt(0, 7)
	if !ok || m.Kind != token.Opening {
		t.Fatalf("MatchAt(0,7) = %v, %v, want the opening brace", m, ok)
	}

	opening, closing, ok := b.MatchPair(0, 7)
	if !ok {
		t.Fatal("MatchPair should find the brace pair")
	}
	if opening.Line != 0 || opening.Col != 7 {
		t.Errorf("opening = %+v, want line 0 col 7", opening)
	}
	if closing.Line != 2 || closing.Col != 0 {
		t.Errorf("closing = %+v, want line 2 col 0", closing)
	}
}

func TestMatchPairFromCloser(t *testing.T) {
	b := mustParse(t, "rust", []string{"(", ")"})

	opening, closing, ok := b.MatchPair(1, 0)
	if !ok {
		t.Fatal("MatchPair should find the paren pair from its closer")
	}
	if opening.Line != 0 || closing.Line != 1 {
		t.Errorf("opening/closing = %+v / %+v, want lines 0/1", opening, closing)
	}
}

func TestMatchPairBlockComment(t *testing.T) {
	b := mustParse(t, "rust", []string{"/* start", "still going", "end */"})

	opening, closing, ok := b.MatchPair(0, 0)
	if !ok {
		t.Fatal("MatchPair should find the block-comment pair")
	}
	if opening.Line != 0 || opening.Col != 0 {
		t.Errorf("opening = %+v, want line 0 col 0", opening)
	}
	if closing.Line != 2 || closing.Col != 4 {
		t.Errorf("closing = %+v, want line 2 col 4", closing)
	}

	// And from the closer's side.
	opening, closing, ok = b.MatchPair(2, 4)
	if !ok {
		t.Fatal("MatchPair should find the block-comment pair from its closer")
	}
	if opening.Line != 0 || closing.Line != 2 {
		t.Errorf("opening/closing = %+v / %+v, want lines 0/2", opening, closing)
	}
}

func TestMatchAtOutOfRange(t *testing.T) {
	b := mustParse(t, "rust", []string{"x"})
	if _, ok := b.MatchAt(5, 0); ok {
		t.Error("MatchAt on an out-of-range line should fail")
	}
	if _, ok := b.MatchAt(0, 99); ok {
		t.Error("MatchAt on an out-of-range column should fail")
	}
}

func TestReparseRangeSplicesAndRecomputesHeights(t *testing.T) {
	b := mustParse(t, "rust", []string{"fn f() {", "    g();", "}"})

	ok := b.ReparseRange("rust", []string{"    h(k() + 1);"}, intp(1), intp(2), nil)
	if !ok {
		t.Fatal("ReparseRange failed")
	}

	matches, ok := b.LineMatches(1)
	if !ok {
		t.Fatal("LineMatches(1) failed after splice")
	}
	var opens int
	for _, m := range matches {
		if m.Kind == token.Opening && m.Token.Variant == token.VariantDelimiter {
			opens++
		}
	}
	if opens != 2 {
		t.Errorf("expected 2 opening delimiters on the spliced line (h( and k(), got %d", opens)
	}

	// The outer brace pair should still match across the splice.
	if _, ok := b.MatchAt(0, 7); !ok {
		t.Fatal("outer brace should still be present")
	}
	if _, _, ok := b.MatchPair(0, 7); !ok {
		t.Error("outer brace pair should still resolve after the splice")
	}
}

func TestReparseRangeUnknownFiletype(t *testing.T) {
	b := mustParse(t, "rust", []string{"x"})
	if b.ReparseRange("not-a-real-language", []string{"y"}, nil, nil, nil) {
		t.Error("ReparseRange with an unknown filetype should fail")
	}
}

func TestReparseRangeDefaultsToFullReplace(t *testing.T) {
	b := mustParse(t, "rust", []string{"{", "}"})
	if !b.ReparseRange("rust", []string{"(", ")"}, nil, nil, nil) {
		t.Fatal("ReparseRange failed")
	}
	matches, _ := b.LineMatches(0)
	if len(matches) != 1 || matches[0].Token.Open != "(" {
		t.Errorf("matches = %v, want the new paren opener", matches)
	}
}
