// Package pairlex exposes the pairing parser's five external operations
// over a single process-wide registry.Registry instance, the same surface
// the embedding host wires into its scripting layer.
package pairlex

import (
	"github.com/xcdnlgd/go-pairs/lang"
	"github.com/xcdnlgd/go-pairs/registry"
	"github.com/xcdnlgd/go-pairs/token"
)

var global = registry.New()

// ParseBuffer parses bufferID's lines under filetype, or incrementally
// re-parses [startLine, oldEndLine) if bufferID has already been parsed.
// Nil range bounds mean "from the start" / "to the end" / "all of the
// freshly parsed lines". Reports false when filetype is unknown.
func ParseBuffer(bufferID int, filetype string, lines []string, startLine, oldEndLine, newEndLine *int) bool {
	return global.ParseBuffer(bufferID, filetype, lines, startLine, oldEndLine, newEndLine)
}

// LineMatches returns bufferID's matches on line, restricted to kindFilter
// when non-nil (unknown filter ids default to Delimiter, per
// token.FilterFromID).
func LineMatches(bufferID, line int, kindFilter *int) []token.Match {
	matches, ok := global.LineMatches(bufferID, line)
	if !ok {
		return nil
	}
	if kindFilter == nil {
		return matches
	}
	f := token.FilterFromID(*kindFilter)
	out := make([]token.Match, 0, len(matches))
	for _, m := range matches {
		if f.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// MatchAt returns the match covering (line, col) in bufferID.
func MatchAt(bufferID, line, col int) (token.Match, bool) {
	return global.MatchAt(bufferID, line, col)
}

// MatchPair returns the opening and closing halves of the pair at (line,
// col) in bufferID, ordered [opening, closing].
func MatchPair(bufferID, line, col int) (token.MatchWithLine, token.MatchWithLine, bool) {
	return global.MatchPair(bufferID, line, col)
}

// FiletypeTokens enumerates filetype's declared delimiter/string/block-
// comment pairs, for the host's auto-pair UI. Reports false when filetype
// is unknown.
func FiletypeTokens(filetype string) ([]token.AvailableToken, bool) {
	t, ok := lang.Lookup(filetype)
	if !ok {
		return nil, false
	}
	return t.AvailableTokens(), true
}

// Forget drops bufferID's parsed state, e.g. when the host closes it.
func Forget(bufferID int) {
	global.Forget(bufferID)
}

// Filetypes lists every filetype label the dispatcher recognizes.
func Filetypes() []string {
	return lang.Filetypes()
}
