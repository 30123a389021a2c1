// Package matcher implements the per-language finite-state matcher: given
// a lang.Table and the current ParseState, it decides what (if anything)
// the next scanned byte begins or ends, consuming a bounded run of
// lookahead events when a literal is more than one byte long.
//
// Rather than generating one state machine per language the way
// original_source's matcher_macros::define_matcher! macro does, Step
// below walks a lang.Table at runtime instead — a slower but simpler
// alternative to per-language codegen.
package matcher

import (
	"github.com/xcdnlgd/go-pairs/lang"
	"github.com/xcdnlgd/go-pairs/scan"
	"github.com/xcdnlgd/go-pairs/token"
)

// Matcher interprets one lang.Table.
type Matcher struct {
	table     lang.Table
	lookahead int
}

// New builds a Matcher for t, precomputing its lookahead budget.
func New(t lang.Table) *Matcher {
	return &Matcher{table: t, lookahead: t.Lookahead()}
}

// Lookahead is the number of extra events beyond the current one Step may
// need to peek at to recognize the longest literal in the table.
func (m *Matcher) Lookahead() int {
	return m.lookahead
}

// Step advances the state machine by one scanned event. window is the
// current event followed by up to Lookahead() more events from the same
// line (never crossing a newline); escaped reports whether window[0] was
// immediately preceded by an unresolved backslash; stack is the shared
// delimiter-closing-text stack for the whole buffer, pushed to and popped
// from in place.
//
// It returns the next ParseState, zero or more Matches recognized at this
// position, and how many of the extra events in window (beyond window[0])
// were consumed by the match.
func (m *Matcher) Step(state token.ParseState, window []scan.CharPos, escaped bool, stack *[]string) (token.ParseState, []token.Match, int) {
	col := window[0].Col

	switch state.Kind {
	case token.InLineComment:
		return state, nil, 0

	case token.InBlockComment:
		if !state.Anchored || col == 0 {
			if lit, ok := matchLiteral(window, state.Text); ok {
				return token.ParseState{}, []token.Match{closingMatch(token.BlockComment(openFor(m.table.BlockComments, state.Text), state.Text), col)}, len(lit) - 1
			}
		}
		return state, nil, 0

	case token.InBlockString:
		if !escaped {
			if lit, ok := matchLiteral(window, state.Text); ok {
				return token.ParseState{}, []token.Match{closingMatch(token.BlockString(openFor(m.table.BlockStrings, state.Text), state.Text), col)}, len(lit) - 1
			}
		}
		return state, nil, 0

	case token.InString:
		if !escaped {
			if lit, ok := matchLiteral(window, state.Text); ok {
				return token.ParseState{}, []token.Match{closingMatch(token.String(state.Text), col)}, len(lit) - 1
			}
		}
		return state, nil, 0
	}

	// state.Kind == token.Normal: try each category in priority order,
	// longest literal wins within a category.
	if d, ok := m.bestBlockCommentOpen(window, col); ok {
		return token.ParseState{Kind: token.InBlockComment, Text: d.Close, Anchored: d.LineAnchored},
			[]token.Match{openingMatch(token.BlockComment(d.Open, d.Close), col)},
			len(d.Open) - 1
	}

	if d, ok := m.bestBlockStringOpen(window); ok {
		return token.ParseState{Kind: token.InBlockString, Text: d.Close},
			[]token.Match{openingMatch(token.BlockString(d.Open, d.Close), col)},
			len(d.Open) - 1
	}

	if lit, ok := bestMatch(window, m.table.LineComments); ok {
		return token.ParseState{Kind: token.InLineComment},
			[]token.Match{{Kind: token.NonPair, Token: token.LineComment(lit), Col: col}},
			len(lit) - 1
	}

	if lit, ok := bestMatch(window, m.table.Strings); ok {
		return token.ParseState{Kind: token.InString, Text: lit},
			[]token.Match{openingMatch(token.String(lit), col)},
			len(lit) - 1
	}

	if matches, consumed, ok := m.matchCharLiteral(window); ok {
		return state, matches, consumed
	}

	if !escaped {
		if d, ok := m.matchDelimiterOpen(window); ok {
			height := len(*stack)
			*stack = append(*stack, d.Close)
			return state, []token.Match{{
				Kind: token.Opening, Token: token.Delimiter(d.Open, d.Close),
				Col: col, StackHeight: height, HasHeight: true,
			}}, len(d.Open) - 1
		}
		if d, lit, ok := m.matchDelimiterClose(window); ok {
			if n := len(*stack); n > 0 && (*stack)[n-1] == lit {
				*stack = (*stack)[:n-1]
			}
			return state, []token.Match{{
				Kind: token.Closing, Token: token.Delimiter(d.Open, d.Close),
				Col: col, StackHeight: len(*stack), HasHeight: true,
			}}, len(lit) - 1
		}
	}

	return state, nil, 0
}

func openingMatch(tok token.Token, col int) token.Match {
	return token.Match{Kind: token.Opening, Token: tok, Col: col}
}

func closingMatch(tok token.Token, col int) token.Match {
	return token.Match{Kind: token.Closing, Token: tok, Col: col}
}

// openFor returns the Open literal of the first pair in pairs that closes
// with close, so a closing match names the same pair as its opener.
func openFor(pairs []lang.DelimPair, close string) string {
	for _, d := range pairs {
		if d.Close == close {
			return d.Open
		}
	}
	return ""
}

// matchLiteral reports whether lit occurs starting at window[0], with
// every subsequent byte at a strictly adjacent column.
func matchLiteral(window []scan.CharPos, lit string) (string, bool) {
	if len(lit) == 0 || window[0].Byte != lit[0] {
		return "", false
	}
	col := window[0].Col
	for i := 1; i < len(lit); i++ {
		if i >= len(window) {
			return "", false
		}
		if window[i].Col != col+i || window[i].Byte != lit[i] {
			return "", false
		}
	}
	return lit, true
}

// bestMatch returns the longest literal in lits that matches at window[0].
func bestMatch(window []scan.CharPos, lits []string) (string, bool) {
	best := ""
	for _, lit := range lits {
		if _, ok := matchLiteral(window, lit); ok && len(lit) > len(best) {
			best = lit
		}
	}
	return best, best != ""
}

func (m *Matcher) bestBlockCommentOpen(window []scan.CharPos, col int) (lang.DelimPair, bool) {
	var best lang.DelimPair
	found := false
	for _, d := range m.table.BlockComments {
		if d.LineAnchored && col != 0 {
			continue
		}
		if _, ok := matchLiteral(window, d.Open); ok && (!found || len(d.Open) > len(best.Open)) {
			best = d
			found = true
		}
	}
	return best, found
}

func (m *Matcher) bestBlockStringOpen(window []scan.CharPos) (lang.DelimPair, bool) {
	var best lang.DelimPair
	found := false
	for _, d := range m.table.BlockStrings {
		if _, ok := matchLiteral(window, d.Open); ok && (!found || len(d.Open) > len(best.Open)) {
			best = d
			found = true
		}
	}
	return best, found
}

func (m *Matcher) matchDelimiterOpen(window []scan.CharPos) (lang.DelimPair, bool) {
	var best lang.DelimPair
	found := false
	for _, d := range m.table.Delimiters {
		if _, ok := matchLiteral(window, d.Open); ok && (!found || len(d.Open) > len(best.Open)) {
			best = d
			found = true
		}
	}
	return best, found
}

func (m *Matcher) matchDelimiterClose(window []scan.CharPos) (lang.DelimPair, string, bool) {
	var best lang.DelimPair
	found := false
	for _, d := range m.table.Delimiters {
		if _, ok := matchLiteral(window, d.Close); ok && (!found || len(d.Close) > len(best.Close)) {
			best = d
			found = true
		}
	}
	return best, best.Close, found
}

// matchCharLiteral implements the floor-2 char-literal rule: a char
// delimiter d at column n pairs with the next occurrence of d at column
// n+1 or n+2, even when a non-alphabet content byte between them
// produced no event of its own (the usual case, e.g. 'x'). Unlike every
// other category, this is the one place a gap in the event stream
// (an alphabet byte belonging to some other token, e.g. the '{' in
// '{') is tolerated between the opener and its closer.
func (m *Matcher) matchCharLiteral(window []scan.CharPos) ([]token.Match, int, bool) {
	if len(m.table.CharDelims) == 0 {
		return nil, 0, false
	}
	col := window[0].Col
	for _, d := range m.table.CharDelims {
		if window[0].Byte != d[0] {
			continue
		}
		for i := 1; i < len(window) && window[i].Col <= col+2; i++ {
			if window[i].Byte != d[0] {
				continue
			}
			if window[i].Col == col+1 || window[i].Col == col+2 {
				return []token.Match{
					openingMatch(token.String(d), col),
					closingMatch(token.String(d), window[i].Col),
				}, i, true
			}
		}
	}
	return nil, 0, false
}
