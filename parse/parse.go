// Package parse implements the line driver: it turns a lang.Table plus a
// buffer's lines into the per-line matches and per-line end-of-line parse
// states that buffer.ParsedBuffer stores and splices.
package parse

import (
	"strings"

	"github.com/xcdnlgd/go-pairs/lang"
	"github.com/xcdnlgd/go-pairs/matcher"
	"github.com/xcdnlgd/go-pairs/scan"
	"github.com/xcdnlgd/go-pairs/token"
)

// Lines scans lines under table t, starting from initial, and returns the
// matches found on each line together with the ParseState each line ends
// in. Both returned slices have exactly len(lines) entries.
func Lines(t lang.Table, lines []string, initial token.ParseState) ([][]token.Match, []token.ParseState) {
	if len(lines) == 0 {
		return nil, nil
	}

	m := matcher.New(t)
	k := m.Lookahead()

	text := strings.Join(lines, "\n")
	events := scan.Scan([]byte(text), scan.FromSet(t.Alphabet()))

	matchesByLine := make([][]token.Match, 0, len(lines))
	statesByLine := make([]token.ParseState, 0, len(lines))

	var lineMatches []token.Match
	state := initial
	var stack []string
	escapedCol := -1

	i := 0
	for i < len(events) {
		ev := events[i]

		if ev.Byte == '\n' {
			matchesByLine = append(matchesByLine, lineMatches)
			lineMatches = nil
			escapedCol = -1
			if state.Kind == token.InString || state.Kind == token.InLineComment {
				state = token.ParseState{}
			}
			statesByLine = append(statesByLine, state)
			i++
			continue
		}

		if ev.Byte == '\\' && !(state.Kind == token.Normal && startsBackslashComment(t, events[i:])) {
			if escapedCol >= 0 && escapedCol == ev.Col-1 {
				escapedCol = -1
			} else {
				escapedCol = ev.Col
			}
			i++
			continue
		}

		escaped := escapedCol >= 0 && escapedCol == ev.Col-1

		end := i + 1 + k
		if end > len(events) {
			end = len(events)
		}
		window := events[i:end]
		for w := 1; w < len(window); w++ {
			if window[w].Byte == '\n' {
				window = window[:w]
				break
			}
		}

		next, matches, consumed := m.Step(state, window, escaped, &stack)
		state = next
		lineMatches = append(lineMatches, matches...)
		i += 1 + consumed

		if state.Kind == token.InLineComment {
			for i < len(events) && events[i].Byte != '\n' {
				i++
			}
		}
	}
	matchesByLine = append(matchesByLine, lineMatches)
	statesByLine = append(statesByLine, state)

	return matchesByLine, statesByLine
}

// startsBackslashComment reports whether events begins with a line-comment
// literal of t that starts with a backslash (Zig's \\) on adjacent columns.
func startsBackslashComment(t lang.Table, events []scan.CharPos) bool {
	for _, c := range t.LineComments {
		n := 0
		for n < len(c) && n < len(events) && c[0] == '\\' && events[n].Byte == c[n] && events[n].Col == events[0].Col+n {
			n++
		}
		if n > 0 && n == len(c) {
			return true
		}
	}
	return false
}
