// Package lang holds the per-language token tables. Each Table is a plain
// Go value, the equivalent of what original_source's define_matcher! macro
// generated per language: the literal delimiter, comment, string,
// char-literal, and block-string texts a filetype recognizes. lang.Lookup
// dispatches a filetype label onto the Table that names its literals; the
// matcher package interprets that Table at runtime instead of each
// language getting its own generated state machine.
package lang

import (
	"bitbucket.org/creachadair/stringset"

	"github.com/xcdnlgd/go-pairs/token"
)

// DelimPair names a pair of literals that open and close a region. Open
// and Close are equal for symmetric tokens (a quote, a backtick).
type DelimPair struct {
	Open  string
	Close string
	// LineAnchored restricts Open, and the Close that ends the region it
	// opens, to only match at column 0, for languages whose comment
	// syntax is anchored to the start of a line (Ruby's =begin/=end).
	LineAnchored bool
}

// Table is the full set of literals a filetype's pairing recognizes.
type Table struct {
	Name string

	Delimiters    []DelimPair
	LineComments  []string
	BlockComments []DelimPair
	Strings       []string
	CharDelims    []string
	BlockStrings  []DelimPair
}

var registry = map[string]Table{}

func register(t Table, names ...string) {
	for _, n := range names {
		registry[n] = t
	}
}

// Lookup returns the Table registered for filetype, and whether one exists.
func Lookup(filetype string) (Table, bool) {
	t, ok := registry[filetype]
	return t, ok
}

// Filetypes returns every filetype label with a registered Table.
func Filetypes() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

// Lookahead computes K, the number of extra lookahead events
// matcher.Step may peek at beyond the event it is currently considering:
// one less than the longest literal in the table, with char literals
// counted two bytes longer than their own length (the closing quote of
// 'x' sits two columns past the opening one, even though the content
// byte between them usually isn't itself alphabet and generates no
// event of its own).
func (t Table) Lookahead() int {
	maxLen := 0
	grow := func(n int) {
		if n > maxLen {
			maxLen = n
		}
	}
	for _, d := range t.Delimiters {
		grow(len(d.Open))
		grow(len(d.Close))
	}
	for _, c := range t.LineComments {
		grow(len(c))
	}
	for _, d := range t.BlockComments {
		grow(len(d.Open))
		grow(len(d.Close))
	}
	for _, s := range t.Strings {
		grow(len(s))
	}
	for _, s := range t.CharDelims {
		grow(len(s) + 2)
	}
	for _, d := range t.BlockStrings {
		grow(len(d.Open))
		grow(len(d.Close))
	}
	if maxLen == 0 {
		return 0
	}
	return maxLen - 1
}

// Alphabet is the set of every byte appearing in any literal this table
// recognizes, as single-byte strings. It holds "\n" and "\\" only when a
// literal contains them; scan.FromSet adds both unconditionally.
func (t Table) Alphabet() stringset.Set {
	set := stringset.New()
	add := func(s string) {
		for i := 0; i < len(s); i++ {
			set.Add(string(s[i]))
		}
	}
	for _, d := range t.Delimiters {
		add(d.Open)
		add(d.Close)
	}
	for _, c := range t.LineComments {
		add(c)
	}
	for _, d := range t.BlockComments {
		add(d.Open)
		add(d.Close)
	}
	for _, s := range t.Strings {
		add(s)
	}
	for _, s := range t.CharDelims {
		add(s)
	}
	for _, d := range t.BlockStrings {
		add(d.Open)
		add(d.Close)
	}
	return set
}

// AlphabetBytes flattens Alphabet into a byte slice suitable for
// scan.NewAlphabet.
func (t Table) AlphabetBytes() []byte {
	set := t.Alphabet()
	out := make([]byte, 0, set.Len())
	for _, e := range set.Elements() {
		if len(e) > 0 {
			out = append(out, e[0])
		}
	}
	return out
}

// AvailableTokens mechanically derives get_filetype_tokens's result from
// the table, the same relationship original_source's define_token_enum!
// macro has to its generated get_tokens() function — just computed by a
// plain function instead of codegen.
func (t Table) AvailableTokens() []token.AvailableToken {
	var out []token.AvailableToken
	for _, d := range t.Delimiters {
		out = append(out, token.AvailableToken{Kind: token.FilterDelimiter, Opening: d.Open, Closing: d.Close})
	}
	for _, d := range t.BlockComments {
		out = append(out, token.AvailableToken{Kind: token.FilterBlockComment, Opening: d.Open, Closing: d.Close})
	}
	for _, s := range t.Strings {
		out = append(out, token.AvailableToken{Kind: token.FilterString, Opening: s, Closing: s})
	}
	for _, s := range t.CharDelims {
		out = append(out, token.AvailableToken{Kind: token.FilterString, Opening: s, Closing: s})
	}
	for _, d := range t.BlockStrings {
		out = append(out, token.AvailableToken{Kind: token.FilterString, Opening: d.Open, Closing: d.Close})
	}
	return out
}

// DelimiterClose finds the pair whose Close literal matches lit.
func (t Table) DelimiterClose(lit string) (DelimPair, bool) {
	for _, d := range t.Delimiters {
		if d.Close == lit {
			return d, true
		}
	}
	return DelimPair{}, false
}
