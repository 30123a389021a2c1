// Package token holds the data model shared by the scanner, matcher, and
// parsed-buffer layers: the tagged token/match variants and the per-line
// parse state that gets threaded from one line to the next.
package token

// Kind classifies a Match as one side of a pair, or as standalone.
type Kind uint8

const (
	Opening Kind = iota
	Closing
	NonPair
)

func (k Kind) String() string {
	switch k {
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	case NonPair:
		return "non-pair"
	default:
		return "unknown"
	}
}

// Variant names which literal shape a Token carries.
type Variant uint8

const (
	VariantDelimiter Variant = iota
	VariantString
	VariantBlockString
	VariantLineComment
	VariantBlockComment
)

// Token is the tagged variant naming the literal pair (or standalone text)
// a Match recognized. Open and Close both hold the delimiter text for
// symmetric tokens (e.g. a string quote, or Go's backtick raw string);
// LineComment only ever populates Open.
type Token struct {
	Variant Variant
	Open    string
	Close   string
}

func Delimiter(open, close string) Token    { return Token{VariantDelimiter, open, close} }
func String(delim string) Token             { return Token{VariantString, delim, delim} }
func BlockString(open, close string) Token  { return Token{VariantBlockString, open, close} }
func LineComment(text string) Token         { return Token{VariantLineComment, text, ""} }
func BlockComment(open, close string) Token { return Token{VariantBlockComment, open, close} }

// Match is one recognized token on a line: its pairing Kind, the literal
// Token it belongs to, the column it starts at, and (for delimiter pairs
// only) the nesting depth it sits at.
type Match struct {
	Kind        Kind
	Token       Token
	Col         int
	StackHeight int
	HasHeight   bool
}

// Len is the byte length of the literal this match recognized at Col.
func (m Match) Len() int {
	switch m.Kind {
	case Closing:
		return len(m.Token.Close)
	default:
		return len(m.Token.Open)
	}
}

// MatchWithLine pairs a Match with the line it was found on, the shape
// get_match_pair returns its two halves in.
type MatchWithLine struct {
	Match
	Line int
}

// StateKind names which of the five parse states a line ends in.
type StateKind uint8

const (
	Normal StateKind = iota
	InString
	InBlockString
	InBlockComment
	InLineComment
)

// ParseState is carried from the end of one line to the start of the next.
// Text holds the closing literal to watch for when Kind is not Normal; it
// is empty and ignored for Normal. Anchored carries forward a block
// comment's column-0 restriction (Ruby's =begin/=end) so the closing
// literal is held to the same rule as the opener. The zero value is the
// Normal state.
type ParseState struct {
	Kind     StateKind
	Text     string
	Anchored bool
}

// Filter names the three token-kind buckets get_line_matches and
// get_filetype_tokens classify matches into.
type Filter uint8

const (
	FilterDelimiter Filter = iota
	FilterString
	FilterBlockComment
)

// FilterFromID maps the embedder's numeric kind_filter onto a Filter,
// defaulting unrecognized ids to FilterDelimiter.
func FilterFromID(id int) Filter {
	switch id {
	case int(FilterString):
		return FilterString
	case int(FilterBlockComment):
		return FilterBlockComment
	default:
		return FilterDelimiter
	}
}

// Matches reports whether m belongs to the bucket f names. Line comments
// never belong to any bucket: none of the three Filter values name them.
func (f Filter) Matches(m Match) bool {
	switch f {
	case FilterDelimiter:
		return m.Token.Variant == VariantDelimiter
	case FilterString:
		return m.Token.Variant == VariantString || m.Token.Variant == VariantBlockString
	case FilterBlockComment:
		return m.Token.Variant == VariantBlockComment
	default:
		return false
	}
}

// AvailableToken describes one literal a language's table recognizes,
// the shape get_filetype_tokens reports to callers that want to offer
// auto-pair completion without re-deriving it from the Table themselves.
type AvailableToken struct {
	Kind    Filter
	Opening string
	Closing string
}
