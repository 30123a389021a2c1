package lang

func init() {
	register(Table{
		Name:         "ruby",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		// =begin/=end is only a comment when each appears at the very
		// start of its line; LineAnchored makes the matcher check the
		// column before accepting either the opener or the closer.
		BlockComments: []DelimPair{{Open: "=begin", Close: "=end", LineAnchored: true}},
		Strings:       []string{"\"", "'"},
	}, "ruby")
}
