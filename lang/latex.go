package lang

func init() {
	register(Table{
		Name:         "latex",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"%"},
		Strings:      []string{"\""},
		CharDelims:   []string{"'"},
		// Inline and display math mode. $$ must win the tie-break against
		// its own $ prefix.
		BlockStrings: []DelimPair{{Open: "$", Close: "$"}, {Open: "$$", Close: "$$"}},
	}, "tex", "bib")
}
