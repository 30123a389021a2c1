package lang

func init() {
	register(Table{
		Name:          "go",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
		// The backtick raw string is symmetric: the same literal opens
		// and closes it.
		BlockStrings: []DelimPair{{Open: "`", Close: "`"}},
	}, "go")
}
