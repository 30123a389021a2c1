package lang

func init() {
	register(Table{
		Name:          "csharp",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
		CharDelims:    []string{"'"},
		// @" ... " is a verbatim string: an asymmetric block string, not
		// a delimiter-nested pair.
		BlockStrings: []DelimPair{{Open: `@"`, Close: `"`}},
	}, "csharp")
}
