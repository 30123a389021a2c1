package lang

func init() {
	register(Table{
		Name:          "java",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
		CharDelims:    []string{"'"},
		// Text blocks.
		BlockStrings: []DelimPair{{Open: `"""`, Close: `"""`}},
	}, "java")
}
