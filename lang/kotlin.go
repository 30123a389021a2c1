package lang

func init() {
	register(Table{
		Name:          "kotlin",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
		BlockStrings:  []DelimPair{{Open: `"""`, Close: `"""`}},
	}, "kotlin")
}
