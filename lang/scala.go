package lang

func init() {
	register(Table{
		Name:          "scala",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
		BlockStrings:  []DelimPair{{Open: `"""`, Close: `"""`}},
	}, "scala")
}
