package lang

func init() {
	register(Table{
		Name:          "cpp",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
		CharDelims:    []string{"'"},
		BlockStrings:  []DelimPair{{Open: `R"(`, Close: `)"`}},
	}, "cpp")
}
