package lang

func init() {
	register(Table{
		Name: "json",
		// No parens: JSON only ever nests arrays and objects.
		Delimiters:    []DelimPair{{Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
	}, "json", "jsonc", "json5")
}
