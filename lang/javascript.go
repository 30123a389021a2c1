package lang

func init() {
	register(Table{
		Name:          "javascript",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\"", "'"},
		// Template literal.
		BlockStrings: []DelimPair{{Open: "`", Close: "`"}},
	}, "javascript", "typescript", "javascriptreact", "typescriptreact")
}
