package lang

func init() {
	register(Table{
		Name:          "haxe",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		// Both quote forms are full strings in Haxe, not a char literal.
		Strings: []string{"\"", "'"},
	}, "haxe")
}
