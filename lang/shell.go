package lang

func init() {
	register(Table{
		Name:         "shell",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		// Shell single-quoted strings are actually raw (backslash has no
		// special meaning inside them); modeling both quote forms with
		// the matcher's ordinary backslash-escape rule is a known
		// simplification, not an attempt at precise shell lexing.
		Strings: []string{"\"", "'"},
	}, "sh", "bash", "zsh", "fish")
}
