package lang

func init() {
	register(Table{
		Name:         "toml",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		// TOML also has literal strings ('...', '''...'''), which the
		// basic+triple-quoted double-quote forms below don't cover;
		// added here since the table shape already supports it.
		Strings:      []string{"\"", "'"},
		BlockStrings: []DelimPair{{Open: `"""`, Close: `"""`}, {Open: "'''", Close: "'''"}},
	}, "toml")
}
