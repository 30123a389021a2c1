package lang

func init() {
	register(Table{
		Name:         "python",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		Strings:      []string{"\"", "'"},
		BlockStrings: []DelimPair{{Open: `"""`, Close: `"""`}, {Open: "'''", Close: "'''"}},
	}, "python")
}
