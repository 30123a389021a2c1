package lang

func init() {
	register(Table{
		Name:         "elixir",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		Strings:      []string{"\""},
		BlockStrings: []DelimPair{{Open: `"""`, Close: `"""`}},
	}, "elixir")
}
