package lang

func init() {
	register(Table{
		Name:          "lean",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"--"},
		BlockComments: []DelimPair{{Open: "/-", Close: "-/"}},
		Strings:       []string{"\""},
	}, "lean")
}
