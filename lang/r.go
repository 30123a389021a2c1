package lang

func init() {
	register(Table{
		Name:         "r",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		Strings:      []string{"\"", "'"},
	}, "r")
}
