package lang

func init() {
	register(Table{
		Name:         "perl",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		Strings:      []string{"\"", "'"},
	}, "perl")
}
