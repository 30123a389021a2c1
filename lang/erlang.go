package lang

func init() {
	register(Table{
		Name:         "erlang",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"%"},
		Strings:      []string{"\""},
	}, "erlang")
}
