package lang

func init() {
	register(Table{
		Name:          "haskell",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"--"},
		BlockComments: []DelimPair{{Open: "{-", Close: "-}"}},
		Strings:       []string{"\""},
	}, "haskell")
}
