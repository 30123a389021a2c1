package lang

func init() {
	register(Table{
		Name:          "ocaml",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		BlockComments: []DelimPair{{Open: "(*", Close: "*)"}},
		Strings:       []string{"\""},
	}, "ocaml")
}
