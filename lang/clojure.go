package lang

func init() {
	register(Table{
		Name:         "clojure",
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{";"},
		Strings:      []string{"\""},
	}, "clojure")
}
