package lang

func init() {
	register(Table{
		Name:          "objc",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
		// @"..." is an NSString literal: it opens with @" but still
		// closes on a plain ", so it is asymmetric like a block string
		// rather than a second plain string delimiter.
		BlockStrings: []DelimPair{{Open: `@"`, Close: `"`}},
	}, "objc")
}
