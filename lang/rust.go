package lang

func init() {
	register(Table{
		Name:          "rust",
		Delimiters:    []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments:  []string{"//"},
		BlockComments: []DelimPair{{Open: "/*", Close: "*/"}},
		Strings:       []string{"\""},
		CharDelims:    []string{"'"},
		// Raw strings with an increasing number of #s; the longest
		// matching opener wins the tie-break against its own prefixes.
		BlockStrings: []DelimPair{
			{Open: `r#"`, Close: `"#`},
			{Open: `r##"`, Close: `"##`},
			{Open: `r###"`, Close: `"###`},
		},
	}, "rust")
}
