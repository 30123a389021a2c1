package lang

func init() {
	register(Table{
		Name: "zig",
		// Zig's \\ continuation lines introduce multiline string
		// literals, which this table doesn't model as their own block
		// string; approximating them as a second line-comment literal
		// is a known, deliberately inexact simplification carried over
		// from the original matcher.
		Delimiters:   []DelimPair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"//", `\\`},
		Strings:      []string{"\""},
	}, "zig")
}
