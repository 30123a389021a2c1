package writer

import (
	"fmt"

	"github.com/xcdnlgd/go-pairs/token"
)

// matchRecord is the Encode-friendly shape of a token.Match: plain fields
// only, so reflection renders it without special-casing token.Kind's or
// token.Variant's String methods.
type matchRecord struct {
	Kind        string
	Variant     string
	Open        string
	Close       string
	Col         int
	StackHeight int
	HasHeight   bool
}

// MarshalRecord renders a matchRecord compactly instead of field-by-field,
// so a line of matches prints as a readable list rather than a wall of
// struct literals.
func (r matchRecord) MarshalRecord() ([]byte, error) {
	if r.HasHeight {
		return []byte(fmt.Sprintf("%s(%s%q,%q@%d,h=%d)", r.Kind, r.Variant, r.Open, r.Close, r.Col, r.StackHeight)), nil
	}
	return []byte(fmt.Sprintf("%s(%s%q@%d)", r.Kind, r.Variant, r.Open, r.Col)), nil
}

func toRecord(m token.Match) matchRecord {
	return matchRecord{
		Kind:        m.Kind.String(),
		Variant:     variantPrefix(m.Token.Variant),
		Open:        m.Token.Open,
		Close:       m.Token.Close,
		Col:         m.Col,
		StackHeight: m.StackHeight,
		HasHeight:   m.HasHeight,
	}
}

func variantPrefix(v token.Variant) string {
	switch v {
	case token.VariantDelimiter:
		return ""
	case token.VariantString:
		return "str:"
	case token.VariantBlockString:
		return "blockstr:"
	case token.VariantLineComment:
		return "linecomment:"
	case token.VariantBlockComment:
		return "blockcomment:"
	default:
		return "?:"
	}
}

// FormatMatches renders one line's matches as the CLI prints them.
func FormatMatches(matches []token.Match) (string, error) {
	records := make([]matchRecord, len(matches))
	for i, m := range matches {
		records[i] = toRecord(m)
	}
	out, err := Encode(records)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
