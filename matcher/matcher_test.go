package matcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xcdnlgd/go-pairs/lang"
	"github.com/xcdnlgd/go-pairs/scan"
	"github.com/xcdnlgd/go-pairs/token"
)

func rustMatcher(t *testing.T) *Matcher {
	t.Helper()
	table, ok := lang.Lookup("rust")
	if !ok {
		t.Fatal("rust table not registered")
	}
	return New(table)
}

func TestStepDelimiterOpenPushesStack(t *testing.T) {
	m := rustMatcher(t)
	stack := []string{}
	window := []scan.CharPos{{Byte: '{', Col: 0}}

	state, matches, consumed := m.Step(token.ParseState{}, window, false, &stack)

	if state.Kind != token.Normal {
		t.Errorf("state = %v, want Normal", state)
	}
	if consumed != 0 {
		t.Errorf("consumed = %d, want 0", consumed)
	}
	want := []token.Match{{Kind: token.Opening, Token: token.Delimiter("{", "}"), Col: 0, StackHeight: 0, HasHeight: true}}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"}"}, stack); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}
}

func TestStepDelimiterClosePopsStack(t *testing.T) {
	m := rustMatcher(t)
	stack := []string{"}"}
	window := []scan.CharPos{{Byte: '}', Col: 0}}

	_, matches, _ := m.Step(token.ParseState{}, window, false, &stack)

	want := []token.Match{{Kind: token.Closing, Token: token.Delimiter("{", "}"), Col: 0, StackHeight: 0, HasHeight: true}}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
	if len(stack) != 0 {
		t.Errorf("stack = %v, want empty", stack)
	}
}

func TestStepLineCommentEntersInLineComment(t *testing.T) {
	m := rustMatcher(t)
	stack := []string{}
	window := []scan.CharPos{{Byte: '/', Col: 0}, {Byte: '/', Col: 1}}

	state, matches, consumed := m.Step(token.ParseState{}, window, false, &stack)

	if state.Kind != token.InLineComment {
		t.Errorf("state = %v, want InLineComment", state)
	}
	if consumed != 1 {
		t.Errorf("consumed = %d, want 1", consumed)
	}
	want := []token.Match{{Kind: token.NonPair, Token: token.LineComment("//"), Col: 0}}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
}

func TestStepCharLiteralSimple(t *testing.T) {
	m := rustMatcher(t)
	stack := []string{}
	// 'x' -- x isn't alphabet, so the closing quote is the very next event,
	// two columns away.
	window := []scan.CharPos{{Byte: '\'', Col: 0}, {Byte: '\'', Col: 2}}

	_, matches, consumed := m.Step(token.ParseState{}, window, false, &stack)

	want := []token.Match{
		{Kind: token.Opening, Token: token.String("'"), Col: 0},
		{Kind: token.Closing, Token: token.String("'"), Col: 2},
	}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
	if consumed != 1 {
		t.Errorf("consumed = %d, want 1", consumed)
	}
}

func TestStepCharLiteralWithInterveningDelimiter(t *testing.T) {
	// '{' -- the brace is itself alphabet, sitting in the lookahead window
	// between the open and close quote; char-literal recognition must
	// still find the closer two columns out.
	m := rustMatcher(t)
	stack := []string{}
	window := []scan.CharPos{{Byte: '\'', Col: 0}, {Byte: '{', Col: 1}, {Byte: '\'', Col: 2}}

	_, matches, consumed := m.Step(token.ParseState{}, window, false, &stack)

	want := []token.Match{
		{Kind: token.Opening, Token: token.String("'"), Col: 0},
		{Kind: token.Closing, Token: token.String("'"), Col: 2},
	}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
	if consumed != 2 {
		t.Errorf("consumed = %d, want 2", consumed)
	}
}

func TestStepCharLiteralTwoCharsProducesNoMatch(t *testing.T) {
	// 'xx' -- closing quote three columns out, beyond the floor-2 rule.
	m := rustMatcher(t)
	stack := []string{}
	window := []scan.CharPos{{Byte: '\'', Col: 0}, {Byte: '\'', Col: 3}}

	_, matches, _ := m.Step(token.ParseState{}, window, false, &stack)

	if matches != nil {
		t.Errorf("matches = %v, want nil", matches)
	}
}

func TestStepEscapedDelimiterSuppressed(t *testing.T) {
	m := rustMatcher(t)
	stack := []string{}
	window := []scan.CharPos{{Byte: '{', Col: 1}}

	_, matches, _ := m.Step(token.ParseState{}, window, true, &stack)

	if matches != nil {
		t.Errorf("matches = %v, want nil (escaped delimiter should be suppressed)", matches)
	}
	if len(stack) != 0 {
		t.Errorf("stack = %v, want untouched", stack)
	}
}

func TestStepBlockCommentLifecycle(t *testing.T) {
	m := rustMatcher(t)
	stack := []string{}
	openWindow := []scan.CharPos{{Byte: '/', Col: 0}, {Byte: '*', Col: 1}}

	state, matches, consumed := m.Step(token.ParseState{}, openWindow, false, &stack)
	if state.Kind != token.InBlockComment || state.Text != "*/" {
		t.Fatalf("state = %v, want InBlockComment(*/)", state)
	}
	if consumed != 1 {
		t.Errorf("consumed = %d, want 1", consumed)
	}
	wantOpen := []token.Match{{Kind: token.Opening, Token: token.BlockComment("/*", "*/"), Col: 0}}
	if diff := cmp.Diff(wantOpen, matches); diff != "" {
		t.Errorf("open matches mismatch (-want +got):\n%s", diff)
	}

	closeWindow := []scan.CharPos{{Byte: '*', Col: 5}, {Byte: '/', Col: 6}}
	state, matches, consumed = m.Step(state, closeWindow, false, &stack)
	if state.Kind != token.Normal {
		t.Errorf("state = %v, want Normal", state)
	}
	wantClose := []token.Match{{Kind: token.Closing, Token: token.BlockComment("/*", "*/"), Col: 5}}
	if diff := cmp.Diff(wantClose, matches); diff != "" {
		t.Errorf("close matches mismatch (-want +got):\n%s", diff)
	}
}

func TestStepRubyAnchoredBlockComment(t *testing.T) {
	table, ok := lang.Lookup("ruby")
	if !ok {
		t.Fatal("ruby table not registered")
	}
	m := New(table)
	stack := []string{}

	beginWindow := func(col int) []scan.CharPos {
		lit := "=begin"
		window := make([]scan.CharPos, len(lit))
		for i, b := range []byte(lit) {
			window[i] = scan.CharPos{Byte: b, Col: col + i}
		}
		return window
	}

	// At column 0, =begin is recognized as a block-comment opener.
	state, matches, _ := m.Step(token.ParseState{}, beginWindow(0), false, &stack)
	if state.Kind != token.InBlockComment {
		t.Errorf("state = %v, want InBlockComment at column 0", state)
	}
	if len(matches) != 1 {
		t.Errorf("matches = %v, want one opening match", matches)
	}

	// Away from column 0, the same literal is not recognized.
	state, matches, _ = m.Step(token.ParseState{}, beginWindow(4), false, &stack)
	if state.Kind != token.Normal || matches != nil {
		t.Errorf("expected no match away from column 0, got state=%v matches=%v", state, matches)
	}
}

func TestStepRubyAnchoredBlockCommentCloser(t *testing.T) {
	table, ok := lang.Lookup("ruby")
	if !ok {
		t.Fatal("ruby table not registered")
	}
	m := New(table)
	stack := []string{}

	endWindow := func(col int) []scan.CharPos {
		lit := "=end"
		window := make([]scan.CharPos, len(lit))
		for i, b := range []byte(lit) {
			window[i] = scan.CharPos{Byte: b, Col: col + i}
		}
		return window
	}
	inComment := token.ParseState{Kind: token.InBlockComment, Text: "=end", Anchored: true}

	// Away from column 0, "=end" mid-line must not close the comment.
	state, matches, _ := m.Step(inComment, endWindow(4), false, &stack)
	if state.Kind != token.InBlockComment || matches != nil {
		t.Errorf("state = %v matches = %v, want comment to stay open away from column 0", state, matches)
	}

	// At column 0, "=end" closes the comment.
	state, matches, _ = m.Step(inComment, endWindow(0), false, &stack)
	if state.Kind != token.Normal {
		t.Errorf("state = %v, want Normal at column 0", state)
	}
	if len(matches) != 1 || matches[0].Kind != token.Closing {
		t.Errorf("matches = %v, want one closing match", matches)
	}
}
