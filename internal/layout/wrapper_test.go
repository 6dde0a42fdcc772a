package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mstoeckl/pfafmt/internal/token"
)

func TestWrapShortLineUnbroken(t *testing.T) {
	toks := []token.Token{tok(token.Label, "a"), tok(token.Equal, "="), tok(token.Label, "b")}
	out := Wrap(Space(toks), 0, false)
	assert.Equal(t, "a = b\n", out)
}

func TestWrapBlankFlushAddsTrailingNewline(t *testing.T) {
	toks := []token.Token{tok(token.Label, "a")}
	out := Wrap(Space(toks), 0, true)
	assert.Equal(t, "a\n\n", out)
}

func TestWrapLeadingSpacesPreserved(t *testing.T) {
	toks := []token.Token{tok(token.Label, "x")}
	out := Wrap(Space(toks), 4, false)
	assert.Equal(t, "    x\n", out)
}

// TestWrapLongCallBreaksAtComma builds a call whose argument list
// overflows 80 columns and checks that the break happens at a comma
// split point, with a bare newline (no backslash) because the break
// occurs inside brackets (S6).
func TestWrapLongCallBreaksAtComma(t *testing.T) {
	names := []string{
		"aaaaaaaa", "bbbbbbbb", "cccccccc", "dddddddd",
		"eeeeeeee", "ffffffff", "gggggggg", "hhhhhhhh",
		"iiiiiiii", "jjjjjjjj", "kkkkkkkk", "llllllll",
	}
	toks := []token.Token{tok(token.Label, "foo"), tok(token.OBrace, "(")}
	for i, n := range names {
		if i > 0 {
			toks = append(toks, tok(token.Comma, ","))
		}
		toks = append(toks, tok(token.Label, n))
	}
	toks = append(toks, tok(token.CBrace, ")"))

	out := Wrap(Space(toks), 0, false)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Greater(t, len(lines), 1, "a long argument list should wrap onto more than one line")
	for _, l := range lines[:len(lines)-1] {
		assert.False(t, strings.HasSuffix(l, "\\"), "a break inside brackets is a bare newline, not a backslash")
	}
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, "    "), "continuation lines are indented by four spaces")
	}
}

func TestWrapForcedCommentBreak(t *testing.T) {
	toks := []token.Token{
		tok(token.Comment, "#hi"),
		tok(token.Label, "x"),
	}
	out := Wrap(Space(toks), 0, false)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require := assert.New(t)
	require.Len(lines, 2)
	require.Equal("# hi", lines[0])
	require.Equal("    x", lines[1])
}
