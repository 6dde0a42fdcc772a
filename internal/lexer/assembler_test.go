package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstoeckl/pfafmt/internal/token"
)

func TestAssemblerNormalLines(t *testing.T) {
	a := NewAssembler()

	f, bareBlank := a.Feed("a = 1\n")
	assert.False(t, bareBlank)
	require.NotNil(t, f)
	assert.Equal(t, []string{"a", "=", "1"}, texts(f.Tokens))
	assert.False(t, f.BlankFlush)

	f, bareBlank = a.Feed("b = 2\n")
	assert.False(t, bareBlank)
	require.NotNil(t, f)
	assert.Equal(t, []string{"b", "=", "2"}, texts(f.Tokens))
}

func TestAssemblerBlankCoalescing(t *testing.T) {
	a := NewAssembler()

	f, bareBlank := a.Feed("a\n")
	require.NotNil(t, f)
	assert.False(t, bareBlank)

	_, bareBlank = a.Feed("\n")
	assert.True(t, bareBlank, "first blank line after Normal produces a bare newline")

	_, bareBlank = a.Feed("\n")
	assert.False(t, bareBlank, "a second consecutive blank line coalesces")

	_, bareBlank = a.Feed("\n")
	assert.False(t, bareBlank)

	f, bareBlank = a.Feed("b\n")
	require.NotNil(t, f)
	assert.False(t, bareBlank)
	assert.Equal(t, []string{"b"}, texts(f.Tokens))
}

func TestAssemblerBracketContinuation(t *testing.T) {
	a := NewAssembler()

	f, _ := a.Feed("foo(a,\n")
	assert.Nil(t, f, "an open bracket keeps the logical line open")

	f, _ = a.Feed("    b)\n")
	require.NotNil(t, f)
	assert.Equal(t, []token.Kind{token.Label, token.OBrace, token.Label, token.Comma, token.Label, token.CBrace}, kinds(f.Tokens))
}

func TestAssemblerBackslashContinuation(t *testing.T) {
	a := NewAssembler()

	f, _ := a.Feed("a = 1 + \\\n")
	assert.Nil(t, f)

	f, _ = a.Feed("    2\n")
	require.NotNil(t, f)
	assert.Equal(t, []string{"a", "=", "1", "+", "2"}, texts(f.Tokens))
}

func TestAssemblerBlankClosesContinuation(t *testing.T) {
	a := NewAssembler()

	f, _ := a.Feed("foo(a,\n")
	assert.Nil(t, f)

	f, bareBlank := a.Feed("\n")
	require.NotNil(t, f, "a blank line closes an open bracket continuation")
	assert.False(t, bareBlank)
	assert.True(t, f.BlankFlush)
	assert.Equal(t, []string{"foo", "(", "a", ","}, texts(f.Tokens))
}

func TestAssemblerTriStringAcrossLines(t *testing.T) {
	a := NewAssembler()

	f, _ := a.Feed("x = \"\"\"hello\n")
	assert.Nil(t, f, "an open triple string keeps the logical line open")

	f, _ = a.Feed("world\"\"\"\n")
	require.NotNil(t, f)
	require.Len(t, f.Tokens, 3)
	assert.Equal(t, token.TriStr, f.Tokens[2].Kind)
	assert.Equal(t, "\"\"\"hello\nworld\"\"\"", f.Tokens[2].Text)
}

func TestAssemblerLeadingSpaces(t *testing.T) {
	a := NewAssembler()
	f, _ := a.Feed("    x = 1\n")
	require.NotNil(t, f)
	assert.Equal(t, 4, f.Leading)
}

func TestAssemblerFinish(t *testing.T) {
	a := NewAssembler()
	f, _ := a.Feed("foo(a,\n")
	assert.Nil(t, f)

	f = a.Finish()
	require.NotNil(t, f, "an unterminated continuation at end-of-stream still flushes")
	assert.Equal(t, []string{"foo", "(", "a", ","}, texts(f.Tokens))
}
