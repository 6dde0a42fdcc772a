package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader("a\nbb\nccc"))

	line, ok, err := lr.ReadLine()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a\n", line)

	line, ok, err = lr.ReadLine()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bb\n", line)

	line, ok, err = lr.ReadLine()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ccc\n", line, "a missing trailing newline is synthesized")

	_, ok, err = lr.ReadLine()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLineReaderEmpty(t *testing.T) {
	lr := NewLineReader(strings.NewReader(""))
	_, ok, err := lr.ReadLine()
	require.NoError(t, err)
	assert.False(t, ok)
}
