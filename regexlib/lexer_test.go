package regexlib

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestLexerCursor(t *testing.T) {
	l := newLexer("aé$")
	assert.Equal(t, l.peek(), 'a')
	l.consume()
	assert.Equal(t, l.peek(), 'é')
	assert.Equal(t, l.found(), "'é'")
	l.consume()

	// a '$' written in the pattern is not the appended marker
	assert.Equal(t, l.peek(), endMarker)
	assert.Assert(t, !l.atEnd())
	l.consume()
	assert.Assert(t, l.atEnd())
	assert.Equal(t, l.found(), "end of pattern")
}

func TestLexerExpect(t *testing.T) {
	l := newLexer("(]")
	assert.NilError(t, l.expect('('))
	err := l.expect(')')
	assert.Error(t, err, `parse error at offset 1: expected ')', found ']'`)
	assert.Equal(t, l.pos, 1)
}
