package regexlib

import "fmt"

// endMarker is appended to every pattern so that lookahead always has a
// character to inspect.
const endMarker = '$'

// IsReserved reports whether c is reserved syntax. Reserved characters can
// never be matched literally; there is no escaping.
func IsReserved(c rune) bool {
	switch c {
	case '(', '[', ']', ')', endMarker, '*', '|':
		return true
	}
	return false
}

// lexer is a single-character cursor over a pattern plus its end marker.
// Offsets count code points, not bytes.
type lexer struct {
	input []rune
	pos   int
}

func newLexer(pattern string) *lexer {
	return &lexer{input: append([]rune(pattern), endMarker)}
}

// peek returns the character under the cursor. The grammar never consumes
// the end marker, so there is always one.
func (l *lexer) peek() rune { return l.input[l.pos] }

func (l *lexer) consume() { l.pos++ }

// atEnd reports whether the cursor sits on the appended end marker. A '$'
// inside the pattern is not the end.
func (l *lexer) atEnd() bool { return l.pos == len(l.input)-1 }

func (l *lexer) expect(c rune) error {
	if l.peek() != c {
		return l.errorf("expected %q, found %s", c, l.found())
	}
	l.consume()
	return nil
}

// found describes the lookahead for error messages.
func (l *lexer) found() string {
	if l.atEnd() {
		return "end of pattern"
	}
	return fmt.Sprintf("%q", l.peek())
}

func (l *lexer) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Offset: l.pos}
}
