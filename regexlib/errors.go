package regexlib

import "fmt"

// ParseError reports a malformed pattern. Offset is the zero-based code point
// index at which the problem was detected; it is at most the pattern length,
// which is the position of the implicit end marker.
type ParseError struct {
	Msg    string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}
