package scanner

import (
	"errors"
	"fmt"
	"strings"

	"redeggs/regexlib"
	"redeggs/symbol"
)

// ErrUnsupported is returned for patterns the backend cannot compile: the
// empty-word and empty-set markers, rules that accept the empty string and
// literals with no members.
var ErrUnsupported = errors.New("pattern not supported by scanner")

// Pattern translates a syntax tree into lexmachine syntax. lexmachine works
// on bytes, so every literal is expanded into the UTF-8 encodings of its
// code points.
func Pattern(n regexlib.Node) (string, error) {
	if regexlib.Nullable(n) {
		return "", fmt.Errorf("%w: matches the empty string", ErrUnsupported)
	}
	var b strings.Builder
	if err := writeNode(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeNode(b *strings.Builder, n regexlib.Node) error {
	switch n := n.(type) {
	case *regexlib.Literal:
		return writeSymbol(b, n.Symbol)
	case *regexlib.Concatenation:
		if err := writeNode(b, n.Left); err != nil {
			return err
		}
		return writeNode(b, n.Right)
	case *regexlib.Alternation:
		b.WriteByte('(')
		if err := writeNode(b, n.Left); err != nil {
			return err
		}
		b.WriteByte('|')
		if err := writeNode(b, n.Right); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil
	case *regexlib.Star:
		b.WriteByte('(')
		if err := writeNode(b, n.Inner); err != nil {
			return err
		}
		b.WriteString(")*")
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, n.Kind())
	}
}

// writeSymbol writes one alternative per multi-byte sequence and a single
// class for all one-byte code points.
func writeSymbol(b *strings.Builder, sym symbol.Symbol) error {
	var ascii []byteRange
	var wide []sequence
	for _, iv := range sym.Intervals() {
		for _, seq := range utf8Sequences(iv.Lo, iv.Hi) {
			if len(seq) == 1 {
				ascii = append(ascii, seq[0])
			} else {
				wide = append(wide, seq)
			}
		}
	}

	var alts []string
	if len(ascii) > 0 {
		alts = append(alts, byteClass(ascii...))
	}
	for _, seq := range wide {
		var s strings.Builder
		for _, r := range seq {
			s.WriteString(byteClass(r))
		}
		alts = append(alts, s.String())
	}

	switch len(alts) {
	case 0:
		return fmt.Errorf("%w: literal %s has no members", ErrUnsupported, sym)
	case 1:
		b.WriteString(alts[0])
	default:
		b.WriteByte('(')
		b.WriteString(strings.Join(alts, "|"))
		b.WriteByte(')')
	}
	return nil
}

func byteClass(ranges ...byteRange) string {
	if len(ranges) == 1 && ranges[0].lo == ranges[0].hi && isWord(ranges[0].lo) {
		return string(ranges[0].lo)
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range ranges {
		writeClassByte(&b, r.lo)
		if r.hi != r.lo {
			b.WriteByte('-')
			writeClassByte(&b, r.hi)
		}
	}
	b.WriteByte(']')
	return b.String()
}

func isWord(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func writeClassByte(b *strings.Builder, c byte) {
	switch c {
	case '\\', '[', ']', '-', '^':
		b.WriteByte('\\')
	}
	b.WriteByte(c)
}
