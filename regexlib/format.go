package regexlib

import (
	"fmt"
	"io"
	"strings"

	"redeggs/symbol"
)

const (
	precAlt = iota + 1
	precCat
	precStar
	precAtom
)

func precedence(n Node) int {
	switch n.(type) {
	case *Alternation:
		return precAlt
	case *Concatenation:
		return precCat
	case *Star:
		return precStar
	default:
		return precAtom
	}
}

// Format writes n back in pattern syntax with as few parentheses as keep
// the tree shape: parsing the result yields a tree equal to n. It fails for
// literals whose symbol cannot be spelled with plain characters and for
// markers nested inside other nodes.
func Format(n Node) (string, error) {
	switch n.(type) {
	case *EmptyWord:
		return string(DefaultEmptyWord), nil
	case *EmptySet:
		return string(DefaultEmptySet), nil
	}
	var b strings.Builder
	if err := format(&b, n, precAlt); err != nil {
		return "", err
	}
	return b.String(), nil
}

func format(b *strings.Builder, n Node, need int) error {
	paren := precedence(n) < need
	if paren {
		b.WriteByte('(')
	}
	var err error
	switch n := n.(type) {
	case *Alternation:
		if err = format(b, n.Left, precCat); err == nil {
			b.WriteByte('|')
			err = format(b, n.Right, precAlt)
		}
	case *Concatenation:
		if err = format(b, n.Left, precStar); err == nil {
			err = format(b, n.Right, precCat)
		}
	case *Star:
		if err = format(b, n.Inner, precAtom); err == nil {
			b.WriteByte('*')
		}
	case *Literal:
		var s string
		if s, err = formatSymbol(n.Symbol); err == nil {
			b.WriteString(s)
		}
	default:
		err = fmt.Errorf("%s cannot appear inside a larger pattern", n.Kind())
	}
	if paren {
		b.WriteByte(')')
	}
	return err
}

// isPlain reports whether r may be written as itself.
func isPlain(r rune) bool {
	return !IsReserved(r) && r != DefaultEmptyWord && r != DefaultEmptySet
}

func formatSymbol(sym symbol.Symbol) (string, error) {
	ivs := sym.Intervals()
	if len(ivs) == 1 && ivs[0].Lo == ivs[0].Hi && isPlain(ivs[0].Lo) {
		return string(ivs[0].Lo), nil
	}

	complement := symbol.NewSet(ivs...).Complement().Intervals()
	negatedFirst := len(ivs) > 0 && ivs[0].Lo == 0 && ivs[len(ivs)-1].Hi == symbol.MaxCodePoint
	if negatedFirst {
		if s, ok := formatClass(complement, true); ok {
			return s, nil
		}
	}
	if s, ok := formatClass(ivs, false); ok {
		return s, nil
	}
	if !negatedFirst {
		if s, ok := formatClass(complement, true); ok {
			return s, nil
		}
	}
	return "", fmt.Errorf("symbol %s cannot be written as a pattern", sym)
}

func formatClass(ivs []symbol.Interval, negated bool) (string, bool) {
	if len(ivs) == 0 {
		return "", false
	}
	items := make([]symbol.Interval, 0, len(ivs)+1)
	for _, iv := range ivs {
		if !isPlain(iv.Lo) || !isPlain(iv.Hi) {
			return "", false
		}
		// after another item a leading '-' would be read as a range
		if iv.Lo == '-' {
			items = append([]symbol.Interval{iv}, items...)
		} else {
			items = append(items, iv)
		}
	}

	// a leading '^' would negate the class
	if !negated && items[0].Lo == '^' {
		first := items[0]
		rest := items[1:]
		if first.Hi > first.Lo {
			rest = append([]symbol.Interval{{Lo: first.Lo + 1, Hi: first.Hi}}, rest...)
		}
		items = append(rest, symbol.Single('^'))
	}

	var b strings.Builder
	b.WriteByte('[')
	if negated {
		b.WriteByte('^')
	}
	for _, iv := range items {
		b.WriteRune(iv.Lo)
		if iv.Hi != iv.Lo {
			b.WriteByte('-')
			b.WriteRune(iv.Hi)
		}
	}
	b.WriteByte(']')
	return b.String(), true
}

// Description is a serializable view of a syntax tree.
type Description struct {
	Kind     string         `yaml:"kind"`
	Symbol   string         `yaml:"symbol,omitempty"`
	Children []*Description `yaml:"children,omitempty"`
}

func Describe(n Node) *Description {
	d := &Description{Kind: n.Kind().String()}
	switch n := n.(type) {
	case *Literal:
		d.Symbol = n.Symbol.String()
	case *Concatenation:
		d.Children = []*Description{Describe(n.Left), Describe(n.Right)}
	case *Alternation:
		d.Children = []*Description{Describe(n.Left), Describe(n.Right)}
	case *Star:
		d.Children = []*Description{Describe(n.Inner)}
	}
	return d
}

// Dump writes an indented outline of n, one node per line.
func Dump(w io.Writer, n Node) error {
	ew := &errWriter{w: w}
	var walk func(d *Description, depth int)
	walk = func(d *Description, depth int) {
		ew.printf("%s%s", strings.Repeat("  ", depth), d.Kind)
		if d.Symbol != "" {
			ew.printf(" %s", d.Symbol)
		}
		ew.printf("\n")
		for _, c := range d.Children {
			walk(c, depth+1)
		}
	}
	walk(Describe(n), 0)
	return ew.err
}
