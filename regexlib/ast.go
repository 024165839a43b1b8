package regexlib

import "redeggs/symbol"

// Node is a node of the syntax tree produced by Parse. The concrete types
// are *Literal, *Concatenation, *Alternation, *Star, *EmptyWord and
// *EmptySet; consumers dispatch on them with a type switch. Trees are never
// modified after Parse returns them.
type Node interface {
	Kind() Kind
	node()
}

type Kind int

const (
	KindLiteral Kind = iota
	KindConcatenation
	KindAlternation
	KindStar
	KindEmptyWord // ε
	KindEmptySet  // ∅
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindConcatenation:
		return "concatenation"
	case KindAlternation:
		return "alternation"
	case KindStar:
		return "star"
	case KindEmptyWord:
		return "empty_word"
	case KindEmptySet:
		return "empty_set"
	default:
		return "unknown"
	}
}

// Literal matches exactly one code point contained in Symbol.
type Literal struct {
	Symbol symbol.Symbol
}

// Concatenation matches Left immediately followed by Right.
type Concatenation struct {
	Left, Right Node
}

// Alternation matches Left or Right.
type Alternation struct {
	Left, Right Node
}

// Star matches zero or more repetitions of Inner.
type Star struct {
	Inner Node
}

// EmptyWord matches only the empty string.
type EmptyWord struct{}

// EmptySet matches nothing.
type EmptySet struct{}

func (*Literal) Kind() Kind       { return KindLiteral }
func (*Concatenation) Kind() Kind { return KindConcatenation }
func (*Alternation) Kind() Kind   { return KindAlternation }
func (*Star) Kind() Kind          { return KindStar }
func (*EmptyWord) Kind() Kind     { return KindEmptyWord }
func (*EmptySet) Kind() Kind      { return KindEmptySet }

func (*Literal) node()       {}
func (*Concatenation) node() {}
func (*Alternation) node()   {}
func (*Star) node()          {}
func (*EmptyWord) node()     {}
func (*EmptySet) node()      {}

// Nullable reports whether n matches the empty string.
func Nullable(n Node) bool {
	switch n := n.(type) {
	case *EmptyWord, *Star:
		return true
	case *Concatenation:
		return Nullable(n.Left) && Nullable(n.Right)
	case *Alternation:
		return Nullable(n.Left) || Nullable(n.Right)
	default:
		return false
	}
}

// Symbols returns the symbols of all literals in n, left to right.
func Symbols(n Node) []symbol.Symbol {
	var out []symbol.Symbol
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Literal:
			out = append(out, n.Symbol)
		case *Concatenation:
			walk(n.Left)
			walk(n.Right)
		case *Alternation:
			walk(n.Left)
			walk(n.Right)
		case *Star:
			walk(n.Inner)
		}
	}
	walk(n)
	return out
}
