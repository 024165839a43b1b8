package regexlib

import (
	"unicode/utf8"

	"redeggs/symbol"
)

const (
	// DefaultEmptyWord is the whole pattern that denotes the empty word.
	DefaultEmptyWord = 'ε'
	// DefaultEmptySet is the whole pattern that denotes the empty language.
	DefaultEmptySet = '∅'
	// DefaultMaxDepth bounds group nesting.
	DefaultMaxDepth = 1000
)

// Option configures a Parser.
type Option func(*Parser)

// WithFactory sets the factory used to build literal symbols.
func WithFactory(f symbol.Factory) Option {
	return func(p *Parser) { p.factory = f }
}

// WithMarkers replaces the empty-word and empty-set markers.
func WithMarkers(emptyWord, emptySet rune) Option {
	return func(p *Parser) {
		p.emptyWord = emptyWord
		p.emptySet = emptySet
	}
}

// WithMaxDepth limits how deeply groups may nest.
func WithMaxDepth(n int) Option {
	return func(p *Parser) { p.maxDepth = n }
}

// Parser turns patterns into syntax trees by recursive descent:
//
//	regex       := concat union_tail
//	union_tail  := '|' concat union_tail | ε
//	concat      := kleene suffix_tail
//	suffix_tail := kleene suffix_tail | ε
//	kleene      := base '*'?
//	base        := LITERAL | '(' regex ')' | '[' class ']'
//	class       := '^'? item+
//	item        := LITERAL ('-' LITERAL)?
//
// Alternation and concatenation nest to the right. A Parser keeps cursor
// state while parsing and must not be used by two goroutines at once.
type Parser struct {
	factory   symbol.Factory
	emptyWord rune
	emptySet  rune
	maxDepth  int

	lex   *lexer
	depth int
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		factory:   symbol.NewFactory(),
		emptyWord: DefaultEmptyWord,
		emptySet:  DefaultEmptySet,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses pattern with a fresh default Parser. It is safe for
// concurrent use.
func Parse(pattern string) (Node, error) {
	return NewParser().Parse(pattern)
}

// Parse returns the syntax tree of pattern or a *ParseError.
func (p *Parser) Parse(pattern string) (Node, error) {
	if utf8.RuneCountInString(pattern) == 1 {
		switch r, _ := utf8.DecodeRuneInString(pattern); r {
		case p.emptyWord:
			return &EmptyWord{}, nil
		case p.emptySet:
			return &EmptySet{}, nil
		}
	}

	p.lex = newLexer(pattern)
	p.depth = 0
	defer func() { p.lex = nil }()

	n, err := p.regex()
	if err != nil {
		return nil, err
	}
	if !p.lex.atEnd() {
		return nil, p.lex.errorf("unexpected %q after complete expression", p.lex.peek())
	}
	return n, nil
}

// isLiteral reports whether c stands for itself. Besides the reserved
// syntax, the two whole-pattern markers are never literals so that they
// cannot be combined with anything.
func (p *Parser) isLiteral(c rune) bool {
	return !IsReserved(c) && c != p.emptyWord && c != p.emptySet
}

func (p *Parser) startsTerm(c rune) bool {
	return p.isLiteral(c) || c == '(' || c == '['
}

func (p *Parser) errTerm() *ParseError {
	return p.lex.errorf("expected literal, '(' or '[', found %s", p.lex.found())
}

func (p *Parser) regex() (Node, error) {
	if !p.startsTerm(p.lex.peek()) {
		return nil, p.errTerm()
	}
	left, err := p.concat()
	if err != nil {
		return nil, err
	}
	return p.unionTail(left)
}

func (p *Parser) unionTail(left Node) (Node, error) {
	switch c := p.lex.peek(); c {
	case '|':
		p.lex.consume()
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		rest, err := p.unionTail(right)
		if err != nil {
			return nil, err
		}
		return &Alternation{Left: left, Right: rest}, nil
	case endMarker, ')':
		return left, nil
	default:
		return nil, p.lex.errorf("expected '|', '$' or ')', found %s", p.lex.found())
	}
}

func (p *Parser) concat() (Node, error) {
	if !p.startsTerm(p.lex.peek()) {
		return nil, p.errTerm()
	}
	left, err := p.kleene()
	if err != nil {
		return nil, err
	}
	return p.suffixTail(left)
}

func (p *Parser) suffixTail(left Node) (Node, error) {
	c := p.lex.peek()
	switch {
	case p.startsTerm(c):
		right, err := p.kleene()
		if err != nil {
			return nil, err
		}
		rest, err := p.suffixTail(right)
		if err != nil {
			return nil, err
		}
		return &Concatenation{Left: left, Right: rest}, nil
	case c == '|' || c == endMarker || c == ')':
		return left, nil
	default:
		return nil, p.lex.errorf("expected literal, '(', '[', '|', '$' or ')', found %s", p.lex.found())
	}
}

func (p *Parser) kleene() (Node, error) {
	n, err := p.base()
	if err != nil {
		return nil, err
	}
	c := p.lex.peek()
	switch {
	case c == '*':
		p.lex.consume()
		return &Star{Inner: n}, nil
	case p.startsTerm(c) || c == '|' || c == endMarker || c == ')':
		return n, nil
	default:
		return nil, p.lex.errorf("expected '*', '|', '$' or ')', found %s", p.lex.found())
	}
}

func (p *Parser) base() (Node, error) {
	c := p.lex.peek()
	switch {
	case p.isLiteral(c):
		p.lex.consume()
		sym := p.factory.NewClass().Include(symbol.Single(c)).Finalize()
		return &Literal{Symbol: sym}, nil
	case c == '(':
		if p.depth >= p.maxDepth {
			return nil, p.lex.errorf("groups nested deeper than %d", p.maxDepth)
		}
		p.lex.consume()
		p.depth++
		n, err := p.regex()
		if err != nil {
			return nil, err
		}
		p.depth--
		if err := p.lex.expect(')'); err != nil {
			return nil, err
		}
		return n, nil
	case c == '[':
		p.lex.consume()
		b, err := p.class()
		if err != nil {
			return nil, err
		}
		if err := p.lex.expect(']'); err != nil {
			return nil, err
		}
		return &Literal{Symbol: b.Finalize()}, nil
	default:
		return nil, p.errTerm()
	}
}

// class parses the inside of a bracket expression. A leading '^' negates
// the whole class: the builder starts from every code point and each item
// is removed from it. Otherwise each item is added.
func (p *Parser) class() (symbol.Builder, error) {
	b := p.factory.NewClass()
	negated := false
	if p.lex.peek() == '^' {
		p.lex.consume()
		negated = true
		b = b.Include(symbol.Universe())
	}
	if !p.isLiteral(p.lex.peek()) {
		return nil, p.lex.errorf("expected literal in character class, found %s", p.lex.found())
	}
	for {
		iv, err := p.item()
		if err != nil {
			return nil, err
		}
		if negated {
			b = b.Exclude(iv)
		} else {
			b = b.Include(iv)
		}

		c := p.lex.peek()
		if c == ']' {
			return b, nil
		}
		if !p.isLiteral(c) {
			return nil, p.lex.errorf("expected literal or ']', found %s", p.lex.found())
		}
	}
}

func (p *Parser) item() (symbol.Interval, error) {
	lo := p.lex.peek()
	if !p.isLiteral(lo) {
		return symbol.Interval{}, p.lex.errorf("expected literal, found %s", p.lex.found())
	}
	p.lex.consume()
	if p.lex.peek() != '-' {
		return symbol.Single(lo), nil
	}
	p.lex.consume()

	hi := p.lex.peek()
	if !p.isLiteral(hi) {
		return symbol.Interval{}, p.lex.errorf("expected literal after '-' in range, found %s", p.lex.found())
	}
	iv, err := symbol.Range(lo, hi)
	if err != nil {
		return symbol.Interval{}, p.lex.errorf("%v", err)
	}
	p.lex.consume()
	return iv, nil
}
