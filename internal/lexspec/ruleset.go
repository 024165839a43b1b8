// Package lexspec reads rule files: named patterns in declaration order,
// each parsed into a syntax tree.
package lexspec

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/participle/v2/lexer"

	"redeggs/regexlib"
)

// Rule is one named pattern of a rule file.
type Rule struct {
	Name    string
	Pattern string
	// Skip rules are matched but produce no token.
	Skip bool
	AST  regexlib.Node
	Pos  lexer.Position
}

// Ruleset holds the rules of a file

type Ruleset struct {
	rules  []*Rule
	byName map[string]*Rule
}

func newRuleset() *Ruleset {
	return &Ruleset{byName: make(map[string]*Rule)}
}

// Rules returns the rules in declaration order.
func (rs *Ruleset) Rules() []*Rule {
	out := make([]*Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

func (rs *Ruleset) Get(name string) (*Rule, bool) {
	r, ok := rs.byName[name]
	return r, ok
}

func (rs *Ruleset) Len() int { return len(rs.rules) }

func (rs *Ruleset) add(r *Rule) error {
	if first, ok := rs.byName[r.Name]; ok {
		return &RuleError{
			Pos:  r.Pos,
			Rule: r.Name,
			Err:  fmt.Errorf("%w, first defined at %s", ErrDuplicate, first.Pos),
		}
	}
	rs.rules = append(rs.rules, r)
	rs.byName[r.Name] = r
	return nil
}

type options struct {
	parser []regexlib.Option
	log    *slog.Logger
}

// Option configures Parse and Load.
type Option func(*options)

// WithParserOptions sets the options every rule pattern is parsed with.
func WithParserOptions(opts ...regexlib.Option) Option {
	return func(o *options) { o.parser = append(o.parser, opts...) }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Parse reads a rule file from src. filename only labels positions. Syntax
// errors are returned as reported by the grammar; unusable rules as
// *RuleError.
func Parse(filename, src string, opts ...Option) (*Ruleset, error) {
	o := options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}

	p := regexlib.NewParser(o.parser...)
	rs := newRuleset()
	for _, d := range f.Rules {
		ast, err := p.Parse(d.Pattern)
		if err != nil {
			return nil, &RuleError{Pos: d.Pos, Rule: d.Name, Err: err}
		}
		r := &Rule{Name: d.Name, Pattern: d.Pattern, Skip: d.Skip, AST: ast, Pos: d.Pos}
		if err := rs.add(r); err != nil {
			return nil, err
		}
		o.log.Debug("rule loaded", "rule", r.Name, "kind", ast.Kind(), "skip", r.Skip, "pos", r.Pos.String())
	}
	o.log.Debug("rules loaded", "file", filename, "count", rs.Len())
	return rs, nil
}

// Load reads the rule file at path.
func Load(path string, opts ...Option) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data), opts...)
}
