// Package scanner compiles a rule set into a lexmachine DFA and splits
// input into tokens with it. Among the rules matching the longest prefix,
// the one declared first wins.
package scanner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"redeggs/internal/lexspec"
)

type Token struct {
	Rule   string
	Lexeme string
	Line   int
	Column int
}

// Scanner is safe for concurrent use once built.
type Scanner struct {
	lexer *lexmachine.Lexer
	log   *slog.Logger
}

type Option func(*Scanner)

func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

// New compiles rs. A rule the backend cannot express is reported as a
// *lexspec.RuleError wrapping ErrUnsupported.
func New(rs *lexspec.Ruleset, opts ...Option) (*Scanner, error) {
	s := &Scanner{
		lexer: lexmachine.NewLexer(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if rs.Len() == 0 {
		return nil, errors.New("scanner: rule set is empty")
	}

	for _, r := range rs.Rules() {
		pat, err := Pattern(r.AST)
		if err != nil {
			return nil, &lexspec.RuleError{Pos: r.Pos, Rule: r.Name, Err: err}
		}
		s.log.Debug("rule translated", "rule", r.Name, "lexmachine", pat)
		if r.Skip {
			s.lexer.Add([]byte(pat), skip)
		} else {
			s.lexer.Add([]byte(pat), tokAction(r.Name))
		}
	}

	if err := s.lexer.Compile(); err != nil {
		return nil, fmt.Errorf("scanner: %w", err)
	}
	s.log.Debug("scanner compiled", "rules", rs.Len())
	return s, nil
}

// Scan splits all of input into tokens. Skip rules consume input without
// producing tokens. Input no rule matches stops the scan with an error.
func (s *Scanner) Scan(input []byte) ([]Token, error) {
	sc, err := s.lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	var toks []Token
	for tok, err, eof := sc.Next(); !eof; tok, err, eof = sc.Next() {
		if err != nil {
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) {
				return toks, fmt.Errorf("%d:%d: no rule matches %q", ui.StartLine, ui.StartColumn, excerpt(ui.Text, ui.StartTC))
			}
			return toks, err
		}
		toks = append(toks, tok.(Token))
	}
	return toks, nil
}

// excerpt returns the rest of the line starting at tc, at most 16 bytes.
func excerpt(text []byte, tc int) string {
	end := tc
	for end < len(text) && end-tc < 16 && text[end] != '\n' {
		end++
	}
	return string(text[tc:end])
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(rule string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Rule:   rule,
			Lexeme: string(m.Bytes),
			Line:   m.StartLine,
			Column: m.StartColumn,
		}, nil
	}
}
