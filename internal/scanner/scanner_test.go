package scanner

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"redeggs/internal/lexspec"
)

const assignRules = `
ws     = "[ \t\n][ \t\n]*" skip;
kw     = "let";
ident  = "[a-zA-Z_][a-zA-Z_0-9]*";
number = "[0-9][0-9]*";
assign = "=";
plus   = "+";
semi   = ";";
`

func newScanner(t *testing.T, rules string) *Scanner {
	t.Helper()
	rs, err := lexspec.Parse("test.lex", rules)
	assert.NilError(t, err)
	s, err := New(rs)
	assert.NilError(t, err)
	return s
}

func TestScan(t *testing.T) {
	s := newScanner(t, assignRules)
	toks, err := s.Scan([]byte("let x = 10 + y1;\nlets;"))
	assert.NilError(t, err)
	want := []Token{
		{Rule: "kw", Lexeme: "let", Line: 1, Column: 1},
		{Rule: "ident", Lexeme: "x", Line: 1, Column: 5},
		{Rule: "assign", Lexeme: "=", Line: 1, Column: 7},
		{Rule: "number", Lexeme: "10", Line: 1, Column: 9},
		{Rule: "plus", Lexeme: "+", Line: 1, Column: 12},
		{Rule: "ident", Lexeme: "y1", Line: 1, Column: 14},
		{Rule: "semi", Lexeme: ";", Line: 1, Column: 16},
		{Rule: "ident", Lexeme: "lets", Line: 2, Column: 1},
		{Rule: "semi", Lexeme: ";", Line: 2, Column: 5},
	}
	assert.DeepEqual(t, toks, want)
}

func TestScanUnicode(t *testing.T) {
	s := newScanner(t, `
greek = "[α-ω][α-ω]*";
other = "[^α-ω ]";
ws    = " " skip;
`)
	toks, err := s.Scan([]byte("αβγ é€x"))
	assert.NilError(t, err)
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Rule+":"+tok.Lexeme)
	}
	assert.DeepEqual(t, got, []string{"greek:αβγ", "other:é", "other:€", "other:x"})
}

func TestScanNoMatch(t *testing.T) {
	s := newScanner(t, `a = "a";`)
	toks, err := s.Scan([]byte("aab"))
	assert.ErrorContains(t, err, `no rule matches "b"`)
	assert.Equal(t, len(toks), 2)
}

func TestNewUnsupported(t *testing.T) {
	for _, rules := range []string{
		`e = "a*";`,
		`e = "a|b*";`,
		`e = "ε";`,
		`e = "∅";`,
	} {
		rs, err := lexspec.Parse("test.lex", "ok = \"a\";\n"+rules)
		assert.NilError(t, err)
		_, err = New(rs)
		assert.Assert(t, errors.Is(err, ErrUnsupported), "%s: got %v", rules, err)
		var rerr *lexspec.RuleError
		assert.Assert(t, errors.As(err, &rerr))
		assert.Equal(t, rerr.Rule, "e")
		assert.Equal(t, rerr.Pos.Line, 2)
	}

	empty, err := lexspec.Parse("empty.lex", "")
	assert.NilError(t, err)
	_, err = New(empty)
	assert.ErrorContains(t, err, "rule set is empty")
}
