package lexspec

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alecthomas/participle/v2"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"redeggs/regexlib"
)

func TestLoad(t *testing.T) {
	rs, err := Load(filepath.Join("testdata", "assign.lex"))
	assert.NilError(t, err)
	assert.Equal(t, rs.Len(), 6)

	var names []string
	for _, r := range rs.Rules() {
		names = append(names, r.Name)
	}
	assert.DeepEqual(t, names, []string{"ws", "ident", "number", "assign", "plus", "semi"})

	ws, ok := rs.Get("ws")
	assert.Assert(t, ok)
	assert.Check(t, ws.Skip)
	assert.Equal(t, ws.Pattern, "[ \t\n][ \t\n]*")
	assert.Equal(t, ws.Pos.Line, 3)
	assert.Equal(t, ws.Pos.Filename, filepath.Join("testdata", "assign.lex"))

	ident, _ := rs.Get("ident")
	assert.Check(t, !ident.Skip)
	assert.Equal(t, ident.AST.Kind(), regexlib.KindConcatenation)

	_, ok = rs.Get("missing")
	assert.Check(t, !ok)

	_, err = Load(filepath.Join("testdata", "missing.lex"))
	assert.Assert(t, err != nil)
}

func TestParseRawString(t *testing.T) {
	rs, err := Parse("inline", "path = `a\\b`;")
	assert.NilError(t, err)
	r, _ := rs.Get("path")
	assert.Equal(t, r.Pattern, `a\b`)
}

func TestParseEmpty(t *testing.T) {
	rs, err := Parse("empty", "// nothing here\n")
	assert.NilError(t, err)
	assert.Equal(t, rs.Len(), 0)
	assert.Check(t, is.Len(rs.Rules(), 0))
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("bad", "a = \"x\"\nb = \"y\";")
	var perr participle.Error
	assert.Assert(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, perr.Position().Line, 2)
}

func TestParseRuleErrors(t *testing.T) {
	_, err := Parse("rules.lex", "ok = \"a\";\nbroken = \"(a\";")
	var rerr *RuleError
	assert.Assert(t, errors.As(err, &rerr), "got %v", err)
	assert.Equal(t, rerr.Rule, "broken")
	assert.Equal(t, rerr.Pos.Line, 2)
	var perr *regexlib.ParseError
	assert.Assert(t, errors.As(err, &perr))
	assert.Equal(t, perr.Offset, 2)
	assert.ErrorContains(t, err, "rules.lex:2:1: rule broken: parse error at offset 2")

	_, err = Parse("dup.lex", "a = \"x\";\nb = \"y\";\na = \"z\";")
	assert.Assert(t, errors.Is(err, ErrDuplicate))
	assert.Assert(t, errors.As(err, &rerr))
	assert.Equal(t, rerr.Pos.Line, 3)
	assert.ErrorContains(t, err, "first defined at dup.lex:1:1")
}

func TestParseOptions(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rs, err := Parse("opts", "e = \"E\";",
		WithParserOptions(regexlib.WithMarkers('E', '0')),
		WithLogger(log),
	)
	assert.NilError(t, err)
	r, _ := rs.Get("e")
	assert.Equal(t, r.AST.Kind(), regexlib.KindEmptyWord)
	assert.Check(t, is.Contains(buf.String(), "rule loaded"))
	assert.Check(t, is.Contains(buf.String(), "count=1"))
}
