package regexlib

import (
	"errors"
	"math/rand"
	"os"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"redeggs/symbol"
)

// ------------------------------------------------------------------- helpers

func lit(ivs ...symbol.Interval) *Literal {
	b := symbol.NewFactory().NewClass()
	for _, iv := range ivs {
		b = b.Include(iv)
	}
	return &Literal{Symbol: b.Finalize()}
}

func ch(r rune) *Literal { return lit(symbol.Single(r)) }

func cat(l, r Node) *Concatenation { return &Concatenation{Left: l, Right: r} }
func alt(l, r Node) *Alternation   { return &Alternation{Left: l, Right: r} }
func star(n Node) *Star            { return &Star{Inner: n} }

func mustParse(t *testing.T, pattern string) Node {
	t.Helper()
	n, err := Parse(pattern)
	assert.NilError(t, err, "pattern %q", pattern)
	return n
}

// ------------------------------------------------------------------- fixtures

type parseCase struct {
	Pattern string       `yaml:"pattern"`
	AST     *Description `yaml:"ast"`
	Error   *struct {
		Offset  int    `yaml:"offset"`
		Message string `yaml:"message"`
	} `yaml:"error"`
}

func TestParseFixtures(t *testing.T) {
	src, err := os.ReadFile("testdata/parse.yaml")
	assert.NilError(t, err)
	var cases []parseCase
	assert.NilError(t, yaml.Unmarshal(src, &cases))
	assert.Assert(t, len(cases) > 0)

	for _, tc := range cases {
		t.Run(tc.Pattern, func(t *testing.T) {
			n, err := Parse(tc.Pattern)
			if tc.Error != nil {
				var perr *ParseError
				assert.Assert(t, errors.As(err, &perr), "want parse error, got %v", err)
				assert.Equal(t, perr.Offset, tc.Error.Offset)
				assert.ErrorContains(t, err, tc.Error.Message)
				assert.Assert(t, n == nil)
				return
			}
			assert.NilError(t, err)
			assert.DeepEqual(t, Describe(n), tc.AST)
		})
	}
}

// ------------------------------------------------------------------- grammar

func TestParseShapes(t *testing.T) {
	tests := []struct {
		pattern string
		want    Node
	}{
		{"a", ch('a')},
		{"ab", cat(ch('a'), ch('b'))},
		{"a|b", alt(ch('a'), ch('b'))},
		{"a*", star(ch('a'))},
		{"a*b", cat(star(ch('a')), ch('b'))},
		{"(a|b)c", cat(alt(ch('a'), ch('b')), ch('c'))},
		{"a|bc*", alt(ch('a'), cat(ch('b'), star(ch('c'))))},
		{"((a))", ch('a')},
		{"(a*)*", star(star(ch('a')))},
		{"a-b", cat(ch('a'), cat(ch('-'), ch('b')))},
		{"^", ch('^')},
		{"[a-c]", lit(symbol.MustRange('a', 'c'))},
		{"[ab]", lit(symbol.MustRange('a', 'b'))},
		{"ε", &EmptyWord{}},
		{"∅", &EmptySet{}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.DeepEqual(t, mustParse(t, tt.pattern), tt.want)
		})
	}
}

func TestParseNegatedClass(t *testing.T) {
	n := mustParse(t, "[^a-c]")
	l, ok := n.(*Literal)
	assert.Assert(t, ok, "got %T", n)
	for _, r := range "abc" {
		assert.Assert(t, !l.Symbol.Contains(r), "%q", r)
	}
	for _, r := range []rune{0, 'd', 'z', '`', '(', 'é', symbol.MaxCodePoint} {
		assert.Assert(t, l.Symbol.Contains(r), "%q", r)
	}
}

// recordingFactory logs builder calls so the order the parser issues them
// in can be checked.
type recordingFactory struct {
	calls []string
}

func (f *recordingFactory) NewClass() symbol.Builder {
	return &recordingBuilder{f: f, inner: symbol.NewFactory().NewClass()}
}

type recordingBuilder struct {
	f     *recordingFactory
	inner symbol.Builder
}

func (b *recordingBuilder) Include(iv symbol.Interval) symbol.Builder {
	b.f.calls = append(b.f.calls, "+"+iv.String())
	b.inner = b.inner.Include(iv)
	return b
}

func (b *recordingBuilder) Exclude(iv symbol.Interval) symbol.Builder {
	b.f.calls = append(b.f.calls, "-"+iv.String())
	b.inner = b.inner.Exclude(iv)
	return b
}

func (b *recordingBuilder) Finalize() symbol.Symbol {
	b.f.calls = append(b.f.calls, "!")
	return b.inner.Finalize()
}

func TestParseBuilderOrder(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"a", []string{"+a", "!"}},
		{"[x0-9a]", []string{"+x", "+0-9", "+a", "!"}},
		{"[^a-cz]", []string{"+\\u0000-\\U0010FFFF", "-a-c", "-z", "!"}},
		{"a[b]", []string{"+a", "!", "+b", "!"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			f := &recordingFactory{}
			_, err := NewParser(WithFactory(f)).Parse(tt.pattern)
			assert.NilError(t, err)
			assert.DeepEqual(t, f.calls, tt.want)
		})
	}
}

func TestParseOptions(t *testing.T) {
	p := NewParser(WithMarkers('E', '0'))
	n, err := p.Parse("E")
	assert.NilError(t, err)
	assert.DeepEqual(t, n, Node(&EmptyWord{}))
	n, err = p.Parse("0")
	assert.NilError(t, err)
	assert.DeepEqual(t, n, Node(&EmptySet{}))
	n, err = p.Parse("ε∅")
	assert.NilError(t, err)
	assert.DeepEqual(t, n, Node(cat(ch('ε'), ch('∅'))))
	_, err = p.Parse("aE")
	assert.ErrorContains(t, err, "found 'E'")

	deep := NewParser(WithMaxDepth(2))
	_, err = deep.Parse("((a))")
	assert.NilError(t, err)
	_, err = deep.Parse("(((a)))")
	var perr *ParseError
	assert.Assert(t, errors.As(err, &perr))
	assert.Equal(t, perr.Offset, 2)
	assert.ErrorContains(t, err, "nested deeper than 2")
}

func TestParserReuse(t *testing.T) {
	p := NewParser()
	_, err := p.Parse("(a")
	assert.Assert(t, err != nil)
	n, err := p.Parse("ab")
	assert.NilError(t, err)
	assert.DeepEqual(t, n, Node(cat(ch('a'), ch('b'))))
}

// ------------------------------------------------------------------- properties

// randomPattern draws from the reserved syntax and a few literals so most
// results are malformed and some are not.
func randomPattern(rng *rand.Rand) string {
	const alphabet = "ab()|*[]^-$"
	n := rng.Intn(10)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func TestParseProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	accepted := 0
	for i := 0; i < 5000; i++ {
		pattern := randomPattern(rng)
		n, err := Parse(pattern)
		if err != nil {
			var perr *ParseError
			assert.Assert(t, errors.As(err, &perr), "pattern %q: %v", pattern, err)
			assert.Assert(t, perr.Offset >= 0 && perr.Offset <= utf8.RuneCountInString(pattern),
				"pattern %q: offset %d", pattern, perr.Offset)
			continue
		}
		accepted++

		again, err := Parse(pattern)
		assert.NilError(t, err)
		if diff := cmp.Diff(n, again); diff != "" {
			t.Fatalf("pattern %q parsed differently twice (-first +second):\n%s", pattern, diff)
		}

		text, err := Format(n)
		assert.NilError(t, err, "pattern %q", pattern)
		back, err := Parse(text)
		assert.NilError(t, err, "pattern %q formatted as %q", pattern, text)
		assert.DeepEqual(t, back, n)
	}
	assert.Assert(t, accepted > 0)
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("(a")
	assert.Error(t, err, "parse error at offset 2: expected ')', found end of pattern")
	assert.Check(t, is.ErrorType(err, &ParseError{}))
}
