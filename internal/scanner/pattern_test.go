package scanner

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"redeggs/regexlib"
)

func TestUTF8Sequences(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi rune
		want   []sequence
	}{
		{"ascii", 'a', 'z', []sequence{{{'a', 'z'}}}},
		{"two byte", 0x80, 0x7FF, []sequence{{{0xC2, 0xDF}, {0x80, 0xBF}}}},
		{"single", 'é', 'é', []sequence{{{0xC3, 0xC3}, {0xA9, 0xA9}}}},
		{"straddle", 0x7E, 0x81, []sequence{
			{{0x7E, 0x7F}},
			{{0xC2, 0xC2}, {0x80, 0x81}},
		}},
		{"surrogates only", 0xD800, 0xDFFF, nil},
		{"everything", 0, 0x10FFFF, []sequence{
			{{0x00, 0x7F}},
			{{0xC2, 0xDF}, {0x80, 0xBF}},
			{{0xE0, 0xE0}, {0xA0, 0xBF}, {0x80, 0xBF}},
			{{0xE1, 0xEC}, {0x80, 0xBF}, {0x80, 0xBF}},
			{{0xED, 0xED}, {0x80, 0x9F}, {0x80, 0xBF}},
			{{0xEE, 0xEF}, {0x80, 0xBF}, {0x80, 0xBF}},
			{{0xF0, 0xF0}, {0x90, 0xBF}, {0x80, 0xBF}, {0x80, 0xBF}},
			{{0xF1, 0xF3}, {0x80, 0xBF}, {0x80, 0xBF}, {0x80, 0xBF}},
			{{0xF4, 0xF4}, {0x80, 0x8F}, {0x80, 0xBF}, {0x80, 0xBF}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.DeepEqual(t, utf8Sequences(tt.lo, tt.hi), tt.want, cmp.AllowUnexported(byteRange{}))
		})
	}
}

func TestPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"ab", "ab"},
		{"a|b", "(a|b)"},
		{"(ab)*c", "(ab)*c"},
		{"[a-c_]", "[_a-c]"},
		{"+", "[+]"},
		{"[-^]", `[\-\^]`},
		{"é", "[\xC3][\xA9]"},
		{"[aé]", "(a|[\xC3][\xA9])"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := regexlib.Parse(tt.pattern)
			assert.NilError(t, err)
			got, err := Pattern(n)
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestPatternUnsupported(t *testing.T) {
	for _, pattern := range []string{"a*", "ε", "∅", "(a|b*)c*"} {
		n, err := regexlib.Parse(pattern)
		assert.NilError(t, err)
		_, err = Pattern(n)
		assert.Assert(t, errors.Is(err, ErrUnsupported), "%s: got %v", pattern, err)
	}
}
