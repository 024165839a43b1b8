package symbol

import (
	"sort"
	"strings"
)

// Symbol is the finalized form of a character class. Parsers embed it in
// syntax trees without looking inside; automaton builders query it.
type Symbol interface {
	Contains(r rune) bool
	// Intervals returns the members as sorted, disjoint, non-adjacent
	// intervals.
	Intervals() []Interval
	String() string
}

// Set is an immutable set of code points.
type Set struct {
	// sorted ascending, disjoint and never adjacent
	ivs []Interval
}

var _ Symbol = Set{}

// NewSet returns the union of ivs.
func NewSet(ivs ...Interval) Set {
	var s Set
	for _, iv := range ivs {
		s = s.union(iv)
	}
	return s
}

func (s Set) Contains(r rune) bool {
	lo, hi := 0, len(s.ivs)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		iv := s.ivs[m]
		if iv.Contains(r) {
			return true
		}
		if r < iv.Lo {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return false
}

func (s Set) Intervals() []Interval {
	out := make([]Interval, len(s.ivs))
	copy(out, s.ivs)
	return out
}

func (s Set) IsEmpty() bool { return len(s.ivs) == 0 }

// Len is the number of code points in s.
func (s Set) Len() int {
	n := 0
	for _, iv := range s.ivs {
		n += iv.Len()
	}
	return n
}

func (s Set) Equal(o Set) bool {
	if len(s.ivs) != len(o.ivs) {
		return false
	}
	for i := range s.ivs {
		if s.ivs[i] != o.ivs[i] {
			return false
		}
	}
	return true
}

// Complement returns every code point not in s.
func (s Set) Complement() Set {
	var out []Interval
	next := rune(0)
	for _, iv := range s.ivs {
		if iv.Lo > next {
			out = append(out, Interval{Lo: next, Hi: iv.Lo - 1})
		}
		next = iv.Hi + 1
	}
	if next <= MaxCodePoint {
		out = append(out, Interval{Lo: next, Hi: MaxCodePoint})
	}
	return Set{ivs: out}
}

// String lists the members in bracket notation. Sets that reach both ends of
// the code point space are listed as a complement, so [^a-c] prints as
// itself rather than as two huge ranges.
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	ivs := s.ivs
	if len(ivs) > 0 && ivs[0].Lo == 0 && ivs[len(ivs)-1].Hi == MaxCodePoint {
		b.WriteByte('^')
		ivs = s.Complement().ivs
	}
	for _, iv := range ivs {
		b.WriteString(iv.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (s Set) union(iv Interval) Set {
	// first interval that ends at or after iv.Lo-1, i.e. may touch iv
	i := sort.Search(len(s.ivs), func(k int) bool { return s.ivs[k].Hi >= iv.Lo-1 })
	j := i
	for j < len(s.ivs) && s.ivs[j].Lo <= iv.Hi+1 {
		if s.ivs[j].Lo < iv.Lo {
			iv.Lo = s.ivs[j].Lo
		}
		if s.ivs[j].Hi > iv.Hi {
			iv.Hi = s.ivs[j].Hi
		}
		j++
	}
	out := make([]Interval, 0, len(s.ivs)-(j-i)+1)
	out = append(out, s.ivs[:i]...)
	out = append(out, iv)
	out = append(out, s.ivs[j:]...)
	return Set{ivs: out}
}

func (s Set) subtract(iv Interval) Set {
	out := make([]Interval, 0, len(s.ivs)+1)
	for _, cur := range s.ivs {
		if cur.Hi < iv.Lo || cur.Lo > iv.Hi {
			out = append(out, cur)
			continue
		}
		if cur.Lo < iv.Lo {
			out = append(out, Interval{Lo: cur.Lo, Hi: iv.Lo - 1})
		}
		if cur.Hi > iv.Hi {
			out = append(out, Interval{Lo: iv.Hi + 1, Hi: cur.Hi})
		}
	}
	return Set{ivs: out}
}
