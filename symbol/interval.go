// Package symbol materializes character classes into finalized membership
// sets over Unicode code points.
package symbol

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxCodePoint is the largest code point an Interval may cover.
const MaxCodePoint = unicode.MaxRune

// Interval is an inclusive range of code points with Lo <= Hi.
type Interval struct {
	Lo, Hi rune
}

// Single returns the interval holding only r.
func Single(r rune) Interval { return Interval{Lo: r, Hi: r} }

// Range returns the interval [lo, hi].
func Range(lo, hi rune) (Interval, error) {
	if lo < 0 || hi > MaxCodePoint {
		return Interval{}, fmt.Errorf("range %s-%s outside code point space", formatRune(lo), formatRune(hi))
	}
	if lo > hi {
		return Interval{}, fmt.Errorf("range %s-%s is out of order", formatRune(lo), formatRune(hi))
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// MustRange is like Range but panics on an invalid range.
func MustRange(lo, hi rune) Interval {
	iv, err := Range(lo, hi)
	if err != nil {
		panic(err)
	}
	return iv
}

// Universe covers every code point.
func Universe() Interval { return Interval{Lo: 0, Hi: MaxCodePoint} }

func (iv Interval) Contains(r rune) bool { return iv.Lo <= r && r <= iv.Hi }

// Len is the number of code points in iv.
func (iv Interval) Len() int { return int(iv.Hi-iv.Lo) + 1 }

func (iv Interval) String() string {
	if iv.Lo == iv.Hi {
		return formatRune(iv.Lo)
	}
	return formatRune(iv.Lo) + "-" + formatRune(iv.Hi)
}

// formatRune prints r as itself when that is unambiguous inside a bracketed
// listing and as an escape otherwise.
func formatRune(r rune) string {
	switch {
	case strings.ContainsRune(`[]^-\`, r):
		return `\` + string(r)
	case unicode.IsPrint(r) && r != ' ':
		return string(r)
	case r <= 0xFFFF:
		return fmt.Sprintf(`\u%04X`, r)
	default:
		return fmt.Sprintf(`\U%08X`, r)
	}
}
