package scanner

import "unicode/utf8"

type byteRange struct {
	lo, hi byte
}

// sequence matches one UTF-8 encoded code point: byte i of the encoding must
// fall in range i.
type sequence []byteRange

// utf8Sequences splits the code points [lo, hi] into byte-range sequences
// whose union matches exactly their UTF-8 encodings. Surrogates are left
// out since they have no encoding.
func utf8Sequences(lo, hi rune) []sequence {
	var out []sequence
	splitRange(lo, hi, &out)
	return out
}

func splitRange(lo, hi rune, out *[]sequence) {
	if lo > hi {
		return
	}
	if lo < 0xD800 && hi > 0xDFFF {
		splitRange(lo, 0xD7FF, out)
		splitRange(0xE000, hi, out)
		return
	}
	if lo >= 0xD800 && lo <= 0xDFFF {
		lo = 0xE000
	}
	if hi >= 0xD800 && hi <= 0xDFFF {
		hi = 0xD7FF
	}
	if lo > hi {
		return
	}

	// all code points of a sequence share one encoded length
	for _, max := range []rune{0x7F, 0x7FF, 0xFFFF} {
		if lo <= max && hi > max {
			splitRange(lo, max, out)
			splitRange(max+1, hi, out)
			return
		}
	}
	if hi <= 0x7F {
		*out = append(*out, sequence{{byte(lo), byte(hi)}})
		return
	}

	// when the leading bytes differ, the trailing bytes must cover their
	// full continuation range
	for i := 1; i < utf8.UTFMax; i++ {
		m := rune(1)<<(6*i) - 1
		if lo&^m == hi&^m {
			continue
		}
		if lo&m != 0 {
			splitRange(lo, lo|m, out)
			splitRange((lo|m)+1, hi, out)
			return
		}
		if hi&m != m {
			splitRange(lo, (hi&^m)-1, out)
			splitRange(hi&^m, hi, out)
			return
		}
	}

	var a, b [utf8.UTFMax]byte
	n := utf8.EncodeRune(a[:], lo)
	utf8.EncodeRune(b[:], hi)
	seq := make(sequence, n)
	for i := range seq {
		seq[i] = byteRange{a[i], b[i]}
	}
	*out = append(*out, seq)
}
