package fsa

// maxCodePoint is the largest Unicode scalar value.
const maxCodePoint = 0x10FFFF

// byteRange is an inclusive range of byte values.
type byteRange struct {
	min, max byte
}

// byteSeq matches 1-4 consecutive input bytes, one range per position.
type byteSeq []byteRange

// utf8Sequences expands the codepoint range [lo, hi] into byte-range
// sequences whose union matches exactly the UTF-8 encodings of the
// codepoints in the range.
//
// Sequences produced for a single range have pairwise disjoint lead-byte
// ranges, but sequences from different codepoint ranges of the same source
// state may share lead bytes, so the byte-level automaton as a whole is
// nondeterministic and gets determinized after expansion.
func utf8Sequences(lo, hi rune) []byteSeq {
	var seqs []byteSeq
	splitByLength(&seqs, lo, hi)
	return seqs
}

// splitByLength cuts [lo, hi] at the UTF-8 encoded-length boundaries, then
// hands each equal-length piece to splitEncoded.
func splitByLength(seqs *[]byteSeq, lo, hi rune) {
	if lo > hi {
		return
	}
	for _, bound := range [...]rune{0x7F, 0x7FF, 0xFFFF} {
		if lo <= bound && bound < hi {
			splitByLength(seqs, lo, bound)
			splitByLength(seqs, bound+1, hi)
			return
		}
	}
	splitEncoded(seqs, encodeRune(lo), encodeRune(hi))
}

// splitEncoded emits sequences covering [s, e], two encodings of equal
// length. It peels ragged low and high ends until both tails span the full
// continuation range, which then collapses to a single sequence.
func splitEncoded(seqs *[]byteSeq, s, e []byte) {
	n := len(s)
	if n == 1 {
		*seqs = append(*seqs, byteSeq{{s[0], e[0]}})
		return
	}
	if s[0] == e[0] {
		mark := len(*seqs)
		splitEncoded(seqs, s[1:], e[1:])
		for i := mark; i < len(*seqs); i++ {
			(*seqs)[i] = append(byteSeq{{s[0], s[0]}}, (*seqs)[i]...)
		}
		return
	}
	if !allBytes(s[1:], 0x80) {
		splitEncoded(seqs, s, fillSeq(s[0], n, 0xBF))
		splitEncoded(seqs, fillSeq(s[0]+1, n, 0x80), e)
		return
	}
	if !allBytes(e[1:], 0xBF) {
		splitEncoded(seqs, s, fillSeq(e[0]-1, n, 0xBF))
		splitEncoded(seqs, fillSeq(e[0], n, 0x80), e)
		return
	}
	seq := make(byteSeq, 0, n)
	seq = append(seq, byteRange{s[0], e[0]})
	for i := 1; i < n; i++ {
		seq = append(seq, byteRange{0x80, 0xBF})
	}
	*seqs = append(*seqs, seq)
}

func allBytes(b []byte, v byte) bool {
	for _, x := range b {
		if x != v {
			return false
		}
	}
	return true
}

// fillSeq returns an n-byte encoding with the given lead byte and every
// continuation byte set to fill.
func fillSeq(lead byte, n int, fill byte) []byte {
	b := make([]byte, n)
	b[0] = lead
	for i := 1; i < n; i++ {
		b[i] = fill
	}
	return b
}

// encodeRune encodes r arithmetically. Unlike unicode/utf8 it does not
// substitute surrogate values; ranges crossing the surrogate block simply
// produce three-byte patterns that never fire on valid UTF-8 input.
func encodeRune(r rune) []byte {
	switch {
	case r < 0x80:
		return []byte{byte(r)}
	case r < 0x800:
		return []byte{0xC0 | byte(r>>6), 0x80 | byte(r&0x3F)}
	case r < 0x10000:
		return []byte{0xE0 | byte(r>>12), 0x80 | byte(r>>6&0x3F), 0x80 | byte(r&0x3F)}
	default:
		return []byte{0xF0 | byte(r>>18), 0x80 | byte(r>>12&0x3F), 0x80 | byte(r>>6&0x3F), 0x80 | byte(r&0x3F)}
	}
}
