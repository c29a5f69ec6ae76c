package engine

import (
	"sort"
	"unicode/utf8"
)

// runeSpansToBytes converts spans reported in rune offsets to byte offsets
// into text. The unmatched placeholder {-1, -1} passes through unchanged.
//
// Spans may be in any order (capture groups of a lookbehind can start
// before the overall match). All needed offsets are collected and resolved
// in a single forward walk over the text, so conversion is O(len(text) +
// k log k) for k spans. Rune offsets past the end of the text clamp to
// len(text).
func runeSpansToBytes(text string, spans []Span) []Span {
	offsets := make([]int, 0, len(spans)*2)
	for _, s := range spans {
		if s.Matched() {
			offsets = append(offsets, s.Start, s.End)
		}
	}
	if len(offsets) == 0 {
		return spans
	}
	sort.Ints(offsets)

	byteOf := make(map[int]int, len(offsets))
	runeIdx, byteIdx := 0, 0
	for _, target := range offsets {
		for runeIdx < target && byteIdx < len(text) {
			_, size := utf8.DecodeRuneInString(text[byteIdx:])
			byteIdx += size
			runeIdx++
		}
		byteOf[target] = byteIdx
	}

	out := make([]Span, len(spans))
	for i, s := range spans {
		if !s.Matched() {
			out[i] = s
			continue
		}
		out[i] = Span{Start: byteOf[s.Start], End: byteOf[s.End]}
	}
	return out
}
