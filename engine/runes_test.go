package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRuneSpansToBytes(t *testing.T) {
	// "héllo wörld": é and ö are 2 bytes each.
	text := "héllo wörld"

	tests := []struct {
		name  string
		spans []Span
		want  []Span
	}{
		{
			"ascii prefix",
			[]Span{{0, 1}},
			[]Span{{0, 1}},
		},
		{
			"span crossing multi-byte runes",
			[]Span{{0, 5}}, // héllo = 5 runes, 6 bytes
			[]Span{{0, 6}},
		},
		{
			"span after multi-byte runes",
			[]Span{{6, 11}}, // wörld = runes 6..11, bytes 7..13
			[]Span{{7, 13}},
		},
		{
			"unmatched placeholder passes through",
			[]Span{{0, 2}, {-1, -1}, {3, 5}},
			[]Span{{0, 3}, {-1, -1}, {4, 6}},
		},
		{
			"out of order spans",
			[]Span{{6, 11}, {1, 2}},
			[]Span{{7, 13}, {1, 3}},
		},
		{
			"empty span at end of text",
			[]Span{{11, 11}},
			[]Span{{13, 13}},
		},
		{
			"offsets past the end clamp",
			[]Span{{11, 99}},
			[]Span{{13, 13}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runeSpansToBytes(text, tt.spans)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("runeSpansToBytes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRuneSpansToBytesAllUnmatched(t *testing.T) {
	spans := []Span{{-1, -1}, {-1, -1}}
	got := runeSpansToBytes("abc", spans)
	if diff := cmp.Diff(spans, got); diff != "" {
		t.Errorf("runeSpansToBytes mismatch (-want +got):\n%s", diff)
	}
}
