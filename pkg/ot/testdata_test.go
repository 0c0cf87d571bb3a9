package ot

import (
	"math/rand"
	"strings"

	"github.com/clipperhouse/uax29/graphemes"
)

// randomString generates a random ASCII test string: lowercase letters with
// a 15% chance of newline per character.
func randomString(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if rand.Float64() < 0.15 {
			b.WriteRune('\n')
		} else {
			b.WriteRune('a' + rune(rand.Intn(26)))
		}
	}
	return b.String()
}

// randomOperation builds a random TextOperation whose BaseLength equals
// len(str) in code units, alternating insert/delete/retain segments of
// length 1..min(20, remaining), with a 30% chance of a trailing insert.
func randomOperation(str string) *TextOperation {
	op := NewTextOperation()

	for {
		left := codeUnitLen(str) - op.BaseLength()
		if left == 0 {
			break
		}

		maxLen := min(left, 20)
		if maxLen < 1 {
			maxLen = 1
		}
		l := 1 + rand.Intn(maxLen)

		switch r := rand.Float64(); {
		case r < 0.2:
			op.Insert(randomString(l))
		case r < 0.4:
			op.Delete(l)
		default:
			op.Retain(l)
		}
	}

	if rand.Float64() < 0.3 {
		op.Insert(randomString(1 + rand.Intn(10)))
	}

	return op
}

// multiScriptSeed holds grapheme clusters that span more than one UTF-16
// code unit: a combining-mark letter, CJK ideographs, a ZWJ emoji sequence,
// and an emoji outside the Basic Multilingual Plane. Every entry is written
// as an explicit rune escape so the source file stays plain ASCII.
var multiScriptSeed = []string{
	"a\u0301",                                     // "a" + COMBINING ACUTE ACCENT: one grapheme, two runes
	"\u4e16\u754c",                                 // CJK "world": two BMP runes, one code unit each
	"\U0001F468\u200D\U0001F469\u200D\U0001F467", // family emoji ZWJ sequence
	"\U0001F600",                                    // emoji outside the BMP: one rune, two UTF-16 code units
	"\n",
}

// randomMultiScriptString is a secondary corpus generator that mixes
// grapheme clusters spanning more than one UTF-16 code unit into the test
// alphabet, using clipperhouse/uax29/graphemes to segment the seed clusters
// and repeating a random subset of them. It exists purely to stress the
// code-unit/rune mapping in codeunits.go with realistic non-BMP and
// combining-character input; it does not change the engine's code-unit
// length semantics.
func randomMultiScriptString(n int) string {
	segments := graphemes.SegmentAllString(strings.Join(multiScriptSeed, ""))
	if len(segments) == 0 {
		return randomString(n)
	}

	var b strings.Builder
	for codeUnitLen(b.String()) < n {
		b.WriteString(segments[rand.Intn(len(segments))])
	}
	return b.String()
}
