package ot

import (
	"unicode/utf16"
	"unicode/utf8"
)

// codeUnitLen returns the length of s in UTF-16 code units. This is the
// unit every length — baseLength, targetLength, Op.Length() — is counted
// in throughout this package.
func codeUnitLen(s string) int {
	n := 0
	for _, r := range s {
		units := utf16.RuneLen(r)
		if units < 1 {
			// utf16.RuneLen returns -1 for invalid runes; treat as one
			// replacement-character-sized unit rather than propagating -1.
			units = 1
		}
		n += units
	}
	return n
}

// codeUnitIndex builds a mapping from UTF-16 code-unit offset to byte offset
// in s. index[u] is the byte offset of the rune that contains UTF-16 code
// unit u; index has one entry per code unit plus a trailing sentinel equal
// to len(s).
func codeUnitIndex(s string) []int {
	index := make([]int, 0, len(s)+1)
	byteOffset := 0
	for _, r := range s {
		units := utf16.RuneLen(r)
		if units < 1 {
			units = 1
		}
		for i := 0; i < units; i++ {
			index = append(index, byteOffset)
		}
		byteOffset += utf8.RuneLen(r)
	}
	index = append(index, len(s))
	return index
}
