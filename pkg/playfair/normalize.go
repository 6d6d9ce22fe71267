package playfair

import "strings"

// Padding is appended to normalized text of odd length.
const Padding = 'X'

// Digraph is an ordered pair of letters transformed together.
type Digraph struct {
	First  byte
	Second byte
}

// String returns the two letters, e.g. "IN".
func (d Digraph) String() string {
	return string([]byte{d.First, d.Second})
}

// normalizeCase uppercases s and merges J into I.
func normalizeCase(s string) string {
	return strings.ReplaceAll(strings.ToUpper(s), "J", "I")
}

// Normalize uppercases text, replaces J with I and drops every character
// that is not an ASCII letter. It does not pad.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, normalizeCase(text))
}

// Digraphs normalizes text and splits it into consecutive, non-overlapping
// pairs from left to right. When the normalized text has odd length a single
// [Padding] letter completes the last pair.
//
// Pairs of identical letters are returned as they are; no filler is
// inserted between them.
func Digraphs(text string) []Digraph {
	norm := Normalize(text)
	if len(norm)%2 != 0 {
		norm += string(Padding)
	}

	ds := make([]Digraph, 0, len(norm)/2)
	for i := 0; i < len(norm); i += 2 {
		ds = append(ds, Digraph{First: norm[i], Second: norm[i+1]})
	}
	return ds
}
