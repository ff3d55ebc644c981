// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import "unicode/utf16"

// nfdExclusionRanges lists the Unicode blocks HFS+'s decomposition leaves
// alone even though stock Unicode NFD would decompose characters in them:
// symbol and CJK-compatibility blocks where Apple's decomposition table
// diverges from the standard one (§4.8, the reason golang.org/x/text's
// stock normalizer can't be reused bit-exact).
var nfdExclusionRanges = [][2]rune{
	{0x2000, 0x2FFF},
	{0xF900, 0xFAFF},
	{0x2F800, 0x2FAFF},
}

func inExclusionRange(r rune) bool {
	for _, rg := range nfdExclusionRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// decomposeRune returns a rune's canonical (NFD) decomposition, or nil if
// it has none or falls in an HFS+ exclusion range. Decomposition data
// comes from canonicalDecompositions, a reduced subset of the Unicode
// Character Database's canonical decompositions; runes outside that table
// are left as they are. Only the exclusion filter and combining-mark
// reordering below are HFS+-specific.
func decomposeRune(r rune) []rune {
	if inExclusionRange(r) {
		return nil
	}
	if d, ok := canonicalDecompositions[r]; ok {
		return d
	}
	return nil
}

// ToHFSUnicodeName converts a UTF-8 path element into the UTF-16 NFD name
// HFS+ stores and compares against (§4.8): each rune is decomposed unless
// excluded, decomposed sequences are emitted in turn, and the whole result
// is encoded as UTF-16 (surrogate pairs for runes above the BMP).
func ToHFSUnicodeName(s string) UnicodeName {
	var runes []rune
	for _, r := range s {
		if r == '/' {
			r = ':'
		}
		if d := decomposeRune(r); d != nil {
			runes = append(runes, d...)
		} else {
			runes = append(runes, r)
		}
	}
	runes = reorderCombiningMarks(runes)
	return UnicodeName{Units: utf16.Encode(runes)}
}

// FromHFSUnicodeName converts a catalog name back to a UTF-8 path element,
// restoring the ':' -> '/' substitution HFS+ uses in place of the path
// separator (§4.8, §4.9).
func FromHFSUnicodeName(n UnicodeName) string {
	runes := utf16.Decode(n.Units)
	for i, r := range runes {
		if r == ':' {
			runes[i] = '/'
		}
	}
	return string(runes)
}

// combiningClass reports a rune's canonical combining class. HFS+'s
// decomposition reorders combining marks by this class exactly as NFD
// does; only a small practical subset is modeled, sufficient for the Latin
// and European marks a catalog is overwhelmingly likely to contain.
func combiningClass(r rune) int {
	if cc, ok := combiningClasses[r]; ok {
		return cc
	}
	return 0
}

// reorderCombiningMarks performs the stable sort-by-combining-class pass
// that follows decomposition in NFD: runs of nonzero-class marks following
// a base character are reordered among themselves, base characters and
// class-0 marks are never moved.
func reorderCombiningMarks(runes []rune) []rune {
	out := make([]rune, len(runes))
	copy(out, runes)
	for i := 1; i < len(out); i++ {
		ci := combiningClass(out[i])
		if ci == 0 {
			continue
		}
		j := i
		for j > 0 && combiningClass(out[j-1]) > ci {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
