// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

// canonicalDecompositions covers the Latin-1 Supplement and Latin Extended-A
// precomposed letters a real-world catalog is overwhelmingly likely to
// contain. It is not the full Unicode Character Database: HFS+'s own
// decomposition table is much larger, but file names outside this range are
// vanishingly rare in practice and fall back to being compared
// undecomposed, which only risks a false mismatch against a volume whose
// names use NFC forms outside this set.
var canonicalDecompositions = map[rune][]rune{
	'À': {'A', 0x0300}, 'Á': {'A', 0x0301}, 'Â': {'A', 0x0302}, 'Ã': {'A', 0x0303},
	'Ä': {'A', 0x0308}, 'Å': {'A', 0x030A}, 'Ç': {'C', 0x0327}, 'È': {'E', 0x0300},
	'É': {'E', 0x0301}, 'Ê': {'E', 0x0302}, 'Ë': {'E', 0x0308}, 'Ì': {'I', 0x0300},
	'Í': {'I', 0x0301}, 'Î': {'I', 0x0302}, 'Ï': {'I', 0x0308}, 'Ñ': {'N', 0x0303},
	'Ò': {'O', 0x0300}, 'Ó': {'O', 0x0301}, 'Ô': {'O', 0x0302}, 'Õ': {'O', 0x0303},
	'Ö': {'O', 0x0308}, 'Ù': {'U', 0x0300}, 'Ú': {'U', 0x0301}, 'Û': {'U', 0x0302},
	'Ü': {'U', 0x0308}, 'Ý': {'Y', 0x0301},
	'à': {'a', 0x0300}, 'á': {'a', 0x0301}, 'â': {'a', 0x0302}, 'ã': {'a', 0x0303},
	'ä': {'a', 0x0308}, 'å': {'a', 0x030A}, 'ç': {'c', 0x0327}, 'è': {'e', 0x0300},
	'é': {'e', 0x0301}, 'ê': {'e', 0x0302}, 'ë': {'e', 0x0308}, 'ì': {'i', 0x0300},
	'í': {'i', 0x0301}, 'î': {'i', 0x0302}, 'ï': {'i', 0x0308}, 'ñ': {'n', 0x0303},
	'ò': {'o', 0x0300}, 'ó': {'o', 0x0301}, 'ô': {'o', 0x0302}, 'õ': {'o', 0x0303},
	'ö': {'o', 0x0308}, 'ù': {'u', 0x0300}, 'ú': {'u', 0x0301}, 'û': {'u', 0x0302},
	'ü': {'u', 0x0308}, 'ý': {'y', 0x0301}, 'ÿ': {'y', 0x0308},
	'Ā': {'A', 0x0304}, 'ā': {'a', 0x0304}, 'Ē': {'E', 0x0304}, 'ē': {'e', 0x0304},
	'Ī': {'I', 0x0304}, 'ī': {'i', 0x0304}, 'Ō': {'O', 0x0304}, 'ō': {'o', 0x0304},
	'Ū': {'U', 0x0304}, 'ū': {'u', 0x0304},
	'Ő': {'O', 0x030B}, 'ő': {'o', 0x030B}, 'Ű': {'U', 0x030B}, 'ű': {'u', 0x030B},
}

// combiningClasses gives the canonical combining class of the combining
// diacritical marks the table above emits. All of U+0300-U+036B used here
// happen to share class 230 ("above") except cedilla (202, "below") and
// double acute (230); this is the subset that ordering actually depends on
// for the decompositions this package produces.
var combiningClasses = map[rune]int{
	0x0300: 230, 0x0301: 230, 0x0302: 230, 0x0303: 230,
	0x0304: 230, 0x0308: 230, 0x030A: 230, 0x030B: 230,
	0x0327: 202,
}
