// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import "testing"

func TestToHFSUnicodeNameASCII(t *testing.T) {
	n := ToHFSUnicodeName("readme.txt")
	if got := FromHFSUnicodeName(n); got != "readme.txt" {
		t.Fatalf("round trip: got %q", got)
	}
}

func TestToHFSUnicodeNameSlashColonSubstitution(t *testing.T) {
	n := ToHFSUnicodeName("a/b")
	if len(n.Units) != 3 || n.Units[1] != ':' {
		t.Fatalf("expected the / to be stored as a literal ':' unit, got %v", n.Units)
	}
	if got := FromHFSUnicodeName(n); got != "a/b" {
		t.Fatalf("round trip: got %q, want a/b", got)
	}
}

func TestToHFSUnicodeNameDecomposesPrecomposedLetter(t *testing.T) {
	n := ToHFSUnicodeName("café")
	// 'é' decomposes to 'e' + COMBINING ACUTE ACCENT (U+0301); the name
	// should carry that as two UTF-16 units, not one precomposed unit.
	want := []uint16{'c', 'a', 'f', 'e', 0x0301}
	if len(n.Units) != len(want) {
		t.Fatalf("got %d units %v, want %d units %v", len(n.Units), n.Units, len(want), want)
	}
	for i := range want {
		if n.Units[i] != want[i] {
			t.Fatalf("unit %d: got %#x, want %#x (full: %v)", i, n.Units[i], want[i], n.Units)
		}
	}
}

func TestFromHFSUnicodeNameRestoresSlash(t *testing.T) {
	n := UnicodeName{Units: []uint16{'x', ':', 'y'}}
	if got := FromHFSUnicodeName(n); got != "x/y" {
		t.Fatalf("got %q, want x/y", got)
	}
}

func TestReorderCombiningMarksStableOnBaseOnly(t *testing.T) {
	in := []rune{'a', 'b', 'c'}
	out := reorderCombiningMarks(in)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("expected no reordering of base-only runes, got %v", out)
		}
	}
}

func TestReorderCombiningMarksOrdersByClass(t *testing.T) {
	// U+0327 COMBINING CEDILLA is class 202, U+0301 COMBINING ACUTE ACCENT
	// is class 230: NFD orders lower combining classes first.
	in := []rune{'c', 0x0301, 0x0327}
	out := reorderCombiningMarks(in)
	if out[0] != 'c' || out[1] != 0x0327 || out[2] != 0x0301 {
		t.Fatalf("expected cedilla (class 202) before acute (class 230), got %v", out)
	}
}

func TestInExclusionRange(t *testing.T) {
	if !inExclusionRange(0x2018) { // left single quotation mark, in 0x2000-0x2FFF
		t.Error("expected U+2018 to be in the exclusion range")
	}
	if inExclusionRange('e') {
		t.Error("did not expect 'e' to be in any exclusion range")
	}
}
