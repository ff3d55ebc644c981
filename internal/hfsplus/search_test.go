// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"encoding/binary"
	"strings"
	"testing"
)

// testKeyRecord builds a record in the same shape catalog/extents records
// use: a one-byte key length, the key bytes themselves, and (for index
// records only) a trailing 4-byte child node number.
func testKeyRecord(key byte, child *uint32, leafPayload byte) []byte {
	rec := []byte{1, key}
	if child != nil {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, *child)
		rec = append(rec, b...)
	} else {
		rec = append(rec, leafPayload)
	}
	return rec
}

func u32p(v uint32) *uint32 { return &v }

func parseTestKey(rec []byte, bigKeys bool) (int, error) {
	return int(rec[1]), nil
}

func cmpTestKey(a, b int) int { return a - b }

// buildTestTree assembles a two-level tree: an index root (node 0) with two
// children, leaf node 1 holding keys {1,3,5} and leaf node 2 holding keys
// {10,12}, and returns a nodeReader over it.
func buildTestTree(t *testing.T, nodeSize int) *nodeReader {
	t.Helper()
	root := buildNode(nodeSize, nodeKindIndex, 1,
		testKeyRecord(1, u32p(1), 0),
		testKeyRecord(10, u32p(2), 0),
	)
	leaf1 := buildNode(nodeSize, nodeKindLeaf, 0,
		testKeyRecord(1, nil, 0),
		testKeyRecord(3, nil, 0),
		testKeyRecord(5, nil, 0),
	)
	leaf2 := buildNode(nodeSize, nodeKindLeaf, 0,
		testKeyRecord(10, nil, 0),
		testKeyRecord(12, nil, 0),
	)

	dev := append(append(append([]byte{}, root...), leaf1...), leaf2...)
	fr := newForkReader(strings.NewReader(string(dev)), uint32(nodeSize), []Extent{{StartBlock: 0, BlockCount: uint32(len(dev) / nodeSize)}}, uint64(len(dev)))
	return &nodeReader{fr: fr, nodeSize: uint16(nodeSize)}
}

func TestSearchTreeFindsExactKeyAcrossLeaves(t *testing.T) {
	nr := buildTestTree(t, 64)

	for _, want := range []int{1, 3, 5, 10, 12} {
		rec, found, err := searchTree(nr, 0, false, want, parseTestKey, cmpTestKey)
		if err != nil {
			t.Fatalf("searchTree(%d): %v", want, err)
		}
		if !found {
			t.Fatalf("searchTree(%d): not found", want)
		}
		if got := int(rec[1]); got != want {
			t.Fatalf("searchTree(%d): got key %d", want, got)
		}
	}
}

func TestSearchTreeMissingKeyWithinLeafRange(t *testing.T) {
	nr := buildTestTree(t, 64)
	_, found, err := searchTree(nr, 0, false, 7, parseTestKey, cmpTestKey)
	if err != nil {
		t.Fatalf("searchTree(7): %v", err)
	}
	if found {
		t.Fatal("expected 7 to be absent from the tree")
	}
}

func TestSearchTreeKeySmallerThanAnyIndexEntry(t *testing.T) {
	nr := buildTestTree(t, 64)
	_, found, err := searchTree(nr, 0, false, 0, parseTestKey, cmpTestKey)
	if err != nil {
		t.Fatalf("searchTree(0): %v", err)
	}
	if found {
		t.Fatal("expected no match below the smallest index key")
	}
}

func TestSearchTreeDetectsNodeCycle(t *testing.T) {
	nodeSize := 64
	// node 0 is an index node whose only child is itself.
	root := buildNode(nodeSize, nodeKindIndex, 1, testKeyRecord(1, u32p(0), 0))
	fr := newForkReader(strings.NewReader(string(root)), uint32(nodeSize), []Extent{{StartBlock: 0, BlockCount: 1}}, uint64(len(root)))
	nr := &nodeReader{fr: fr, nodeSize: uint16(nodeSize)}

	_, _, err := searchTree(nr, 0, false, 5, parseTestKey, cmpTestKey)
	if err == nil {
		t.Fatal("expected a cycle-detection error")
	}
}
