// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// blockify lays out logical content across several fixed-size blocks on a
// backing device so a forkReader's extent list can reference them
// out of logical order, the way a fragmented file's extents would.
func blockify(blockSize int, blocks ...string) io.ReaderAt {
	var buf bytes.Buffer
	for _, b := range blocks {
		if len(b) > blockSize {
			panic("block too long")
		}
		buf.WriteString(b)
		buf.Write(make([]byte, blockSize-len(b)))
	}
	return strings.NewReader(buf.String())
}

func TestForkReaderSingleExtent(t *testing.T) {
	dev := blockify(4, "abcd", "efgh", "ijkl")
	fr := newForkReader(dev, 4, []Extent{{StartBlock: 0, BlockCount: 3}}, 12)

	buf := make([]byte, 12)
	n, err := fr.ReadAt(buf, 0)
	if err != nil || n != 12 {
		t.Fatalf("ReadAt: n=%d err=%v", n, err)
	}
	if string(buf) != "abcdefghijkl" {
		t.Fatalf("got %q", buf)
	}
}

func TestForkReaderMultipleExtentsOutOfOrder(t *testing.T) {
	// Logical content "ijkl" "abcd" "efgh" stored in device blocks 2,0,1.
	dev := blockify(4, "abcd", "efgh", "ijkl")
	fr := newForkReader(dev, 4, []Extent{
		{StartBlock: 2, BlockCount: 1},
		{StartBlock: 0, BlockCount: 2},
	}, 12)

	buf := make([]byte, 12)
	n, err := fr.ReadAt(buf, 0)
	if err != nil || n != 12 {
		t.Fatalf("ReadAt: n=%d err=%v", n, err)
	}
	if string(buf) != "ijklabcdefgh" {
		t.Fatalf("got %q", buf)
	}
}

func TestForkReaderPartialReadSpanningThreeExtents(t *testing.T) {
	dev := blockify(2, "aa", "bb", "cc", "dd", "ee")
	fr := newForkReader(dev, 2, []Extent{
		{StartBlock: 0, BlockCount: 1},
		{StartBlock: 1, BlockCount: 1},
		{StartBlock: 2, BlockCount: 1},
		{StartBlock: 3, BlockCount: 1},
		{StartBlock: 4, BlockCount: 1},
	}, 10)

	buf := make([]byte, 4)
	n, err := fr.ReadAt(buf, 3)
	if err != nil || n != 4 {
		t.Fatalf("ReadAt(off=3): n=%d err=%v", n, err)
	}
	if string(buf) != "bccd" {
		t.Fatalf("got %q, want %q", buf, "bccd")
	}
}

func TestForkReaderEOFPastLogicalSize(t *testing.T) {
	dev := blockify(4, "abcd")
	fr := newForkReader(dev, 4, []Extent{{StartBlock: 0, BlockCount: 1}}, 4)

	buf := make([]byte, 4)
	n, err := fr.ReadAt(buf, 2)
	if n != 2 || err != io.EOF {
		t.Fatalf("ReadAt(off=2): n=%d err=%v, want n=2 EOF", n, err)
	}

	n, err = fr.ReadAt(buf, 4)
	if n != 0 || err != io.EOF {
		t.Fatalf("ReadAt(off=4): n=%d err=%v, want n=0 EOF", n, err)
	}
}

func TestNodeReaderReadsFixedSizeNodes(t *testing.T) {
	dev := blockify(8, "node0000", "node1111")
	fr := newForkReader(dev, 8, []Extent{{StartBlock: 0, BlockCount: 2}}, 16)
	nr := &nodeReader{fr: fr, nodeSize: 8}

	n0, err := nr.readNode(0)
	if err != nil || string(n0) != "node0000" {
		t.Fatalf("readNode(0): %q, %v", n0, err)
	}
	n1, err := nr.readNode(1)
	if err != nil || string(n1) != "node1111" {
		t.Fatalf("readNode(1): %q, %v", n1, err)
	}
}
