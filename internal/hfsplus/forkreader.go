// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"fmt"
	"io"

	"github.com/0x09/gohfsplus/internal/sectionreader"
)

// forkReader presents a fork's extent list as a single io.ReaderAt over
// logical byte offsets 0..logicalSize, translating each read into one or
// more device reads at extent-relative block offsets (§4.6).
//
// Unlike the multi-extent reader this is modelled on, intersection against
// each extent is computed directly from the extent's own block range rather
// than by accumulating a running skip counter across a seek-style cursor,
// which avoids double-counting an extent's length when a read spans more
// than two extents.
type forkReader struct {
	dev         io.ReaderAt
	blockSize   uint32
	extents     []Extent
	logicalSize uint64
}

func newForkReader(dev io.ReaderAt, blockSize uint32, extents []Extent, logicalSize uint64) *forkReader {
	return &forkReader{dev: dev, blockSize: blockSize, extents: extents, logicalSize: logicalSize}
}

// ReadAt implements io.ReaderAt over the fork's logical byte space.
func (f *forkReader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: negative offset", ErrCorruptExtents)
	}
	if uint64(off) >= f.logicalSize {
		return 0, io.EOF
	}
	want := p
	if uint64(off)+uint64(len(want)) > f.logicalSize {
		want = want[:f.logicalSize-uint64(off)]
	}

	n := 0
	blockPos := uint64(0) // logical byte offset of the start of the extent under consideration
	remainingOff := uint64(off)

	for _, e := range f.extents {
		extentBytes := uint64(e.BlockCount) * uint64(f.blockSize)
		if extentBytes == 0 {
			continue
		}
		extentStart := blockPos
		extentEnd := blockPos + extentBytes
		blockPos = extentEnd

		if remainingOff >= extentEnd {
			continue // entirely before this extent
		}
		if n >= len(want) {
			break
		}

		// Offset into this extent where the read begins.
		within := uint64(0)
		if remainingOff > extentStart {
			within = remainingOff - extentStart
		}
		avail := extentBytes - within
		chunk := uint64(len(want) - n)
		if chunk > avail {
			chunk = avail
		}

		devOff := int64(e.StartBlock)*int64(f.blockSize) + int64(within)
		dest := want[n : n+int(chunk)]
		got, err := sectionreader.Section(f.dev, devOff, int64(chunk)).ReadAt(dest, 0)
		if err == nil && got < len(dest) {
			err = io.ErrUnexpectedEOF
		}
		n += got
		if err != nil {
			return n, err
		}
		if n >= len(want) {
			break
		}
	}

	if n < len(want) {
		return n, io.ErrUnexpectedEOF
	}
	if len(want) < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// nodeReader reads whole, fixed-size B-tree nodes out of a fork.
type nodeReader struct {
	fr       *forkReader
	nodeSize uint16
}

func (nr *nodeReader) readNode(num uint32) ([]byte, error) {
	buf := make([]byte, nr.nodeSize)
	off := int64(num) * int64(nr.nodeSize)
	_, err := nr.fr.ReadAt(buf, off)
	if err != nil {
		return nil, fmt.Errorf("%w: node %d: %v", ErrCorruptNode, num, err)
	}
	return buf, nil
}
