// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import "fmt"

// ForkType selects which of a file's two forks an operation addresses.
type ForkType uint8

const (
	ForkTypeData     ForkType = 0x00
	ForkTypeResource ForkType = 0xff
)

// ExtentKey is the extents-overflow B-tree key: (file_CNID, fork_type,
// start_block), compared lexicographically (§4.4).
type ExtentKey struct {
	ForkType   ForkType
	FileCNID   uint32
	StartBlock uint32
}

func readExtentKey(c *cursor, bigKeys bool) (ExtentKey, error) {
	var k ExtentKey
	var err error
	if bigKeys {
		if _, err = c.u16(); err != nil {
			return k, err
		}
	} else {
		if _, err = c.u8(); err != nil {
			return k, err
		}
	}
	ft, err := c.u8()
	if err != nil {
		return k, err
	}
	k.ForkType = ForkType(ft)
	if err = c.advance(1); err != nil { // padding
		return k, err
	}
	if k.FileCNID, err = c.u32(); err != nil {
		return k, err
	}
	if k.StartBlock, err = c.u32(); err != nil {
		return k, err
	}
	return k, nil
}

func compareExtentKeys(a, b ExtentKey) int {
	if a.FileCNID != b.FileCNID {
		if a.FileCNID < b.FileCNID {
			return -1
		}
		return 1
	}
	if a.ForkType != b.ForkType {
		if a.ForkType < b.ForkType {
			return -1
		}
		return 1
	}
	if a.StartBlock != b.StartBlock {
		if a.StartBlock < b.StartBlock {
			return -1
		}
		return 1
	}
	return 0
}

// Extent is a resolved (start_block, block_count) pair in the coordinate
// space of volume blocks.
type Extent = ExtentDescriptor

// resolveExtents implements §4.5: given a fork's inline extent record plus
// its total_blocks and a (CNID, fork_type) to search the extents-overflow
// B-tree with, produce the full monotonic extent list.
func (v *Volume) resolveExtents(cnid uint32, fork ForkType, fd ForkData) ([]Extent, error) {
	var out []Extent
	var running uint64

	appendExtents := func(rec ExtentRecord) bool {
		for _, e := range rec {
			if e.BlockCount == 0 {
				return false
			}
			if running+uint64(e.BlockCount) < running {
				return false // overflow
			}
			out = append(out, e)
			running += uint64(e.BlockCount)
			if running >= uint64(fd.TotalBlocks) {
				return false
			}
		}
		return true
	}

	if !appendExtents(fd.Extents) {
		if running > uint64(fd.TotalBlocks) {
			return nil, fmt.Errorf("%w: cnid %d fork %d: inline extents overrun total_blocks", ErrCorruptExtents, cnid, fork)
		}
		return out, nil
	}

	for running < uint64(fd.TotalBlocks) {
		key := ExtentKey{FileCNID: cnid, ForkType: fork, StartBlock: uint32(running)}
		rec, found, err := v.searchExtentsOverflow(key)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		if !appendExtents(rec) {
			break
		}
	}

	if running > uint64(fd.TotalBlocks) {
		v.logger.Errorf("extent overflow for cnid %d fork %d: running=%d total=%d", cnid, fork, running, fd.TotalBlocks)
		return nil, fmt.Errorf("%w: cnid %d fork %d", ErrCorruptExtents, cnid, fork)
	}
	return out, nil
}
