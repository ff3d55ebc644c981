// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import "fmt"

// btreeInfo caches the per-tree facts learned from node 0 (the header
// node): node size, key-length field width, root node number, and the
// active key comparator (§4.11 steps 4-6, §9 "resolve at volume open").
type btreeInfo struct {
	nodeSize  uint16
	bigKeys   bool
	rootNode  uint32
	firstLeaf uint32
	lastLeaf  uint32
	// binaryCompare is learned from the tree header's key_compare_type
	// byte (0xBC = binary), not guessed from the HFS+/HFSX signature
	// alone (§4.11 step 4, §9 Open Question).
	binaryCompare bool
}

// bootstrapHeaderNode reads the fixed-position header record that always
// immediately follows the 14-byte node descriptor in node 0, bypassing the
// record-offset array entirely -- mirroring the source, which reads the
// header record directly rather than through the (not-yet-known) node
// size's offset table.
func bootstrapHeaderNode(raw []byte) (nodeDescriptor, headerRecord, error) {
	c := newCursor(raw)
	desc, err := readNodeDescriptor(c)
	if err != nil {
		return desc, headerRecord{}, err
	}
	if desc.Kind != nodeKindHeader {
		return desc, headerRecord{}, fmt.Errorf("%w: node 0 is not a header node", ErrCorruptNode)
	}
	if desc.NumRecs != 3 {
		return desc, headerRecord{}, fmt.Errorf("%w: header node does not have exactly 3 records", ErrCorruptNode)
	}
	rest, err := c.block(c.remaining())
	if err != nil {
		return desc, headerRecord{}, err
	}
	hr, err := readHeaderRecord(rest)
	if err != nil {
		return desc, headerRecord{}, err
	}
	return desc, hr, nil
}

// parseNodeRecords validates and recovers the per-record byte spans of one
// fully-read node (§4.3 step (c), §8 invariant 1): offsets strictly
// decreasing in on-disk order, offset[0] >= 14, and the free-space pointer
// (the final entry) <= node size.
func parseNodeRecords(raw []byte) (nodeDescriptor, [][]byte, error) {
	c := newCursor(raw)
	desc, err := readNodeDescriptor(c)
	if err != nil {
		return desc, nil, err
	}
	nodeSize := len(raw)
	cnt := int(desc.NumRecs)
	if cnt == 0 {
		return desc, nil, fmt.Errorf("%w: node has no records", ErrCorruptNode)
	}

	// cnt+1 big-endian uint16 offsets at the tail of the node, the array
	// growing backward from the end (offset 0 = start of descriptor).
	offsets := make([]uint16, cnt+1)
	for i := range offsets {
		tail := nodeSize - 2 - 2*i
		v, ok := peekU16At(raw, tail)
		if !ok {
			return desc, nil, fmt.Errorf("%w: record-offset array out of bounds", ErrCorruptNode)
		}
		offsets[i] = v
	}

	if offsets[0] < 14 {
		return desc, nil, fmt.Errorf("%w: first record offset %d < 14", ErrCorruptNode, offsets[0])
	}
	if int(offsets[cnt]) > nodeSize {
		return desc, nil, fmt.Errorf("%w: free-space pointer %d exceeds node size %d", ErrCorruptNode, offsets[cnt], nodeSize)
	}
	for i := 1; i <= cnt; i++ {
		if offsets[i] <= offsets[i-1] {
			return desc, nil, fmt.Errorf("%w: record offsets not strictly increasing (index %d)", ErrCorruptNode, i)
		}
	}

	recs := make([][]byte, cnt)
	for i := 0; i < cnt; i++ {
		start, end := offsets[i], offsets[i+1]
		if int(end) > nodeSize {
			return desc, nil, fmt.Errorf("%w: record %d end %d exceeds node size", ErrCorruptNode, i, end)
		}
		recs[i] = raw[start:end]
	}
	return desc, recs, nil
}
