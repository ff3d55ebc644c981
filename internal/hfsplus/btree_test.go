// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"encoding/binary"
	"testing"
)

// buildNode lays out a synthetic node: a 14-byte descriptor, followed by
// the given records back to back, followed by the record-offset array
// (growing backward from the end of the node, per parseNodeRecords).
func buildNode(nodeSize int, kind int8, height uint8, records ...[]byte) []byte {
	raw := make([]byte, nodeSize)
	binary.BigEndian.PutUint32(raw[0:4], 0)  // FLink
	binary.BigEndian.PutUint32(raw[4:8], 0)  // BLink
	raw[8] = byte(kind)
	raw[9] = height
	binary.BigEndian.PutUint16(raw[10:12], uint16(len(records)))
	binary.BigEndian.PutUint16(raw[12:14], 0) // Reserved

	offsets := make([]uint16, len(records)+1)
	pos := uint16(14)
	offsets[0] = pos
	for i, rec := range records {
		copy(raw[pos:], rec)
		pos += uint16(len(rec))
		offsets[i+1] = pos
	}

	for i, off := range offsets {
		tail := nodeSize - 2 - 2*i
		binary.BigEndian.PutUint16(raw[tail:tail+2], off)
	}
	return raw
}

func TestParseNodeRecordsTwoRecords(t *testing.T) {
	raw := buildNode(32, nodeKindLeaf, 1, []byte{1, 2, 3, 4}, []byte{5, 6, 7, 8})

	desc, recs, err := parseNodeRecords(raw)
	if err != nil {
		t.Fatalf("parseNodeRecords: %v", err)
	}
	if desc.Kind != nodeKindLeaf || desc.NumRecs != 2 {
		t.Fatalf("desc = %+v", desc)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if string(recs[0]) != "\x01\x02\x03\x04" {
		t.Errorf("record 0 = %v", recs[0])
	}
	if string(recs[1]) != "\x05\x06\x07\x08" {
		t.Errorf("record 1 = %v", recs[1])
	}
}

func TestParseNodeRecordsZeroRecordsRejected(t *testing.T) {
	raw := buildNode(32, nodeKindLeaf, 0)
	if _, _, err := parseNodeRecords(raw); err == nil {
		t.Fatal("expected an error for a node with no records")
	}
}

func TestParseNodeRecordsFirstOffsetTooSmall(t *testing.T) {
	raw := buildNode(32, nodeKindLeaf, 0, []byte{1, 2})
	// corrupt the first record's start offset to land inside the descriptor.
	binary.BigEndian.PutUint16(raw[len(raw)-2:], 4)
	if _, _, err := parseNodeRecords(raw); err == nil {
		t.Fatal("expected rejection of an offset pointing inside the node descriptor")
	}
}

func TestParseNodeRecordsFreeSpacePointerPastEnd(t *testing.T) {
	raw := buildNode(32, nodeKindLeaf, 0, []byte{1, 2})
	// corrupt the free-space pointer (offsets[cnt], stored first in the
	// offset table) to point past the node.
	binary.BigEndian.PutUint16(raw[len(raw)-4:len(raw)-2], 9999)
	if _, _, err := parseNodeRecords(raw); err == nil {
		t.Fatal("expected rejection of a free-space pointer beyond the node size")
	}
}

func TestParseNodeRecordsOffsetsNotIncreasing(t *testing.T) {
	raw := buildNode(32, nodeKindLeaf, 0, []byte{1, 2, 3, 4}, []byte{5, 6, 7, 8})
	// offsets[1] lives at tail = nodeSize-2-2*1; force it equal to offsets[0]
	// so the strictly-increasing check fails.
	tail0 := len(raw) - 2
	off0 := binary.BigEndian.Uint16(raw[tail0 : tail0+2])
	tail1 := len(raw) - 2 - 2
	binary.BigEndian.PutUint16(raw[tail1:tail1+2], off0)
	if _, _, err := parseNodeRecords(raw); err == nil {
		t.Fatal("expected rejection of non-increasing record offsets")
	}
}

func buildHeaderRecordBytes(h headerRecord) []byte {
	buf := make([]byte, 42)
	binary.BigEndian.PutUint16(buf[0:2], h.TreeDepth)
	binary.BigEndian.PutUint32(buf[2:6], h.RootNode)
	binary.BigEndian.PutUint32(buf[6:10], h.LeafRecs)
	binary.BigEndian.PutUint32(buf[10:14], h.FirstLeaf)
	binary.BigEndian.PutUint32(buf[14:18], h.LastLeaf)
	binary.BigEndian.PutUint16(buf[18:20], h.NodeSize)
	binary.BigEndian.PutUint16(buf[20:22], h.MaxKeyLen)
	binary.BigEndian.PutUint32(buf[22:26], h.TotalNodes)
	binary.BigEndian.PutUint32(buf[26:30], h.FreeNodes)
	binary.BigEndian.PutUint16(buf[30:32], h.Reserved)
	binary.BigEndian.PutUint32(buf[32:36], h.ClumpSize)
	buf[36] = h.BTreeType
	buf[37] = h.KeyCompare
	binary.BigEndian.PutUint32(buf[38:42], h.Attributes)
	return buf
}

func TestBootstrapHeaderNode(t *testing.T) {
	want := headerRecord{
		TreeDepth:  1,
		RootNode:   1,
		LeafRecs:   10,
		FirstLeaf:  1,
		LastLeaf:   1,
		NodeSize:   4096,
		MaxKeyLen:  516,
		TotalNodes: 100,
		FreeNodes:  50,
		ClumpSize:  4096 * 8,
		BTreeType:  0,
		KeyCompare: 0xBC,
		Attributes: bigKeysMask,
	}

	raw := make([]byte, 14+42)
	binary.BigEndian.PutUint32(raw[0:4], 0)
	binary.BigEndian.PutUint32(raw[4:8], 0)
	raw[8] = byte(nodeKindHeader)
	raw[9] = 0
	binary.BigEndian.PutUint16(raw[10:12], 3) // NumRecs
	binary.BigEndian.PutUint16(raw[12:14], 0)
	copy(raw[14:], buildHeaderRecordBytes(want))

	desc, hr, err := bootstrapHeaderNode(raw)
	if err != nil {
		t.Fatalf("bootstrapHeaderNode: %v", err)
	}
	if desc.Kind != nodeKindHeader || desc.NumRecs != 3 {
		t.Fatalf("desc = %+v", desc)
	}
	if hr != want {
		t.Fatalf("headerRecord = %+v, want %+v", hr, want)
	}
}

func TestBootstrapHeaderNodeRejectsWrongKind(t *testing.T) {
	raw := make([]byte, 14+42)
	raw[8] = byte(nodeKindLeaf)
	binary.BigEndian.PutUint16(raw[10:12], 3)
	if _, _, err := bootstrapHeaderNode(raw); err == nil {
		t.Fatal("expected an error for a non-header node 0")
	}
}

func TestBootstrapHeaderNodeRejectsWrongRecordCount(t *testing.T) {
	raw := make([]byte, 14+42)
	raw[8] = byte(nodeKindHeader)
	binary.BigEndian.PutUint16(raw[10:12], 2)
	if _, _, err := bootstrapHeaderNode(raw); err == nil {
		t.Fatal("expected an error when node 0 does not carry exactly 3 records")
	}
}
