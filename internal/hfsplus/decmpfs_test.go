// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

// buildZlibResourceFork lays out a resource fork in the zlib chunk-table
// layout (§4.7): a big-endian offset to the chunk table at offset 0, a
// big-endian count at chunk_table_offset+4, then little-endian
// (offset,length) pairs relative to chunk_table_offset+4, followed by the
// chunk payloads themselves at those offsets.
func buildZlibResourceFork(chunkTableOffset int64, chunks [][]byte) []byte {
	var payload bytes.Buffer
	type pair struct{ off, ln uint32 }
	pairs := make([]pair, len(chunks))
	// Offsets are relative to chunk_table_offset+4, and the payload begins
	// after the count field (4 bytes) and the pair table itself.
	payloadBase := uint32(4 + 8*len(chunks))
	for i, c := range chunks {
		pairs[i] = pair{off: payloadBase + uint32(payload.Len()), ln: uint32(len(c))}
		payload.Write(c)
	}

	buf := make([]byte, chunkTableOffset)
	binary.BigEndian.PutUint32(buf[0:4], uint32(chunkTableOffset))
	buf = append(buf, make([]byte, 4)...) // unused field at chunk_table_offset
	buf = append(buf, make([]byte, 4)...)
	binary.BigEndian.PutUint32(buf[chunkTableOffset+4:], uint32(len(pairs)))
	for _, p := range pairs {
		var rec [8]byte
		binary.LittleEndian.PutUint32(rec[0:4], p.off)
		binary.LittleEndian.PutUint32(rec[4:8], p.ln)
		buf = append(buf, rec[:]...)
	}
	buf = append(buf, payload.Bytes()...)
	return buf
}

func TestReadZlibChunkTable(t *testing.T) {
	chunks := [][]byte{[]byte("first-chunk"), []byte("second"), []byte("third-chunk-data")}
	fork := buildZlibResourceFork(256, chunks)

	table, err := readZlibChunkTable(bytes.NewReader(fork))
	if err != nil {
		t.Fatalf("readZlibChunkTable: %v", err)
	}
	if len(table.chunks) != len(chunks) {
		t.Fatalf("got %d chunks, want %d", len(table.chunks), len(chunks))
	}
	base := int64(256) + 4
	for i, c := range chunks {
		got := make([]byte, table.chunks[i].length)
		if _, err := bytes.NewReader(fork).ReadAt(got, table.chunks[i].start); err != nil {
			t.Fatalf("chunk %d: reading at resolved span: %v", i, err)
		}
		if string(got) != string(c) {
			t.Fatalf("chunk %d: got %q, want %q", i, got, c)
		}
		if table.chunks[i].start < base {
			t.Fatalf("chunk %d: start %d before table base %d", i, table.chunks[i].start, base)
		}
	}
}

// buildLZVNResourceFork lays out a resource fork in the LZVN/LZFSE chunk
// table layout (§4.7): a little-endian offset table spanning [0,S), where S
// itself is chunks[0], followed directly by the chunk payloads.
func buildLZVNResourceFork(chunks [][]byte) []byte {
	offsets := make([]uint32, len(chunks)+1)
	tableSize := uint32((len(chunks) + 1) * 4)
	offsets[0] = tableSize
	for i, c := range chunks {
		offsets[i+1] = offsets[i] + uint32(len(c))
	}

	buf := make([]byte, tableSize)
	for i, o := range offsets {
		binary.LittleEndian.PutUint32(buf[i*4:], o)
	}
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	return buf
}

func TestReadLZVNChunkTable(t *testing.T) {
	chunks := [][]byte{[]byte("alpha-bytes"), []byte("beta"), []byte("gamma-gamma")}
	fork := buildLZVNResourceFork(chunks)

	table, err := readLZVNChunkTable(bytes.NewReader(fork))
	if err != nil {
		t.Fatalf("readLZVNChunkTable: %v", err)
	}
	if len(table.chunks) != len(chunks) {
		t.Fatalf("got %d chunks, want %d", len(table.chunks), len(chunks))
	}
	for i, c := range chunks {
		got := make([]byte, table.chunks[i].length)
		if _, err := bytes.NewReader(fork).ReadAt(got, table.chunks[i].start); err != nil {
			t.Fatalf("chunk %d: reading at resolved span: %v", i, err)
		}
		if string(got) != string(c) {
			t.Fatalf("chunk %d: got %q, want %q", i, got, c)
		}
	}
}

func TestReadLZVNChunkTableRejectsNonMonotonicOffsets(t *testing.T) {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint32(buf[0:4], 12)
	binary.LittleEndian.PutUint32(buf[4:8], 20)
	binary.LittleEndian.PutUint32(buf[8:12], 15) // decreases: corrupt
	_, err := readLZVNChunkTable(bytes.NewReader(buf))
	if !errors.Is(err, ErrCorruptExtents) {
		t.Fatalf("got err=%v, want ErrCorruptExtents", err)
	}
}

func TestStoredVerbatim(t *testing.T) {
	raw, ok := storedVerbatim(0xFF, append([]byte{0xFF}, []byte("plain bytes")...))
	if !ok || string(raw) != "plain bytes" {
		t.Fatalf("storedVerbatim(zlib marker) = %q, %v", raw, ok)
	}

	raw, ok = storedVerbatim(0x06, append([]byte{0x06}, []byte("other bytes")...))
	if !ok || string(raw) != "other bytes" {
		t.Fatalf("storedVerbatim(lzvn marker) = %q, %v", raw, ok)
	}

	if _, ok := storedVerbatim(0xFF, []byte{0x78, 0x9c}); ok {
		t.Fatalf("storedVerbatim matched a non-marker payload")
	}
	if _, ok := storedVerbatim(0xFF, nil); ok {
		t.Fatalf("storedVerbatim matched an empty payload")
	}
}

func zlibCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("zlib.Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zlib.Close: %v", err)
	}
	return buf.Bytes()
}

func TestInflateWholeInlineZlibCompressed(t *testing.T) {
	want := strings.Repeat("hello decmpfs ", 8)
	got, err := inflateWhole(decmpfsTypeInlineZlib, zlibCompress(t, []byte(want)))
	if err != nil {
		t.Fatalf("inflateWhole: %v", err)
	}
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInflateWholeInlineZlibStoredVerbatim(t *testing.T) {
	want := "not actually compressed"
	payload := append([]byte{0xFF}, []byte(want)...)
	got, err := inflateWhole(decmpfsTypeInlineZlib, payload)
	if err != nil {
		t.Fatalf("inflateWhole: %v", err)
	}
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInflateWholeInlineLZVNStoredVerbatim(t *testing.T) {
	want := "raw lzvn passthrough"
	payload := append([]byte{0x06}, []byte(want)...)
	got, err := inflateWhole(decmpfsTypeInlineLZVN, payload)
	if err != nil {
		t.Fatalf("inflateWhole: %v", err)
	}
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInflateWholeInlineLZVNUnsupportedCodec(t *testing.T) {
	_, err := inflateWhole(decmpfsTypeInlineLZVN, []byte{0x01, 0x02, 0x03})
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("got err=%v, want ErrUnsupportedCompression", err)
	}
}

func TestInflateWholeInlineLZFSEStoredVerbatim(t *testing.T) {
	want := "raw lzfse passthrough"
	payload := append([]byte{0x06}, []byte(want)...)
	got, err := inflateWhole(decmpfsTypeInlineLZFSE, payload)
	if err != nil {
		t.Fatalf("inflateWhole: %v", err)
	}
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeChunkStoredVerbatim(t *testing.T) {
	want := "chunk stored uncompressed"
	payload := append([]byte{0x06}, []byte(want)...)
	got, err := decodeChunk(decmpfsTypeResourceLZVN, payload)
	if err != nil {
		t.Fatalf("decodeChunk: %v", err)
	}
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeChunkUnsupportedLZVN(t *testing.T) {
	_, err := decodeChunk(decmpfsTypeResourceLZVN, []byte{0x01, 0x02, 0x03, 0x04})
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("got err=%v, want ErrUnsupportedCompression", err)
	}
}

func TestDecodeChunkUnsupportedLZFSE(t *testing.T) {
	_, err := decodeChunk(decmpfsTypeResourceLZFSE, []byte{0x01, 0x02, 0x03, 0x04})
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("got err=%v, want ErrUnsupportedCompression", err)
	}
}

func TestNewZlibChunkedReaderReadsAcrossChunks(t *testing.T) {
	logical := []string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}
	var compressedChunks [][]byte
	for _, s := range logical {
		compressedChunks = append(compressedChunks, zlibCompress(t, []byte(s)))
	}
	fork := buildZlibResourceFork(256, compressedChunks)
	table, err := readZlibChunkTable(bytes.NewReader(fork))
	if err != nil {
		t.Fatalf("readZlibChunkTable: %v", err)
	}

	logicalSize := int64(len(logical) * 10)
	cr := &chunkedReader{
		rsrc: bytes.NewReader(fork), table: table, logicalSize: logicalSize,
		chunkLogicalSize: 10,
		decode: func(compressed []byte) ([]byte, error) {
			if raw, ok := storedVerbatim(0xFF, compressed); ok {
				return raw, nil
			}
			return inflateZlibWhole(compressed)
		},
	}

	buf := make([]byte, logicalSize)
	n, err := cr.ReadAt(buf, 0)
	if err != nil || int64(n) != logicalSize {
		t.Fatalf("ReadAt: n=%d err=%v", n, err)
	}
	if string(buf) != strings.Join(logical, "") {
		t.Fatalf("got %q", buf)
	}
}

func TestNewZlibChunkedReaderStoredVerbatimChunk(t *testing.T) {
	verbatim := append([]byte{0xFF}, []byte("literal-chunk-12")...) // 16 bytes logical
	compressed := zlibCompress(t, []byte("second-chunk1234"))       // 16 bytes logical
	fork := buildZlibResourceFork(256, [][]byte{verbatim, compressed})
	table, err := readZlibChunkTable(bytes.NewReader(fork))
	if err != nil {
		t.Fatalf("readZlibChunkTable: %v", err)
	}

	cr := newZlibChunkedReader(bytes.NewReader(fork), table, 32).(*chunkedReader)
	cr.chunkLogicalSize = 16

	buf := make([]byte, 32)
	n, err := cr.ReadAt(buf, 0)
	if err != nil || n != 32 {
		t.Fatalf("ReadAt: n=%d err=%v", n, err)
	}
	if string(buf) != "literal-chunk-12second-chunk1234" {
		t.Fatalf("got %q", buf)
	}
}
