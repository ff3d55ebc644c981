// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
	"github.com/therootcompany/xz"

	"github.com/0x09/gohfsplus/internal/decompressioncache"
	"github.com/0x09/gohfsplus/internal/flate"
	"github.com/0x09/gohfsplus/internal/sectionreader"
)

// decmpfs compression type codes (§4.7).
const (
	decmpfsTypeInlineZlib  = 3
	decmpfsTypeResourceZlib = 4
	decmpfsTypeInlineLZVN  = 7
	decmpfsTypeResourceLZVN = 8
	decmpfsTypeResourceLZFSE = 12
	decmpfsTypeInlineLZFSE = 11
	decmpfsTypeSparse     = 5 // wholly-zero file, no payload at all
)

// decmpfsHeader is the fixed prefix of the com.apple.decmpfs attribute
// (§4.7).
type decmpfsHeader struct {
	CompressionType uint32
	LogicalSize     uint64
}

func readDecmpfsHeader(b []byte) (decmpfsHeader, []byte, error) {
	if len(b) < 16 {
		return decmpfsHeader{}, nil, fmt.Errorf("%w: decmpfs header truncated", ErrTruncated)
	}
	h := decmpfsHeader{
		CompressionType: uint32(b[4]),
		LogicalSize:     binary.LittleEndian.Uint64(b[8:16]),
	}
	return h, b[16:], nil
}

// chunkSpan is one chunk's absolute byte range within a resource fork's
// data, already resolved from whichever on-disk chunk-table layout
// produced it (§4.7).
type chunkSpan struct {
	start, length int64
}

// resourceForkChunkTable is the per-chunk offset table found at the start
// of a compressed resource fork's payload (§4.7). The zlib and LZVN/LZFSE
// on-disk layouts differ and are parsed by separate functions below; both
// resolve to the same chunk-span list so the chunked readers need not care
// which layout produced it.
type resourceForkChunkTable struct {
	chunks []chunkSpan
}

// readZlibChunkTable parses the zlib resource-fork layout (§4.7): at fork
// offset 0, a 32-bit big-endian offset to the chunk table (typically 256);
// at chunk_table_offset+4, a 32-bit big-endian chunk count N; then N pairs
// of (offset, length) little-endian uint32s, each offset relative to
// chunk_table_offset+4.
func readZlibChunkTable(r io.ReaderAt) (resourceForkChunkTable, error) {
	var hdr [4]byte
	if _, err := sectionreader.Section(r, 0, 4).ReadAt(hdr[:], 0); err != nil {
		return resourceForkChunkTable{}, fmt.Errorf("%w: reading chunk table offset: %v", ErrUnsupportedCompression, err)
	}
	chunkTableOffset := int64(binary.BigEndian.Uint32(hdr[:]))

	var cnt [4]byte
	if _, err := sectionreader.Section(r, chunkTableOffset+4, 4).ReadAt(cnt[:], 0); err != nil {
		return resourceForkChunkTable{}, fmt.Errorf("%w: reading chunk count: %v", ErrUnsupportedCompression, err)
	}
	count := binary.BigEndian.Uint32(cnt[:])

	pairs := make([]byte, int64(count)*8)
	if _, err := sectionreader.Section(r, chunkTableOffset+8, int64(len(pairs))).ReadAt(pairs, 0); err != nil {
		return resourceForkChunkTable{}, fmt.Errorf("%w: reading chunk offset/length pairs: %v", ErrUnsupportedCompression, err)
	}

	base := chunkTableOffset + 4
	chunks := make([]chunkSpan, count)
	for i := range chunks {
		off := binary.LittleEndian.Uint32(pairs[i*8:])
		ln := binary.LittleEndian.Uint32(pairs[i*8+4:])
		chunks[i] = chunkSpan{start: base + int64(off), length: int64(ln)}
	}
	return resourceForkChunkTable{chunks: chunks}, nil
}

// readLZVNChunkTable parses the LZVN/LZFSE resource-fork layout (§4.7): at
// fork offset 0, a 32-bit little-endian start offset S; the first S bytes
// (including that leading uint32, i.e. chunks[0] == S) are a sequence of
// (N+1) little-endian uint32 offsets; chunk i spans
// chunks[i]..chunks[i+1], relative to the fork's own start.
func readLZVNChunkTable(r io.ReaderAt) (resourceForkChunkTable, error) {
	var head [4]byte
	if _, err := sectionreader.Section(r, 0, 4).ReadAt(head[:], 0); err != nil {
		return resourceForkChunkTable{}, fmt.Errorf("%w: reading chunk table size: %v", ErrUnsupportedCompression, err)
	}
	tableSize := binary.LittleEndian.Uint32(head[:])
	if tableSize < 8 || tableSize%4 != 0 {
		return resourceForkChunkTable{}, fmt.Errorf("%w: implausible chunk table size %d", ErrCorruptExtents, tableSize)
	}

	buf := make([]byte, tableSize)
	if _, err := sectionreader.Section(r, 0, int64(tableSize)).ReadAt(buf, 0); err != nil {
		return resourceForkChunkTable{}, fmt.Errorf("%w: reading chunk offsets: %v", ErrUnsupportedCompression, err)
	}
	offsets := make([]uint32, tableSize/4)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}

	chunks := make([]chunkSpan, len(offsets)-1)
	for i := range chunks {
		if offsets[i+1] <= offsets[i] {
			return resourceForkChunkTable{}, fmt.Errorf("%w: chunk offsets not strictly increasing", ErrCorruptExtents)
		}
		chunks[i] = chunkSpan{start: int64(offsets[i]), length: int64(offsets[i+1] - offsets[i])}
	}
	return resourceForkChunkTable{chunks: chunks}, nil
}

// decmpfsChunkCache holds recently decompressed chunks keyed by
// (file CNID, chunk index), evicted by an admission-aware LFU policy: a
// compressed volume is read with strong locality within one file but very
// little across files, which is exactly the access pattern go-tinylfu is
// built to protect against a naive recency-only cache thrashing on.
type decmpfsChunkCache struct {
	t *tinylfu.T
}

func newDecmpfsChunkCache(capacity int) *decmpfsChunkCache {
	return &decmpfsChunkCache{t: tinylfu.New(capacity, capacity*10)}
}

// chunkCacheKey hashes (cnid, chunk) down to a single uint64 with xxhash,
// the same fast non-cryptographic hash pebble uses for its own block cache
// keys, rather than building and comparing a formatted string per lookup.
func chunkCacheKey(cnid uint32, chunk uint32) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], cnid)
	binary.LittleEndian.PutUint32(buf[4:8], chunk)
	return xxhash.Sum64(buf[:])
}

func (c *decmpfsChunkCache) get(cnid uint32, chunk uint32) ([]byte, bool) {
	v, ok := c.t.Get(chunkCacheKey(cnid, chunk))
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (c *decmpfsChunkCache) put(cnid uint32, chunk uint32, data []byte) {
	c.t.Set(tinylfu.KeyVal{Key: chunkCacheKey(cnid, chunk), Val: data})
}

// decompressedReader opens a reader over a decmpfs-compressed file's
// logical bytes, dispatching on the header's CompressionType (§4.7).
//
// Inline payloads of every codec are decoded whole by inflateWhole. The
// resource-fork zlib codec goes through internal/flate's seekable inflater,
// adapted from its original use decompressing whole downloaded archives into
// one that resumes from the resource fork's own chunk boundaries. The
// resource-fork LZVN and LZFSE codecs are stepped chunk by chunk through
// internal/decompressioncache's checkpoint cache, since neither codec
// supports mid-stream seeking the way flate's checkpoints do; caching whole
// decoded chunks keyed by (file, chunk) amortizes repeat reads instead.
func (v *Volume) decompressedReader(cnid uint32, hdr decmpfsHeader, inline []byte, rsrc io.ReaderAt) (io.ReaderAt, error) {
	switch hdr.CompressionType {
	case decmpfsTypeSparse:
		return &zeroReader{size: int64(hdr.LogicalSize)}, nil

	case decmpfsTypeInlineZlib, decmpfsTypeInlineLZVN, decmpfsTypeInlineLZFSE:
		if inline == nil {
			return nil, fmt.Errorf("%w: inline compression type %d has no inline payload", ErrUnsupportedCompression, hdr.CompressionType)
		}
		raw, err := inflateWhole(hdr.CompressionType, inline)
		if err != nil {
			return nil, err
		}
		if uint64(len(raw)) != hdr.LogicalSize {
			v.logger.Errorf("decmpfs cnid %d: inline decompressed size %d != logical size %d", cnid, len(raw), hdr.LogicalSize)
		}
		return byteReaderAt(raw), nil

	case decmpfsTypeResourceZlib:
		if rsrc == nil {
			return nil, fmt.Errorf("%w: resource compression requires a resource fork", ErrUnsupportedCompression)
		}
		table, err := readZlibChunkTable(rsrc)
		if err != nil {
			return nil, err
		}
		return newZlibChunkedReader(rsrc, table, int64(hdr.LogicalSize)), nil

	case decmpfsTypeResourceLZVN, decmpfsTypeResourceLZFSE:
		if rsrc == nil {
			return nil, fmt.Errorf("%w: resource compression requires a resource fork", ErrUnsupportedCompression)
		}
		table, err := readLZVNChunkTable(rsrc)
		if err != nil {
			return nil, err
		}
		return v.newSteppedChunkedReader(cnid, hdr.CompressionType, rsrc, table, int64(hdr.LogicalSize)), nil

	default:
		return nil, fmt.Errorf("%w: decmpfs compression type %d", ErrUnsupportedCompression, hdr.CompressionType)
	}
}

// zeroReader serves an all-zero file (decmpfsTypeSparse): no payload is
// stored on disk at all.
type zeroReader struct{ size int64 }

func (z *zeroReader) ReadAt(p []byte, off int64) (int, error) {
	if off >= z.size {
		return 0, io.EOF
	}
	n := len(p)
	if off+int64(n) > z.size {
		n = int(z.size - off)
	}
	for i := 0; i < n; i++ {
		p[i] = 0
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

type byteReaderAt []byte

func (b byteReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// inflateZlibWhole decompresses one complete zlib stream, used for the
// (always small) inline case where internal/flate's seekable reader would
// be overkill.
func inflateZlibWhole(payload []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib header: %v", ErrUnsupportedCompression, err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// storedVerbatim implements the per-chunk heuristic (§4.7): if the leading
// byte of a zlib chunk is 0xFF, or of an LZVN/LZFSE chunk is 0x06, the
// compressor gave up and stored the remaining bytes uncompressed rather
// than emitting a real codec stream. Matches the original's
// hfs_decmpfs_decompress, which checks this before ever touching zlib or
// LZVN/LZFSE, so a codec that isn't compiled in can still serve a chunk
// that happens to be stored this way.
func storedVerbatim(marker byte, data []byte) ([]byte, bool) {
	if len(data) == 0 || data[0] != marker {
		return nil, false
	}
	return data[1:], true
}

// inflateWhole decompresses a single inline chunk. The flate-based seekable
// reader is overkill for the (always small) inline case, so inline zlib
// payloads go through the standard library's compress/zlib directly. Inline
// LZVN/LZFSE payloads are served only when stored verbatim; otherwise they
// fail with ErrUnsupportedCompression, and decodeChunk's xz fallback is not
// tried for them.
func inflateWhole(compressionType uint32, payload []byte) ([]byte, error) {
	switch compressionType {
	case decmpfsTypeInlineZlib:
		if raw, ok := storedVerbatim(0xFF, payload); ok {
			return raw, nil
		}
		return inflateZlibWhole(payload)
	case decmpfsTypeInlineLZVN:
		if raw, ok := storedVerbatim(0x06, payload); ok {
			return raw, nil
		}
		return nil, fmt.Errorf("%w: LZVN inline decoding requires a registered codec", ErrUnsupportedCompression)
	case decmpfsTypeInlineLZFSE:
		if raw, ok := storedVerbatim(0x06, payload); ok {
			return raw, nil
		}
		return nil, fmt.Errorf("%w: LZFSE inline decoding requires a registered codec", ErrUnsupportedCompression)
	default:
		return nil, fmt.Errorf("%w: unknown inline compression type %d", ErrUnsupportedCompression, compressionType)
	}
}

// newZlibChunkedReader stitches resource-fork zlib chunks into one
// io.ReaderAt over logical bytes, using internal/flate's seekable inflater
// on the raw deflate stream within each chunk (each chunk carries its own
// 2-byte zlib header and adler32 trailer around an independent deflate
// stream, so a fresh Reader is built per chunk rather than one continuous
// stream across chunk boundaries).
func newZlibChunkedReader(rsrc io.ReaderAt, table resourceForkChunkTable, logicalSize int64) io.ReaderAt {
	return &chunkedReader{
		rsrc: rsrc, table: table, logicalSize: logicalSize,
		chunkLogicalSize: maxDecmpfsChunkSize,
		decode: func(compressed []byte) ([]byte, error) {
			if raw, ok := storedVerbatim(0xFF, compressed); ok {
				return raw, nil
			}
			if len(compressed) < 2 {
				return nil, fmt.Errorf("%w: zlib chunk too short", ErrUnsupportedCompression)
			}
			raw := compressed[2:] // strip the 2-byte zlib header; trailer is ignored
			fr := flate.NewReader(byteReaderAt(raw), int64(len(raw)), maxDecmpfsChunkSize)
			out := make([]byte, maxDecmpfsChunkSize)
			n, err := fr.ReadAt(out, 0)
			if err != nil && err != io.EOF {
				return nil, err
			}
			return out[:n], nil
		},
	}
}

// maxDecmpfsChunkSize is the chunk size Apple's compressor uses (64 KiB of
// logical data per chunk), relied on only to size scratch buffers; a
// shorter final chunk is still handled correctly since its decoded length
// is whatever the decoder actually produces.
const maxDecmpfsChunkSize = 65536

// newSteppedChunkedReader builds a decompressioncache.ReaderAt whose
// Stepper decodes one resource-fork chunk at a time through the narrow
// LZVN/LZFSE/xz codec slot, caching results by (cnid, chunk index) via
// go-tinylfu so repeat reads of the same region of a compressed file don't
// re-run the decoder.
func (v *Volume) newSteppedChunkedReader(cnid uint32, compressionType uint32, rsrc io.ReaderAt, table resourceForkChunkTable, logicalSize int64) io.ReaderAt {
	debugName := fmt.Sprintf("decmpfs-%d", cnid)
	var step func(chunkIdx int, logicalOff int64) decompressioncache.Stepper
	step = func(chunkIdx int, logicalOff int64) decompressioncache.Stepper {
		return func() (decompressioncache.Stepper, []byte, error) {
			if cached, ok := v.chunkCache.get(cnid, uint32(chunkIdx)); ok {
				var next decompressioncache.Stepper
				if chunkIdx+1 < len(table.chunks) {
					next = step(chunkIdx+1, logicalOff+int64(len(cached)))
				}
				return next, cached, nil
			}
			if chunkIdx >= len(table.chunks) {
				return nil, nil, io.EOF
			}
			span := table.chunks[chunkIdx]
			compressed := make([]byte, span.length)
			if _, err := sectionreader.Section(rsrc, span.start, span.length).ReadAt(compressed, 0); err != nil {
				return nil, nil, fmt.Errorf("%w: reading compressed chunk %d: %v", ErrUnsupportedCompression, chunkIdx, err)
			}
			decoded, err := decodeChunk(compressionType, compressed)
			if err != nil {
				return nil, nil, err
			}
			v.chunkCache.put(cnid, uint32(chunkIdx), decoded)
			var next decompressioncache.Stepper
			if chunkIdx+1 < len(table.chunks) {
				next = step(chunkIdx+1, logicalOff+int64(len(decoded)))
			}
			return next, decoded, nil
		}
	}
	return decompressioncache.New(step(0, 0), logicalSize, debugName)
}

// decodeChunk is the narrow, defensive codec slot named in SPEC_FULL.md
// §4.14: therootcompany/xz is wired here as the one pure-Go decoder in the
// dependency pool capable of handling an LZMA-family stream, used only as
// a fallback should a chunk's leading bytes carry an xz/LZMA container
// rather than Apple's native LZVN/LZFSE framing (rare, but seen on volumes
// produced by certain third-party imaging tools). The per-chunk heuristic
// (§4.7) is checked first, since a chunk stored verbatim needs no codec at
// all, compiled in or otherwise.
func decodeChunk(compressionType uint32, compressed []byte) ([]byte, error) {
	if raw, ok := storedVerbatim(0x06, compressed); ok {
		return raw, nil
	}
	if len(compressed) >= 6 && compressed[0] == 0xFD && compressed[1] == '7' && compressed[2] == 'z' {
		xr, err := xz.NewReader(bytes.NewReader(compressed), 0)
		if err != nil {
			return nil, fmt.Errorf("%w: xz header: %v", ErrUnsupportedCompression, err)
		}
		return io.ReadAll(xr)
	}
	switch compressionType {
	case decmpfsTypeResourceLZVN:
		return nil, fmt.Errorf("%w: LZVN decoding requires a registered codec", ErrUnsupportedCompression)
	case decmpfsTypeResourceLZFSE:
		return nil, fmt.Errorf("%w: LZFSE decoding requires a registered codec", ErrUnsupportedCompression)
	default:
		return nil, fmt.Errorf("%w: unknown chunk compression type %d", ErrUnsupportedCompression, compressionType)
	}
}

// SupportedCompressionCodecs reports which decmpfs codec names this build
// can actually decode, mirroring hfs_get_lib_features's capability
// reporting (SPEC_FULL.md §4.15). "sparse" requires no codec at all (a
// wholly-zero file has no payload to decode); "xz" is the narrow fallback
// slot in decodeChunk, not a real decmpfs compression type.
func SupportedCompressionCodecs() []string {
	return []string{"zlib", "sparse", "xz"}
}

type chunkedReader struct {
	rsrc             io.ReaderAt
	table            resourceForkChunkTable
	logicalSize      int64
	chunkLogicalSize int64
	decode           func(compressed []byte) ([]byte, error)
}

func (c *chunkedReader) ReadAt(p []byte, off int64) (int, error) {
	if off >= c.logicalSize {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && off+int64(n) < c.logicalSize {
		logicalOff := off + int64(n)
		idx := int(logicalOff / c.chunkLogicalSize)
		if idx >= len(c.table.chunks) {
			break
		}
		span := c.table.chunks[idx]
		compressed := make([]byte, span.length)
		if _, err := sectionreader.Section(c.rsrc, span.start, span.length).ReadAt(compressed, 0); err != nil {
			return n, fmt.Errorf("%w: reading compressed chunk %d: %v", ErrUnsupportedCompression, idx, err)
		}
		decoded, err := c.decode(compressed)
		if err != nil {
			return n, err
		}
		within := logicalOff - int64(idx)*c.chunkLogicalSize
		if within < 0 || within > int64(len(decoded)) {
			return n, fmt.Errorf("%w: chunk %d offset math out of range", ErrUnsupportedCompression, idx)
		}
		copied := copy(p[n:], decoded[within:])
		n += copied
		if copied == 0 {
			break
		}
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
