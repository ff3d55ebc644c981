// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"fmt"
	"io"
)

// bootstrapNodeSize is the smallest legal B-tree node size and therefore
// always enough to read node 0's 14-byte descriptor plus its header record,
// regardless of the tree's real node size (§4.11 step 5).
const bootstrapNodeSize = 512

// Volume is the low-level decoder over one mounted HFS+/HFSX volume: device
// access, both system B-trees, and the comparator the volume was built
// with (§4.11). The root package's public filesystem type wraps this.
type Volume struct {
	dev       io.ReaderAt
	blockSize uint32
	header    VolumeHeader
	isHFSX    bool

	comparatorIsCaseFold bool

	extentsInfo  btreeInfo
	extentsNodes *nodeReader

	catalogInfo  btreeInfo
	catalogNodes *nodeReader

	attributesInfo  btreeInfo
	attributesNodes *nodeReader
	hasAttributes   bool

	chunkCache *decmpfsChunkCache
	pathCache  *pathCache

	disableSymlinks bool

	logger Logger
}

// DisableSymlinks reports whether this volume was opened with
// Options.DisableSymlinks set, so the root package can fold S_IFLNK modes
// down to regular files at the fs.FileInfo boundary.
func (v *Volume) DisableSymlinks() bool { return v.disableSymlinks }

// defaultPathCacheSize mirrors the original's default cache ring length.
const defaultPathCacheSize = 128

// decmpfsChunkCacheCapacity bounds how many decoded decmpfs chunks (each up
// to maxDecmpfsChunkSize bytes) are kept resident across all open files.
const decmpfsChunkCacheCapacity = 4096

// Open parses the volume header (chasing an HFS wrapper if present) and
// bootstraps both system B-trees (§4.11).
func Open(dev io.ReaderAt, opts Options) (*Volume, error) {
	pathCacheSize := opts.PathCacheSize
	if pathCacheSize <= 0 {
		pathCacheSize = defaultPathCacheSize
	}
	cacheCapacity := decmpfsChunkCacheCapacity
	v := &Volume{
		dev:             dev,
		logger:          orDiscard(opts.Logger),
		chunkCache:      newDecmpfsChunkCache(cacheCapacity),
		pathCache:       newPathCache(pathCacheSize),
		disableSymlinks: opts.DisableSymlinks,
	}

	headerOff, err := resolveVolumeHeaderOffset(dev)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 512)
	if _, err := io.ReadFull(io.NewSectionReader(dev, headerOff, 512), buf); err != nil {
		return nil, fmt.Errorf("%w: reading volume header: %v", ErrCorruptNode, err)
	}
	h, err := readVolumeHeader(buf)
	if err != nil {
		return nil, err
	}
	switch h.Signature {
	case sigHFSPlus:
		v.isHFSX = false
	case sigHFSX:
		v.isHFSX = true
	default:
		return nil, fmt.Errorf("%w: unrecognized volume signature %#04x", ErrUnsupported, h.Signature)
	}
	v.header = h
	v.blockSize = h.BlockSize

	if err := v.bootstrapTree(CNIDExtentsFile, h.ExtentsFile, &v.extentsInfo, &v.extentsNodes); err != nil {
		return nil, fmt.Errorf("bootstrapping extents overflow tree: %w", err)
	}
	if err := v.bootstrapTree(CNIDCatalogFile, h.CatalogFile, &v.catalogInfo, &v.catalogNodes); err != nil {
		return nil, fmt.Errorf("bootstrapping catalog tree: %w", err)
	}
	v.comparatorIsCaseFold = !v.catalogInfo.binaryCompare

	if h.AttributesFile.TotalBlocks > 0 {
		if err := v.bootstrapTree(CNIDAttributesFile, h.AttributesFile, &v.attributesInfo, &v.attributesNodes); err != nil {
			v.logger.Errorf("attributes tree unreadable, xattrs disabled: %v", err)
		} else {
			v.hasAttributes = true
		}
	}

	if h.Attributes&VolumeAttrJournaled != 0 && h.JournalInfoBlock != 0 {
		v.checkJournalClean()
	}

	return v, nil
}

// resolveVolumeHeaderOffset returns the byte offset of the HFS+ volume
// header, chasing a wrapping plain-HFS MDB's embedded-volume pointer when
// the bytes at the canonical 1024 offset are not an H+/HX signature
// (§4.11 step 3, §1 Non-goals: the wrapper itself is never mounted).
func resolveVolumeHeaderOffset(dev io.ReaderAt) (int64, error) {
	buf := make([]byte, 512)
	if _, err := io.ReadFull(io.NewSectionReader(dev, 1024, 512), buf); err != nil {
		return 0, fmt.Errorf("%w: reading candidate volume header: %v", ErrCorruptNode, err)
	}
	sig, ok := peekU16At(buf, 0)
	if !ok {
		return 0, ErrTruncated
	}
	if sig == sigHFSPlus || sig == sigHFSX {
		return 1024, nil
	}
	if sig != sigPlainHFS {
		return 0, fmt.Errorf("%w: unrecognized signature %#04x at offset 1024", ErrUnsupported, sig)
	}
	mdb, err := readMDB(buf)
	if err != nil {
		return 0, err
	}
	if mdb.EmbeddedSignature != sigHFSPlus && mdb.EmbeddedSignature != sigHFSX {
		return 0, fmt.Errorf("%w: plain HFS volume has no embedded HFS+ wrapper", ErrUnsupported)
	}
	// Embedded volumes live on 512-byte-aligned allocation blocks counted
	// from the MDB's own block size, offset by first_block (alBlSt).
	blockStart := int64(mdb.FirstBlock) + int64(mdb.EmbeddedExtent.StartBlock)*int64(mdb.BlockSize)/512
	return blockStart*512 + 1024, nil
}

// bootstrapTree reads node 0 of the fork described by fd, learns its real
// node size and key width from the header record, then rebuilds the node
// reader at that node size so ordinary descent can proceed (§4.11 steps
// 5-6). For the extents-overflow tree itself the fork's inline extents are
// assumed sufficient: the overflow tree cannot describe its own overflow.
func (v *Volume) bootstrapTree(cnid uint32, fd ForkData, info *btreeInfo, nr **nodeReader) error {
	extents := nonZeroExtents(fd.Extents)
	boot := newForkReader(v.dev, v.blockSize, extents, fd.LogicalSize)

	raw := make([]byte, bootstrapNodeSize)
	if _, err := boot.ReadAt(raw, 0); err != nil {
		return fmt.Errorf("reading bootstrap node: %w", err)
	}
	_, hr, err := bootstrapHeaderNode(raw)
	if err != nil {
		return err
	}

	info.nodeSize = hr.NodeSize
	info.bigKeys = hr.Attributes&bigKeysMask != 0
	info.rootNode = hr.RootNode
	info.firstLeaf = hr.FirstLeaf
	info.lastLeaf = hr.LastLeaf
	info.binaryCompare = hr.KeyCompare == 0xBC

	var fullExtents []Extent
	if cnid == CNIDExtentsFile {
		fullExtents = extents
	} else {
		fullExtents, err = v.resolveExtents(cnid, ForkTypeData, fd)
		if err != nil {
			return err
		}
	}
	fr := newForkReader(v.dev, v.blockSize, fullExtents, fd.LogicalSize)
	*nr = &nodeReader{fr: fr, nodeSize: info.nodeSize}
	return nil
}

func nonZeroExtents(rec ExtentRecord) []Extent {
	out := make([]Extent, 0, len(rec))
	for _, e := range rec {
		if e.BlockCount == 0 {
			break
		}
		out = append(out, e)
	}
	return out
}

// checkJournalClean logs, but never acts on, an unclean journal: replay is
// out of scope (§9 Open Question), so a dirty journal only downgrades
// confidence in data recently written before an unclean shutdown.
func (v *Volume) checkJournalClean() {
	buf := make([]byte, 180)
	if _, err := io.ReadFull(io.NewSectionReader(v.dev, int64(v.header.JournalInfoBlock)*int64(v.blockSize), int64(len(buf))), buf); err != nil {
		v.logger.Errorf("reading journal info block: %v", err)
		return
	}
	ji, err := readJournalInfo(buf)
	if err != nil {
		v.logger.Errorf("parsing journal info block: %v", err)
		return
	}
	jhBuf := make([]byte, 32)
	if _, err := io.ReadFull(io.NewSectionReader(v.dev, int64(ji.Offset), int64(len(jhBuf))), jhBuf); err != nil {
		v.logger.Errorf("reading journal header: %v", err)
		return
	}
	jh, err := readJournalHeader(jhBuf)
	if err != nil {
		v.logger.Errorf("parsing journal header: %v", err)
		return
	}
	if !jh.isClean() {
		v.logger.Infof("journal is not clean (start=%d end=%d); mounting read-only without replay", jh.Start, jh.End)
	}
}

// RootFolderCNID is the catalog node ID of the volume's root folder.
func (v *Volume) RootFolderCNID() uint32 { return CNIDRootFolder }

// LookupChild resolves one path element within parent by catalog lookup.
func (v *Volume) LookupChild(parent uint32, name UnicodeName) (CatalogRecord, bool, error) {
	return v.searchCatalog(CatalogKey{ParentCNID: parent, Name: name})
}

// LookupThread resolves a folder or file's (parent, name) via its thread
// record, keyed by (cnid, empty name) (§4.9 step: hard-link target
// resolution and path-for-CNID both need this).
func (v *Volume) LookupThread(cnid uint32) (ThreadRec, bool, error) {
	rec, found, err := v.searchCatalog(CatalogKey{ParentCNID: cnid, Name: UnicodeName{}})
	if err != nil || !found {
		return ThreadRec{}, false, err
	}
	if rec.Type != RecFolderThread && rec.Type != RecFileThread {
		return ThreadRec{}, false, nil
	}
	return rec.Thread, true, nil
}

// OpenFork returns a reader over a file's data or resource fork bytes.
func (v *Volume) OpenFork(cnid uint32, fork ForkType, fd ForkData) (io.ReaderAt, error) {
	extents, err := v.resolveExtents(cnid, fork, fd)
	if err != nil {
		return nil, err
	}
	return newForkReader(v.dev, v.blockSize, extents, fd.LogicalSize), nil
}
