// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

// On-disk struct parsers (§4.3). Each parser takes a byte region and
// returns a filled record, or a truncation/range error; none of them
// allocate beyond the returned record itself.

const (
	sigPlainHFS = 0x4244 // 'BD'
	sigHFSPlus  = 0x482b // 'H+'
	sigHFSX     = 0x4858 // 'HX'
)

// CNID reserved constants (§3).
const (
	CNIDRootParent       = 1
	CNIDRootFolder       = 2
	CNIDExtentsFile      = 3
	CNIDCatalogFile      = 4
	CNIDBadBlocks        = 5
	CNIDAllocationFile   = 6
	CNIDStartupFile      = 7
	CNIDAttributesFile   = 8
	CNIDRepairCatalog    = 14
	CNIDBogusExtentFile  = 15
	CNIDFirstUserCatalog = 16
)

// ExtentDescriptor is a (start_block, block_count) pair.
type ExtentDescriptor struct {
	StartBlock uint32
	BlockCount uint32
}

// ExtentRecord is the fixed 8-entry extent array embedded in every fork
// descriptor and every extents-overflow leaf record.
type ExtentRecord [8]ExtentDescriptor

func readExtentRecord(c *cursor) (ExtentRecord, error) {
	var rec ExtentRecord
	for i := range rec {
		start, err := c.u32()
		if err != nil {
			return rec, err
		}
		count, err := c.u32()
		if err != nil {
			return rec, err
		}
		rec[i] = ExtentDescriptor{StartBlock: start, BlockCount: count}
	}
	return rec, nil
}

// ForkData is a fork descriptor: logical size, clump size, total blocks,
// and the inline 8-extent record (§3).
type ForkData struct {
	LogicalSize uint64
	ClumpSize   uint32
	TotalBlocks uint32
	Extents     ExtentRecord
}

func readForkData(c *cursor) (ForkData, error) {
	var f ForkData
	var err error
	if f.LogicalSize, err = c.u64(); err != nil {
		return f, err
	}
	if f.ClumpSize, err = c.u32(); err != nil {
		return f, err
	}
	if f.TotalBlocks, err = c.u32(); err != nil {
		return f, err
	}
	if f.Extents, err = readExtentRecord(c); err != nil {
		return f, err
	}
	return f, nil
}

// VolumeHeader mirrors HFSPlusVolumeHeader, 512 bytes at byte offset 1024.
type VolumeHeader struct {
	Signature          uint16
	Version            uint16
	Attributes         uint32
	LastMountedVersion uint32
	JournalInfoBlock   uint32

	DateCreated  uint32
	DateModified uint32
	DateBackedUp uint32
	DateChecked  uint32

	FileCount   uint32
	FolderCount uint32

	BlockSize       uint32
	TotalBlocks     uint32
	FreeBlocks      uint32
	NextAllocBlock  uint32
	RsrcClumpSize   uint32
	DataClumpSize   uint32
	NextCatalogID   uint32
	WriteCount      uint32
	EncodingsBitmap uint64

	FinderInfo [8]uint32

	AllocationFile ForkData
	ExtentsFile    ForkData
	CatalogFile    ForkData
	AttributesFile ForkData
	StartupFile    ForkData
}

const (
	// VolumeAttrJournaled is set when the volume uses a journal.
	VolumeAttrJournaled = 1 << 13
	// VolumeAttrUnmounted is set when the volume was cleanly unmounted.
	VolumeAttrUnmounted = 1 << 8
	// VolumeAttrSoftwareLock is set when the volume is software-locked,
	// VolumeAttrHwlock when it is hardware-locked.
	VolumeAttrSoftwareLock = 1 << 15
	VolumeAttrHwlock       = 1 << 7
)

func readVolumeHeader(b []byte) (VolumeHeader, error) {
	c := newCursor(b)
	var h VolumeHeader
	var err error
	if h.Signature, err = c.u16(); err != nil {
		return h, err
	}
	if h.Version, err = c.u16(); err != nil {
		return h, err
	}
	if h.Attributes, err = c.u32(); err != nil {
		return h, err
	}
	if h.LastMountedVersion, err = c.u32(); err != nil {
		return h, err
	}
	if h.JournalInfoBlock, err = c.u32(); err != nil {
		return h, err
	}
	for _, f := range []*uint32{&h.DateCreated, &h.DateModified, &h.DateBackedUp, &h.DateChecked} {
		if *f, err = c.u32(); err != nil {
			return h, err
		}
	}
	if h.FileCount, err = c.u32(); err != nil {
		return h, err
	}
	if h.FolderCount, err = c.u32(); err != nil {
		return h, err
	}
	for _, f := range []*uint32{&h.BlockSize, &h.TotalBlocks, &h.FreeBlocks, &h.NextAllocBlock, &h.RsrcClumpSize, &h.DataClumpSize, &h.NextCatalogID, &h.WriteCount} {
		if *f, err = c.u32(); err != nil {
			return h, err
		}
	}
	if h.EncodingsBitmap, err = c.u64(); err != nil {
		return h, err
	}
	for i := range h.FinderInfo {
		if h.FinderInfo[i], err = c.u32(); err != nil {
			return h, err
		}
	}
	for _, f := range []*ForkData{&h.AllocationFile, &h.ExtentsFile, &h.CatalogFile, &h.AttributesFile, &h.StartupFile} {
		if *f, err = readForkData(c); err != nil {
			return h, err
		}
	}
	return h, nil
}

// masterDirectoryBlock is the plain-HFS MDB, read only to detect and follow
// an embedded HFS+ wrapper volume (§1 Non-goals, §4.11 step 3).
type masterDirectoryBlock struct {
	Signature uint16
	BlockSize uint32
	FirstBlock uint16

	EmbeddedSignature uint16
	EmbeddedExtent    ExtentDescriptor16
}

// ExtentDescriptor16 is the 16-bit-field extent shape used only inside the
// plain-HFS MDB's embedded-volume pointer.
type ExtentDescriptor16 struct {
	StartBlock uint16
	BlockCount uint16
}

func readMDB(b []byte) (masterDirectoryBlock, error) {
	c := newCursor(b)
	var m masterDirectoryBlock
	var err error
	if m.Signature, err = c.u16(); err != nil {
		return m, err
	}
	if err = c.advance(4 + 4); err != nil { // date_created, date_modified
		return m, err
	}
	if err = c.advance(2 + 2 + 2); err != nil { // attributes, root_file_count, volume_bitmap
		return m, err
	}
	if err = c.advance(2); err != nil { // next_alloc_block
		return m, err
	}
	if err = c.advance(2); err != nil { // total_blocks (u16 in MDB)
		return m, err
	}
	if m.BlockSize, err = c.u32(); err != nil {
		return m, err
	}
	if err = c.advance(4); err != nil { // clump_size
		return m, err
	}
	if m.FirstBlock, err = c.u16(); err != nil {
		return m, err
	}
	// next_cnid(4) free_blocks(2) volume_name(28) date_backedup(4)
	// backup_seqnum(2) write_count(4) extents_clump_size(4)
	// catalog_clump_size(4) root_folder_count(2) file_count(4)
	// folder_count(4) finder_info(32)
	if err = c.advance(4 + 2 + 28 + 4 + 2 + 4 + 4 + 4 + 2 + 4 + 4 + 32); err != nil {
		return m, err
	}
	if m.EmbeddedSignature, err = c.u16(); err != nil {
		return m, err
	}
	startBlock, err := c.u16()
	if err != nil {
		return m, err
	}
	blockCount, err := c.u16()
	if err != nil {
		return m, err
	}
	m.EmbeddedExtent = ExtentDescriptor16{StartBlock: startBlock, BlockCount: blockCount}
	return m, nil
}

// nodeDescriptor is the 14-byte header of every B-tree node (§3).
type nodeDescriptor struct {
	FLink, BLink uint32
	Kind         int8
	Height       uint8
	NumRecs      uint16
	Reserved     uint16
}

const (
	nodeKindLeaf   = -1
	nodeKindIndex  = 0
	nodeKindHeader = 1
	nodeKindMap    = 2
)

func readNodeDescriptor(c *cursor) (nodeDescriptor, error) {
	var d nodeDescriptor
	var err error
	if d.FLink, err = c.u32(); err != nil {
		return d, err
	}
	if d.BLink, err = c.u32(); err != nil {
		return d, err
	}
	kind, err := c.u8()
	if err != nil {
		return d, err
	}
	d.Kind = int8(kind)
	if d.Height, err = c.u8(); err != nil {
		return d, err
	}
	if d.NumRecs, err = c.u16(); err != nil {
		return d, err
	}
	if d.Reserved, err = c.u16(); err != nil {
		return d, err
	}
	return d, nil
}

// headerRecord is the first record of a B-tree's node 0 (§4.11 step 5/6).
type headerRecord struct {
	TreeDepth  uint16
	RootNode   uint32
	LeafRecs   uint32
	FirstLeaf  uint32
	LastLeaf   uint32
	NodeSize   uint16
	MaxKeyLen  uint16
	TotalNodes uint32
	FreeNodes  uint32
	Reserved   uint16
	ClumpSize  uint32
	BTreeType  uint8
	KeyCompare uint8
	Attributes uint32
}

const bigKeysMask = 0x2

func readHeaderRecord(b []byte) (headerRecord, error) {
	c := newCursor(b)
	var h headerRecord
	var err error
	if h.TreeDepth, err = c.u16(); err != nil {
		return h, err
	}
	if h.RootNode, err = c.u32(); err != nil {
		return h, err
	}
	if h.LeafRecs, err = c.u32(); err != nil {
		return h, err
	}
	if h.FirstLeaf, err = c.u32(); err != nil {
		return h, err
	}
	if h.LastLeaf, err = c.u32(); err != nil {
		return h, err
	}
	if h.NodeSize, err = c.u16(); err != nil {
		return h, err
	}
	if h.MaxKeyLen, err = c.u16(); err != nil {
		return h, err
	}
	if h.TotalNodes, err = c.u32(); err != nil {
		return h, err
	}
	if h.FreeNodes, err = c.u32(); err != nil {
		return h, err
	}
	if h.Reserved, err = c.u16(); err != nil {
		return h, err
	}
	if h.ClumpSize, err = c.u32(); err != nil {
		return h, err
	}
	bt, err := c.u8()
	if err != nil {
		return h, err
	}
	h.BTreeType = bt
	kc, err := c.u8()
	if err != nil {
		return h, err
	}
	h.KeyCompare = kc
	if h.Attributes, err = c.u32(); err != nil {
		return h, err
	}
	return h, nil
}

// UnicodeName is a length-prefixed UTF-16 name (§3).
type UnicodeName struct {
	Units []uint16
}

func readUnicodeName(c *cursor) (UnicodeName, error) {
	length, err := c.u16()
	if err != nil {
		return UnicodeName{}, err
	}
	if length > 255 {
		length = 255 // the on-disk field never legally exceeds this; tolerate overlong lengths defensively
	}
	units := make([]uint16, length)
	for i := range units {
		if units[i], err = c.u16(); err != nil {
			return UnicodeName{}, err
		}
	}
	return UnicodeName{Units: units}, nil
}

// BSDInfo is the BSD permission fields embedded in file/folder catalog
// records, including the four-way union field (§3).
type BSDInfo struct {
	OwnerID     uint32
	GroupID     uint32
	AdminFlags  uint8
	OwnerFlags  uint8
	FileMode    uint16
	SpecialRaw  uint32 // union{inode_num | link_count | raw_device | first_link_CNID}
}

func (b BSDInfo) InodeNum() uint32      { return b.SpecialRaw }
func (b BSDInfo) LinkCount() uint32     { return b.SpecialRaw }
func (b BSDInfo) RawDevice() uint32     { return b.SpecialRaw }
func (b BSDInfo) FirstLinkCNID() uint32 { return b.SpecialRaw }

func readBSDInfo(c *cursor) (BSDInfo, error) {
	var b BSDInfo
	var err error
	if b.OwnerID, err = c.u32(); err != nil {
		return b, err
	}
	if b.GroupID, err = c.u32(); err != nil {
		return b, err
	}
	if b.AdminFlags, err = c.u8(); err != nil {
		return b, err
	}
	if b.OwnerFlags, err = c.u8(); err != nil {
		return b, err
	}
	if b.FileMode, err = c.u16(); err != nil {
		return b, err
	}
	if b.SpecialRaw, err = c.u32(); err != nil {
		return b, err
	}
	return b, nil
}

// Unix file-mode-type bits recognized in BSDInfo.FileMode.
const (
	sIFMT   = 0xF000
	sIFDIR  = 0x4000
	sIFREG  = 0x8000
	sIFLNK  = 0xA000
)

// journalInfo and journalHeader are parsed only far enough to support the
// clean-bit check (§9 Open Question: no replay).
type journalInfo struct {
	Flags           uint32
	DeviceSignature [8]uint32
	Offset          uint64
	Size            uint64
}

func readJournalInfo(b []byte) (journalInfo, error) {
	c := newCursor(b)
	var j journalInfo
	var err error
	if j.Flags, err = c.u32(); err != nil {
		return j, err
	}
	for i := range j.DeviceSignature {
		if j.DeviceSignature[i], err = c.u32(); err != nil {
			return j, err
		}
	}
	if j.Offset, err = c.u64(); err != nil {
		return j, err
	}
	if j.Size, err = c.u64(); err != nil {
		return j, err
	}
	return j, nil
}

type journalHeader struct {
	Magic, Endian    uint32
	Start, End, Size uint64
}

func readJournalHeader(b []byte) (journalHeader, error) {
	c := newCursor(b)
	var j journalHeader
	var err error
	if j.Magic, err = c.u32(); err != nil {
		return j, err
	}
	if j.Endian, err = c.u32(); err != nil {
		return j, err
	}
	if j.Start, err = c.u64(); err != nil {
		return j, err
	}
	if j.End, err = c.u64(); err != nil {
		return j, err
	}
	if j.Size, err = c.u64(); err != nil {
		return j, err
	}
	return j, nil
}

// isClean implements the clean-bit check named in the design notes:
// journal replay is never implemented, only this comparison.
func (j journalHeader) isClean() bool {
	return j.Start == j.End
}
