// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

// Catalog record tags (§6 external interfaces: HFS_REC_FLDR=1, HFS_REC_FILE=2,
// HFS_REC_FLDR_THREAD=3, HFS_REC_FILE_THREAD=4).
const (
	RecFolder       = 1
	RecFile         = 2
	RecFolderThread = 3
	RecFileThread   = 4
)

// Finder flags relevant to hard-link detection (§4.9). The creator/type
// tags below are what the original implementation calls
// HFS_MACS_CREATOR/HFS_HFSPLUS_CREATOR and
// HFS_DIR_HARD_LINK_FILE_TYPE/HFS_HARD_LINK_FILE_TYPE.
const (
	creatorMACS     = 0x4d414353 // "MACS": classic directory hard link creator
	creatorHFSPlus  = 0x6866732b // "hfs+": file hard link creator
	typeDirHardLink = 0x66647270 // "fdrp"
	typeHardLink    = 0x686c6e6b // "hlnk"
)

// CatalogKey is (parent_CNID, Unicode name) (§3).
type CatalogKey struct {
	ParentCNID uint32
	Name       UnicodeName
}

func readCatalogKey(c *cursor, bigKeys bool) (CatalogKey, error) {
	var k CatalogKey
	var err error
	if bigKeys {
		if _, err = c.u16(); err != nil { // key_len, unused once parsed
			return k, err
		}
	} else {
		if _, err = c.u8(); err != nil {
			return k, err
		}
	}
	if k.ParentCNID, err = c.u32(); err != nil {
		return k, err
	}
	if k.Name, err = readUnicodeName(c); err != nil {
		return k, err
	}
	return k, nil
}

// CatalogCommon carries the fields shared by folder and file records.
type CatalogCommon struct {
	CNID            uint32
	DateCreated     uint32
	DateContentMod  uint32
	DateAttribMod   uint32
	DateAccessed    uint32
	DateBackedUp    uint32
	BSD             BSDInfo
	FinderInfo      [32]byte // raw user-info + Finder-info bytes (§9 Open Question: parsers are stubs upstream)
	TextEncoding    uint32
}

// FolderRec is the HFS_REC_FLDR variant.
type FolderRec struct {
	Flags   uint16
	Valence uint32
	CatalogCommon
}

// FileRec is the HFS_REC_FILE variant.
type FileRec struct {
	Flags uint16
	CatalogCommon
	DataFork ForkData
	RsrcFork ForkData
}

// ThreadRec is the HFS_REC_FLDR_THREAD/HFS_REC_FILE_THREAD variant: a
// reverse-lookup entry keyed by (child_CNID, empty-name) pointing to
// (parent_CNID, child_name).
type ThreadRec struct {
	ParentCNID uint32
	Name       UnicodeName
}

// CatalogRecord is the tagged union described in §3/§9 (algebraic data
// type, on-disk tag discriminates).
type CatalogRecord struct {
	Type   uint16
	Folder FolderRec
	File   FileRec
	Thread ThreadRec
}

// finderTypeCreator returns the type/creator codes stashed in the first
// 8 bytes of FinderInfo, used for hard-link placeholder detection.
func (r *FileRec) finderTypeCreator() (fileType, creator uint32) {
	// The first 8 bytes of FinderInfo are (type, creator) big-endian,
	// matching hfs_macos_file_info_t's layout.
	return be32([4]byte(r.FinderInfo[0:4])), be32([4]byte(r.FinderInfo[4:8]))
}

func be32(b [4]byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// IsDirHardLink reports whether this file record stands in for a directory
// hard link (creator MACS, type fdrp).
func (r *FileRec) IsDirHardLink() bool {
	ty, cr := r.finderTypeCreator()
	return cr == creatorMACS && ty == typeDirHardLink
}

// IsFileHardLink reports whether this file record stands in for a regular
// (file) hard link (creator hfs+, type hlnk).
func (r *FileRec) IsFileHardLink() bool {
	ty, cr := r.finderTypeCreator()
	return cr == creatorHFSPlus && ty == typeHardLink
}

func readCatalogRecord(b []byte, kind int8, bigKeys bool) (CatalogKey, CatalogRecord, error) {
	c := newCursor(b)
	key, err := readCatalogKey(c, bigKeys)
	if err != nil {
		return key, CatalogRecord{}, err
	}

	var rec CatalogRecord
	if kind == nodeKindIndex {
		// Index-node records store only a child node number; callers that
		// need it read it directly rather than through this tagged union.
		return key, rec, nil
	}

	typ, err := c.u16()
	if err != nil {
		return key, rec, err
	}
	rec.Type = typ

	switch typ {
	case RecFolder:
		f := &rec.Folder
		var e error
		if f.Flags, e = c.u16(); e != nil {
			return key, rec, e
		}
		if f.Valence, e = c.u32(); e != nil {
			return key, rec, e
		}
		if e = readCommon(c, &f.CatalogCommon); e != nil {
			return key, rec, e
		}
	case RecFile:
		fl := &rec.File
		var e error
		if fl.Flags, e = c.u16(); e != nil {
			return key, rec, e
		}
		if e = c.advance(4); e != nil { // reserved1
			return key, rec, e
		}
		if e = readCommon(c, &fl.CatalogCommon); e != nil {
			return key, rec, e
		}
		if fl.DataFork, e = readForkData(c); e != nil {
			return key, rec, e
		}
		if fl.RsrcFork, e = readForkData(c); e != nil {
			return key, rec, e
		}
	case RecFolderThread, RecFileThread:
		t := &rec.Thread
		var e error
		if e = c.advance(2); e != nil { // reserved
			return key, rec, e
		}
		if t.ParentCNID, e = c.u32(); e != nil {
			return key, rec, e
		}
		if t.Name, e = readUnicodeName(c); e != nil {
			return key, rec, e
		}
	}
	return key, rec, nil
}

// readCommon parses the fields shared by folder/file records: CNID,
// timestamps, BSD permissions, 32 bytes of Finder user-info+Finder-info
// (kept raw per the Open Question that the upstream parsers are stubs),
// and text encoding.
func readCommon(c *cursor, out *CatalogCommon) error {
	var err error
	if out.CNID, err = c.u32(); err != nil {
		return err
	}
	if out.DateCreated, err = c.u32(); err != nil {
		return err
	}
	if out.DateContentMod, err = c.u32(); err != nil {
		return err
	}
	if out.DateAttribMod, err = c.u32(); err != nil {
		return err
	}
	if out.DateAccessed, err = c.u32(); err != nil {
		return err
	}
	if out.DateBackedUp, err = c.u32(); err != nil {
		return err
	}
	if out.BSD, err = readBSDInfo(c); err != nil {
		return err
	}
	raw, err := c.block(32)
	if err != nil {
		return err
	}
	copy(out.FinderInfo[:], raw)
	if out.TextEncoding, err = c.u32(); err != nil {
		return err
	}
	if err = c.advance(4); err != nil { // reserved
		return err
	}
	return nil
}

// indexChild reads the child node number from an index-node record. The
// caller has already consumed the key via readCatalogKey/readExtentKey; this
// reads the 4-byte child pointer that follows.
func indexChild(b []byte, keyLen int) (uint32, error) {
	c := newCursor(b)
	if err := c.advance(keyLen); err != nil {
		return 0, err
	}
	return c.u32()
}
