// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import "io"

// compressedFlag is kHFSHasCompressedDataMask (§4.7): set on a file
// catalog record whose data fork is a decmpfs placeholder rather than real
// file content.
const compressedFlag = 0x0020

const decmpfsAttrName = "com.apple.decmpfs"

// OpenData returns a reader over a file's logical data, transparently
// decompressing it if the file carries a decmpfs attribute (§4.6, §4.7).
func (v *Volume) OpenData(cnid uint32, file FileRec) (io.ReaderAt, error) {
	if file.Flags&compressedFlag == 0 {
		return v.OpenFork(cnid, ForkTypeData, file.DataFork)
	}

	attr, found, err := v.GetAttribute(cnid, decmpfsAttrName)
	if err != nil {
		return nil, err
	}
	if !found {
		v.logger.Errorf("cnid %d: compressed flag set but no decmpfs attribute; falling back to raw data fork", cnid)
		return v.OpenFork(cnid, ForkTypeData, file.DataFork)
	}

	hdr, rest, err := readDecmpfsHeader(attr.Inline)
	if err != nil {
		return nil, err
	}

	var inline []byte
	if len(rest) > 0 {
		inline = rest
	}

	var rsrc io.ReaderAt
	if file.RsrcFork.TotalBlocks > 0 {
		rsrc, err = v.OpenFork(cnid, ForkTypeResource, file.RsrcFork)
		if err != nil {
			return nil, err
		}
	}

	return v.decompressedReader(cnid, hdr, inline, rsrc)
}

// OpenResource returns a reader over a file's resource fork bytes
// (decmpfs never applies to the resource fork itself).
func (v *Volume) OpenResource(cnid uint32, file FileRec) (io.ReaderAt, error) {
	return v.OpenFork(cnid, ForkTypeResource, file.RsrcFork)
}

// LogicalSize returns the size Stat should report for a file: the
// decmpfs header's logical size when the compressed-data flag is set,
// since the data fork itself is just a placeholder then, and the fork's
// own logical size otherwise (§6: "for files st_size from the fork's
// logical size (decmpfs overrides with its header's logical size when
// applicable)"). This only reads the (small, inline) decmpfs attribute
// header, not the resource fork or any chunk data, so it's cheap enough
// to call on every Stat.
func (v *Volume) LogicalSize(cnid uint32, file FileRec) uint64 {
	if file.Flags&compressedFlag == 0 {
		return file.DataFork.LogicalSize
	}
	attr, found, err := v.GetAttribute(cnid, decmpfsAttrName)
	if err != nil || !found {
		return file.DataFork.LogicalSize
	}
	hdr, _, err := readDecmpfsHeader(attr.Inline)
	if err != nil {
		return file.DataFork.LogicalSize
	}
	return hdr.LogicalSize
}
