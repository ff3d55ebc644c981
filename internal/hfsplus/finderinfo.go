// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

// finderInfoXattrName is the synthetic extended attribute name under which
// a catalog record's raw 32-byte Finder-info block is exposed (§4.15).
// The upstream parsers for this block (user info / Finder info, folder and
// file variants) are stubs that zero their output rather than decode it,
// so rather than reimplement a decoder nothing upstream actually uses,
// the raw bytes are surfaced as-is for a caller that wants them.
const finderInfoXattrName = "com.apple.FinderInfo"

// finderInfoXattr returns the raw Finder-info block for a catalog common
// record, exactly as stored on disk.
func finderInfoXattr(c CatalogCommon) []byte {
	out := make([]byte, len(c.FinderInfo))
	copy(out, c.FinderInfo[:])
	return out
}

// FinderInfoXattr returns the raw Finder-info block for a resolved catalog
// record of either variant, for the root package's synthetic
// "com.apple.FinderInfo" attribute.
func FinderInfoXattr(rec CatalogRecord) []byte {
	switch rec.Type {
	case RecFolder:
		return finderInfoXattr(rec.Folder.CatalogCommon)
	case RecFile:
		return finderInfoXattr(rec.File.CatalogCommon)
	default:
		return nil
	}
}
