// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"io/fs"

	internal "github.com/0x09/gohfsplus/internal/hfsplus"
)

// finderInfoXattrName mirrors internal/hfsplus's unexported constant of the
// same name; kept as a separate copy so the root package's public surface
// doesn't need to reach into internal for a string literal.
const finderInfoXattrName = "com.apple.FinderInfo"

// GetXattr returns the raw bytes of the named extended attribute on the
// file or folder at path (§4.15). "com.apple.FinderInfo" is always
// synthesized from the catalog record's own Finder-info block even on a
// volume with no attributes B-tree at all; every other name is looked up
// in the attributes tree and only ever returns the inline form, since the
// only producer of this decoder's own attribute records (decmpfs) never
// emits the fork/extent-based variants.
func (f *FS) GetXattr(path, name string) ([]byte, error) {
	rec, cnid, err := f.vol.Resolve(path)
	if err != nil {
		return nil, &fs.PathError{Op: "getxattr", Path: path, Err: err}
	}
	if name == finderInfoXattrName {
		return internal.FinderInfoXattr(rec), nil
	}
	attr, found, err := f.vol.GetAttribute(cnid, name)
	if err != nil {
		return nil, &fs.PathError{Op: "getxattr", Path: path, Err: err}
	}
	if !found {
		return nil, &fs.PathError{Op: "getxattr", Path: path, Err: fs.ErrNotExist}
	}
	return attr.Inline, nil
}

// ListXattr returns extended-attribute names for the file or folder at
// path: "com.apple.FinderInfo" always, plus "com.apple.decmpfs" when that
// attribute exists. Other attributes in the attributes tree are not listed.
func (f *FS) ListXattr(path string) ([]string, error) {
	_, cnid, err := f.vol.Resolve(path)
	if err != nil {
		return nil, &fs.PathError{Op: "listxattr", Path: path, Err: err}
	}
	names := []string{finderInfoXattrName}
	if _, found, _ := f.vol.GetAttribute(cnid, decmpfsXattrName); found {
		names = append(names, decmpfsXattrName)
	}
	return names, nil
}

const decmpfsXattrName = "com.apple.decmpfs"

// SupportedCompressionCodecs reports which decmpfs codec names this build
// can decode (§4.15, mirroring hfs_get_lib_features).
func SupportedCompressionCodecs() []string {
	return internal.SupportedCompressionCodecs()
}
