// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"io/fs"
	"time"

	internal "github.com/0x09/gohfsplus/internal/hfsplus"
)

// hfsEpochOffset is the number of seconds between the HFS+ epoch
// (1904-01-01 00:00:00 UTC) and the Unix epoch.
const hfsEpochOffset = 2082844800

func hfsTime(t uint32) time.Time {
	return time.Unix(int64(t)-hfsEpochOffset, 0).UTC()
}

// fileInfo implements fs.FileInfo for a resolved catalog record.
type fileInfo struct {
	name            string
	cnid            uint32
	rec             internal.CatalogRecord
	vol             *internal.Volume
	disableSymlinks bool
}

func fileInfoFor(name string, cnid uint32, rec internal.CatalogRecord, vol *internal.Volume, disableSymlinks bool) *fileInfo {
	return &fileInfo{name: name, cnid: cnid, rec: rec, vol: vol, disableSymlinks: disableSymlinks}
}

func (fi *fileInfo) Name() string { return fi.name }

func (fi *fileInfo) IsDir() bool { return fi.rec.Type == internal.RecFolder }

// Size reports the data fork's logical size, or the decmpfs header's
// logical size when the file's data fork is a compressed placeholder
// (§6), matching what Read actually returns through OpenData.
func (fi *fileInfo) Size() int64 {
	if fi.rec.Type == internal.RecFile {
		return int64(fi.vol.LogicalSize(fi.cnid, fi.rec.File))
	}
	return 0
}

func (fi *fileInfo) ModTime() time.Time {
	switch fi.rec.Type {
	case internal.RecFolder:
		return hfsTime(fi.rec.Folder.DateContentMod)
	case internal.RecFile:
		return hfsTime(fi.rec.File.DateContentMod)
	}
	return time.Time{}
}

func (fi *fileInfo) Mode() fs.FileMode {
	var bsd internal.BSDInfo
	switch fi.rec.Type {
	case internal.RecFolder:
		bsd = fi.rec.Folder.BSD
	case internal.RecFile:
		bsd = fi.rec.File.BSD
	}
	return unixModeToFS(bsd.FileMode, fi.IsDir(), fi.disableSymlinks)
}

func (fi *fileInfo) Sys() any { return &fi.rec }

// Type and Info implement fs.DirEntry, so a resolved record can serve as
// both a file's fs.FileInfo and its directory entry (§6).
func (fi *fileInfo) Type() fs.FileMode          { return fi.Mode().Type() }
func (fi *fileInfo) Info() (fs.FileInfo, error) { return fi, nil }

// unixModeToFS maps a BSDInfo.FileMode to an fs.FileMode, honoring the
// S_IFLNK bit for symlinks and carrying the low 9 permission bits through
// unchanged (§3). disableSymlinks folds S_IFLNK down to a plain file, per
// Options.DisableSymlinks.
func unixModeToFS(raw uint16, isDir, disableSymlinks bool) fs.FileMode {
	perm := fs.FileMode(raw & 0o777)
	switch raw & 0xF000 {
	case 0xA000: // S_IFLNK
		if disableSymlinks {
			return perm
		}
		return perm | fs.ModeSymlink
	case 0x4000: // S_IFDIR
		return perm | fs.ModeDir
	default:
		if isDir {
			return perm | fs.ModeDir
		}
		return perm
	}
}
