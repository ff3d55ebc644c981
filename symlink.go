// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"io"
	"io/fs"

	internal "github.com/0x09/gohfsplus/internal/hfsplus"
)

// ReadLink returns the target of the symbolic link named by name (§3: a
// symlink is a regular file record with BSD mode S_IFLNK whose data fork
// holds the target path as plain text, same as a classic Unix symlink
// inode). It implements the same contract as os.Readlink, using
// fs.ReadLinkFS's method name so callers built against that interface work
// unmodified. The target is read through OpenData, so a decmpfs-compressed
// data fork is decompressed first.
func (f *FS) ReadLink(name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	rec, cnid, err := f.vol.Resolve(name)
	if err != nil {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: err}
	}
	if rec.Type != internal.RecFile {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: ErrNotASymlink}
	}
	info := fileInfoFor("", cnid, rec, f.vol, f.vol.DisableSymlinks())
	if info.Mode()&fs.ModeSymlink == 0 {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: ErrNotASymlink}
	}

	data, err := f.vol.OpenData(cnid, rec.File)
	if err != nil {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: err}
	}
	size := f.vol.LogicalSize(cnid, rec.File)
	buf := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(data, 0, int64(size)), buf); err != nil {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: err}
	}
	return string(buf), nil
}

// Lstat is Stat without following the final path component if it is a
// symlink; since this decoder never follows symlinks when resolving
// intermediate path components either (§1 Non-goals), Lstat and Stat
// return identical results and Lstat exists only to satisfy callers
// written against fs.ReadLinkFS's paired interface.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	return f.Stat(name)
}

// ErrNotASymlink is returned wrapped in fs.PathError by ReadLink when name
// does not resolve to a symlink.
var ErrNotASymlink = fs.ErrInvalid
