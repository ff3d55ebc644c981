// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"io"
	"io/fs"
	"path"

	internal "github.com/0x09/gohfsplus/internal/hfsplus"
)

// openFile implements fs.File and, for folders, fs.ReadDirFile.
type openFile struct {
	fsys *FS
	name string
	cnid uint32
	rec  internal.CatalogRecord

	data   io.ReaderAt
	offset int64

	children []internal.ChildEntry
	diriter  int
}

func newOpenFile(fsys *FS, name string, cnid uint32, rec internal.CatalogRecord) (*openFile, error) {
	return &openFile{fsys: fsys, name: name, cnid: cnid, rec: rec}, nil
}

func (f *openFile) Stat() (fs.FileInfo, error) {
	return fileInfoFor(path.Base(f.name), f.cnid, f.rec, f.fsys.vol, f.fsys.vol.DisableSymlinks()), nil
}

func (f *openFile) Read(p []byte) (int, error) {
	if f.rec.Type != internal.RecFile {
		return 0, &fs.PathError{Op: "read", Path: f.name, Err: ErrIsADirectory}
	}
	if f.data == nil {
		data, err := f.fsys.vol.OpenData(f.cnid, f.rec.File)
		if err != nil {
			return 0, &fs.PathError{Op: "read", Path: f.name, Err: err}
		}
		f.data = data
	}
	n, err := f.data.ReadAt(p, f.offset)
	f.offset += int64(n)
	return n, err
}

func (f *openFile) Close() error { return nil }

// ReadDir implements fs.ReadDirFile. n<=0 returns the whole remaining
// listing; n>0 returns at most n entries and io.EOF once exhausted,
// matching fs.ReadDirFile's documented partial-listing semantics.
func (f *openFile) ReadDir(n int) ([]fs.DirEntry, error) {
	if f.rec.Type != internal.RecFolder {
		return nil, &fs.PathError{Op: "readdir", Path: f.name, Err: ErrNotADirectory}
	}
	if f.children == nil && f.diriter == 0 {
		children, err := f.fsys.vol.ListChildren(f.cnid)
		if err != nil {
			return nil, err
		}
		f.children = children
	}

	remaining := f.children[f.diriter:]
	if n <= 0 {
		f.diriter = len(f.children)
		return f.direntsFor(remaining), nil
	}
	if len(remaining) == 0 {
		return nil, io.EOF
	}
	if n > len(remaining) {
		n = len(remaining)
	}
	f.diriter += n
	return f.direntsFor(remaining[:n]), nil
}

func (f *openFile) direntsFor(entries []internal.ChildEntry) []fs.DirEntry {
	out := make([]fs.DirEntry, len(entries))
	vol := f.fsys.vol
	disableSymlinks := vol.DisableSymlinks()
	for i, e := range entries {
		out[i] = fileInfoFor(internal.FromHFSUnicodeName(e.Name), e.CNID, e.Rec, vol, disableSymlinks)
	}
	return out
}

// ErrIsADirectory and ErrNotADirectory are returned wrapped in fs.PathError
// from operations that require the other kind of entry.
var (
	ErrIsADirectory  = fs.ErrInvalid
	ErrNotADirectory = internal.ErrNotADirectory
)
