// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Package hfsplus provides read-only, fs.FS-compatible access to HFS+ and
// HFSX filesystem volumes.
package hfsplus

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/0x09/gohfsplus/internal/hfsplus"
)

// FS is a mounted HFS+/HFSX volume, implementing io/fs.FS, fs.StatFS,
// fs.ReadDirFS, and fs.GlobFS (§2, §6).
type FS struct {
	vol    *hfsplus.Volume
	closer func() error
}

// Open opens an HFS+/HFSX volume backed by dev, which must support
// positional reads for the lifetime of the returned FS (§4.11, §6).
func Open(dev io.ReaderAt, opts Options) (*FS, error) {
	v, err := hfsplus.Open(dev, opts.toInternal())
	if err != nil {
		return nil, err
	}
	return &FS{vol: v}, nil
}

// OpenFile opens an HFS+/HFSX volume stored in a regular file at path,
// wiring in the coalesced device cache (§9 Open Question 2).
func OpenFile(path string, opts Options) (*FS, error) {
	dev, closeFn, err := hfsplus.OpenDevice(path, opts.toInternal())
	if err != nil {
		return nil, err
	}
	vol, err := hfsplus.Open(dev, opts.toInternal())
	if err != nil {
		closeFn()
		return nil, err
	}
	return &FS{vol: vol, closer: closeFn}, nil
}

// Close releases any resources OpenFile acquired. Close on an FS obtained
// from Open is a no-op: that constructor never takes ownership of dev.
func (f *FS) Close() error {
	if f.closer != nil {
		return f.closer()
	}
	return nil
}

// Open implements fs.FS.
func (f *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	rec, cnid, err := f.vol.Resolve(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return newOpenFile(f, name, cnid, rec)
}

// Stat implements fs.StatFS.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	rec, cnid, err := f.vol.Resolve(name)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return fileInfoFor(path.Base(name), cnid, rec, f.vol, f.vol.DisableSymlinks()), nil
}

// ReadDir implements fs.ReadDirFS.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	file, err := f.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rd, ok := file.(fs.ReadDirFile)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	return rd.ReadDir(-1)
}

// PathForCNID walks thread records from cnid up to the root, returning the
// absolute slash path of the catalog entry named by cnid (§4.15, a
// capability the original command-line tool never exposed since it always
// worked forward from a path).
func (f *FS) PathForCNID(cnid uint32) (string, error) {
	if cnid == hfsplus.CNIDRootFolder {
		return "/", nil
	}
	var parts []string
	cur := cnid
	for i := 0; i < maxPathDepth; i++ {
		thread, ok, err := f.vol.LookupThread(cur)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w: no thread record for cnid %d", fs.ErrNotExist, cur)
		}
		if thread.ParentCNID == hfsplus.CNIDRootParent {
			break
		}
		parts = append(parts, hfsplus.FromHFSUnicodeName(thread.Name))
		cur = thread.ParentCNID
		if cur == hfsplus.CNIDRootFolder {
			break
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/"), nil
}

// maxPathDepth bounds the ancestor walk in PathForCNID against a corrupt
// volume whose thread records form a cycle instead of terminating at the
// root folder.
const maxPathDepth = 1024
