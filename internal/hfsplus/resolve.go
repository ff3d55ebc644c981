// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"fmt"
	"io/fs"
	"strings"
)

// Resolve walks a slash-separated path from the root folder, descending
// one catalog lookup per component and substituting a hard link's target
// record whenever one is encountered (§4.9). "." (the fs.FS root) resolves
// to the root folder itself.
//
// A full path hit in the path cache short-circuits the walk entirely; a
// miss still checks the cache for the deepest already-resolved ancestor via
// lookupParents, descending from there instead of the root (§4.10).
func (v *Volume) Resolve(path string) (CatalogRecord, uint32, error) {
	if path == "." || path == "" {
		return v.catalogRecordForCNID(CNIDRootFolder)
	}

	if cached, ok := v.pathCache.lookup(path); ok {
		return v.catalogRecordForCNID(cached)
	}

	parent := uint32(CNIDRootFolder)
	components := strings.Split(path, "/")
	consumed := ""

	if remainder, ancestorCNID, ok := v.pathCache.lookupParents(path); ok {
		consumed = path[:len(path)-len(remainder)]
		parent = ancestorCNID
		components = strings.Split(strings.TrimPrefix(remainder, "/"), "/")
	}

	var rec CatalogRecord
	var cnid uint32

	for i, comp := range components {
		if comp == "" {
			continue
		}
		key := CatalogKey{ParentCNID: parent, Name: ToHFSUnicodeName(comp)}
		found, ok, err := v.searchCatalog(key)
		if err != nil {
			return CatalogRecord{}, 0, err
		}
		if !ok {
			return CatalogRecord{}, 0, fmt.Errorf("%w: %s", fs.ErrNotExist, joinResolved(consumed, components[:i+1]))
		}
		found, cnid, err = v.followHardLink(found)
		if err != nil {
			return CatalogRecord{}, 0, err
		}
		rec = found
		switch rec.Type {
		case RecFolder:
			parent = rec.Folder.CNID
		case RecFile:
			parent = rec.File.CNID // only matters if more components follow, which is an error below
		}
		if i < len(components)-1 && rec.Type != RecFolder {
			return CatalogRecord{}, 0, fmt.Errorf("%w: %s is not a directory", ErrNotADirectory, joinResolved(consumed, components[:i+1]))
		}
	}

	v.pathCache.add(path, cnid)
	return rec, cnid, nil
}

// joinResolved reconstructs the full path walked so far for an error
// message, stitching the consumed ancestor prefix (resolved via the path
// cache, if any) back onto the remaining components being walked.
func joinResolved(consumed string, components []string) string {
	joined := strings.Join(components, "/")
	if consumed == "" {
		return joined
	}
	return consumed + "/" + joined
}

// followHardLink substitutes a directory- or file-hard-link placeholder
// record with its target record, per §4.9: a directory hard link's
// BSDInfo.FirstLinkCNID names a synthetic "dir_<inode>" folder directly
// under the metadata folder; a file hard link's names the "iNode<inode>"
// file that holds the real data, and that file's record is returned.
func (v *Volume) followHardLink(rec CatalogRecord) (CatalogRecord, uint32, error) {
	if rec.Type != RecFile {
		return rec, rec.Folder.CNID, nil
	}
	if rec.File.IsDirHardLink() {
		target := rec.File.BSD.FirstLinkCNID()
		tr, ok, err := v.LookupThread(target)
		if err != nil {
			return rec, 0, err
		}
		if !ok {
			return rec, 0, fmt.Errorf("%w: dangling directory hard link to cnid %d", ErrCorruptNode, target)
		}
		folderRec, ok, err := v.searchCatalog(CatalogKey{ParentCNID: tr.ParentCNID, Name: tr.Name})
		if err != nil || !ok {
			return rec, 0, err
		}
		return folderRec, folderRec.Folder.CNID, nil
	}
	if rec.File.IsFileHardLink() {
		target := rec.File.BSD.FirstLinkCNID()
		return v.catalogRecordForCNID(target)
	}
	return rec, rec.File.CNID, nil
}

// catalogRecordForCNID looks a catalog record up by its own CNID via its
// thread record, used for the filesystem root and for hard-link targets
// where only the CNID (not the parent/name) is known.
func (v *Volume) catalogRecordForCNID(cnid uint32) (CatalogRecord, uint32, error) {
	tr, ok, err := v.LookupThread(cnid)
	if err != nil {
		return CatalogRecord{}, 0, err
	}
	if !ok {
		return CatalogRecord{}, 0, fmt.Errorf("%w: no thread record for cnid %d", fs.ErrNotExist, cnid)
	}
	rec, ok, err := v.searchCatalog(CatalogKey{ParentCNID: tr.ParentCNID, Name: tr.Name})
	if err != nil {
		return CatalogRecord{}, 0, err
	}
	if !ok {
		return CatalogRecord{}, 0, fmt.Errorf("%w: thread record for cnid %d has no matching entry", ErrCorruptNode, cnid)
	}
	return rec, cnid, nil
}
