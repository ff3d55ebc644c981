// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob implements fs.GlobFS using doublestar instead of io/fs's own
// path.Match, so patterns can use "**" to match an arbitrary number of
// path elements (useful for walking deeply nested resource-fork-bearing
// trees without enumerating every intermediate directory by hand).
func (f *FS) Glob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, &fs.PathError{Op: "glob", Path: pattern, Err: fs.ErrInvalid}
	}
	return doublestar.Glob(f, pattern)
}
