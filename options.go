// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import "github.com/0x09/gohfsplus/internal/hfsplus"

// Options configures how a volume is opened (§4.13 Configuration).
type Options struct {
	// BlockSize overrides device block-size autodetection; 0 asks the
	// device (OpenFile only; Open has no device to ask and ignores this).
	BlockSize int

	// CacheBlocks and CacheGraceBlocks size the coalesced device-read
	// cache (OpenFile only; §9 Open Question 2).
	CacheBlocks      int
	CacheGraceBlocks int

	// PathCacheSize is the number of entries kept in the resolved-path
	// ring cache (§4.10). Zero uses a built-in default.
	PathCacheSize int

	// DisableSymlinks reports BSD S_IFLNK files as regular files instead
	// of symlinks.
	DisableSymlinks bool

	// Logger receives structured diagnostics for corruption encountered
	// while reading (§4.13 Logging). Nil discards them.
	Logger hfsplus.Logger
}

// DefaultOptions returns the same cache sizing the original's
// hfs_volume_config defaults to.
func DefaultOptions() Options {
	d := hfsplus.DefaultOptions()
	return Options{
		CacheBlocks:      d.CacheBlocks,
		CacheGraceBlocks: d.CacheGraceBlocks,
		PathCacheSize:    d.PathCacheSize,
	}
}

func (o Options) toInternal() hfsplus.Options {
	return hfsplus.Options{
		BlockSize:        o.BlockSize,
		CacheBlocks:      o.CacheBlocks,
		CacheGraceBlocks: o.CacheGraceBlocks,
		PathCacheSize:    o.PathCacheSize,
		DisableSymlinks:  o.DisableSymlinks,
		Logger:           o.Logger,
	}
}
