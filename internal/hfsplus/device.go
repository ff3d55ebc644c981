// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"io"
	"os"
)

// OpenDevice opens path for read-only positional access and wraps it with
// the coalesced read cache (§5, §9 Open Question 2), sized per cfg. Callers
// that already have an io.ReaderAt (an in-memory image, a section of a
// larger archive) should call Open directly instead.
func OpenDevice(path string, cfg Options) (io.ReaderAt, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	blockSize := int64(cfg.BlockSize)
	if blockSize == 0 {
		blockSize = int64(detectBlockSize(f))
	}
	cache := newCoalescedReader(f, blockSize, cfg.CacheBlocks, cfg.CacheGraceBlocks)
	return cache, f.Close, nil
}

// Options configures a volume open (§4.13 Configuration).
type Options struct {
	// BlockSize overrides autodetection of the underlying device's
	// logical sector size; 0 means "ask the device, default to 512".
	BlockSize int

	// CacheBlocks is the number of device-sized blocks the coalesced read
	// cache holds before recycling the least-recently-touched one outside
	// the current access window (ublio's up_items, §9 Open Question 2).
	CacheBlocks int

	// CacheGraceBlocks is the width of the recycling grace window: a cached
	// block whose block number is within this many blocks of the block being
	// fetched is recycled only when every cached block is in that window
	// (modelled on ublio's up_grace).
	CacheGraceBlocks int

	// PathCacheSize is the number of entries in the resolved-path ring
	// cache (§4.10).
	PathCacheSize int

	// DisableSymlinks causes BSD-mode-S_IFLNK files to be reported as
	// regular files instead of symlinks, matching hfs_volume_config's
	// disable_symlinks flag.
	DisableSymlinks bool

	Logger Logger
}

// DefaultOptions mirrors the defaults the original's hfs_volume_config
// documents: a modest cache, no forced block size, symlinks enabled.
func DefaultOptions() Options {
	return Options{
		CacheBlocks:      1024,
		CacheGraceBlocks: 32,
		PathCacheSize:    128,
	}
}
