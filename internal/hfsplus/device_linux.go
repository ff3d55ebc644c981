// Copyright (c) Elliot Nunn
// Licensed under the MIT license

//go:build linux

package hfsplus

import (
	"os"

	"golang.org/x/sys/unix"
)

// detectBlockSize asks the kernel for a block device's logical sector size
// via BLKSSZGET, falling back to 512 for anything that isn't a block
// device (a plain disk image file, for instance) or that the ioctl fails
// against.
func detectBlockSize(f *os.File) uint32 {
	sz, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKSSZGET)
	if err != nil || sz <= 0 {
		return 512
	}
	return uint32(sz)
}
