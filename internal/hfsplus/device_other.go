// Copyright (c) Elliot Nunn
// Licensed under the MIT license

//go:build !linux

package hfsplus

import "os"

// detectBlockSize has no portable ioctl outside Linux; callers needing an
// exact sector size on other platforms should set
// Options.BlockSize explicitly.
func detectBlockSize(f *os.File) uint32 {
	return 512
}
