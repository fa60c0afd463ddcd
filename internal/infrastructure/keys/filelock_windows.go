//go:build windows

package keys

import (
	"os"

	"golang.org/x/sys/windows"
)

const allBytes = ^uint32(0)

// lockFile blocks until a lock on the whole of f is granted.
func lockFile(f *os.File, exclusive bool) error {
	var flags uint32
	if exclusive {
		flags = windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	return windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, allBytes, allBytes, &windows.Overlapped{})
}

func unlockFile(f *os.File) error {
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, allBytes, allBytes, &windows.Overlapped{})
}
