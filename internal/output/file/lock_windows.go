//go:build windows

package file

import (
	"os"

	"golang.org/x/sys/windows"
)

const lockSupported = true

// lockFile locks the whole byte range exclusively. Other lockers wait; only
// this handle may write until unlockFile.
func lockFile(f *os.File) error {
	return windows.LockFileEx(windows.Handle(f.Fd()), windows.LOCKFILE_EXCLUSIVE_LOCK,
		0, ^uint32(0), ^uint32(0), new(windows.Overlapped))
}

func unlockFile(f *os.File) error {
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, ^uint32(0), ^uint32(0), new(windows.Overlapped))
}

// appendFlag drops O_APPEND when the lock will be held: an O_APPEND handle on
// Windows has no FILE_WRITE_DATA access, so Truncate could not roll back a
// failed write. The caller seeks to EOF under the lock instead.
func appendFlag(locking bool) int {
	if locking {
		return 0
	}
	return os.O_APPEND
}
