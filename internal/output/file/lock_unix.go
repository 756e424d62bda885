//go:build unix

package file

import (
	"os"

	"golang.org/x/sys/unix"
)

const lockSupported = true

// lockFile takes an exclusive advisory lock, blocking until other writers
// using the same discipline release theirs.
func lockFile(f *os.File) error {
	for {
		err := unix.Flock(int(f.Fd()), unix.LOCK_EX)
		if err != unix.EINTR {
			return err
		}
	}
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

// appendFlag keeps O_APPEND on unix; Truncate works on such a handle.
func appendFlag(bool) int { return os.O_APPEND }
