//go:build !unix && !windows

package file

import "os"

const lockSupported = false

// No advisory lock here. O_APPEND still keeps each entry in one contiguous
// write, but a failed write cannot be rolled back since another writer may
// already have appended after it.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }

func appendFlag(bool) int { return os.O_APPEND }
