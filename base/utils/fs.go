package utils

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// PathExists returns whether the given path (file or dir) exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || errors.Is(err, fs.ErrExist)
}

// IsRegularFile returns whether path exists and, after following symlinks,
// is a regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsExecutable returns whether path is a regular file the current user may execute.
// The permission check is done by the kernel, so ACLs and the effective user are
// taken into account.
func IsExecutable(path string) bool {
	if !IsRegularFile(path) {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
