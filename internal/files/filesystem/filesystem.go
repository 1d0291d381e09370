package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider gives read-only access to a directory tree.
type FileSystemProvider interface {
	// ReadDir lists the direct children of a directory in the order the
	// underlying store yields them. Callers must not assume sorted output.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// IsRegular reports whether info describes a regular file.
// Symlinks, devices and sockets are not regular files.
func IsRegular(info FileInfo) bool {
	return info.Mode().IsRegular()
}
