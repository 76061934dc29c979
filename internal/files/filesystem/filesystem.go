package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider gives the loader read access to the data directory.
//
// Implementations report missing paths with errors that satisfy
// errors.Is(err, fs.ErrNotExist).
type FileSystemProvider interface {
	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// OpenFile opens a regular file for streaming reads.
	// The caller must close the returned reader.
	OpenFile(path string) (io.ReadCloser, error)

	// ReadDir returns the entries directly under path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)
}

// IsDir reports whether path exists and is a directory.
func IsDir(provider FileSystemProvider, path string) (bool, error) {
	info, err := provider.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
