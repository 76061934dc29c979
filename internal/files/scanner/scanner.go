package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/ecomload/internal/files/filesystem"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// Scanner checks the data directory and its source files.
// Scanner is safe for concurrent use as long as the filesystem provider is.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// VerifyDirectory returns ecomload.ErrMissingDirectory when dir does not exist
// or is not a directory. It has no side effects.
func (s *Scanner) VerifyDirectory(dir string) error {
	isDir, err := filesystem.IsDir(s.fsProvider, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ecomload.ErrMissingDirectory, absPath(dir))
		}
		return fmt.Errorf("failed to access data directory %s: %w", dir, err)
	}
	if !isDir {
		return fmt.Errorf("%w: %s is not a directory", ecomload.ErrMissingDirectory, absPath(dir))
	}
	return nil
}

// VerifyFile returns ecomload.ErrMissingFile naming path when no regular
// file exists there.
func (s *Scanner) VerifyFile(path string) error {
	info, err := s.fsProvider.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ecomload.ErrMissingFile, path)
		}
		return fmt.Errorf("failed to access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ecomload.ErrMissingFile, path)
	}
	return nil
}

// SourcePath returns the location of src inside dir.
func SourcePath(dir string, src ecomload.Source) string {
	return filepath.Join(dir, src.File)
}

// Unreferenced returns the names of .csv files directly under dir that no
// source refers to. They are left alone by the loader.
func (s *Scanner) Unreferenced(dir string, sources []ecomload.Source) ([]string, error) {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(sources))
	for _, src := range sources {
		known[src.File] = true
	}

	var extra []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		if !known[entry.Name()] {
			extra = append(extra, entry.Name())
		}
	}
	return extra, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
