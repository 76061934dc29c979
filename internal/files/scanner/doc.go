// Package scanner locates the CSV sources of a load run inside the data directory.
//
// The scanner package is responsible for:
//   - Verifying the data directory exists before any database work starts
//   - Resolving each configured source file and reporting it when absent
//   - Listing CSV files present in the directory that no source refers to
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
