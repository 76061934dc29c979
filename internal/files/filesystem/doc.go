// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The loader only needs to stat paths, list the data directory, and stream CSV
// files. Hiding those calls behind FileSystemProvider lets unit tests run against
// an in-memory tree while production code uses the OS filesystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
