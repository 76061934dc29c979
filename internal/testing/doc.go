// Package testing provides helpers shared by integration tests: a LoadService
// wired to real SQLite files and accessors for inspecting the result.
package testing
