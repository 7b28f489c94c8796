// Package filesystem abstracts the files the CLI reads, so discovery can be
// tested against an in-memory tree.
//
// Implementations:
//   - OSFileSystem: the operating system filesystem
//   - MemoryFileSystem: an in-memory tree for tests
package filesystem
