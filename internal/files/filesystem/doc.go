// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The walker and scanner never touch the os package directly; they go through
// FileSystemProvider so the same traversal can run against the OS filesystem
// in production and an in-memory tree in tests.
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing, with error injection
package filesystem
