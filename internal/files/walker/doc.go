// Package walker enumerates candidate files under a search root.
//
// Traversal is depth-first and follows the order in which the
// filesystem.FileSystemProvider lists each directory, exactly as a recursive
// walk would, but uses an explicit stack so deeply nested trees cannot exhaust
// the call stack.
//
// Entries whose name matches the ignore set are skipped entirely: ignored
// directories are not descended into and ignored files are not counted as
// visited. A directory that cannot be listed is logged and skipped; the walk
// continues with the rest of the tree.
package walker
