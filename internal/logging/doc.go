// Package logging provides concrete implementations of the fir.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr (or any writer)
//   - NullLogger: Discards all messages
//   - MemoryLogger: Records messages for assertions in tests
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
