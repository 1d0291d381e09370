package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/fir/pkg/fir"
)

// Level identifies which Logger method produced an Entry.
type Level string

const (
	LevelVerbose Level = "verbose"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Entry is one recorded message.
type Entry struct {
	Level   Level
	Message string
}

// MemoryLogger records every message, including verbose ones.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryLogger creates an empty MemoryLogger.
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) record(level Level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *MemoryLogger) Verbose(format string, args ...interface{}) {
	l.record(LevelVerbose, format, args)
}

func (l *MemoryLogger) Info(format string, args ...interface{}) {
	l.record(LevelInfo, format, args)
}

func (l *MemoryLogger) Error(format string, args ...interface{}) {
	l.record(LevelError, format, args)
}

// Entries returns a copy of the recorded entries.
func (l *MemoryLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Count returns the number of entries at the given level.
func (l *MemoryLogger) Count(level Level) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Contains reports whether any entry at level contains substr.
func (l *MemoryLogger) Contains(level Level, substr string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

var _ fir.Logger = (*MemoryLogger)(nil)
