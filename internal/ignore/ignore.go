// Package ignore builds the set of name fragments excluded from traversal.
//
// Entries are literal strings, not glob patterns. A name is ignored when an
// entry contains it or it contains an entry, so "node_modules" is excluded by
// both "node_modules" and "/node_modules/".
package ignore

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"strings"

	"github.com/vvka-141/fir/internal/files/filesystem"
	"github.com/vvka-141/fir/pkg/fir"
)

// Set is an immutable collection of ignore entries.
type Set struct {
	entries []string
}

// New creates a Set from the given entries. Blank entries are dropped and
// duplicates are kept once, in first-seen order.
func New(entries ...string) *Set {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return &Set{entries: out}
}

// Matches reports whether name should be excluded.
func (s *Set) Matches(name string) bool {
	if name == "" {
		return false
	}
	for _, e := range s.entries {
		if strings.Contains(e, name) || strings.Contains(name, e) {
			return true
		}
	}
	return false
}

// Entries returns a copy of the entries.
func (s *Set) Entries() []string {
	return append([]string(nil), s.entries...)
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// ParseIgnoreFile extracts entries from ignore-file content: one entry per
// line, blank lines dropped, and any line containing '#' dropped entirely.
func ParseIgnoreFile(content []byte) []string {
	var entries []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.Contains(line, fir.IgnoreCommentMarker) {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

// Load builds the Set for a search: built-in entries, then extra entries,
// then the lines of ignoreFile. A missing ignore file contributes nothing.
// Any other read failure is logged and also contributes nothing.
func Load(fsProvider filesystem.FileSystemProvider, ignoreFile string, extra []string, logger fir.Logger) *Set {
	entries := append([]string(nil), fir.BuiltinIgnore...)
	entries = append(entries, extra...)

	if ignoreFile == "" {
		return New(entries...)
	}

	content, err := fsProvider.ReadFile(ignoreFile)
	switch {
	case err == nil:
		fileEntries := ParseIgnoreFile(content)
		logger.Verbose("Loaded %d ignore entries from %s", len(fileEntries), ignoreFile)
		entries = append(entries, fileEntries...)
	case errors.Is(err, fs.ErrNotExist):
		logger.Verbose("Ignore file %s does not exist, using built-in entries only", ignoreFile)
	default:
		logger.Error("Failed to read ignore file %s: %v", ignoreFile, err)
	}

	return New(entries...)
}
