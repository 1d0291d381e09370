package scanner

import (
	"fmt"
	"strings"

	"github.com/vvka-141/fir/internal/files/filesystem"
	"github.com/vvka-141/fir/internal/matcher"
	"github.com/vvka-141/fir/pkg/fir"
)

// Scanner reads candidate files and reports the lines that reference a target.
// Scanner holds no per-scan state and is safe for concurrent use as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	mode       fir.MatchMode
}

// NewScanner creates a new reference scanner for the given match mode.
// Uses OS filesystem by default.
func NewScanner(mode fir.MatchMode) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), mode)
}

// NewScannerWithFS creates a new reference scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// An empty mode selects fir.ModePathSegment.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, mode fir.MatchMode) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if mode == "" {
		mode = fir.ModePathSegment
	}
	return &Scanner{
		fsProvider: fsProvider,
		mode:       mode,
	}
}

// Mode returns the match mode in use.
func (s *Scanner) Mode() fir.MatchMode {
	return s.mode
}

// ScanFile reads path and returns its record.
// The boolean is false when the file holds no qualifying line.
// A read error is returned to the caller, which decides whether to continue.
func (s *Scanner) ScanFile(path string, target fir.SearchTarget) (fir.FileRecord, bool, error) {
	content, err := s.fsProvider.ReadFile(path)
	if err != nil {
		return fir.FileRecord{}, false, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	record, ok := s.ScanContent(path, string(content), target)
	return record, ok, nil
}

// ScanContent applies the reference rules to already loaded content.
func (s *Scanner) ScanContent(path, content string, target fir.SearchTarget) (fir.FileRecord, bool) {
	record := fir.FileRecord{Path: path}

	// whole-file short-circuit before splitting into lines
	if !matcher.ContainsTarget(content, target.Name, s.mode) {
		return record, false
	}

	for i, line := range strings.Split(content, "\n") {
		if !matcher.IsReference(line, target.Name, s.mode) {
			continue
		}

		match := fir.MatchRecord{
			LineNumber: i + 1,
			Content:    strings.TrimSpace(line),
		}

		if name, ok := matcher.ExtractImportedName(line); ok {
			usage := matcher.ClassifyUsage(name, line, content)
			match.ImportedName = name
			match.NameCountOnLine = usage.OnLine
			match.NameCountInFile = usage.InFile
			match.Unused = usage.Unused
		}

		record.Matches = append(record.Matches, match)
	}

	return record, len(record.Matches) > 0
}
