package fir

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// MatchMode selects how the search target is recognised in source text.
type MatchMode string

const (
	// ModePathSegment requires the target to follow a path separator
	// ("./utils", "../lib/utils") and qualifies lines by import cues.
	ModePathSegment MatchMode = "path"

	// ModeWord is the legacy whole-word mode: the target may appear anywhere
	// as a complete word on a line that also carries "import" or "require".
	ModeWord MatchMode = "word"
)

// ParseMatchMode converts a user-supplied mode name. An empty string selects ModePathSegment.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModePathSegment:
		return ModePathSegment, nil
	case ModeWord:
		return ModeWord, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (expected %q or %q): %w", s, ModePathSegment, ModeWord, ErrInvalidConfig)
	}
}

// SearchTarget is the file name or token being looked for.
type SearchTarget struct {
	// Name is the token matched in source text, e.g. "utils" for "utils.js".
	Name string `json:"name" yaml:"name"`

	// Extension is the optional extension without the leading dot, e.g. "js".
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
}

// ParseSearchTarget splits a raw argument such as "utils.js" or "src/lib/utils.js"
// into name and extension. Only the base name is considered and the split happens
// at the last dot. A name that starts with a dot and has no other dot (".eslintrc")
// is kept whole.
func ParseSearchTarget(raw string) (SearchTarget, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SearchTarget{}, ErrEmptyTarget
	}

	base := filepath.Base(filepath.FromSlash(raw))
	if base == "." || base == string(filepath.Separator) {
		return SearchTarget{}, ErrEmptyTarget
	}

	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return SearchTarget{Name: base}, nil
	}

	name, ext := base[:idx], base[idx+1:]
	return SearchTarget{Name: name, Extension: ext}, nil
}

// String returns the target as the user would type it.
func (t SearchTarget) String() string {
	if t.Extension == "" {
		return t.Name
	}
	return t.Name + "." + t.Extension
}

// ScanRequest is the complete input of a search.
type ScanRequest struct {
	// Target is the file or token to find.
	Target SearchTarget

	// Root is the directory tree to search.
	Root string

	// IgnoreFile is the project ignore file (one literal entry per line).
	// A missing file contributes no entries.
	IgnoreFile string

	// ExtraIgnore adds entries on top of the built-in list and the ignore file.
	ExtraIgnore []string

	// Extensions restricts scanned files to these extensions. Empty means all files.
	Extensions []string

	// Mode selects path-segment (default) or legacy whole-word matching.
	Mode MatchMode
}

// Validate checks the request for input errors that must be reported before
// any traversal starts.
func (r *ScanRequest) Validate() error {
	var errs []error

	if strings.TrimSpace(r.Target.Name) == "" {
		errs = append(errs, ErrEmptyTarget)
	}

	if r.Mode != "" && r.Mode != ModePathSegment && r.Mode != ModeWord {
		errs = append(errs, fmt.Errorf("unknown match mode %q: %w", r.Mode, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// MatchRecord is a single line that references the target.
type MatchRecord struct {
	// LineNumber is 1-based.
	LineNumber int `json:"lineNumber" yaml:"line_number"`

	// Content is the original line with surrounding whitespace trimmed.
	Content string `json:"content" yaml:"content"`

	// ImportedName is the identifier bound by the import statement, or empty
	// when the line is not a recognised "import <binding> from" statement.
	ImportedName string `json:"importedName,omitempty" yaml:"imported_name,omitempty"`

	// NameCountOnLine counts whole-word occurrences of ImportedName on this line.
	NameCountOnLine int `json:"importedNameCountOnLine" yaml:"imported_name_count_on_line"`

	// NameCountInFile counts whole-word occurrences of ImportedName in the file.
	NameCountInFile int `json:"importedNameCountInFile" yaml:"imported_name_count_in_file"`

	// Unused is true when ImportedName never appears outside the import line.
	Unused bool `json:"isUnused" yaml:"is_unused"`
}

// HasImportedName reports whether an identifier was extracted from the line.
func (m MatchRecord) HasImportedName() bool {
	return m.ImportedName != ""
}

// FileRecord groups the matches of one file in line order.
type FileRecord struct {
	Path    string        `json:"path" yaml:"path"`
	Matches []MatchRecord `json:"matches" yaml:"matches"`
}

// Location returns "path#line" for the given match.
func (f FileRecord) Location(m MatchRecord) string {
	return f.Path + LocationSeparator + strconv.Itoa(m.LineNumber)
}

// UnusedCount returns the number of matches flagged as unused imports.
func (f FileRecord) UnusedCount() int {
	n := 0
	for _, m := range f.Matches {
		if m.Unused {
			n++
		}
	}
	return n
}

// SkippedPath records a directory or file that could not be read.
// Skipped paths never abort a search.
type SkippedPath struct {
	Path string `json:"path" yaml:"path"`
	Err  string `json:"error" yaml:"error"`
}

// ScanResult is the output of a search.
type ScanResult struct {
	// SessionID identifies the search invocation in logs.
	SessionID string `json:"sessionId" yaml:"session_id"`

	Target SearchTarget `json:"target" yaml:"target"`
	Root   string       `json:"root" yaml:"root"`
	Mode   MatchMode    `json:"mode" yaml:"mode"`

	// Files holds one record per file with at least one match, in traversal order.
	Files []FileRecord `json:"files" yaml:"files"`

	// VisitedFiles lists every regular file reached by the walker, in traversal order.
	VisitedFiles []string `json:"-" yaml:"-"`

	// Skipped lists unreadable directories and files.
	Skipped []SkippedPath `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	TotalFilesVisited     int `json:"totalFilesVisited" yaml:"total_files_visited"`
	TotalDirsVisited      int `json:"totalDirsVisited" yaml:"total_dirs_visited"`
	TotalMatches          int `json:"totalMatches" yaml:"total_matches"`
	TotalFilesWithMatches int `json:"totalFilesWithMatches" yaml:"total_files_with_matches"`
	TotalUnused           int `json:"totalUnused" yaml:"total_unused"`
}

// Searcher runs a complete search. Each call is independent; no state is shared
// between calls.
type Searcher interface {
	Search(req ScanRequest) (*ScanResult, error)
}
