package report

import (
	"fmt"
	"io"

	"github.com/vvka-141/fir/pkg/fir"
)

// Options controls rendering.
type Options struct {
	Format Format

	// UnusedOnly keeps only matches flagged as unused imports.
	UnusedOnly bool

	// Color enables terminal styling in text output.
	Color bool

	// Summary appends the "N files - M results" line to text output.
	Summary bool
}

// Render writes result to w in the requested format.
func Render(w io.Writer, result *fir.ScanResult, opts Options) error {
	if opts.UnusedOnly {
		result = UnusedOnly(result)
	}

	switch opts.Format {
	case "", FormatText:
		return renderText(w, result, opts)
	case FormatJSON:
		return renderJSON(w, result)
	case FormatYAML:
		return renderYAML(w, result)
	default:
		return fmt.Errorf("unknown output format %q: %w", opts.Format, fir.ErrInvalidConfig)
	}
}

// Summary returns "N files - M results" where N counts files with matches.
func Summary(result *fir.ScanResult) string {
	return fmt.Sprintf("%d files - %d results", result.TotalFilesWithMatches, result.TotalMatches)
}

// UnusedOnly returns a copy of result holding only unused-import matches.
// Files left without matches are dropped and totals are recomputed.
func UnusedOnly(result *fir.ScanResult) *fir.ScanResult {
	filtered := *result
	filtered.Files = nil
	filtered.TotalMatches = 0

	for _, file := range result.Files {
		var kept []fir.MatchRecord
		for _, m := range file.Matches {
			if m.Unused {
				kept = append(kept, m)
			}
		}
		if len(kept) == 0 {
			continue
		}
		filtered.Files = append(filtered.Files, fir.FileRecord{Path: file.Path, Matches: kept})
		filtered.TotalMatches += len(kept)
	}

	filtered.TotalFilesWithMatches = len(filtered.Files)
	filtered.TotalUnused = filtered.TotalMatches
	return &filtered
}
