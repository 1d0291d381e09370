package services

import (
	"github.com/google/uuid"
	"github.com/vvka-141/fir/internal/files/walker"
	"github.com/vvka-141/fir/pkg/fir"
)

// ScanSession accumulates the results of one search invocation.
//
// A session is created per Search call and owned by it; nothing is shared
// between sessions, so concurrent searches never see each other's counters.
// A ScanSession itself is not safe for concurrent use.
type ScanSession struct {
	id     string
	target fir.SearchTarget
	root   string
	mode   fir.MatchMode

	files        []fir.FileRecord
	fileSkips    []fir.SkippedPath
	walk         walker.Stats
	totalMatches int
	totalUnused  int
}

// NewScanSession creates an empty session for the request.
func NewScanSession(req fir.ScanRequest) *ScanSession {
	return &ScanSession{
		id:     uuid.NewString(),
		target: req.Target,
		root:   req.Root,
		mode:   req.Mode,
	}
}

// ID returns the session identifier used to correlate log lines.
func (s *ScanSession) ID() string {
	return s.id
}

// AddRecord appends a file record. Records without matches are dropped.
func (s *ScanSession) AddRecord(record fir.FileRecord) {
	if len(record.Matches) == 0 {
		return
	}
	s.files = append(s.files, record)
	s.totalMatches += len(record.Matches)
	s.totalUnused += record.UnusedCount()
}

// AddSkippedFile records a file that could not be read.
func (s *ScanSession) AddSkippedFile(path string, err error) {
	s.fileSkips = append(s.fileSkips, fir.SkippedPath{Path: path, Err: err.Error()})
}

// SetWalkStats stores the walker's traversal statistics.
func (s *ScanSession) SetWalkStats(stats walker.Stats) {
	s.walk = stats
}

// TotalMatches returns the number of matches accumulated so far.
func (s *ScanSession) TotalMatches() int {
	return s.totalMatches
}

// Result builds the final ScanResult. Slices are copied so later calls to
// the session cannot change a result already handed out.
func (s *ScanSession) Result() *fir.ScanResult {
	skipped := make([]fir.SkippedPath, 0, len(s.walk.Skipped)+len(s.fileSkips))
	skipped = append(skipped, s.walk.Skipped...)
	skipped = append(skipped, s.fileSkips...)

	return &fir.ScanResult{
		SessionID:             s.id,
		Target:                s.target,
		Root:                  s.root,
		Mode:                  s.mode,
		Files:                 append([]fir.FileRecord(nil), s.files...),
		VisitedFiles:          append([]string(nil), s.walk.FilesVisited...),
		Skipped:               skipped,
		TotalFilesVisited:     len(s.walk.FilesVisited),
		TotalDirsVisited:      s.walk.DirsVisited,
		TotalMatches:          s.totalMatches,
		TotalFilesWithMatches: len(s.files),
		TotalUnused:           s.totalUnused,
	}
}
