package services

import (
	"fmt"

	"github.com/vvka-141/fir/internal/files/filesystem"
	"github.com/vvka-141/fir/internal/files/scanner"
	"github.com/vvka-141/fir/internal/files/walker"
	"github.com/vvka-141/fir/internal/ignore"
	"github.com/vvka-141/fir/pkg/fir"
)

// SearchService wires the ignore set, walker and scanner into one search.
//
// Walking and scanning happen synchronously on the calling goroutine: each
// candidate file is read and scanned before the walker moves on. All
// counters live in a ScanSession created per call, so a SearchService may
// serve concurrent Search calls as long as fsProvider and logger are
// thread-safe.
type SearchService struct {
	fsProvider filesystem.FileSystemProvider
	logger     fir.Logger
}

// NewSearchService creates a SearchService.
//
// Panics if any dependency is nil. This is intentional fail-fast behavior
// to prevent cryptic nil pointer dereferences later.
func NewSearchService(fsProvider filesystem.FileSystemProvider, logger fir.Logger) *SearchService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &SearchService{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// Search finds every file under req.Root that references req.Target.
//
// Input errors (fir.ErrEmptyTarget, fir.ErrRootNotFound, fir.ErrInvalidConfig)
// are returned before any traversal starts. Unreadable directories and files
// are logged, listed in ScanResult.Skipped and never abort the search.
func (s *SearchService) Search(req fir.ScanRequest) (*fir.ScanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Mode == "" {
		req.Mode = fir.ModePathSegment
	}

	if err := s.checkRoot(req.Root); err != nil {
		return nil, err
	}

	session := NewScanSession(req)
	s.logger.Verbose("[%s] Searching %q (name %q) in %s, mode %s",
		session.ID(), req.Target.String(), req.Target.Name, req.Root, req.Mode)

	ignoreSet := ignore.Load(s.fsProvider, req.IgnoreFile, req.ExtraIgnore, s.logger)
	s.logger.Verbose("[%s] Ignore entries: %v", session.ID(), ignoreSet.Entries())

	fileWalker := walker.New(s.fsProvider, ignoreSet, req.Extensions, s.logger)
	fileScanner := scanner.NewScannerWithFS(s.fsProvider, req.Mode)

	stats, err := fileWalker.Walk(req.Root, func(path string) {
		record, ok, err := fileScanner.ScanFile(path, req.Target)
		if err != nil {
			s.logger.Error("Skipping file: %v", err)
			session.AddSkippedFile(path, err)
			return
		}
		if ok {
			s.logger.Verbose("[%s] %s: %d match(es)", session.ID(), path, len(record.Matches))
			session.AddRecord(record)
		}
	})
	if err != nil {
		return nil, err
	}
	session.SetWalkStats(stats)

	result := session.Result()
	s.logger.Verbose("[%s] Visited %d files in %d directories, %d match(es) in %d file(s)",
		session.ID(), result.TotalFilesVisited, result.TotalDirsVisited,
		result.TotalMatches, result.TotalFilesWithMatches)

	return result, nil
}

func (s *SearchService) checkRoot(root string) error {
	info, err := s.fsProvider.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s", fir.ErrRootNotFound, root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", fir.ErrRootNotFound, root)
	}
	return nil
}

var _ fir.Searcher = (*SearchService)(nil)
