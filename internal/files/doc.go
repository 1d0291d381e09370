// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - walker: Depth-first directory traversal with ignore filtering
//   - scanner: Per-file reference detection and usage classification
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/fir/internal/files/filesystem"
//	    "github.com/vvka-141/fir/internal/files/scanner"
//	    "github.com/vvka-141/fir/internal/files/walker"
//	)
//
//	fsProvider := filesystem.NewOSFileSystem()
//	w := walker.New(fsProvider, ignoreSet, nil, logger)
//	s := scanner.NewScanner(fsProvider, fir.ModePathSegment)
//	stats, err := w.Walk("./src", func(path string) {
//	    record, ok, err := s.ScanFile(path, target)
//	    ...
//	})
package files
