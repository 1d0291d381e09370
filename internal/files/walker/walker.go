package walker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/fir/internal/files/filesystem"
	"github.com/vvka-141/fir/internal/ignore"
	"github.com/vvka-141/fir/pkg/fir"
)

// Stats describes what a walk touched.
type Stats struct {
	// FilesVisited lists every non-ignored regular file in traversal order,
	// whether or not it passed the extension filter.
	FilesVisited []string

	// DirsVisited counts directories listed successfully, including the root.
	DirsVisited int

	// Skipped lists directories that could not be listed.
	Skipped []fir.SkippedPath
}

// Walker enumerates candidate files. A Walker holds no per-walk state and may
// be reused; each Walk call returns its own Stats.
type Walker struct {
	fsProvider filesystem.FileSystemProvider
	ignoreSet  *ignore.Set
	extensions map[string]struct{}
	logger     fir.Logger
}

// New creates a Walker. An empty extensions list accepts every regular file.
// Extensions are compared case-insensitively with or without a leading dot.
// Panics if fsProvider, ignoreSet or logger is nil.
func New(fsProvider filesystem.FileSystemProvider, ignoreSet *ignore.Set, extensions []string, logger fir.Logger) *Walker {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if ignoreSet == nil {
		panic("ignoreSet cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	allow := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		if ext = normalizeExt(ext); ext != "" {
			allow[ext] = struct{}{}
		}
	}

	return &Walker{
		fsProvider: fsProvider,
		ignoreSet:  ignoreSet,
		extensions: allow,
		logger:     logger,
	}
}

func normalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}

// Accepts reports whether a file name passes the extension allow-list.
func (w *Walker) Accepts(name string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	_, ok := w.extensions[normalizeExt(filepath.Ext(name))]
	return ok
}

// frame is one directory on the traversal stack.
type frame struct {
	dir     string
	entries []filesystem.FileInfo
	next    int
}

// Walk traverses root and calls visit for each candidate file, in traversal order.
// It returns fir.ErrRootNotFound when root is missing or not a directory;
// no other failure aborts the walk.
func (w *Walker) Walk(root string, visit func(path string)) (Stats, error) {
	var stats Stats

	info, err := w.fsProvider.Stat(root)
	if err != nil {
		return stats, fmt.Errorf("%w: %s: %v", fir.ErrRootNotFound, root, err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("%w: %s is not a directory", fir.ErrRootNotFound, root)
	}

	var stack []*frame
	push := func(dir string) {
		entries, err := w.fsProvider.ReadDir(dir)
		if err != nil {
			w.logger.Error("Skipping directory %s: %v", dir, err)
			stats.Skipped = append(stats.Skipped, fir.SkippedPath{Path: dir, Err: err.Error()})
			return
		}
		stats.DirsVisited++
		stack = append(stack, &frame{dir: dir, entries: entries})
	}

	push(root)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}

		entry := top.entries[top.next]
		top.next++

		name := entry.Name()
		entryPath := filepath.Join(top.dir, name)

		if w.ignoreSet.Matches(name) {
			w.logger.Verbose("Ignoring %s", entryPath)
			continue
		}

		switch {
		case entry.IsDir():
			push(entryPath)
		case filesystem.IsRegular(entry):
			stats.FilesVisited = append(stats.FilesVisited, entryPath)
			if w.Accepts(name) {
				visit(entryPath)
			}
		}
	}

	return stats, nil
}
