package services

import (
	"sync"

	"github.com/vvka-141/fir/internal/files/filesystem"
)

// countingFS wraps a provider and records every call.
type countingFS struct {
	inner filesystem.FileSystemProvider

	mu        sync.Mutex
	readDirs  []string
	readFiles []string
	stats     []string
}

func newCountingFS(inner filesystem.FileSystemProvider) *countingFS {
	return &countingFS{inner: inner}
}

func (c *countingFS) ReadDir(path string) ([]filesystem.FileInfo, error) {
	c.mu.Lock()
	c.readDirs = append(c.readDirs, path)
	c.mu.Unlock()
	return c.inner.ReadDir(path)
}

func (c *countingFS) ReadFile(path string) ([]byte, error) {
	c.mu.Lock()
	c.readFiles = append(c.readFiles, path)
	c.mu.Unlock()
	return c.inner.ReadFile(path)
}

func (c *countingFS) Stat(path string) (filesystem.FileInfo, error) {
	c.mu.Lock()
	c.stats = append(c.stats, path)
	c.mu.Unlock()
	return c.inner.Stat(path)
}

func (c *countingFS) traversalCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.readDirs) + len(c.readFiles)
}
