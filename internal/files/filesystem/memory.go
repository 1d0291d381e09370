package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryNode is a file or directory; children keep insertion order so ReadDir
// behaves like an unsorted directory listing.
type memoryNode struct {
	content  []byte
	info     *memoryFileInfo
	children []string
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	nodes    map[string]*memoryNode // absolute path -> node
	root     string
	failures map[string]error // absolute path -> injected error
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		nodes:    make(map[string]*memoryNode),
		root:     root,
		failures: make(map[string]error),
	}
	mfs.nodes[root] = newDirNode(root)

	return mfs
}

func newDirNode(absPath string) *memoryNode {
	return &memoryNode{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// Root returns the normalized root path.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// resolve turns a relative or absolute path into a cleaned absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if p == mfs.root || strings.HasPrefix(p, mfs.root+"/") {
		return path.Clean(p)
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
// Re-adding an existing path replaces its content and keeps its listing position.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	info := &memoryFileInfo{
		name:    path.Base(absPath),
		size:    int64(len(contentBytes)),
		mode:    0644,
		modTime: modTime,
	}

	if existing, ok := mfs.nodes[absPath]; ok {
		existing.content = contentBytes
		existing.info = info
		return
	}

	mfs.ensureDirectoriesExist(absPath)
	mfs.nodes[absPath] = &memoryNode{content: contentBytes, info: info}
	mfs.link(absPath)
}

// AddDir adds an empty directory (and its parents).
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, ok := mfs.nodes[absPath]; ok {
		return
	}
	mfs.ensureDirectoriesExist(absPath)
	mfs.nodes[absPath] = newDirNode(absPath)
	mfs.link(absPath)
}

// AddSymlink adds a non-regular entry that is neither a directory nor a regular file.
func (mfs *MemoryFileSystem) AddSymlink(linkPath string) {
	absPath := mfs.resolve(linkPath)
	mfs.ensureDirectoriesExist(absPath)
	mfs.nodes[absPath] = &memoryNode{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0777 | fs.ModeSymlink,
			modTime: time.Now(),
		},
	}
	mfs.link(absPath)
}

// FailOn makes ReadDir and ReadFile return err for the given path.
func (mfs *MemoryFileSystem) FailOn(p string, err error) {
	mfs.failures[mfs.resolve(p)] = err
}

// link registers absPath as a child of its parent directory.
func (mfs *MemoryFileSystem) link(absPath string) {
	parent := path.Dir(absPath)
	if parent == absPath {
		return
	}
	if dir, ok := mfs.nodes[parent]; ok {
		dir.children = append(dir.children, path.Base(absPath))
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath {
		return
	}
	if _, exists := mfs.nodes[dir]; exists {
		return
	}

	mfs.ensureDirectoriesExist(dir)
	mfs.nodes[dir] = newDirNode(dir)
	mfs.link(dir)
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.resolve(dirPath)
	if err, ok := mfs.failures[absPath]; ok {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", dirPath, fs.ErrNotExist)
	}
	if !node.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	result := make([]FileInfo, 0, len(node.children))
	for _, name := range node.children {
		result = append(result, mfs.nodes[path.Join(absPath, name)].info)
	}
	return result, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)
	if err, ok := mfs.failures[absPath]; ok {
		return nil, err
	}

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if node.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return node.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}

	return node.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
