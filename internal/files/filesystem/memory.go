package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

func (f *memoryFileInfo) Mode() fs.FileMode {
	if f.isDir {
		return 0755 | fs.ModeDir
	}
	return 0644
}

type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	var entries []*memoryFile
	for p, f := range d.fs.files {
		if p != d.absPath && strings.HasPrefix(p, strings.TrimSuffix(d.absPath, "/")+"/") {
			entries = append(entries, f)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	var skipped []string
	for _, entry := range entries {
		if isBelowAny(entry.absPath, skipped) {
			continue
		}
		rel := strings.TrimPrefix(entry.absPath, strings.TrimSuffix(d.absPath, "/")+"/")
		view := &memoryFile{absPath: entry.absPath, relPath: rel, content: entry.content, info: entry.info}
		err := walkCallback(fn, view)
		if err == fs.SkipDir && entry.info.isDir {
			skipped = append(skipped, entry.absPath)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func isBelowAny(p string, dirs []string) bool {
	for _, d := range dirs {
		if strings.HasPrefix(p, d+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider in memory, for tests.
// Paths use forward slashes; relative paths resolve against the root.
type MemoryFileSystem struct {
	files map[string]*memoryFile
	root  string
}

// NewMemoryFileSystem creates an empty tree rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{files: make(map[string]*memoryFile), root: path.Clean(filepath.ToSlash(root))}
	mfs.addDir(mfs.root)
	return mfs
}

// AddFile adds a file and its parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	abs := mfs.resolve(filePath)
	mfs.files[abs] = &memoryFile{
		absPath: abs,
		content: []byte(content),
		info:    &memoryFileInfo{name: path.Base(abs), size: int64(len(content)), modTime: time.Now()},
	}
	for dir := path.Dir(abs); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, ok := mfs.files[dir]; ok {
			break
		}
		mfs.addDir(dir)
	}
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.files[dir] = &memoryFile{
		absPath: dir,
		info:    &memoryFileInfo{name: path.Base(dir), modTime: time.Now(), isDir: true},
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	abs := mfs.resolve(openPath)
	f, ok := mfs.files[abs]
	if !ok {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !f.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: abs, fs: mfs}, nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	f, ok := mfs.files[mfs.resolve(filePath)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if f.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return f.content, nil
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	f, ok := mfs.files[mfs.resolve(statPath)]
	if !ok {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return f.info, nil
}
