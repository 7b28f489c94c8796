package filesystem

import (
	"io/fs"
)

// FileInfo is fs.FileInfo.
type FileInfo = fs.FileInfo

// File is one entry found while walking a directory.
type File interface {
	// Path returns the absolute path.
	Path() string

	// RelativePath returns the slash-separated path below the walked root.
	RelativePath() string

	Info() FileInfo

	ReadContent() ([]byte, error)
}

// Directory is a tree that can be walked.
type Directory interface {
	Path() string

	// Walk calls fn for every entry below the directory, including
	// subdirectories, in lexical order. A non-nil error from fn stops the walk.
	// fn may return fs.SkipDir for a directory to skip its contents.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens directories and reads single files.
type FileSystemProvider interface {
	Open(path string) (Directory, error)
	ReadFile(path string) ([]byte, error)
	Stat(path string) (FileInfo, error)
}
