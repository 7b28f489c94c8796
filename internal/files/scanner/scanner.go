package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/jatsmeta/internal/files/filesystem"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// Document is a discovered article file. Content is read on demand.
type Document struct {
	Path         string
	RelativePath string
	Size         int64

	read func() ([]byte, error)
}

// Content reads the document bytes.
func (d Document) Content() ([]byte, error) {
	return d.read()
}

// Scanner discovers documents on a filesystem provider.
// It is safe for concurrent use if the provider is.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a scanner over a custom provider.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// Scan returns the documents at path. It fails with jatsmeta.ErrNoDocuments
// when a directory holds no XML file.
func (s *Scanner) Scan(path string) ([]Document, error) {
	info, err := s.fsProvider.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}
	if !info.IsDir() {
		return []Document{{
			Path:         path,
			RelativePath: filepath.Base(path),
			Size:         info.Size(),
			read:         func() ([]byte, error) { return s.fsProvider.ReadFile(path) },
		}}, nil
	}

	dir, err := s.fsProvider.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var docs []Document
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		name := file.Info().Name()
		if file.Info().IsDir() {
			if strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !IsXMLFile(name) {
			return nil
		}
		docs = append(docs, Document{
			Path:         file.Path(),
			RelativePath: file.RelativePath(),
			Size:         file.Info().Size(),
			read:         file.ReadContent,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", jatsmeta.ErrNoDocuments, path)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].RelativePath < docs[j].RelativePath
	})
	return docs, nil
}

// IsXMLFile reports whether name has an .xml extension, in any letter case.
func IsXMLFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".xml")
}
