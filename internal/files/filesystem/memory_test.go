package filesystem

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkPaths(t *testing.T, d Directory) []string {
	t.Helper()
	var paths []string
	err := d.Walk(func(f File, err error) error {
		require.NoError(t, err)
		paths = append(paths, f.RelativePath())
		return nil
	})
	require.NoError(t, err)
	return paths
}

func TestMemoryFileSystem_Walk(t *testing.T) {
	mfs := NewMemoryFileSystem("/pkgs")
	mfs.AddFile("b.xml", "<article/>")
	mfs.AddFile("issue1/a.xml", "<article/>")

	dir, err := mfs.Open("/pkgs")
	require.NoError(t, err)

	assert.Equal(t, []string{"b.xml", "issue1", "issue1/a.xml"}, walkPaths(t, dir))
}

func TestMemoryFileSystem_WalkSubdirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/pkgs")
	mfs.AddFile("issue1/a.xml", "<article/>")
	mfs.AddFile("issue10/b.xml", "<article/>")

	dir, err := mfs.Open("issue1")
	require.NoError(t, err)

	assert.Equal(t, []string{"a.xml"}, walkPaths(t, dir))
}

func TestMemoryFileSystem_SkipDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/pkgs")
	mfs.AddFile(".git/config.xml", "x")
	mfs.AddFile("a.xml", "<article/>")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	var seen []string
	err = dir.Walk(func(f File, err error) error {
		if f.Info().IsDir() {
			return fs.SkipDir
		}
		seen = append(seen, f.RelativePath())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xml"}, seen)
}

func TestMemoryFileSystem_CallbackPanic(t *testing.T) {
	mfs := NewMemoryFileSystem("/pkgs")
	mfs.AddFile("a.xml", "<article/>")
	dir, err := mfs.Open("/pkgs")
	require.NoError(t, err)

	err = dir.Walk(func(File, error) error { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestMemoryFileSystem_ReadFileAndStat(t *testing.T) {
	mfs := NewMemoryFileSystem("/pkgs")
	mfs.AddFile("a.xml", "<article/>")

	content, err := mfs.ReadFile("/pkgs/a.xml")
	require.NoError(t, err)
	assert.Equal(t, "<article/>", string(content))

	info, err := mfs.Stat("a.xml")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(10), info.Size())

	_, err = mfs.ReadFile("/pkgs")
	assert.Error(t, err)
	_, err = mfs.Stat("missing.xml")
	assert.Error(t, err)
	_, err = mfs.Open("a.xml")
	assert.Error(t, err)
}
