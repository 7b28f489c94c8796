package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_Open(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	d, err := fsys.Open(dir)
	require.NoError(t, err)
	absDir, _ := filepath.Abs(dir)
	assert.Equal(t, absDir, d.Path())

	_, err = fsys.Open(filepath.Join(dir, "nonexistent"))
	assert.Error(t, err)

	file := filepath.Join(dir, "a.xml")
	require.NoError(t, os.WriteFile(file, []byte("<article/>"), 0644))
	_, err = fsys.Open(file)
	assert.Error(t, err)
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "issue1"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "issue1", "a.xml"), []byte("<article/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.xml"), []byte("<article/>"), 0644))

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	var files []string
	err = d.Walk(func(f File, err error) error {
		require.NoError(t, err)
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
			content, readErr := f.ReadContent()
			require.NoError(t, readErr)
			assert.Equal(t, "<article/>", string(content))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.xml", "issue1/a.xml"}, files)
}

func TestOSFileSystem_ReadFileAndStat(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.xml")
	require.NoError(t, os.WriteFile(file, []byte("<article/>"), 0644))
	fsys := NewOSFileSystem()

	data, err := fsys.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "<article/>", string(data))

	info, err := fsys.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, "a.xml", info.Name())

	_, err = fsys.ReadFile(filepath.Join(dir, "nope.xml"))
	assert.Error(t, err)
}
