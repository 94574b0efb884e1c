package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wallgrab/pkg/errors"
)

func TestNewManagerCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")

	manager, err := NewManager(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, filepath.IsAbs(manager.GetOutputDir()))
	assert.Zero(t, manager.SavedCount())

	// creating it again is fine
	_, err = NewManager(dir)
	assert.NoError(t, err)
}

func TestNewManagerFailsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := NewManager(file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrorTypeStorage))
}

func TestSave(t *testing.T) {
	tempDir := t.TempDir()
	manager, err := NewManager(tempDir)
	require.NoError(t, err)

	path, err := manager.Save("city-skyline-1920x1080.jpg", []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(manager.GetOutputDir(), "city-skyline-1920x1080.jpg"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))

	// same name overwrites
	_, err = manager.Save("city-skyline-1920x1080.jpg", []byte("second"))
	require.NoError(t, err)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
	assert.Equal(t, 2, manager.SavedCount())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestSaveRejectsBadNames(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "a/b.jpg", `a\b.jpg`} {
		_, err := manager.Save(name, []byte("x"))
		assert.Error(t, err, "name %q", name)
	}
	assert.Zero(t, manager.SavedCount())
}

func TestFileNameFromLink(t *testing.T) {
	tests := map[string]string{
		"/download/city-skyline-1920x1080.jpg":                          "city-skyline-1920x1080.jpg",
		"https://wallpaperswide.com/download/forest-mist-1920x1080.jpg": "forest-mist-1920x1080.jpg",
		"plain-1920x1080.jpg": "plain-1920x1080.jpg",
		"/download/":          "",
	}

	for link, want := range tests {
		assert.Equal(t, want, FileNameFromLink(link), "link %q", link)
	}
}
