package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wallgrab/pkg/errors"
)

// Manager writes downloaded wallpapers into a single output directory
type Manager struct {
	outputDir  string
	savedCount int
}

// NewManager creates the output directory if needed and returns a manager for it
func NewManager(outputDir string) (*Manager, error) {
	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, errors.New(errors.ErrorTypeStorage, "failed to resolve output directory", err)
	}

	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, errors.New(errors.ErrorTypeStorage, "failed to create output directory", err)
	}

	return &Manager{outputDir: absDir}, nil
}

// FileNameFromLink returns the final '/'-separated segment of link
func FileNameFromLink(link string) string {
	if i := strings.LastIndex(link, "/"); i != -1 {
		return link[i+1:]
	}
	return link
}

// Save writes data to <outputDir>/<fileName>, replacing any existing file
func (m *Manager) Save(fileName string, data []byte) (string, error) {
	if err := validateFileName(fileName); err != nil {
		return "", err
	}

	filename := filepath.Join(m.outputDir, fileName)

	// Write to a temporary file first so a failed write never leaves a truncated image
	tempFile := filename + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		os.Remove(tempFile)
		return "", errors.New(errors.ErrorTypeStorage, fmt.Sprintf("failed to write %s", fileName), err)
	}

	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return "", errors.New(errors.ErrorTypeStorage, fmt.Sprintf("failed to rename temporary file for %s", fileName), err)
	}

	m.savedCount++
	return filename, nil
}

func validateFileName(fileName string) error {
	switch {
	case fileName == "", fileName == ".", fileName == "..":
		return errors.New(errors.ErrorTypeStorage, fmt.Sprintf("invalid file name %q", fileName), nil)
	case strings.ContainsAny(fileName, `/\`):
		return errors.New(errors.ErrorTypeStorage, fmt.Sprintf("file name %q contains a path separator", fileName), nil)
	}
	return nil
}

// GetOutputDir returns the absolute output directory path
func (m *Manager) GetOutputDir() string {
	return m.outputDir
}

// SavedCount returns the number of files written by this manager
func (m *Manager) SavedCount() int {
	return m.savedCount
}
