package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNotRegularFile is returned when the path points to something other than a regular file.
var ErrNotRegularFile = errors.New("path is not a regular file")

// Source implements config.Source for files on the local filesystem.
type Source struct{}

// NewSource creates a filesystem Source.
func NewSource() *Source {
	return &Source{}
}

// Canonical verifies that fpath names an existing, readable regular file and
// returns its absolute, symlink-resolved path.
func (s *Source) Canonical(fpath string) (string, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return "", fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return "", fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	if !stat.Mode().IsRegular() {
		return "", fmt.Errorf("path %q: %w", cleanPath, ErrNotRegularFile)
	}

	handle, err := os.Open(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return "", fmt.Errorf("open file %q: %w", cleanPath, err)
	}

	_ = handle.Close()

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", fmt.Errorf("absolute path %q: %w", cleanPath, err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks %q: %w", absPath, err)
	}

	return resolved, nil
}

// ReadFile returns the current contents of the file at path.
func (s *Source) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from Canonical
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", path, err)
	}

	return data, nil
}
