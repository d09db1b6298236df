package adapter

import (
	"os"
	"path/filepath"
)

// FileSystem defines an interface for file system operations to enable mocking
//
//go:generate mockgen -source=filesystem.go -destination=../mocks/filesystem.go -package=mocks -mock_names=FileSystem=MockFileSystem
type FileSystem interface {
	// ReadFile reads the named file
	ReadFile(name string) ([]byte, error)

	// Glob returns the names of all files matching pattern
	Glob(pattern string) ([]string, error)
}

// RealFileSystem implements FileSystem using the standard os package
type RealFileSystem struct{}

// NewFileSystem creates a new real file system
func NewFileSystem() FileSystem {
	return &RealFileSystem{}
}

// ReadFile reads the named file
func (fs *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec,G304
}

// Glob returns the names of all files matching pattern
func (fs *RealFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}
