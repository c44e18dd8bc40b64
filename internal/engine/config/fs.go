package config

import (
	"os"
)

// FileSystem abstracts file system operations for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	UserHomeDir() (string, error)
	IsNotExist(err error) bool
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct{}

// ReadFile reads the named file and returns the contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) // #nosec G304 -- config path comes from the user's home or an explicit --config flag.
}

// UserHomeDir returns the current user's home directory.
func (r *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// IsNotExist reports whether err indicates a missing file.
func (r *RealFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}
