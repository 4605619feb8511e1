// Package system abstracts file access so documents and rulesets can be
// loaded from disk or from an in-memory fs.FS in tests.
package system

import (
	"io/fs"
	"os"
	"path/filepath"
)

type VirtualFS interface {
	fs.FS
}

// FileSystem is a VirtualFS backed by the operating system. Unlike os.DirFS it
// accepts absolute and relative OS paths.
type FileSystem struct{}

var (
	_ VirtualFS     = (*FileSystem)(nil)
	_ fs.GlobFS     = (*FileSystem)(nil)
	_ fs.ReadFileFS = (*FileSystem)(nil)
)

func (fs *FileSystem) Open(name string) (fs.File, error) {
	return os.Open(name) //nolint:gosec
}

func (fs *FileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec
}

func (fs *FileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// ReadFile reads name from fsys.
func ReadFile(fsys VirtualFS, name string) ([]byte, error) {
	return fs.ReadFile(fsys, name)
}

// Expand resolves each pattern against fsys. Patterns without glob
// metacharacters are returned as-is so a missing file surfaces when it is read.
func Expand(fsys VirtualFS, patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches := []string{pattern}
		if hasMeta(pattern) {
			var err error
			matches, err = fs.Glob(fsys, pattern)
			if err != nil {
				return nil, err
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '\\':
			return true
		}
	}
	return false
}
