// Package fsops provides the filesystem operations used to reconcile output trees.
//
// All filesystem access in abisync goes through the FS interface. The
// production implementation and the in-memory one used by tests are both
// backed by go-billy, so the same code path is exercised either way.
//
// Key features:
//   - Byte-for-byte file copies that preserve permission bits
//   - Recursive removal of directory trees
//   - Testable via NewMemFS
package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]os.FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// CopyFile copies a regular file from src to dst, replacing dst.
	CopyFile(src, dst string) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(path string) error

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating parent directories.
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// BillyFS implements FS on top of a billy.Filesystem.
type BillyFS struct {
	fs billy.Filesystem
}

// NewBillyFS wraps an existing billy filesystem.
func NewBillyFS(fs billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fs}
}

// NewOSFS returns an FS over the real disk. Paths should be absolute.
func NewOSFS() *BillyFS {
	return NewBillyFS(osfs.New(string(filepath.Separator)))
}

// NewMemFS returns an empty in-memory FS.
func NewMemFS() *BillyFS {
	return NewBillyFS(memfs.New())
}

// Stat returns file info, following symlinks.
func (b *BillyFS) Stat(path string) (os.FileInfo, error) {
	return b.fs.Stat(path)
}

// Exists checks if a path exists.
func (b *BillyFS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
}

// IsDir reports whether path exists and is a directory.
func (b *BillyFS) IsDir(path string) (bool, error) {
	info, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return info.IsDir(), nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
}

// ReadDir lists the entries of a directory.
func (b *BillyFS) ReadDir(path string) ([]os.FileInfo, error) {
	entries, err := b.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	return entries, nil
}

// MkdirAll creates a directory and all parent directories.
func (b *BillyFS) MkdirAll(path string, perm os.FileMode) error {
	return b.fs.MkdirAll(path, perm)
}

// CopyFile copies a regular file from src to dst, truncating any existing
// dst. The source's permission bits are carried over.
func (b *BillyFS) CopyFile(src, dst string) error {
	srcInfo, err := b.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("cannot copy directory %q as a file", src)
	}

	srcFile, err := b.fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	if err := b.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	dstFile, err := b.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination: %w", err)
	}
	return nil
}

// RemoveAll removes a path and all its contents. A missing path is not an error.
func (b *BillyFS) RemoveAll(path string) error {
	return util.RemoveAll(b.fs, path)
}

// Open opens a file for reading.
func (b *BillyFS) Open(path string) (io.ReadCloser, error) {
	return b.fs.Open(path)
}

// ReadFile reads the entire contents of a file.
func (b *BillyFS) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(b.fs, path)
}

// WriteFile writes data to path, creating parent directories.
func (b *BillyFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := b.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	return util.WriteFile(b.fs, path, data, perm)
}
