// Package bundle provides access to the named-blob store that ships the
// game's text resources. A bundle is an opaque set of named entries; the
// entry set is fixed for the lifetime of the process. Backends exist for
// plain directories, zip archives and the embedded default bundle.
package bundle

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
)

// ErrEntryNotFound is returned by Open when the bundle has no entry with
// the requested name.
var ErrEntryNotFound = errors.New("bundle: entry not found")

// Bundle is a read-only store of named byte entries.
type Bundle interface {
	// EntryNames returns the names of all entries in the bundle.
	EntryNames() []string
	// Open opens the named entry for reading. The caller must close the
	// returned reader. A missing entry yields ErrEntryNotFound.
	Open(name string) (io.ReadCloser, error)
}

// fsBundle adapts any fs.FS into a Bundle. Entry names are collected once
// at construction since the entry set never changes.
type fsBundle struct {
	fsys  fs.FS
	names []string
}

// New creates a Bundle backed by the given filesystem. All regular files
// in the tree become entries, named by their slash-separated path.
func New(fsys fs.FS) (Bundle, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bundle entries: %w", err)
	}
	sort.Strings(names)
	return &fsBundle{fsys: fsys, names: names}, nil
}

// NewDir creates a Bundle backed by a directory on disk.
func NewDir(root string) (Bundle, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("bundle directory not accessible: %w", err)
	}
	return New(os.DirFS(root))
}

func (b *fsBundle) EntryNames() []string {
	names := make([]string, len(b.names))
	copy(names, b.names)
	return names
}

func (b *fsBundle) Open(name string) (io.ReadCloser, error) {
	f, err := b.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
		}
		return nil, fmt.Errorf("failed to open bundle entry %s: %w", name, err)
	}
	return f, nil
}

// ZipBundle is a Bundle backed by a zip archive on disk. Close releases
// the underlying archive handle.
type ZipBundle struct {
	Bundle
	rc *zip.ReadCloser
}

// OpenZip opens a zip archive as a bundle.
func OpenZip(path string) (*ZipBundle, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle archive %s: %w", path, err)
	}
	inner, err := New(rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return &ZipBundle{Bundle: inner, rc: rc}, nil
}

// Close closes the underlying zip archive.
func (z *ZipBundle) Close() error {
	return z.rc.Close()
}
