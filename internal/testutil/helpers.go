// Package testutil builds throwaway resource bundles for tests.
package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/talvik/gamestrings/internal/bundle"
)

// BuildDirBundle writes entries into a temp directory and opens it as a
// bundle. Keys are entry names, values their content.
func BuildDirBundle(t *testing.T, entries map[string]string) bundle.Bundle {
	t.Helper()

	dir := t.TempDir()
	for name, content := range entries {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create bundle entry %s: %v", name, err)
		}
	}

	b, err := bundle.NewDir(dir)
	if err != nil {
		t.Fatalf("Failed to open dir bundle: %v", err)
	}
	return b
}

// BuildZipBundle writes entries into a zip archive and opens it as a
// bundle. The archive is closed via t.Cleanup.
func BuildZipBundle(t *testing.T, entries map[string]string) bundle.Bundle {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bundle.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to add zip entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip archive: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close zip file: %v", err)
	}

	zb, err := bundle.OpenZip(path)
	if err != nil {
		t.Fatalf("Failed to open zip bundle: %v", err)
	}
	t.Cleanup(func() { zb.Close() })
	return zb
}
