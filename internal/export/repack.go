package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/talvik/gamestrings/internal/bundle"
)

// Repack writes a zip bundle at outputPath containing every entry of the
// source bundle, with the named translation entry replaced (or added) by
// the given lines. This ships a translator's merged file back as a
// complete localized bundle.
func Repack(src bundle.Bundle, outputPath, translationEntry string, lines []string) error {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create bundle archive: %w", err)
	}
	defer zipFile.Close()

	archive := zip.NewWriter(zipFile)
	defer archive.Close()

	for _, name := range src.EntryNames() {
		if name == translationEntry {
			continue
		}
		if err := copyEntry(archive, src, name); err != nil {
			return err
		}
	}

	w, err := archive.Create(translationEntry)
	if err != nil {
		return fmt.Errorf("failed to add translation entry: %w", err)
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write translation entry: %w", err)
	}

	return nil
}

func copyEntry(archive *zip.Writer, src bundle.Bundle, name string) error {
	r, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open entry %s: %w", name, err)
	}
	defer r.Close()

	w, err := archive.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add entry %s: %w", name, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("failed to copy entry %s: %w", name, err)
	}
	return nil
}
