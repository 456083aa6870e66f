package bundle_test

import (
	"errors"
	"io"
	"testing"

	"codeberg.org/talvik/gamestrings/internal/bundle"
	"codeberg.org/talvik/gamestrings/internal/testutil"
)

func TestDirBundle(t *testing.T) {
	b := testutil.BuildDirBundle(t, map[string]string{
		"gamestrings.text.text_species_en.txt": "A\nB",
		"gamestrings.byte.icon":                "\x01\x02",
	})

	names := b.EntryNames()
	if len(names) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(names), names)
	}

	r, err := b.Open("gamestrings.text.text_species_en.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "A\nB" {
		t.Errorf("Expected 'A\\nB', got %q", data)
	}
}

func TestOpenMissingEntry(t *testing.T) {
	b := testutil.BuildDirBundle(t, map[string]string{
		"gamestrings.text.text_species_en.txt": "A",
	})

	_, err := b.Open("gamestrings.text.text_species_fr.txt")
	if !errors.Is(err, bundle.ErrEntryNotFound) {
		t.Errorf("Expected ErrEntryNotFound, got %v", err)
	}
}

func TestZipBundle(t *testing.T) {
	b := testutil.BuildZipBundle(t, map[string]string{
		"gamestrings.text.text_items_en.txt": "Tonic\nHerb",
		"gamestrings.text.lang_en.txt":       "OK = OK",
	})

	names := b.EntryNames()
	if len(names) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(names), names)
	}

	r, err := b.Open("gamestrings.text.text_items_en.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "Tonic\nHerb" {
		t.Errorf("Expected 'Tonic\\nHerb', got %q", data)
	}

	if _, err := b.Open("missing"); !errors.Is(err, bundle.ErrEntryNotFound) {
		t.Errorf("Expected ErrEntryNotFound, got %v", err)
	}
}

func TestEmbeddedBundle(t *testing.T) {
	b := bundle.Embedded()

	names := b.EntryNames()
	if len(names) == 0 {
		t.Fatal("Embedded bundle has no entries")
	}

	found := false
	for _, name := range names {
		if name == "gamestrings.text.text_species_en.txt" {
			found = true
		}
	}
	if !found {
		t.Errorf("Embedded bundle missing species table, entries: %v", names)
	}
}
