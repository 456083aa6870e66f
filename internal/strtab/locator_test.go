package strtab_test

import (
	"sync"
	"testing"

	"codeberg.org/talvik/gamestrings/internal/bundle"
	"codeberg.org/talvik/gamestrings/internal/strtab"
	"codeberg.org/talvik/gamestrings/internal/testutil"
)

func TestLocateCaseInsensitive(t *testing.T) {
	b := testutil.BuildDirBundle(t, map[string]string{
		"GameStrings.Text.Text_Species_EN.txt": "A",
	})
	loc := strtab.NewLocator(b, "gamestrings")

	tests := []struct {
		key  string
		want bool
	}{
		{"text_species_en", true},
		{"TEXT_SPECIES_EN", true},
		{"text_species_fr", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			entry, ok := loc.Locate(tt.key)
			if ok != tt.want {
				t.Errorf("Locate(%s) ok = %v, want %v", tt.key, ok, tt.want)
			}
			if ok && entry != "GameStrings.Text.Text_Species_EN.txt" {
				t.Errorf("Locate(%s) = %s, wrong entry", tt.key, entry)
			}
		})
	}
}

// countingBundle counts how often the entry list is scanned.
type countingBundle struct {
	bundle.Bundle
	mu    sync.Mutex
	scans int
}

func (c *countingBundle) EntryNames() []string {
	c.mu.Lock()
	c.scans++
	c.mu.Unlock()
	return c.Bundle.EntryNames()
}

func TestLocateMemoizesMisses(t *testing.T) {
	b := &countingBundle{Bundle: testutil.BuildDirBundle(t, map[string]string{
		"gamestrings.text.text_species_en.txt": "A",
	})}
	loc := strtab.NewLocator(b, "gamestrings")

	for i := 0; i < 5; i++ {
		if _, ok := loc.Locate("text_species_fr"); ok {
			t.Fatal("Expected miss for text_species_fr")
		}
	}

	if b.scans != 1 {
		t.Errorf("Expected 1 entry scan, got %d", b.scans)
	}
}

func TestReadText(t *testing.T) {
	b := testutil.BuildDirBundle(t, map[string]string{
		"gamestrings.text.text_species_en.txt": "Emberlit\nDrizzole",
	})
	loc := strtab.NewLocator(b, "gamestrings")

	text, ok, err := loc.ReadText("text_species_en")
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected table to exist")
	}
	if text != "Emberlit\nDrizzole" {
		t.Errorf("Unexpected text %q", text)
	}

	// Missing locale files are a normal condition, not an error.
	_, ok, err = loc.ReadText("text_species_fr")
	if err != nil {
		t.Fatalf("ReadText for missing key failed: %v", err)
	}
	if ok {
		t.Error("Expected absent result for missing key")
	}
}

func TestReadBytes(t *testing.T) {
	b := testutil.BuildDirBundle(t, map[string]string{
		"gamestrings.byte.defaults": "\x00\x01\x02",
	})
	loc := strtab.NewLocator(b, "gamestrings")

	data, err := loc.ReadBytes("defaults")
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if len(data) != 3 || data[2] != 2 {
		t.Errorf("Unexpected bytes %v", data)
	}

	if _, err := loc.ReadBytes("missing"); err == nil {
		t.Error("Expected error for missing binary entry")
	}
}

func TestKeys(t *testing.T) {
	b := testutil.BuildDirBundle(t, map[string]string{
		"gamestrings.text.text_species_en.txt": "A",
		"gamestrings.text.lang_en.txt":         "OK = OK",
		"gamestrings.byte.defaults":            "x",
	})
	loc := strtab.NewLocator(b, "gamestrings")

	keys := loc.Keys()
	if len(keys) != 2 {
		t.Fatalf("Expected 2 keys, got %v", keys)
	}
	if keys[0] != "lang_en" || keys[1] != "text_species_en" {
		t.Errorf("Unexpected keys %v", keys)
	}
}
