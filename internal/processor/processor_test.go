package processor

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/talvik/gamestrings/internal/cli"
)

func writeTestBundle(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	entries := map[string]string{
		"gamestrings.text.text_species_en.txt": "(None)\nEmberlit\nDrizzole",
		"gamestrings.text.lang_en.txt":         "OK = OK\nCancel = Cancel",
	}
	for name, content := range entries {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write bundle entry: %v", err)
		}
	}
	return dir
}

func TestNewWithDirBundle(t *testing.T) {
	flags := cli.NewFlags()
	flags.BundlePath = writeTestBundle(t)

	p, err := New(flags, slog.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if p.bundle == nil || p.cache == nil || p.locator == nil {
		t.Error("Processor not fully initialized")
	}
}

func TestNewWithMissingDir(t *testing.T) {
	flags := cli.NewFlags()
	flags.BundlePath = filepath.Join(t.TempDir(), "nope")

	if _, err := New(flags, slog.Default()); err == nil {
		t.Error("Expected error for missing bundle directory")
	}
}

func TestRunMergeWritesOutput(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "lang_de.txt")
	if err := os.WriteFile(saved, []byte("Cancel = Abbrechen"), 0644); err != nil {
		t.Fatalf("Failed to write saved translations: %v", err)
	}

	flags := cli.NewFlags()
	flags.BundlePath = writeTestBundle(t)
	flags.MergeFile = saved
	flags.OutputFile = filepath.Join(dir, "merged.txt")

	p, err := New(flags, slog.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out, err := os.ReadFile(flags.OutputFile)
	if err != nil {
		t.Fatalf("Failed to read merged output: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "Cancel = Abbrechen") {
		t.Errorf("Saved translation not preserved:\n%s", text)
	}
	if !strings.Contains(text, "OK = OK") {
		t.Errorf("Current value for unsaved property missing:\n%s", text)
	}
}

func TestRunUnknownListKind(t *testing.T) {
	flags := cli.NewFlags()
	flags.BundlePath = writeTestBundle(t)
	flags.ListKind = "berries"

	p, err := New(flags, slog.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if err := p.Run(nil); err == nil {
		t.Error("Expected error for unknown list kind")
	}
}

func TestRunNothingToDo(t *testing.T) {
	flags := cli.NewFlags()
	flags.BundlePath = writeTestBundle(t)

	p, err := New(flags, slog.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	if err := p.Run(nil); err == nil {
		t.Error("Expected error when no run mode is selected")
	}
}
