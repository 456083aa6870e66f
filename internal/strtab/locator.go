// Package strtab resolves locale-qualified string tables from a resource
// bundle into indexable lookup tables. Tables are loaded lazily and cached
// for the lifetime of the process; the bundle's entry set never changes, so
// nothing is ever evicted or reloaded.
package strtab

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"codeberg.org/talvik/gamestrings/internal/bundle"
)

// DefaultPrefix is the namespace prefix of the entries shipped in the
// default bundle.
const DefaultPrefix = "gamestrings"

// Locator maps logical resource keys to bundle entry names. Lookups scan
// the bundle's entry list once per key; both hits and misses are memoized
// permanently.
type Locator struct {
	bundle bundle.Bundle
	prefix string

	mu    sync.Mutex
	names map[string]string // lower-cased key -> entry name, "" for absent
}

// NewLocator creates a locator over the given bundle. Text entries are
// expected to be named <prefix>.text.<key>.txt, binary entries
// <prefix>.byte.<name>.
func NewLocator(b bundle.Bundle, prefix string) *Locator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Locator{
		bundle: b,
		prefix: prefix,
		names:  make(map[string]string),
	}
}

// Locate returns the bundle entry name for a logical key, matching
// <prefix>.text.<key>.txt case-insensitively. The second return value is
// false when the bundle has no such entry.
func (l *Locator) Locate(key string) (string, bool) {
	k := strings.ToLower(key)

	l.mu.Lock()
	defer l.mu.Unlock()

	if name, ok := l.names[k]; ok {
		return name, name != ""
	}

	want := strings.ToLower(l.prefix + ".text." + key + ".txt")
	found := ""
	for _, name := range l.bundle.EntryNames() {
		if strings.ToLower(name) == want {
			found = name
			break
		}
	}
	l.names[k] = found
	return found, found != ""
}

// Keys returns the logical keys of all text entries in the bundle, in
// entry-name order.
func (l *Locator) Keys() []string {
	textPrefix := strings.ToLower(l.prefix + ".text.")
	var keys []string
	for _, name := range l.bundle.EntryNames() {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, textPrefix) && strings.HasSuffix(lower, ".txt") {
			keys = append(keys, lower[len(textPrefix):len(lower)-len(".txt")])
		}
	}
	return keys
}

// ReadText reads the full text of the entry for a logical key. A key with
// no matching entry yields ("", false, nil); missing locale files are a
// normal condition, not an error. An entry that exists but cannot be read
// is an error.
func (l *Locator) ReadText(key string) (string, bool, error) {
	name, ok := l.Locate(key)
	if !ok {
		return "", false, nil
	}
	data, err := l.readAll(name)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// ReadBytes reads a binary entry named <prefix>.byte.<name>.
func (l *Locator) ReadBytes(name string) ([]byte, error) {
	return l.readAll(l.prefix + ".byte." + name)
}

// readAll fully materializes one entry, closing the stream on every path.
func (l *Locator) readAll(entryName string) ([]byte, error) {
	r, err := l.bundle.Open(entryName)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle entry %s: %w", entryName, err)
	}
	return data, nil
}
