package strtab

import (
	"strings"
	"sync"
)

// Cache is a lazily-populated, process-lifetime cache of string tables.
// Each table is loaded from the bundle at most once; every read returns a
// fresh copy so callers can never observe or cause cache mutation.
type Cache struct {
	locator *Locator

	mu     sync.Mutex
	tables map[string][]string
}

// NewCache creates an empty cache over the given locator.
func NewCache(locator *Locator) *Cache {
	return &Cache{
		locator: locator,
		tables:  make(map[string][]string),
	}
}

// GetTable returns the string table for a logical key. Line N of the table
// is the name of entity N; gaps are empty strings. A key with no bundle
// entry yields an empty table. The result is a copy owned by the caller.
func (c *Cache) GetTable(key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check under the lock so concurrent first access commits at
	// most one table per key.
	if table, ok := c.tables[key]; ok {
		return copyTable(table), nil
	}

	text, ok, err := c.locator.ReadText(key)
	if err != nil {
		return nil, err
	}
	var table []string
	if ok {
		table = SplitLines(text)
	} else {
		table = []string{}
	}
	c.tables[key] = table
	return copyTable(table), nil
}

// GetTableLocale is sugar for GetTable("text_{category}_{locale}").
func (c *Cache) GetTableLocale(category, locale string) ([]string, error) {
	return c.GetTableFormat("text", category, locale)
}

// GetTableFormat resolves a table under an explicit format qualifier.
func (c *Cache) GetTableFormat(format, category, locale string) ([]string, error) {
	return c.GetTable(format + "_" + category + "_" + locale)
}

// SplitLines splits bundled text on line-feed and strips one trailing
// carriage-return per line, tolerating both line-ending conventions.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func copyTable(table []string) []string {
	out := make([]string, len(table))
	copy(out, table)
	return out
}
