// Package localize reconciles the live set of named UI string properties
// against previously saved translation files. Translation files are plain
// text, one "PropertyName = Value" line per property, in declaration order,
// so a human translator can edit them and carry the edits across releases.
package localize

import (
	"log/slog"
	"strings"

	"codeberg.org/talvik/gamestrings/internal/strtab"
)

// Separator between property name and value in a translation line. The
// first occurrence is the split point; property names must not contain it.
const Separator = " = "

// PropertyBag exposes the named string properties of a translatable object.
// Implementations are hand-written per type; no runtime reflection.
type PropertyBag interface {
	// Names returns all property names in declaration order.
	Names() []string
	// Get returns the current value of a property.
	Get(name string) string
	// Set assigns a property. An unknown name is an error the caller
	// treats as non-fatal.
	Set(name, value string) error
}

// Dump emits one "name = value" line per declared property, in order.
func Dump(bag PropertyBag) []string {
	names := bag.Names()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+Separator+bag.Get(name))
	}
	return lines
}

// Reconcile merges saved translation lines into the current line set. For
// every current line the saved line with the same property name wins,
// preserving the translator's edit; properties without a saved line keep
// their current value. Retired properties are dropped, new ones kept, so
// the result always has the length of current. With no saved lines the
// current lines are returned unchanged.
func Reconcile(current, saved []string) []string {
	if len(saved) == 0 {
		return current
	}
	merged := make([]string, len(current))
	for i, line := range current {
		merged[i] = line
		name, ok := propertyName(line)
		if !ok {
			continue
		}
		for _, s := range saved {
			// First match by position wins on duplicate names.
			if sn, ok := propertyName(s); ok && sn == name {
				merged[i] = s
				break
			}
		}
	}
	return merged
}

// Apply sets every well-formed "name = value" line on the bag. Lines
// without the separator are skipped; an unknown property is logged and
// processing continues, so one renamed property never aborts the batch.
func Apply(bag PropertyBag, lines []string, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, line := range lines {
		name, value, ok := strings.Cut(line, Separator)
		if !ok {
			continue
		}
		if err := bag.Set(name, value); err != nil {
			logger.Warn("skipping translation line", "property", name, "error", err)
		}
	}
}

// LoadAndApply loads the translation table "{filePrefix}_{locale}" from the
// cache and applies it to the bag.
func LoadAndApply(cache *strtab.Cache, bag PropertyBag, filePrefix, locale string, logger *slog.Logger) error {
	lines, err := cache.GetTable(filePrefix + "_" + locale)
	if err != nil {
		return err
	}
	Apply(bag, lines, logger)
	return nil
}

func propertyName(line string) (string, bool) {
	name, _, ok := strings.Cut(line, Separator)
	return name, ok
}
