// Package lists turns loaded string tables into display-ready (label, id)
// pairs for combo box population. All functions are pure transformations
// over an already-loaded table; no I/O, no caching, no shared state.
// Malformed rows (fewer columns than an operation needs) surface as the
// natural index panic at the call site.
package lists

import (
	"sort"
	"strconv"
	"strings"
)

// ComboEntry pairs a human label with its stable domain identifier. The
// identifier is independent of display order.
type ComboEntry struct {
	Text  string
	Value int
}

// localeColumns is the fixed column order of locale-indexed tables.
var localeColumns = []string{"ja", "en", "fr", "de", "it", "es", "ko", "zh"}

// LocaleIndexed builds entries from rows of the form
// "id,ja,en,fr,de,it,es,ko,zh", selecting the column for the requested
// locale, sorted ascending by label.
func LocaleIndexed(table []string, locale string) []ComboEntry {
	col := 2 // en
	for i, l := range localeColumns {
		if l == locale {
			col = i + 1
			break
		}
	}
	entries := make([]ComboEntry, 0, len(table))
	for _, row := range table {
		fields := strings.Split(row, ",")
		id, _ := strconv.Atoi(fields[0])
		entries = append(entries, ComboEntry{Text: fields[col], Value: id})
	}
	sortByText(entries)
	return entries
}

// Simple builds entries from "id,label" rows, skipping the header row,
// unsorted.
func Simple(table []string) []ComboEntry {
	if len(table) == 0 {
		return nil
	}
	entries := make([]ComboEntry, 0, len(table)-1)
	for _, row := range table[1:] {
		fields := strings.Split(row, ",")
		id, _ := strconv.Atoi(fields[0])
		entries = append(entries, ComboEntry{Text: fields[1], Value: id})
	}
	return entries
}

// Filtered builds one entry per allowed id using table[id] as label. With
// no groups every id 0..len(table)-1 is allowed. Each group is sorted by
// label independently; groups are concatenated in input order.
func Filtered(table []string, groups ...[]int) []ComboEntry {
	if len(groups) == 0 {
		ids := make([]int, len(table))
		for i := range table {
			ids[i] = i
		}
		groups = [][]int{ids}
	}
	var entries []ComboEntry
	for _, group := range groups {
		part := make([]ComboEntry, 0, len(group))
		for _, id := range group {
			part = append(part, ComboEntry{Text: table[id], Value: id})
		}
		sortByText(part)
		entries = append(entries, part...)
	}
	return entries
}

// Offset is like Filtered but the label lookup is table[id-offset] while
// the emitted id is the original id; sorted by label.
func Offset(table []string, offset int, ids []int) []ComboEntry {
	entries := make([]ComboEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, ComboEntry{Text: table[id-offset], Value: id})
	}
	sortByText(entries)
	return entries
}

// Reserved ball ids pinned to the top of every ball list, in this display
// order.
const (
	BallMaster = 1
	BallUltra  = 2
	BallPoke   = 4
)

// Balls builds the ball combo list. The first three entries are the
// reserved balls in their fixed order; the remainder comes from the
// parallel displayIndices/values arrays, sorted by label. The two parts
// are concatenated, never globally re-sorted.
func Balls(table []string, displayIndices, values []int) []ComboEntry {
	entries := make([]ComboEntry, 0, len(displayIndices)+3)
	entries = append(entries,
		ComboEntry{Text: table[BallMaster], Value: BallMaster},
		ComboEntry{Text: table[BallUltra], Value: BallUltra},
		ComboEntry{Text: table[BallPoke], Value: BallPoke},
	)
	rest := make([]ComboEntry, 0, len(displayIndices))
	for i := range displayIndices {
		rest = append(rest, ComboEntry{Text: table[displayIndices[i]], Value: values[i]})
	}
	sortByText(rest)
	return append(entries, rest...)
}

func sortByText(entries []ComboEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Text < entries[j].Text
	})
}
