// Package export writes resolved string tables out for external tooling:
// a SQLite catalog for search integrations and a repacked zip bundle that
// carries a merged translation file back into a release.
package export

import (
	"database/sql"
	"fmt"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/talvik/gamestrings/internal/lists"
)

// WriteCatalog creates a SQLite database at outputPath containing every
// resolved table line and combo entry. The path must not name an existing
// catalog.
func WriteCatalog(outputPath string, tables map[string][]string, combos map[string][]lists.ComboEntry) error {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := insertTables(db, tables); err != nil {
		return fmt.Errorf("failed to insert string tables: %w", err)
	}
	if err := insertCombos(db, combos); err != nil {
		return fmt.Errorf("failed to insert combo entries: %w", err)
	}
	return nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE strings (
			key text NOT NULL,
			idx integer NOT NULL,
			value text NOT NULL,
			PRIMARY KEY (key, idx)
		)`,
		`CREATE TABLE combos (
			kind text NOT NULL,
			pos integer NOT NULL,
			label text NOT NULL,
			value integer NOT NULL,
			PRIMARY KEY (kind, pos)
		)`,
		`CREATE INDEX ix_strings_value ON strings (value)`,
		`CREATE INDEX ix_combos_label ON combos (label)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func insertTables(db *sql.DB, tables map[string][]string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO strings (key, idx, value) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, key := range sortedKeys(tables) {
		for idx, value := range tables[key] {
			if _, err := stmt.Exec(key, idx, value); err != nil {
				return fmt.Errorf("failed to insert line %d of %s: %w", idx, key, err)
			}
		}
	}
	return tx.Commit()
}

func insertCombos(db *sql.DB, combos map[string][]lists.ComboEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO combos (kind, pos, label, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, kind := range sortedKeys(combos) {
		for pos, entry := range combos[kind] {
			if _, err := stmt.Exec(kind, pos, entry.Text, entry.Value); err != nil {
				return fmt.Errorf("failed to insert %s entry %d: %w", kind, pos, err)
			}
		}
	}
	return tx.Commit()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
