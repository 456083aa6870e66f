package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"codeberg.org/talvik/gamestrings/internal/assist"
	"codeberg.org/talvik/gamestrings/internal/bundle"
	"codeberg.org/talvik/gamestrings/internal/cli"
	"codeberg.org/talvik/gamestrings/internal/export"
	"codeberg.org/talvik/gamestrings/internal/lists"
	"codeberg.org/talvik/gamestrings/internal/localize"
	"codeberg.org/talvik/gamestrings/internal/strtab"
)

// Processor wires the bundle, string table cache and merge engine together
// for one CLI invocation.
type Processor struct {
	flags   *cli.Flags
	logger  *slog.Logger
	bundle  bundle.Bundle
	zip     *bundle.ZipBundle // non-nil when the bundle is a zip archive
	locator *strtab.Locator
	cache   *strtab.Cache
}

// New creates a processor over the bundle selected by the flags: a zip
// archive, a directory, or the embedded default tables.
func New(flags *cli.Flags, logger *slog.Logger) (*Processor, error) {
	p := &Processor{flags: flags, logger: logger}

	switch {
	case flags.BundlePath == "":
		p.bundle = bundle.Embedded()
	case strings.HasSuffix(flags.BundlePath, ".zip"):
		z, err := bundle.OpenZip(flags.BundlePath)
		if err != nil {
			return nil, err
		}
		p.zip = z
		p.bundle = z
	default:
		b, err := bundle.NewDir(flags.BundlePath)
		if err != nil {
			return nil, err
		}
		p.bundle = b
	}

	p.locator = strtab.NewLocator(p.bundle, flags.Prefix)
	p.cache = strtab.NewCache(p.locator)
	return p, nil
}

// Close releases the bundle archive, if any.
func (p *Processor) Close() error {
	if p.zip != nil {
		return p.zip.Close()
	}
	return nil
}

// Run dispatches the selected run mode.
func (p *Processor) Run(args []string) error {
	switch {
	case p.flags.ListTables:
		return p.listTables()
	case p.flags.ListKind != "":
		return p.showList(p.flags.ListKind)
	case p.flags.Dump:
		return p.emitLines(localize.Dump(localize.DefaultUIText()))
	case p.flags.RepackPath != "":
		// Checked before --merge so both can be combined into one repack.
		return p.repack()
	case p.flags.MergeFile != "":
		return p.merge()
	case p.flags.ApplyPrefix != "":
		return p.apply()
	case p.flags.Suggest:
		return p.suggest()
	case p.flags.ExportDB != "":
		return p.exportCatalog()
	case len(args) > 0:
		return p.showTable(args[0])
	}
	return fmt.Errorf("nothing to do; try --list-tables or see --help")
}

func (p *Processor) listTables() error {
	for _, key := range p.locator.Keys() {
		fmt.Println(key)
	}
	return nil
}

func (p *Processor) showTable(key string) error {
	table, err := p.cache.GetTable(key)
	if err != nil {
		return err
	}
	if len(table) == 0 {
		return fmt.Errorf("no table for key %s", key)
	}
	for i, line := range table {
		fmt.Printf("%4d  %s\n", i, line)
	}
	return nil
}

// showList builds the combo list for a kind and prints its entries.
func (p *Processor) showList(kind string) error {
	entries, err := p.buildList(kind)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("%4d  %s\n", entry.Value, entry.Text)
	}
	return nil
}

func (p *Processor) buildList(kind string) ([]lists.ComboEntry, error) {
	switch kind {
	case "species", "items", "moves":
		table, err := p.cache.GetTableLocale(kind, p.flags.Locale)
		if err != nil {
			return nil, err
		}
		if len(table) == 0 {
			return nil, fmt.Errorf("no %s table for locale %s", kind, p.flags.Locale)
		}
		return lists.Filtered(table), nil
	case "balls":
		table, err := p.cache.GetTableLocale("balls", p.flags.Locale)
		if err != nil {
			return nil, err
		}
		if len(table) == 0 {
			return nil, fmt.Errorf("no balls table for locale %s", p.flags.Locale)
		}
		// Non-reserved balls shown after the fixed prefix.
		ids := []int{3, 5, 6, 7, 8, 9, 10, 11, 12}
		return lists.Balls(table, ids, ids), nil
	case "locations":
		table, err := p.cache.GetTableLocale("locations", "all")
		if err != nil {
			return nil, err
		}
		return lists.LocaleIndexed(table, p.flags.Locale), nil
	case "games":
		table, err := p.cache.GetTableLocale("games", p.flags.Locale)
		if err != nil {
			return nil, err
		}
		return lists.Simple(table), nil
	case "versions":
		// Same table as games, but indexed by id so gaps stay addressable.
		table, err := p.cache.GetTableLocale("games", p.flags.Locale)
		if err != nil {
			return nil, err
		}
		arr, err := strtab.IndexedFromCSV(table)
		if err != nil {
			return nil, err
		}
		return lists.Filtered(arr), nil
	}
	return nil, fmt.Errorf("unknown list kind %s", kind)
}

// merge reconciles the current UI strings against a saved translation file
// and emits the merged line set.
func (p *Processor) merge() error {
	saved, err := readLines(p.flags.MergeFile)
	if err != nil {
		return err
	}
	current := localize.Dump(localize.DefaultUIText())
	return p.emitLines(localize.Reconcile(current, saved))
}

// apply loads a bundled translation table and applies it to the UI
// strings, then emits the resulting line set.
func (p *Processor) apply() error {
	ui := localize.DefaultUIText()
	if err := localize.LoadAndApply(p.cache, ui, p.flags.ApplyPrefix, p.flags.Locale, p.logger); err != nil {
		return err
	}
	return p.emitLines(localize.Dump(ui))
}

func (p *Processor) suggest() error {
	suggester := assist.NewSuggester(cli.GetOpenAIKey())
	lines, err := suggester.SuggestLines(context.Background(),
		localize.Dump(localize.DefaultUIText()), p.flags.Locale)
	if err != nil {
		return err
	}
	return p.emitLines(lines)
}

// exportCatalog writes every resolvable table plus the standard combo
// lists into a SQLite database.
func (p *Processor) exportCatalog() error {
	tables := make(map[string][]string)
	for _, key := range p.locator.Keys() {
		table, err := p.cache.GetTable(key)
		if err != nil {
			return err
		}
		tables[key] = table
	}

	combos := make(map[string][]lists.ComboEntry)
	for _, kind := range []string{"species", "items", "moves", "balls", "locations", "games", "versions"} {
		entries, err := p.buildList(kind)
		if err != nil {
			p.logger.Debug("skipping combo export", "kind", kind, "error", err)
			continue
		}
		combos[kind] = entries
	}

	if err := export.WriteCatalog(p.flags.ExportDB, tables, combos); err != nil {
		return err
	}
	fmt.Printf("Catalog written to: %s\n", p.flags.ExportDB)
	return nil
}

// repack writes the bundle back as a zip archive carrying the merged
// translation file for the selected locale.
func (p *Processor) repack() error {
	current := localize.Dump(localize.DefaultUIText())
	lines := current
	if p.flags.MergeFile != "" {
		saved, err := readLines(p.flags.MergeFile)
		if err != nil {
			return err
		}
		lines = localize.Reconcile(current, saved)
	}

	entry := fmt.Sprintf("%s.text.lang_%s.txt", p.flags.Prefix, p.flags.Locale)
	if err := export.Repack(p.bundle, p.flags.RepackPath, entry, lines); err != nil {
		return err
	}
	fmt.Printf("Bundle repacked to: %s\n", p.flags.RepackPath)
	return nil
}

// emitLines writes lines to the output file, or stdout when none is set.
func (p *Processor) emitLines(lines []string) error {
	text := strings.Join(lines, "\n") + "\n"
	if p.flags.OutputFile == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(p.flags.OutputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file: %w", err)
	}
	return strtab.SplitLines(string(content)), nil
}
