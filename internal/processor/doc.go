// Package processor contains the orchestration logic for one gamestrings
// invocation. It opens the selected bundle, owns the string table cache,
// and dispatches between table listing, combo list building, translation
// merge/apply, suggestion, and export run modes.
package processor
