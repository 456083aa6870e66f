package localize

import "fmt"

// UIText holds the translatable UI strings of the editor. The adapter below
// exposes the fields in declaration order; translation files mirror that
// order.
type UIText struct {
	OK       string
	Cancel   string
	Save     string
	Load     string
	Export   string
	Species  string
	Item     string
	Move     string
	Ball     string
	Location string
	Language string
}

// DefaultUIText returns the built-in English strings.
func DefaultUIText() *UIText {
	return &UIText{
		OK:       "OK",
		Cancel:   "Cancel",
		Save:     "Save",
		Load:     "Load",
		Export:   "Export",
		Species:  "Species",
		Item:     "Item",
		Move:     "Move",
		Ball:     "Ball",
		Location: "Location",
		Language: "Language",
	}
}

// Names returns the property names in declaration order.
func (u *UIText) Names() []string {
	return []string{
		"OK", "Cancel", "Save", "Load", "Export",
		"Species", "Item", "Move", "Ball", "Location", "Language",
	}
}

// Get returns the current value of a property, or "" for unknown names.
func (u *UIText) Get(name string) string {
	switch name {
	case "OK":
		return u.OK
	case "Cancel":
		return u.Cancel
	case "Save":
		return u.Save
	case "Load":
		return u.Load
	case "Export":
		return u.Export
	case "Species":
		return u.Species
	case "Item":
		return u.Item
	case "Move":
		return u.Move
	case "Ball":
		return u.Ball
	case "Location":
		return u.Location
	case "Language":
		return u.Language
	}
	return ""
}

// Set assigns a property by name.
func (u *UIText) Set(name, value string) error {
	switch name {
	case "OK":
		u.OK = value
	case "Cancel":
		u.Cancel = value
	case "Save":
		u.Save = value
	case "Load":
		u.Load = value
	case "Export":
		u.Export = value
	case "Species":
		u.Species = value
	case "Item":
		u.Item = value
	case "Move":
		u.Move = value
	case "Ball":
		u.Ball = value
	case "Location":
		u.Location = value
	case "Language":
		u.Language = value
	default:
		return fmt.Errorf("unknown property %q", name)
	}
	return nil
}
