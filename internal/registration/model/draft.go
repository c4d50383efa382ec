package model

import "strings"

// Roster bounds. A draft always holds at least one entry and never grows
// past the cap; both limits are enforced silently.
const (
	MaxRosterEntries = 15
	RequiredPlayers  = 11
)

// Roster entry field names accepted by UpdateEntry.
const (
	EntryFieldName     = "name"
	EntryFieldJersey   = "jersey"
	EntryFieldPosition = "position"
)

// RosterEntry is one player's editable fields before persistence.
type RosterEntry struct {
	Name     string `json:"name" form:"name"`
	Jersey   string `json:"jersey" form:"jersey"`
	Position string `json:"position" form:"position"`
}

// Named reports whether the entry has a non-blank player name.
func (e RosterEntry) Named() bool {
	return strings.TrimSpace(e.Name) != ""
}

// Draft is the in-progress, unsaved registration form state.
type Draft struct {
	TeamName     string        `json:"team_name" form:"team_name"`
	ManagerName  string        `json:"manager_name" form:"manager_name"`
	ManagerPhone string        `json:"manager_phone" form:"manager_phone"`
	Roster       []RosterEntry `json:"players"`
}

// NewDraft returns a draft with a single blank roster entry.
func NewDraft() *Draft {
	return &Draft{Roster: []RosterEntry{{}}}
}

// AddEntry appends a blank roster entry. At the cap this is a no-op.
func (d *Draft) AddEntry() {
	if len(d.Roster) >= MaxRosterEntries {
		return
	}
	d.Roster = append(d.Roster, RosterEntry{})
}

// RemoveEntry deletes the entry at index i, preserving order. The last
// remaining entry is never removed; out-of-range indexes are ignored.
func (d *Draft) RemoveEntry(i int) {
	if len(d.Roster) <= 1 || i < 0 || i >= len(d.Roster) {
		return
	}
	d.Roster = append(d.Roster[:i], d.Roster[i+1:]...)
}

// UpdateEntry replaces one field of the entry at index i. No validation is
// performed here; unknown fields and out-of-range indexes are ignored.
func (d *Draft) UpdateEntry(i int, field, value string) {
	if i < 0 || i >= len(d.Roster) {
		return
	}
	switch field {
	case EntryFieldName:
		d.Roster[i].Name = value
	case EntryFieldJersey:
		d.Roster[i].Jersey = value
	case EntryFieldPosition:
		d.Roster[i].Position = value
	}
}

// NamedEntries returns the roster entries with a non-blank name, in
// insertion order.
func (d *Draft) NamedEntries() []RosterEntry {
	named := make([]RosterEntry, 0, len(d.Roster))
	for _, e := range d.Roster {
		if e.Named() {
			named = append(named, e)
		}
	}
	return named
}

// Reset returns the draft to its initial state: empty team fields and a
// single blank roster entry.
func (d *Draft) Reset() {
	d.TeamName = ""
	d.ManagerName = ""
	d.ManagerPhone = ""
	d.Roster = []RosterEntry{{}}
}
