// Package shopping holds the shopping list model and its in-memory store.
package shopping

import (
	"fmt"
	"strings"
)

// Item is a single entry on the shopping list.
type Item struct {
	ID      int
	Name    string
	Qty     int
	Editing bool
}

// Equal reports whether two items carry the same id, name, quantity and editing flag.
func (i Item) Equal(other Item) bool {
	return i == other
}

// String renders the item the way it is exported to the clipboard.
func (i Item) String() string {
	return fmt.Sprintf("%s x %d", i.Name, i.Qty)
}

// Mode is the dialog state of the screen.
type Mode int

const (
	ModeIdle      Mode = iota // list only
	ModeAddDialog             // add dialog shown over the list
)

func (m Mode) String() string {
	switch m {
	case ModeAddDialog:
		return "add_dialog"
	default:
		return "idle"
	}
}

// Snapshot is an immutable view of the store after a mutation.
type Snapshot struct {
	Items     []Item
	Mode      Mode
	DraftName string
	DraftQty  string

	// Revision increases with every mutating call on the store.
	Revision uint64
}

// DialogOpen returns true when the add dialog is shown.
func (s Snapshot) DialogOpen() bool {
	return s.Mode == ModeAddDialog
}

// EditingItem returns the item whose inline edit form is shown, if any.
func (s Snapshot) EditingItem() (Item, bool) {
	for _, it := range s.Items {
		if it.Editing {
			return it, true
		}
	}
	return Item{}, false
}

// Find returns the first item with the given id.
func (s Snapshot) Find(id int) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// FormatList renders items as plain text, one "name x qty" per line.
func FormatList(items []Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.String())
		b.WriteString("\n")
	}
	return b.String()
}
