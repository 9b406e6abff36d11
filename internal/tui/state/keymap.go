package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action names returned by KeyState.HandleKey.
const (
	ActionUp          = "up"
	ActionDown        = "down"
	ActionTop         = "top"
	ActionBottom      = "bottom"
	ActionAdd         = "add"
	ActionEdit        = "edit"
	ActionDelete      = "delete"
	ActionCopy        = "copy"
	ActionHelp        = "help"
	ActionToggleHints = "toggle_hints"
	ActionQuit        = "quit"
)

// KeymapData contains all key bindings for the list screen.
type KeymapData struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Item actions
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Copy   key.Binding

	// General
	Help  key.Binding
	Hints key.Binding
	Quit  key.Binding

	// Sequences is set when Top, Delete and Copy need their key pressed twice (gg, dd, yy).
	Sequences bool
}

// DefaultKeymap returns the key bindings. Vim mode adds j/k and the
// doubled gg/dd/yy sequences; otherwise plain keys are used.
func DefaultKeymap(vimMode bool) KeymapData {
	if !vimMode {
		return KeymapData{
			Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
			Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
			Top:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
			Bottom: key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
			Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
			Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit item")),
			Delete: key.NewBinding(key.WithKeys("delete", "x"), key.WithHelp("x", "delete item")),
			Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy list")),
			Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
			Hints:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle hints")),
			Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		}
	}

	return KeymapData{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Top:       key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "top")),
		Bottom:    key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit item")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("dd", "delete item")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("yy", "copy list")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Hints:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle hints")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Sequences: true,
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	// Pending is the action waiting for its second key press.
	Pending string
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, km KeymapData) (string, bool) {
	if km.Sequences {
		pending := ks.Pending
		ks.Pending = ""

		for _, seq := range []struct {
			binding key.Binding
			action  string
		}{
			{km.Top, ActionTop},
			{km.Delete, ActionDelete},
			{km.Copy, ActionCopy},
		} {
			if !key.Matches(msg, seq.binding) {
				continue
			}
			if pending == seq.action {
				return seq.action, true
			}
			ks.Pending = seq.action
			return "", true // Key consumed, waiting for next
		}
	}

	switch {
	case key.Matches(msg, km.Up):
		return ActionUp, true
	case key.Matches(msg, km.Down):
		return ActionDown, true
	case key.Matches(msg, km.Top):
		return ActionTop, true
	case key.Matches(msg, km.Bottom):
		return ActionBottom, true
	case key.Matches(msg, km.Add):
		return ActionAdd, true
	case key.Matches(msg, km.Edit):
		return ActionEdit, true
	case key.Matches(msg, km.Delete):
		return ActionDelete, true
	case key.Matches(msg, km.Copy):
		return ActionCopy, true
	case key.Matches(msg, km.Help):
		return ActionHelp, true
	case key.Matches(msg, km.Hints):
		return ActionToggleHints, true
	case key.Matches(msg, km.Quit):
		return ActionQuit, true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.Pending = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
// A pair with an empty description is a section header.
func (k KeymapData) HelpItems() [][]string {
	pair := func(b key.Binding) []string {
		h := b.Help()
		return []string{h.Key, h.Desc}
	}

	return [][]string{
		{"Navigation", ""},
		pair(k.Up),
		pair(k.Down),
		pair(k.Top),
		pair(k.Bottom),
		{"", ""},
		{"Item Actions", ""},
		pair(k.Add),
		pair(k.Edit),
		pair(k.Delete),
		pair(k.Copy),
		{"", ""},
		{"Dialogs", ""},
		{"tab", "Next field"},
		{"enter", "Add / save"},
		{"esc", "Cancel add / leave edit unchanged"},
		{"", ""},
		{"General", ""},
		pair(k.Help),
		pair(k.Hints),
		pair(k.Quit),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeymapData) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Copy, k.Help, k.Quit}
}
