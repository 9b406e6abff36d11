// Package state holds the screen state shared by the logic and ui packages.
package state

import (
	"go.uber.org/zap"

	"github.com/hy4ri/shoplist-tui/internal/config"
	"github.com/hy4ri/shoplist-tui/internal/shopping"
	"github.com/hy4ri/shoplist-tui/internal/tui/components"
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store  *shopping.Store
	Config *config.Config
	Log    *zap.Logger

	// Data: latest snapshot delivered by the store
	Snapshot shopping.Snapshot

	// List state
	Cursor       int
	ScrollOffset int

	// UI state
	Err       error
	StatusMsg string
	Width     int
	Height    int
	ShowHints bool
	ShowHelp  bool

	// Key handling
	Keymap   KeymapData
	KeyState *KeyState

	// UI Components
	AddDialog *components.AddDialogModel
	EditForm  *components.EditFormModel
	HelpComp  *components.HelpModel

	// Layout recorded by the renderer for mouse handling
	DialogBounds  Rect
	ViewportLines []int // Maps screen line to item index (-1 for non-item lines)

	unsubscribe func()
}

// New creates the screen state and subscribes it to store.
func New(store *shopping.Store, cfg *config.Config, logger *zap.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &State{
		Store:     store,
		Config:    cfg,
		Log:       logger,
		Snapshot:  store.Snapshot(),
		ShowHints: cfg.UI.ShowHints,
		Keymap:    DefaultKeymap(cfg.UI.VimMode),
		KeyState:  &KeyState{},
		HelpComp:  components.NewHelp(),
	}
	s.unsubscribe = store.Subscribe(func(snap shopping.Snapshot) {
		s.Snapshot = snap
	})
	return s
}

// Close detaches the state from its store.
func (s *State) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Rows builds one row per item with its callbacks bound to the item id.
func (s *State) Rows() []components.ItemRow {
	rows := make([]components.ItemRow, len(s.Snapshot.Items))
	for i, it := range s.Snapshot.Items {
		row := components.NewItemRow(it)
		row.Selected = i == s.Cursor
		row.ShowActions = s.ShowHints
		row.Width = s.Width - 2
		rows[i] = row
	}
	return rows
}

// SelectedRow returns the row under the cursor.
func (s *State) SelectedRow() (components.ItemRow, bool) {
	rows := s.Rows()
	if s.Cursor < 0 || s.Cursor >= len(rows) {
		return components.ItemRow{}, false
	}
	return rows[s.Cursor], true
}
