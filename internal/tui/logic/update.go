// Package logic turns key presses and component messages into store calls.
package logic

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"github.com/hy4ri/shoplist-tui/internal/tui/components"
	"github.com/hy4ri/shoplist-tui/internal/tui/state"
	"github.com/hy4ri/shoplist-tui/internal/tui/utils"
)

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }

// Handler applies messages to the state.
type Handler struct {
	*state.State

	writeClipboard func(text string) error
	notify         func(title, message string) error
}

// NewHandler creates a handler bound to s.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State:          s,
		writeClipboard: clipboard.WriteAll,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Update handles one message and returns the follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case errMsg:
		h.Err = msg.err
		h.StatusMsg = ""
		h.Log.Warn("command failed", zap.Error(msg.err))
		return nil

	case statusMsg:
		h.Err = nil
		h.StatusMsg = msg.msg
		return nil

	case components.DraftChangedMsg:
		h.Store.SetDraft(msg.Name, msg.Qty)
		return nil

	case components.AddConfirmedMsg:
		return h.handleAddConfirmed(msg)

	case components.AddCancelledMsg:
		h.Store.CloseAddDialog()
		h.syncComponents()
		return nil

	case components.EditClickedMsg:
		return h.handleEditClicked(msg)

	case components.EditSavedMsg:
		return h.handleEditSaved(msg)

	case components.DeleteClickedMsg:
		return h.handleDeleteClicked(msg)

	case components.HelpClosedMsg:
		h.ShowHelp = false
		return nil
	}

	return h.forwardToFocused(msg)
}

// handleKeyMsg routes a key press to whichever view owns the keyboard.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.ShowHelp {
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	}

	if h.AddDialog != nil || h.EditForm != nil {
		return h.forwardToFocused(msg)
	}

	action, consumed := h.KeyState.HandleKey(msg, h.Keymap)
	if !consumed || action == "" {
		return nil
	}

	return h.handleAction(action)
}

func (h *Handler) handleAction(action string) tea.Cmd {
	switch action {
	case state.ActionUp:
		h.moveCursor(-1)
	case state.ActionDown:
		h.moveCursor(1)
	case state.ActionTop:
		h.Cursor = 0
	case state.ActionBottom:
		h.Cursor = len(h.Snapshot.Items) - 1
		h.clampCursor()
	case state.ActionAdd:
		return h.openAddDialog()
	case state.ActionEdit:
		if row, ok := h.SelectedRow(); ok {
			return row.EditClick()
		}
	case state.ActionDelete:
		if row, ok := h.SelectedRow(); ok {
			return row.DeleteClick()
		}
	case state.ActionCopy:
		return h.copyListCmd()
	case state.ActionHelp:
		h.HelpComp.SetKeymap(h.Keymap.HelpItems())
		h.HelpComp.SetSize(h.Width, h.Height)
		h.ShowHelp = true
	case state.ActionToggleHints:
		h.ShowHints = !h.ShowHints
	case state.ActionQuit:
		return tea.Quit
	}
	return nil
}

// forwardToFocused passes msg to the open dialog or edit form, if any.
func (h *Handler) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case h.AddDialog != nil:
		_, cmd = h.AddDialog.Update(msg)
	case h.EditForm != nil:
		_, cmd = h.EditForm.Update(msg)
	}
	return cmd
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	h.HelpComp.SetSize(msg.Width, msg.Height)
	if h.AddDialog != nil {
		h.AddDialog.SetSize(msg.Width, msg.Height)
	}
	if h.EditForm != nil {
		h.EditForm.SetSize(msg.Width, msg.Height)
	}
	return nil
}

func (h *Handler) moveCursor(delta int) {
	h.Cursor += delta
	h.clampCursor()
}

func (h *Handler) clampCursor() {
	h.Cursor = utils.Clamp(h.Cursor, 0, len(h.Snapshot.Items)-1)
}
