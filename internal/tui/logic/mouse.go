package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/shoplist-tui/internal/tui/styles"
)

func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if h.ShowHelp {
		return nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if h.AddDialog != nil || h.EditForm != nil {
			return nil
		}
		if msg.Button == tea.MouseButtonWheelUp {
			h.moveCursor(-1)
		} else {
			h.moveCursor(1)
		}
		return nil
	}

	// Only handle left clicks for other actions
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	// A click outside the open dialog dismisses it and keeps the drafts
	if h.AddDialog != nil {
		if !h.DialogBounds.Contains(msg.X, msg.Y) {
			h.Store.DismissAddDialog()
			h.syncComponents()
		}
		return nil
	}

	if h.EditForm != nil {
		return nil
	}

	return h.handleListClick(msg.X, msg.Y)
}

// handleListClick selects the clicked row and fires its affordance, if any.
func (h *Handler) handleListClick(x, y int) tea.Cmd {
	if y < 0 || y >= len(h.ViewportLines) {
		return nil
	}
	idx := h.ViewportLines[y]
	if idx < 0 || idx >= len(h.Snapshot.Items) {
		return nil
	}

	h.Cursor = idx
	rows := h.Rows()
	return rows[idx].HitTest(x - styles.App.GetPaddingLeft())
}
