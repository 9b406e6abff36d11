package logic

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/shoplist-tui/internal/shopping"
)

// copyListCmd copies the whole list to the system clipboard.
func (h *Handler) copyListCmd() tea.Cmd {
	items := h.Snapshot.Items
	if len(items) == 0 {
		return func() tea.Msg {
			return statusMsg{msg: "Nothing to copy"}
		}
	}

	text := shopping.FormatList(items)
	write := h.writeClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return errMsg{fmt.Errorf("copy list: %w", err)}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %d items to clipboard", len(items))}
	}
}

// notifyCmd sends a desktop notification. Failures only show in the status bar.
func (h *Handler) notifyCmd(title, message string) tea.Cmd {
	notify := h.notify
	return func() tea.Msg {
		if err := notify(title, message); err != nil {
			return errMsg{fmt.Errorf("notify: %w", err)}
		}
		return nil
	}
}
