package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/shoplist-tui/internal/tui/styles"
)

// renderStatusBar renders the bottom status bar.
func (r *Renderer) renderStatusBar() string {
	// Left side: error or status message
	left := ""
	if r.Err != nil {
		errStr := strings.ReplaceAll(r.Err.Error(), "\n", " ")
		left = styles.StatusBarError.Render("Error: " + errStr)
	} else if r.StatusMsg != "" {
		msgStr := strings.ReplaceAll(r.StatusMsg, "\n", " ")
		left = styles.StatusBarSuccess.Render(msgStr)
	}

	right := ""
	if r.ShowHints {
		var parts []string
		for _, b := range r.Keymap.ShortHelp() {
			h := b.Help()
			parts = append(parts, styles.StatusBarKey.Render(h.Key)+styles.StatusBarText.Render(" "+h.Desc))
		}
		right = strings.Join(parts, styles.StatusBarText.Render(" • "))
	}

	// 2 for the bar's own padding
	width := r.Width - 2
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough room: the message wins over the hints
		if left != "" {
			right = ""
		}
		gap = 1
	}

	bar := left + styles.StatusBarText.Render(strings.Repeat(" ", gap)) + right
	return styles.StatusBar.Width(width).MaxHeight(1).Render(bar)
}
