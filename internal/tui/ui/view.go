// Package ui renders the shopping list screen from the shared state.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/shoplist-tui/internal/tui/state"
	"github.com/hy4ri/shoplist-tui/internal/tui/styles"
)

// headerHeight is the title line plus the blank line under it.
const headerHeight = 2

type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.ShowHelp {
		r.HelpComp.SetKeymap(r.Keymap.HelpItems())
		r.HelpComp.SetSize(r.Width, r.Height)
		return r.HelpComp.View()
	}

	if r.AddDialog != nil {
		return r.renderDialog()
	}
	r.DialogBounds = state.Rect{}

	return r.renderMainView()
}

// renderMainView renders the title, the list and the status bar.
func (r *Renderer) renderMainView() string {
	statusBar := r.renderStatusBar()
	listHeight := r.Height - headerHeight - lipgloss.Height(statusBar)
	if listHeight < 1 {
		listHeight = 1
	}

	var b strings.Builder
	b.WriteString(r.renderHeader())
	b.WriteString("\n\n")

	list := r.renderList(listHeight)
	b.WriteString(lipgloss.Place(r.Width-2, listHeight, lipgloss.Left, lipgloss.Top, list))
	b.WriteString("\n")
	b.WriteString(statusBar)

	return styles.App.Render(b.String())
}

func (r *Renderer) renderHeader() string {
	n := len(r.Snapshot.Items)
	noun := "items"
	if n == 1 {
		noun = "item"
	}
	return styles.Title.Render("🛒 Shopping List") + "  " + styles.Subtitle.Render(fmt.Sprintf("%d %s", n, noun))
}

// renderList renders the visible part of the list and records which screen
// line belongs to which item.
func (r *Renderer) renderList(height int) string {
	r.ViewportLines = make([]int, headerHeight, headerHeight+height)
	for i := range r.ViewportLines {
		r.ViewportLines[i] = -1
	}

	if len(r.Snapshot.Items) == 0 {
		r.ScrollOffset = 0
		return styles.EmptyList.Render("Your list is empty. Press a to add an item.")
	}

	var lines []string
	var owners []int
	cursorStart, cursorEnd := 0, 0

	for i, row := range r.Rows() {
		var chunk string
		if row.Item.Editing && r.EditForm != nil && r.EditForm.ItemID() == row.Item.ID {
			r.EditForm.SetSize(r.Width-2, r.Height)
			chunk = r.EditForm.View()
		} else {
			chunk = row.View()
		}

		if i == r.Cursor {
			cursorStart = len(lines)
		}
		for _, line := range strings.Split(chunk, "\n") {
			lines = append(lines, line)
			owners = append(owners, i)
		}
		if i == r.Cursor {
			cursorEnd = len(lines)
		}
	}

	r.scrollTo(cursorStart, cursorEnd, height, len(lines))

	end := r.ScrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	r.ViewportLines = append(r.ViewportLines, owners[r.ScrollOffset:end]...)

	return strings.Join(lines[r.ScrollOffset:end], "\n")
}

// scrollTo adjusts ScrollOffset so lines [start, end) are visible.
func (r *Renderer) scrollTo(start, end, height, total int) {
	if start < r.ScrollOffset {
		r.ScrollOffset = start
	}
	if end > r.ScrollOffset+height {
		r.ScrollOffset = end - height
	}
	if maxOffset := total - height; r.ScrollOffset > maxOffset {
		r.ScrollOffset = maxOffset
	}
	if r.ScrollOffset < 0 {
		r.ScrollOffset = 0
	}
}

// renderDialog centers the add dialog on the screen and records its bounds.
func (r *Renderer) renderDialog() string {
	r.AddDialog.SetSize(r.Width, r.Height)
	dialog := r.AddDialog.View()

	w, h := lipgloss.Width(dialog), lipgloss.Height(dialog)
	r.DialogBounds = state.Rect{
		X: max(0, (r.Width-w)/2),
		Y: max(0, (r.Height-h)/2),
		W: w,
		H: h,
	}

	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog,
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#333333"}),
	)
}
