package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/shoplist-tui/internal/tui/styles"
)

// HelpModel renders the help view with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keymap        [][]string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{
		keymap: nil, // Will be set by renderer
	}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return h, emit(HelpClosedMsg{})
		}
	}
	return h, nil
}

// View implements Component. Sections are stacked in one column inside a
// box centered on the screen.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	keyWidth := 0
	for _, item := range h.keymap {
		if len(item) == 2 && item[1] != "" {
			keyWidth = max(keyWidth, lipgloss.Width(item[0]))
		}
	}
	keyStyle := styles.HelpKey.Copy().Width(keyWidth + 2)

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard Shortcuts") + "\n")

	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		switch k, desc := item[0], item[1]; {
		case k == "" && desc == "":
			// separators are implied by the section headers
		case desc == "":
			b.WriteString("\n" + styles.SectionHeader.Render(k) + "\n")
		default:
			b.WriteString(keyStyle.Render(k) + styles.HelpDesc.Render(desc) + "\n")
		}
	}

	b.WriteString("\n" + styles.HelpDesc.Render("esc, ? or q to close"))

	box := styles.Dialog.Render(b.String())
	if h.width == 0 || h.height == 0 {
		return box
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets custom help items.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
