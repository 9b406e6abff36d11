package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/shoplist-tui/internal/tui/styles"
)

const (
	addFieldName = iota
	addFieldQty
	addFieldCount
)

// AddDialogModel is the modal that collects a new item's name and quantity.
// Its text stays local until Enter; every change is still reported with
// DraftChangedMsg so the store can keep the drafts.
type AddDialogModel struct {
	name  textinput.Model
	qty   textinput.Model
	focus int

	width, height int
	errText       string
}

// NewAddDialog creates an add dialog seeded with the given drafts.
func NewAddDialog(draftName, draftQty string) *AddDialogModel {
	name := textinput.New()
	name.Placeholder = "Type your item name"
	name.CharLimit = 200
	name.Width = 40
	name.SetValue(draftName)

	qty := textinput.New()
	qty.Placeholder = "Type your item quantity"
	qty.CharLimit = 9
	qty.Width = 40
	qty.SetValue(draftQty)

	d := &AddDialogModel{name: name, qty: qty}
	d.Focus(addFieldName)
	return d
}

// Init implements Component.
func (d *AddDialogModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements Component.
func (d *AddDialogModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			d.Focus((d.focus + 1) % addFieldCount)
			return d, nil
		case "shift+tab", "up":
			d.Focus((d.focus - 1 + addFieldCount) % addFieldCount)
			return d, nil
		case "esc":
			return d, emit(AddCancelledMsg{})
		case "enter":
			name, qty := d.Values()
			if strings.TrimSpace(name) == "" {
				d.errText = "Name is required"
				d.Focus(addFieldName)
				return d, nil
			}
			return d, emit(AddConfirmedMsg{Name: strings.TrimSpace(name), Qty: qty})
		}
	}

	beforeName, beforeQty := d.Values()

	var cmd tea.Cmd
	switch d.focus {
	case addFieldName:
		d.name, cmd = d.name.Update(msg)
	case addFieldQty:
		d.qty, cmd = d.qty.Update(msg)
	}

	name, qty := d.Values()
	if name == beforeName && qty == beforeQty {
		return d, cmd
	}
	d.errText = ""
	return d, tea.Batch(cmd, emit(DraftChangedMsg{Name: name, Qty: qty}))
}

// View implements Component.
func (d *AddDialogModel) View() string {
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render("Add Shopping Item") + "\n\n")

	b.WriteString(styles.InputLabel.Render("Item Name") + "\n")
	b.WriteString(d.name.View() + "\n\n")

	b.WriteString(styles.InputLabel.Render("Item Quantity") + "\n")
	b.WriteString(d.qty.View() + "\n")

	if d.errText != "" {
		b.WriteString("\n" + styles.InputError.Render(d.errText) + "\n")
	}

	b.WriteString("\n" + styles.HelpDesc.Render("Enter: Add  •  Esc: Cancel  •  Tab: next field"))

	return styles.Dialog.Width(d.dialogWidth()).Render(b.String())
}

func (d *AddDialogModel) dialogWidth() int {
	w := 56
	if d.width > 0 && d.width-4 < w {
		w = d.width - 4
	}
	if w < 30 {
		w = 30
	}
	return w
}

// SetSize implements Component.
func (d *AddDialogModel) SetSize(width, height int) {
	d.width = width
	d.height = height

	inputWidth := d.dialogWidth() - 8
	d.name.Width = inputWidth
	d.qty.Width = inputWidth
}

// Focus moves focus to the given field.
func (d *AddDialogModel) Focus(field int) {
	d.focus = field
	d.name.Blur()
	d.qty.Blur()

	switch field {
	case addFieldName:
		d.name.Focus()
	case addFieldQty:
		d.qty.Focus()
	}
}

// FocusedField returns the index of the focused field (0 name, 1 quantity).
func (d *AddDialogModel) FocusedField() int {
	return d.focus
}

// Values returns the current, uncommitted name and quantity text.
func (d *AddDialogModel) Values() (string, string) {
	return d.name.Value(), d.qty.Value()
}

// SetError shows a validation message under the fields.
func (d *AddDialogModel) SetError(text string) {
	d.errText = text
}

// Error returns the validation message currently shown.
func (d *AddDialogModel) Error() string {
	return d.errText
}
