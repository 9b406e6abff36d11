package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/shoplist-tui/internal/shopping"
	"github.com/hy4ri/shoplist-tui/internal/tui/styles"
)

const (
	editFieldName = iota
	editFieldQty
	editFieldCount
)

// EditFormModel is the inline form shown in place of the row being edited.
type EditFormModel struct {
	item  shopping.Item
	name  textinput.Model
	qty   textinput.Model
	focus int

	width int
}

// NewEditForm creates an edit form seeded from item.
func NewEditForm(item shopping.Item) *EditFormModel {
	name := textinput.New()
	name.Prompt = "Name: "
	name.Placeholder = "Edit your item name"
	name.CharLimit = 200
	name.Width = 30
	name.SetValue(item.Name)
	name.CursorEnd()

	qty := textinput.New()
	qty.Prompt = "Qty:  "
	qty.Placeholder = "Edit your item quantity"
	qty.CharLimit = 9
	qty.Width = 10
	qty.SetValue(strconv.Itoa(item.Qty))

	f := &EditFormModel{item: item, name: name, qty: qty}
	f.Focus(editFieldName)
	return f
}

// ItemID returns the id of the item being edited.
func (f *EditFormModel) ItemID() int {
	return f.item.ID
}

// Init implements Component.
func (f *EditFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements Component.
func (f *EditFormModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.Focus((f.focus + 1) % editFieldCount)
			return f, nil
		case "shift+tab", "up":
			f.Focus((f.focus - 1 + editFieldCount) % editFieldCount)
			return f, nil
		case "enter":
			return f, emit(f.Save())
		case "esc":
			// No cancel operation exists; leaving saves the original values.
			return f, emit(EditSavedMsg{ID: f.item.ID, Name: f.item.Name, Qty: f.item.Qty})
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case editFieldName:
		f.name, cmd = f.name.Update(msg)
	case editFieldQty:
		f.qty, cmd = f.qty.Update(msg)
	}
	return f, cmd
}

// Save builds the confirmed values. Unparsable quantity text becomes 1.
func (f *EditFormModel) Save() EditSavedMsg {
	return EditSavedMsg{
		ID:   f.item.ID,
		Name: f.name.Value(),
		Qty:  shopping.ParseQuantityOrDefault(f.qty.Value()),
	}
}

// View implements Component.
func (f *EditFormModel) View() string {
	var b strings.Builder
	b.WriteString(f.name.View() + "\n")
	b.WriteString(f.qty.View() + "\n")
	b.WriteString(styles.HelpDesc.Render("Enter: Save  •  Tab: next field"))

	style := styles.EditForm
	if f.width > 0 {
		style = style.Width(f.width - 4)
	}
	return style.Render(b.String())
}

// SetSize implements Component.
func (f *EditFormModel) SetSize(width, height int) {
	f.width = width
	inputWidth := width - 16
	if inputWidth < 10 {
		inputWidth = 10
	}
	f.name.Width = inputWidth
}

// Focus moves focus to the given field.
func (f *EditFormModel) Focus(field int) {
	f.focus = field
	f.name.Blur()
	f.qty.Blur()

	switch field {
	case editFieldName:
		f.name.Focus()
	case editFieldQty:
		f.qty.Focus()
	}
}

// SetValues replaces the text in both fields.
func (f *EditFormModel) SetValues(name, qty string) {
	f.name.SetValue(name)
	f.qty.SetValue(qty)
}
