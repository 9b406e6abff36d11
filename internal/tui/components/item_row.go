package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/shoplist-tui/internal/shopping"
	"github.com/hy4ri/shoplist-tui/internal/tui/styles"
	"github.com/hy4ri/shoplist-tui/internal/tui/utils"
)

const (
	qtyColumnWidth = 6
	rowActions     = "[e]dit [dd]elete"
)

// ItemRow renders a single list entry. It holds no state of its own; the
// caller binds the item id into OnEditClick and OnDeleteClick.
type ItemRow struct {
	Item     shopping.Item
	Selected bool
	Width    int

	// ShowActions renders the edit/delete affordances after the quantity.
	ShowActions bool

	OnEditClick   tea.Cmd
	OnDeleteClick tea.Cmd
}

// NewItemRow creates a row whose callbacks emit EditClickedMsg and DeleteClickedMsg for item.
func NewItemRow(item shopping.Item) ItemRow {
	id := item.ID
	return ItemRow{
		Item:          item,
		ShowActions:   true,
		OnEditClick:   emit(EditClickedMsg{ID: id}),
		OnDeleteClick: emit(DeleteClickedMsg{ID: id}),
	}
}

// EditClick activates the edit affordance.
func (r ItemRow) EditClick() tea.Cmd {
	return r.OnEditClick
}

// DeleteClick activates the delete affordance.
func (r ItemRow) DeleteClick() tea.Cmd {
	return r.OnDeleteClick
}

// rowIndent is the left padding of ItemRow and the border plus padding of ItemSelected.
const rowIndent = 2

// nameWidth returns the width of the name column.
func (r ItemRow) nameWidth() int {
	width := r.Width
	if width <= 0 {
		width = 40
	}

	w := width - rowIndent - 1 - qtyColumnWidth
	if r.ShowActions {
		w -= 2 + len(rowActions)
	}
	if w < 4 {
		w = 4
	}
	return w
}

// View renders the row on a single line.
func (r ItemRow) View() string {
	actions := ""
	if r.ShowActions {
		actions = "  " + styles.ItemAction.Render(rowActions)
	}

	nameWidth := r.nameWidth()
	name := utils.PadRight(utils.TruncateString(r.Item.Name, nameWidth), nameWidth)
	qty := styles.ItemQty.Render(fmt.Sprintf("%*d", qtyColumnWidth, r.Item.Qty))

	line := name + " " + qty + actions
	if r.Selected {
		return styles.ItemSelected.Render(line)
	}
	return styles.ItemRow.Render(line)
}

// HitTest returns the command behind the affordance at column x, measured
// from the row's left edge, or nil when x is not on an affordance.
func (r ItemRow) HitTest(x int) tea.Cmd {
	if !r.ShowActions {
		return nil
	}

	editStart := rowIndent + r.nameWidth() + 1 + qtyColumnWidth + 2
	deleteStart := editStart + len("[e]dit ")
	switch {
	case x >= editStart && x < editStart+len("[e]dit"):
		return r.OnEditClick
	case x >= deleteStart && x < editStart+len(rowActions):
		return r.OnDeleteClick
	}
	return nil
}
