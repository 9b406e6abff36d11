package logic

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/shoplist-tui/internal/shopping"
	"github.com/hy4ri/shoplist-tui/internal/tui/components"
)

// openAddDialog opens the add dialog seeded with the store's drafts.
func (h *Handler) openAddDialog() tea.Cmd {
	h.Store.OpenAddDialog()
	h.syncComponents()
	h.KeyState.Reset()

	h.AddDialog = components.NewAddDialog(h.Snapshot.DraftName, h.Snapshot.DraftQty)
	h.AddDialog.SetSize(h.Width, h.Height)
	h.Err = nil
	h.StatusMsg = ""
	return textinput.Blink
}

func (h *Handler) handleAddConfirmed(msg components.AddConfirmedMsg) tea.Cmd {
	err := h.Store.AddItem(msg.Name, msg.Qty)
	if err != nil {
		if h.AddDialog != nil {
			h.AddDialog.SetError(validationText(err))
		}
		if vErr, ok := shopping.IsValidationError(err); ok {
			h.Log.Debug("add rejected", zap.String("field", vErr.Field), zap.Error(err))
			return nil
		}
		h.Err = err
		return nil
	}

	h.syncComponents()
	h.Cursor = len(h.Snapshot.Items) - 1
	h.clampCursor()

	added := h.Snapshot.Items[len(h.Snapshot.Items)-1]
	h.Err = nil
	h.StatusMsg = fmt.Sprintf("Added %s", added)
	h.Log.Info("item added", zap.Int("id", added.ID), zap.String("name", added.Name), zap.Int("qty", added.Qty))

	if h.Config.UI.Notifications {
		return h.notifyCmd("Shopping list", fmt.Sprintf("Added %s", added))
	}
	return nil
}

func (h *Handler) handleEditClicked(msg components.EditClickedMsg) tea.Cmd {
	h.Store.BeginEdit(msg.ID)
	h.syncComponents()

	item, ok := h.Snapshot.EditingItem()
	if !ok {
		return nil
	}
	if idx := slices.IndexFunc(h.Snapshot.Items, func(it shopping.Item) bool { return it.ID == item.ID }); idx >= 0 {
		h.Cursor = idx
	}
	h.EditForm = components.NewEditForm(item)
	h.EditForm.SetSize(h.Width, h.Height)
	return textinput.Blink
}

func (h *Handler) handleEditSaved(msg components.EditSavedMsg) tea.Cmd {
	h.Store.CompleteEdit(msg.ID, msg.Name, msg.Qty)
	h.EditForm = nil
	h.syncComponents()

	if item, ok := h.Snapshot.Find(msg.ID); ok {
		h.Err = nil
		h.StatusMsg = fmt.Sprintf("Saved %s", item)
	}
	return nil
}

func (h *Handler) handleDeleteClicked(msg components.DeleteClickedMsg) tea.Cmd {
	item, found := h.Snapshot.Find(msg.ID)

	h.Store.DeleteItem(msg.ID)
	h.syncComponents()
	h.clampCursor()

	if found {
		h.Err = nil
		h.StatusMsg = fmt.Sprintf("Deleted %s", item.Name)
		h.Log.Info("item deleted", zap.Int("id", item.ID))
	}
	return nil
}

// syncComponents drops the dialog or edit form once the store no longer
// shows it.
func (h *Handler) syncComponents() {
	if !h.Snapshot.DialogOpen() {
		h.AddDialog = nil
	}
	if h.EditForm != nil {
		if item, ok := h.Snapshot.EditingItem(); !ok || item.ID != h.EditForm.ItemID() {
			h.EditForm = nil
		}
	}
}

func validationText(err error) string {
	switch {
	case errors.Is(err, shopping.ErrBlankName):
		return "Name is required"
	case errors.Is(err, shopping.ErrInvalidQuantity):
		return "Quantity must be a whole number"
	}
	return err.Error()
}
