package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/hy4ri/shoplist-tui/internal/config"
	"github.com/hy4ri/shoplist-tui/internal/shopping"
	"github.com/hy4ri/shoplist-tui/internal/tui/components"
	"github.com/hy4ri/shoplist-tui/internal/tui/state"
)

func newTestRenderer(t *testing.T, names ...string) *Renderer {
	t.Helper()
	store := shopping.NewStore()
	s := state.New(store, config.DefaultConfig(), zap.NewNop())
	t.Cleanup(s.Close)

	for _, n := range names {
		if err := store.AddItem(n, "2"); err != nil {
			t.Fatalf("add %q: %v", n, err)
		}
	}
	s.Width = 80
	s.Height = 24
	return NewRenderer(s)
}

func TestView_Loading(t *testing.T) {
	r := newTestRenderer(t)
	r.Width = 0
	if got := r.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestView_EmptyList(t *testing.T) {
	r := newTestRenderer(t)
	out := r.View()
	if !strings.Contains(out, "Your list is empty") {
		t.Error("empty list should show a placeholder")
	}
	if !strings.Contains(out, "0 items") {
		t.Error("header should show the item count")
	}
}

func TestView_ListsItemsAndRecordsLines(t *testing.T) {
	r := newTestRenderer(t, "Milk", "Bread")
	out := r.View()

	for _, want := range []string{"Milk", "Bread", "2 items"} {
		if !strings.Contains(out, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	want := []int{-1, -1, 0, 1}
	if len(r.ViewportLines) != len(want) {
		t.Fatalf("ViewportLines = %v, want %v", r.ViewportLines, want)
	}
	for i := range want {
		if r.ViewportLines[i] != want[i] {
			t.Errorf("ViewportLines[%d] = %d, want %d", i, r.ViewportLines[i], want[i])
		}
	}
}

func TestView_FitsScreen(t *testing.T) {
	r := newTestRenderer(t, "Milk")
	out := r.View()
	if h := lipgloss.Height(out); h != r.Height {
		t.Errorf("view height = %d, want %d", h, r.Height)
	}
}

func TestView_ScrollsToCursor(t *testing.T) {
	names := make([]string, 40)
	for i := range names {
		names[i] = "Item"
	}
	r := newTestRenderer(t, names...)
	r.Cursor = 39

	r.View()

	if r.ScrollOffset == 0 {
		t.Fatal("list should scroll to keep the cursor visible")
	}
	last := r.ViewportLines[len(r.ViewportLines)-1]
	if last != 39 {
		t.Errorf("last visible item = %d, want 39", last)
	}
}

func TestView_EditFormReplacesRow(t *testing.T) {
	r := newTestRenderer(t, "Milk", "Bread")
	r.Store.BeginEdit(1)
	item, _ := r.Snapshot.EditingItem()
	r.EditForm = components.NewEditForm(item)

	out := r.View()
	if !strings.Contains(out, "Name:") {
		t.Error("editing item should render the edit form")
	}

	// The form spans several lines, all owned by item 0.
	owned := 0
	for _, idx := range r.ViewportLines {
		if idx == 0 {
			owned++
		}
	}
	if owned < 2 {
		t.Errorf("edit form should own several lines, got %d", owned)
	}
}

func TestView_DialogRecordsBounds(t *testing.T) {
	r := newTestRenderer(t, "Milk")
	r.Store.OpenAddDialog()
	r.AddDialog = components.NewAddDialog("", "")

	out := r.View()
	if !strings.Contains(out, "Add Shopping Item") {
		t.Error("dialog title should be rendered")
	}

	b := r.DialogBounds
	if b.W == 0 || b.H == 0 {
		t.Fatal("dialog bounds should be recorded")
	}
	if !b.Contains(r.Width/2, r.Height/2) {
		t.Errorf("dialog %+v should cover the screen center", b)
	}
	if b.Contains(0, 0) {
		t.Error("dialog should not reach the corner")
	}
}

func TestView_StatusBar(t *testing.T) {
	r := newTestRenderer(t)
	r.StatusMsg = "Added Milk x 2"
	if out := r.View(); !strings.Contains(out, "Added Milk x 2") {
		t.Error("status message should be shown")
	}

	r.ShowHints = false
	r.StatusMsg = ""
	if out := r.View(); strings.Contains(out, "add item") {
		t.Error("hints should be hidden")
	}
}

func TestView_Help(t *testing.T) {
	r := newTestRenderer(t)
	r.ShowHelp = true
	if out := r.View(); !strings.Contains(out, "Keyboard Shortcuts") {
		t.Error("help view should be shown")
	}
}
