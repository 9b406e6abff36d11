package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/shoplist-tui/internal/config"
	"github.com/hy4ri/shoplist-tui/internal/shopping"
)

func TestNew_FollowsStore(t *testing.T) {
	store := shopping.NewStore()
	s := New(store, nil, nil)

	if err := store.AddItem("Milk", "2"); err != nil {
		t.Fatal(err)
	}
	if len(s.Snapshot.Items) != 1 {
		t.Fatalf("state should receive the new snapshot, got %d items", len(s.Snapshot.Items))
	}

	s.Close()
	store.DeleteItem(1)
	if len(s.Snapshot.Items) != 1 {
		t.Error("closed state should stop following the store")
	}
}

func TestRows_BindsSelection(t *testing.T) {
	store := shopping.NewStore()
	_ = store.AddItem("Milk", "1")
	_ = store.AddItem("Bread", "1")
	s := New(store, config.DefaultConfig(), nil)
	s.Cursor = 1

	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Selected || !rows[1].Selected {
		t.Error("only the row under the cursor should be selected")
	}

	row, ok := s.SelectedRow()
	if !ok || row.Item.Name != "Bread" {
		t.Errorf("unexpected selected row %+v", row.Item)
	}

	s.Cursor = 5
	if _, ok := s.SelectedRow(); ok {
		t.Error("cursor past the end should select nothing")
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 20, H: 8}
	if !r.Contains(10, 5) || !r.Contains(29, 12) {
		t.Error("corners should be inside")
	}
	if r.Contains(30, 5) || r.Contains(10, 13) || r.Contains(9, 6) {
		t.Error("points past the edges should be outside")
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyState_Sequences(t *testing.T) {
	km := DefaultKeymap(true)
	ks := &KeyState{}

	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"d", "d"}, ActionDelete},
		{[]string{"g", "g"}, ActionTop},
		{[]string{"y", "y"}, ActionCopy},
		{[]string{"d", "j"}, ActionDown},
		{[]string{"G"}, ActionBottom},
		{[]string{"a"}, ActionAdd},
		{[]string{"e"}, ActionEdit},
		{[]string{"?"}, ActionHelp},
		{[]string{"q"}, ActionQuit},
	}

	for _, tt := range tests {
		ks.Reset()
		var action string
		for _, k := range tt.keys {
			action, _ = ks.HandleKey(runeKey(k), km)
		}
		if action != tt.want {
			t.Errorf("keys %v: got action %q, want %q", tt.keys, action, tt.want)
		}
	}
}

func TestKeyState_FirstKeyOfSequenceIsConsumed(t *testing.T) {
	ks := &KeyState{}
	action, consumed := ks.HandleKey(runeKey("d"), DefaultKeymap(true))
	if action != "" || !consumed {
		t.Errorf("first d should be consumed without action, got %q/%v", action, consumed)
	}
	if ks.Pending != ActionDelete {
		t.Errorf("expected pending delete, got %q", ks.Pending)
	}
}

func TestKeyState_PlainMode(t *testing.T) {
	km := DefaultKeymap(false)
	ks := &KeyState{}

	if action, _ := ks.HandleKey(runeKey("x"), km); action != ActionDelete {
		t.Errorf("x should delete in plain mode, got %q", action)
	}
	if action, _ := ks.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, km); action != ActionDown {
		t.Errorf("down arrow should move down, got %q", action)
	}
	if action, consumed := ks.HandleKey(runeKey("j"), km); consumed {
		t.Errorf("j should not be bound in plain mode, got %q", action)
	}
}

func TestHelpItems(t *testing.T) {
	items := DefaultKeymap(true).HelpItems()
	found := false
	for _, it := range items {
		if it[0] == "dd" {
			found = true
		}
	}
	if !found {
		t.Error("help should list the dd delete sequence")
	}
}
