package shopping

import (
	"slices"
	"strings"

	"go.uber.org/zap"
)

// IDPolicy selects how new item ids are assigned.
type IDPolicy int

const (
	// IDMonotonic hands out ids from a counter that never goes back,
	// so an id is never reused after a delete.
	IDMonotonic IDPolicy = iota

	// IDLegacyCount assigns len(items)+1. After a delete the next id can
	// collide with a surviving item.
	IDLegacyCount
)

// ParseIDPolicy maps a config value to a policy. Unknown values fall back to IDMonotonic.
func ParseIDPolicy(s string) IDPolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "count":
		return IDLegacyCount
	default:
		return IDMonotonic
	}
}

func (p IDPolicy) String() string {
	if p == IDLegacyCount {
		return "legacy"
	}
	return "monotonic"
}

// Listener receives a snapshot after every mutating call.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Store owns the shopping list for one screen.
// It is not safe for concurrent use; call it from the UI update loop only.
type Store struct {
	items     []Item
	mode      Mode
	draftName string
	draftQty  string
	revision  uint64

	lastID int
	policy IDPolicy

	subs    []subscription
	nextSub int

	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDPolicy sets the id assignment policy.
func WithIDPolicy(p IDPolicy) Option {
	return func(s *Store) { s.policy = p }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		items: []Item{},
		mode:  ModeIdle,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the id policy in use.
func (s *Store) Policy() IDPolicy {
	return s.policy
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Items:     slices.Clone(s.items),
		Mode:      s.mode,
		DraftName: s.draftName,
		DraftQty:  s.draftQty,
		Revision:  s.revision,
	}
}

// Subscribe registers fn to receive snapshots. The returned func removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *Store) commit() {
	s.revision++
	if len(s.subs) == 0 {
		return
	}
	subs := slices.Clone(s.subs)
	for _, sub := range subs {
		sub.fn(s.Snapshot())
	}
}

func (s *Store) newID() int {
	if s.policy == IDLegacyCount {
		return len(s.items) + 1
	}
	s.lastID++
	return s.lastID
}

// AddItem appends a new item built from the add dialog's text.
// A blank name or unparsable quantity is refused with a *ValidationError;
// the dialog then stays open and the drafts are kept.
func (s *Store) AddItem(name, qtyText string) error {
	defer s.commit()

	if strings.TrimSpace(name) == "" {
		s.log.Debug("add refused", zap.String("reason", "blank name"))
		return &ValidationError{Field: "name", Value: name, Err: ErrBlankName}
	}
	qty, err := ParseQuantity(qtyText)
	if err != nil {
		s.log.Debug("add refused", zap.String("reason", "bad quantity"), zap.String("qty", qtyText))
		return err
	}

	item := Item{ID: s.newID(), Name: name, Qty: qty}
	next := make([]Item, 0, len(s.items)+1)
	next = append(next, s.items...)
	s.items = append(next, item)

	s.draftName = ""
	s.draftQty = ""
	s.mode = ModeIdle

	s.log.Debug("item added",
		zap.Int("id", item.ID),
		zap.String("name", item.Name),
		zap.Int("qty", item.Qty),
		zap.Stringer("id_policy", s.policy),
	)
	return nil
}

// BeginEdit puts the first item with the given id into edit mode and takes
// it out of every other item. Unknown ids and calls made while the add dialog is
// open leave the list untouched.
func (s *Store) BeginEdit(id int) {
	defer s.commit()

	if s.mode == ModeAddDialog {
		return
	}
	idx := slices.IndexFunc(s.items, func(it Item) bool { return it.ID == id })
	if idx < 0 {
		return
	}

	next := make([]Item, len(s.items))
	for i, it := range s.items {
		it.Editing = i == idx
		next[i] = it
	}
	s.items = next
	s.log.Debug("edit started", zap.Int("id", id))
}

// CompleteEdit clears every editing flag, then applies name and qty to the
// first item with the given id. An unknown id only clears the flags.
func (s *Store) CompleteEdit(id int, name string, qty int) {
	defer s.commit()

	next := make([]Item, len(s.items))
	for i, it := range s.items {
		it.Editing = false
		next[i] = it
	}
	if idx := slices.IndexFunc(next, func(it Item) bool { return it.ID == id }); idx >= 0 {
		next[idx].Name = name
		next[idx].Qty = qty
		s.log.Debug("edit saved", zap.Int("id", id), zap.String("name", name), zap.Int("qty", qty))
	}
	s.items = next
}

// DeleteItem removes the first item with the given id.
func (s *Store) DeleteItem(id int) {
	defer s.commit()

	idx := slices.IndexFunc(s.items, func(it Item) bool { return it.ID == id })
	if idx < 0 {
		return
	}
	next := make([]Item, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	s.items = append(next, s.items[idx+1:]...)
	s.log.Debug("item deleted", zap.Int("id", id))
}

// OpenAddDialog shows the add dialog. Any inline edit is dropped so the
// dialog and an edit form are never active together.
func (s *Store) OpenAddDialog() {
	defer s.commit()

	s.mode = ModeAddDialog
	if !slices.ContainsFunc(s.items, func(it Item) bool { return it.Editing }) {
		return
	}
	next := make([]Item, len(s.items))
	for i, it := range s.items {
		it.Editing = false
		next[i] = it
	}
	s.items = next
}

// CloseAddDialog cancels the add dialog and clears the drafts.
func (s *Store) CloseAddDialog() {
	defer s.commit()

	s.mode = ModeIdle
	s.draftName = ""
	s.draftQty = ""
}

// DismissAddDialog hides the add dialog but keeps the drafts for the next open.
func (s *Store) DismissAddDialog() {
	defer s.commit()

	s.mode = ModeIdle
}

// SetDraft records the add dialog's uncommitted text.
func (s *Store) SetDraft(name, qtyText string) {
	defer s.commit()

	s.draftName = name
	s.draftQty = qtyText
}
