package components

// AddConfirmedMsg is emitted when the add dialog is submitted with a non-blank name.
type AddConfirmedMsg struct {
	Name string
	Qty  string
}

// AddCancelledMsg is emitted when the add dialog is cancelled.
type AddCancelledMsg struct{}

// DraftChangedMsg is emitted whenever the add dialog's text changes.
type DraftChangedMsg struct {
	Name string
	Qty  string
}

// EditClickedMsg is emitted by a row's edit affordance.
type EditClickedMsg struct {
	ID int
}

// DeleteClickedMsg is emitted by a row's delete affordance.
type DeleteClickedMsg struct {
	ID int
}

// EditSavedMsg is emitted when the inline edit form is saved.
type EditSavedMsg struct {
	ID   int
	Name string
	Qty  int
}

// HelpClosedMsg is emitted when the help view is dismissed.
type HelpClosedMsg struct{}
