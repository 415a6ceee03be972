package flashcard

import "github.com/vytor/flashdeck/internal/models"

// Editor is the transient card-editing session: whether the editor is open,
// the pending fields of a card not yet added, and the card being edited.
// Closing the editor discards all of it.
type Editor struct {
	open    bool
	draft   models.CardFields
	editing *models.Card
}

// IsOpen reports whether the editor is shown.
func (e *Editor) IsOpen() bool { return e.open }

// Open shows the editor.
func (e *Editor) Open() { e.open = true }

// Close hides the editor and drops the session.
func (e *Editor) Close() {
	*e = Editor{}
}

// Toggle opens a closed editor and closes an open one.
func (e *Editor) Toggle() {
	if e.open {
		e.Close()
		return
	}
	e.Open()
}

// Draft returns the pending fields of the new card.
func (e *Editor) Draft() models.CardFields { return e.draft }

// SetDraft replaces the pending fields of the new card.
func (e *Editor) SetDraft(f models.CardFields) { e.draft = f }

// Editing returns the card being edited with its pending fields.
func (e *Editor) Editing() (models.Card, bool) {
	if e.editing == nil {
		return models.Card{}, false
	}
	return *e.editing, true
}

// BeginEdit starts editing card, replacing any edit in progress.
func (e *Editor) BeginEdit(card models.Card) {
	c := card
	e.editing = &c
}

// SetEditingFields replaces the pending fields of the card being edited.
func (e *Editor) SetEditingFields(f models.CardFields) {
	if e.editing == nil {
		return
	}
	c := e.editing.WithFields(f)
	e.editing = &c
}

// CancelEdit abandons the edit in progress.
func (e *Editor) CancelEdit() { e.editing = nil }

// SubmitDraft adds the draft to d. On success the draft is cleared; a
// refused draft is kept so the user can complete it.
func (e *Editor) SubmitDraft(d *Deck) (models.Card, bool) {
	card, ok := d.Add(e.draft)
	if ok {
		e.draft = models.CardFields{}
	}
	return card, ok
}

// SubmitEdit writes the pending edit to d and ends the edit. Submitting a
// blank field, or with no edit in progress, does nothing. An edit of a card
// no longer in d is dropped and reported as false.
func (e *Editor) SubmitEdit(d *Deck) bool {
	if e.editing == nil || !Valid(e.editing.Fields()) {
		return false
	}
	updated := d.Update(e.editing.ID, e.editing.Fields())
	e.editing = nil
	return updated
}

// EditingID reports whether card id is the one being edited.
func (e *Editor) EditingID(id int64) bool {
	return e.editing != nil && e.editing.ID == id
}

// State returns a snapshot for rendering.
func (e *Editor) State() models.EditorState {
	st := models.EditorState{Open: e.open, Draft: e.draft}
	if e.editing != nil {
		c := *e.editing
		st.Editing = &c
	}
	return st
}
