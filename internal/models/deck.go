package models

// ViewMode selects how the deck is presented.
type ViewMode string

const (
	ViewSingle ViewMode = "single"
	ViewGrid   ViewMode = "grid"
)

// GridCard is a card as shown in grid mode.
type GridCard struct {
	Card
	Flipped bool `json:"flipped"`
}

// EditorState is the transient editing session. It is never persisted.
type EditorState struct {
	Open    bool       `json:"open"`
	Draft   CardFields `json:"draft"`
	Editing *Card      `json:"editing,omitempty"`
}

// DeckState is a read-only snapshot of the deck and navigation state.
type DeckState struct {
	Cards    []Card      `json:"cards"`
	Order    []int       `json:"order"`
	Position int         `json:"position"`
	Flipped  bool        `json:"flipped"`
	Revealed bool        `json:"revealed"`
	Current  *Card       `json:"current,omitempty"`
	Grid     []GridCard  `json:"grid"`
	View     ViewMode    `json:"view"`
	Editor   EditorState `json:"editor"`
}

// Total returns the number of cards in the deck.
func (s DeckState) Total() int {
	return len(s.Cards)
}

// ProgressPercent is the share of the display order reached so far.
func (s DeckState) ProgressPercent() float64 {
	if len(s.Order) == 0 {
		return 0
	}
	return float64(s.Position+1) / float64(len(s.Order)) * 100
}

// AtStart reports whether retreating is impossible.
func (s DeckState) AtStart() bool {
	return s.Position == 0
}

// AtEnd reports whether advancing is impossible.
func (s DeckState) AtEnd() bool {
	return len(s.Order) == 0 || s.Position >= len(s.Order)-1
}
