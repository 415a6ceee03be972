package flashcard

import (
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/vytor/flashdeck/internal/models"
)

// ErrCardNotFound is returned when no card carries the requested id.
var ErrCardNotFound = errors.New("card not found")

// Deck holds the card store, its display order and the navigation state.
//
// Invariants:
//   - len(order) == len(cards) and order is a permutation of 0..len(cards)-1
//   - 0 <= position < len(order), or position == 0 when the deck is empty
//   - revealed implies flipped
//
// A Deck is not safe for concurrent use; callers serialize access.
type Deck struct {
	cards      []models.Card
	order      []int
	position   int
	flipped    bool
	revealed   bool
	flippedSet map[int64]struct{}
	rng        *rand.Rand
}

// Option configures a Deck.
type Option func(*Deck)

// WithRand sets the random source used by Shuffle. Without it the
// package-level generator is used.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = rng
	}
}

// NewDeck returns a deck over a copy of cards in identity order.
func NewDeck(cards []models.Card, opts ...Option) *Deck {
	d := &Deck{
		cards:      slices.Clone(cards),
		flippedSet: map[int64]struct{}{},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.order = identity(len(d.cards))
	return d
}

// Len returns the number of cards.
func (d *Deck) Len() int { return len(d.cards) }

// Cards returns the cards in storage order.
func (d *Deck) Cards() []models.Card { return slices.Clone(d.cards) }

// Order returns the display order.
func (d *Deck) Order() []int { return slices.Clone(d.order) }

// Position returns the current index into the display order.
func (d *Deck) Position() int { return d.position }

// IsFlipped reports whether the active card shows its back.
func (d *Deck) IsFlipped() bool { return d.flipped }

// IsRevealed reports whether the transliteration of the active card is visible.
func (d *Deck) IsRevealed() bool { return d.revealed }

// IsCardFlipped reports whether card id is flipped in grid mode.
func (d *Deck) IsCardFlipped(id int64) bool {
	_, ok := d.flippedSet[id]
	return ok
}

// FlippedIDs returns the grid-mode flipped set in ascending order.
func (d *Deck) FlippedIDs() []int64 {
	ids := make([]int64, 0, len(d.flippedSet))
	for id := range d.flippedSet {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Current returns the card at the current position.
func (d *Deck) Current() (models.Card, bool) {
	if len(d.order) == 0 {
		return models.Card{}, false
	}
	return d.cards[d.order[d.position]], true
}

// Ordered returns the cards in display order.
func (d *Deck) Ordered() []models.Card {
	out := make([]models.Card, len(d.order))
	for i, idx := range d.order {
		out[i] = d.cards[idx]
	}
	return out
}

// Find returns the first card with the given id.
func (d *Deck) Find(id int64) (models.Card, bool) {
	for _, c := range d.cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.Card{}, false
}

// NextID is one more than the largest id in the deck, or 1 when empty.
func (d *Deck) NextID() int64 {
	var maxID int64
	for _, c := range d.cards {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}

// Add appends a card built from fields. It is refused unless all three
// fields are non-empty. A successful add resets the display order.
func (d *Deck) Add(fields models.CardFields) (models.Card, bool) {
	if !Valid(fields) {
		return models.Card{}, false
	}
	card := models.Card{ID: d.NextID()}.WithFields(fields)
	d.cards = append(d.cards, card)
	d.order = identity(len(d.cards))
	return card, true
}

// Update replaces the fields of every card with the given id. It is a no-op
// when the id is absent or a field is empty.
func (d *Deck) Update(id int64, fields models.CardFields) bool {
	if !Valid(fields) {
		return false
	}
	updated := false
	for i := range d.cards {
		if d.cards[i].ID == id {
			d.cards[i] = d.cards[i].WithFields(fields)
			updated = true
		}
	}
	return updated
}

// Remove deletes every card with the given id, resets the display order and
// clamps the position into the new bounds.
func (d *Deck) Remove(id int64) bool {
	kept := d.cards[:0:0]
	for _, c := range d.cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(d.cards) {
		return false
	}
	d.cards = kept
	d.order = identity(len(d.cards))
	if d.position >= len(d.cards) {
		d.position = max(0, len(d.cards)-1)
	}
	delete(d.flippedSet, id)
	return true
}

// Replace swaps the whole store for cards, as an import does: identity
// order, position 0, every flip cleared.
func (d *Deck) Replace(cards []models.Card) {
	d.cards = slices.Clone(cards)
	d.Reset()
}

// Shuffle draws a new random display order and rewinds to the first card.
func (d *Deck) Shuffle() {
	order := identity(len(d.cards))
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(order), swap)
	} else {
		rand.Shuffle(len(order), swap)
	}
	d.order = order
	d.rewind()
}

// Reset restores identity order and rewinds to the first card.
func (d *Deck) Reset() {
	d.order = identity(len(d.cards))
	d.rewind()
}

func (d *Deck) rewind() {
	d.position = 0
	d.flipped = false
	d.revealed = false
	clear(d.flippedSet)
}

// Advance moves to the next card. At the last position it does nothing.
func (d *Deck) Advance() bool {
	if d.position >= len(d.order)-1 {
		return false
	}
	d.position++
	d.flipped = false
	d.revealed = false
	return true
}

// Retreat moves to the previous card. At position 0 it does nothing.
func (d *Deck) Retreat() bool {
	if d.position <= 0 {
		return false
	}
	d.position--
	d.flipped = false
	d.revealed = false
	return true
}

// Flip turns the active card over. Turning it back to the front hides the
// transliteration again.
func (d *Deck) Flip() {
	d.flipped = !d.flipped
	if !d.flipped {
		d.revealed = false
	}
}

// Reveal shows the transliteration of the active card. Only the back of a
// card carries it, so this is a no-op on an unflipped card.
func (d *Deck) Reveal() bool {
	if !d.flipped || len(d.order) == 0 {
		return false
	}
	d.revealed = true
	return true
}

// ToggleFlip toggles card id in the grid-mode flipped set.
func (d *Deck) ToggleFlip(id int64) {
	if _, ok := d.flippedSet[id]; ok {
		delete(d.flippedSet, id)
		return
	}
	d.flippedSet[id] = struct{}{}
}

func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
