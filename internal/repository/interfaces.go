package repository

import (
	"context"
	"time"

	"github.com/vytor/flashdeck/internal/models"
)

// CardsKey is the key under which the card list is stored.
const CardsKey = "flashcards"

// CardStore persists the whole card list as one entry.
type CardStore interface {
	// Load returns the saved cards, or nil and no error when nothing was saved.
	// A stored value that cannot be decoded is an error.
	Load(ctx context.Context) ([]models.Card, error)
	// Save replaces the saved cards.
	Save(ctx context.Context, cards []models.Card) error
	// LastSaved returns when Save last succeeded, or the zero time.
	LastSaved(ctx context.Context) (time.Time, error)
}
