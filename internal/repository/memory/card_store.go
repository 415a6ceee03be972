// Package memory is a CardStore that lives only as long as the process.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/repository"
)

// CardStore keeps the encoded card list in memory, the way a browser keeps
// it in local storage.
type CardStore struct {
	mu    sync.Mutex
	raw   []byte
	saved time.Time
	saves int
}

var _ repository.CardStore = (*CardStore)(nil)

// NewCardStore returns an empty store.
func NewCardStore() *CardStore {
	return &CardStore{}
}

// NewCardStoreWithRaw returns a store whose saved value is raw, which need
// not be valid JSON.
func NewCardStoreWithRaw(raw string) *CardStore {
	return &CardStore{raw: []byte(raw)}
}

func (s *CardStore) Load(ctx context.Context) ([]models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.raw == nil {
		return nil, nil
	}
	var cards []models.Card
	if err := json.Unmarshal(s.raw, &cards); err != nil {
		return nil, fmt.Errorf("decode %s: %w", repository.CardsKey, err)
	}
	return cards, nil
}

func (s *CardStore) Save(ctx context.Context, cards []models.Card) error {
	if cards == nil {
		cards = []models.Card{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = data
	s.saved = time.Now()
	s.saves++
	return nil
}

func (s *CardStore) LastSaved(ctx context.Context) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved, nil
}

// Raw returns the saved value.
func (s *CardStore) Raw() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.raw)
}

// Saves counts successful Save calls.
func (s *CardStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
