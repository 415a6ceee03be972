package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vytor/flashdeck/internal/cardfile"
	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/flashcard"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/repository"
	"github.com/vytor/flashdeck/internal/sampledeck"
)

// DeckService owns the deck, its navigation state and the editor session.
// Every method is one complete state transition; calls are serialized.
type DeckService interface {
	State(ctx context.Context) models.DeckState
	Cards(ctx context.Context) []models.Card
	LastSaved(ctx context.Context) (time.Time, error)

	Flip(ctx context.Context) models.DeckState
	Next(ctx context.Context) models.DeckState
	Previous(ctx context.Context) models.DeckState
	Shuffle(ctx context.Context) models.DeckState
	Reset(ctx context.Context) models.DeckState
	Reveal(ctx context.Context) models.DeckState
	ToggleView(ctx context.Context) models.DeckState
	ToggleCardFlip(ctx context.Context, id int64) models.DeckState

	ToggleEditor(ctx context.Context) models.DeckState
	SetDraft(ctx context.Context, fields models.CardFields) models.DeckState
	AddCard(ctx context.Context, fields models.CardFields) (*models.Card, error)
	BeginEdit(ctx context.Context, id int64) error
	UpdateCard(ctx context.Context, id int64, fields models.CardFields) (bool, error)
	CancelEdit(ctx context.Context) models.DeckState
	DeleteCard(ctx context.Context, id int64) error

	Export(ctx context.Context) ([]byte, string, error)
	Import(ctx context.Context, data []byte) (int, error)
}

type deckService struct {
	mu       sync.Mutex
	store    repository.CardStore
	deck     *flashcard.Deck
	editor   flashcard.Editor
	view     models.ViewMode
	rng      *rand.Rand
	now      func() time.Time
	defaults []models.Card
}

// DeckOption configures a DeckService.
type DeckOption func(*deckService)

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) DeckOption {
	return func(s *deckService) { s.rng = rng }
}

// WithClock sets the clock used to date export files.
func WithClock(now func() time.Time) DeckOption {
	return func(s *deckService) { s.now = now }
}

// WithDefaults replaces the built-in deck used when nothing usable is stored.
func WithDefaults(cards []models.Card) DeckOption {
	return func(s *deckService) { s.defaults = cards }
}

// NewDeckService loads the saved cards from store. When nothing is saved,
// or the saved value is unreadable or empty, it starts from the default
// deck and saves that instead.
func NewDeckService(ctx context.Context, store repository.CardStore, opts ...DeckOption) DeckService {
	s := &deckService{
		store: store,
		view:  models.ViewSingle,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.defaults == nil {
		s.defaults = sampledeck.Cards()
	}

	log := logger.FromContext(ctx).WithPrefix("deck_service")

	cards, err := store.Load(ctx)
	switch {
	case err != nil:
		log.Warn("saved cards unreadable, using default deck: %v", err)
	case len(cards) == 0:
		log.Info("no saved cards, using default deck")
	}

	fallback := err != nil || len(cards) == 0
	if fallback {
		cards = s.defaults
	}

	var deckOpts []flashcard.Option
	if s.rng != nil {
		deckOpts = append(deckOpts, flashcard.WithRand(s.rng))
	}
	s.deck = flashcard.NewDeck(cards, deckOpts...)
	log.Info("deck ready: %d cards", s.deck.Len())

	if fallback {
		s.persist(ctx)
	}
	return s
}

// persist saves the store. A failed save is logged and otherwise ignored.
// Callers hold s.mu.
func (s *deckService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.deck.Cards()); err != nil {
		logger.FromContext(ctx).WithPrefix("deck_service").Warn("failed to save cards: %v", err)
	}
}

// snapshot builds the state for rendering. Callers hold s.mu.
func (s *deckService) snapshot() models.DeckState {
	st := models.DeckState{
		Cards:    s.deck.Cards(),
		Order:    s.deck.Order(),
		Position: s.deck.Position(),
		Flipped:  s.deck.IsFlipped(),
		Revealed: s.deck.IsRevealed(),
		View:     s.view,
		Editor:   s.editor.State(),
	}
	if c, ok := s.deck.Current(); ok {
		st.Current = &c
	}
	ordered := s.deck.Ordered()
	st.Grid = make([]models.GridCard, len(ordered))
	for i, c := range ordered {
		st.Grid[i] = models.GridCard{Card: c, Flipped: s.deck.IsCardFlipped(c.ID)}
	}
	return st
}

// do runs fn under the lock and returns the resulting state.
func (s *deckService) do(fn func()) models.DeckState {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	return s.snapshot()
}

func (s *deckService) State(ctx context.Context) models.DeckState {
	return s.do(func() {})
}

func (s *deckService) Cards(ctx context.Context) []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Cards()
}

func (s *deckService) LastSaved(ctx context.Context) (time.Time, error) {
	t, err := s.store.LastSaved(ctx)
	if err != nil {
		return time.Time{}, errors.NewInternalError(err)
	}
	return t, nil
}

func (s *deckService) Flip(ctx context.Context) models.DeckState {
	return s.do(func() { s.deck.Flip() })
}

func (s *deckService) Next(ctx context.Context) models.DeckState {
	return s.do(func() { s.deck.Advance() })
}

func (s *deckService) Previous(ctx context.Context) models.DeckState {
	return s.do(func() { s.deck.Retreat() })
}

func (s *deckService) Shuffle(ctx context.Context) models.DeckState {
	return s.do(func() {
		s.deck.Shuffle()
		logger.FromContext(ctx).WithPrefix("deck_service").Debug("shuffled: order=%v", s.deck.Order())
	})
}

func (s *deckService) Reset(ctx context.Context) models.DeckState {
	return s.do(func() { s.deck.Reset() })
}

func (s *deckService) Reveal(ctx context.Context) models.DeckState {
	return s.do(func() { s.deck.Reveal() })
}

func (s *deckService) ToggleView(ctx context.Context) models.DeckState {
	return s.do(func() {
		if s.view == models.ViewGrid {
			s.view = models.ViewSingle
		} else {
			s.view = models.ViewGrid
		}
	})
}

func (s *deckService) ToggleCardFlip(ctx context.Context, id int64) models.DeckState {
	return s.do(func() { s.deck.ToggleFlip(id) })
}

func (s *deckService) ToggleEditor(ctx context.Context) models.DeckState {
	return s.do(func() { s.editor.Toggle() })
}

func (s *deckService) SetDraft(ctx context.Context, fields models.CardFields) models.DeckState {
	return s.do(func() { s.editor.SetDraft(fields) })
}

// AddCard submits fields as a new card. A submission with a blank field is
// refused without error: it returns nil and keeps fields as the draft.
func (s *deckService) AddCard(ctx context.Context, fields models.CardFields) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_service")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.SetDraft(fields)
	card, ok := s.editor.SubmitDraft(s.deck)
	if !ok {
		log.Debug("add refused: blank field")
		return nil, nil
	}
	log.Info("card added: id=%d", card.ID)
	s.persist(ctx)
	return &card, nil
}

func (s *deckService) BeginEdit(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.deck.Find(id)
	if !ok {
		return s.notFound(id)
	}
	s.editor.BeginEdit(card)
	return nil
}

// UpdateCard submits fields for card id, starting an edit of it when a
// different card (or none) is being edited. A blank field refuses the
// update without error and leaves the edit open with the pending fields.
func (s *deckService) UpdateCard(ctx context.Context, id int64, fields models.CardFields) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_service")

	s.mu.Lock()
	defer s.mu.Unlock()

	card, found := s.deck.Find(id)
	if !found {
		if s.editor.EditingID(id) {
			s.editor.CancelEdit()
		}
		return false, s.notFound(id)
	}
	if !s.editor.EditingID(id) {
		s.editor.BeginEdit(card)
	}
	s.editor.SetEditingFields(fields)
	if !s.editor.SubmitEdit(s.deck) {
		log.Debug("update refused: id=%d blank field", id)
		return false, nil
	}
	log.Info("card updated: id=%d", id)
	s.persist(ctx)
	return true, nil
}

func (s *deckService) CancelEdit(ctx context.Context) models.DeckState {
	return s.do(func() { s.editor.CancelEdit() })
}

func (s *deckService) DeleteCard(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("deck_service")

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.deck.Remove(id) {
		return s.notFound(id)
	}
	if s.editor.EditingID(id) {
		s.editor.CancelEdit()
	}
	log.Info("card deleted: id=%d remaining=%d", id, s.deck.Len())
	s.persist(ctx)
	return nil
}

func (s *deckService) notFound(id int64) error {
	appErr := errors.NewNotFoundError("card", id)
	appErr.Err = fmt.Errorf("%w: id=%d", flashcard.ErrCardNotFound, id)
	return appErr
}

// Export returns the export file contents and its suggested name.
func (s *deckService) Export(ctx context.Context) ([]byte, string, error) {
	s.mu.Lock()
	cards := s.deck.Cards()
	s.mu.Unlock()

	data, err := cardfile.Encode(cards)
	if err != nil {
		return nil, "", errors.NewInternalError(err)
	}
	logger.FromContext(ctx).WithPrefix("deck_service").Info("exported %d cards", len(cards))
	return data, cardfile.Filename(s.now()), nil
}

// Import replaces the deck with the valid records of an import file and
// returns how many were imported. On error the deck is unchanged.
func (s *deckService) Import(ctx context.Context, data []byte) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_service")

	cards, err := cardfile.Decode(data)
	if err != nil {
		log.Warn("import rejected: %v", err)
		return 0, importError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deck.Replace(cards)
	s.editor.CancelEdit()
	s.persist(ctx)
	log.Info("imported %d cards", len(cards))
	return len(cards), nil
}

func importError(err error) error {
	switch {
	case stderrors.Is(err, cardfile.ErrMalformed):
		return errors.NewInvalidImportError("Error parsing JSON file. Please check the format.", err)
	case stderrors.Is(err, cardfile.ErrInvalidFormat):
		return errors.NewInvalidImportError("Invalid file format. Expected an array of card objects.", err)
	case stderrors.Is(err, cardfile.ErrNoValidCards):
		return errors.NewNoValidCardsError(err)
	default:
		return errors.NewInternalError(err)
	}
}
