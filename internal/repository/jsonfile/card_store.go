// Package jsonfile keeps the card list in a single JSON file on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/repository"
)

type cardStore struct {
	path string
}

// NewCardStore returns a CardStore backed by the file at path. A leading ~
// is expanded to the user's home directory.
func NewCardStore(path string) (repository.CardStore, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", path, err)
	}
	return &cardStore{path: expanded}, nil
}

// Path returns the file the store writes to.
func Path(store repository.CardStore) string {
	if s, ok := store.(*cardStore); ok {
		return s.path
	}
	return ""
}

func (s *cardStore) Load(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_file")

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("deck file %s does not exist yet", s.path)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to read deck file: %v", err)
		return nil, err
	}

	var cards []models.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	log.Debug("loaded %d cards from %s", len(cards), s.path)
	return cards, nil
}

// Save writes to a temporary file in the same directory and renames it
// over the deck file, so readers never see a partial write.
func (s *cardStore) Save(ctx context.Context, cards []models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("deck_file")

	if cards == nil {
		cards = []models.Card{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".flashdeck-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		log.Error("failed to replace deck file: %v", err)
		return err
	}
	log.Debug("saved %d cards to %s", len(cards), s.path)
	return nil
}

func (s *cardStore) LastSaved(ctx context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
