package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const kvTable = "kv_store"

type cardStore struct {
	db  *sql.DB
	key string
}

// NewCardStore creates a CardStore keeping the card list in the kv_store
// table under repository.CardsKey.
func NewCardStore(db *sql.DB) repository.CardStore {
	return &cardStore{db: db, key: repository.CardsKey}
}

func (r *cardStore) Load(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_store")
	log.Debug("loading cards: key=%s", r.key)

	query, args, err := sqlBuilder.Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": r.key}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no saved cards")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to load cards: %v", err)
		return nil, err
	}

	var cards []models.Card
	if err := json.Unmarshal([]byte(value), &cards); err != nil {
		log.Warn("saved cards are not valid JSON: %v", err)
		return nil, fmt.Errorf("decode %s: %w", r.key, err)
	}
	log.Debug("loaded %d cards", len(cards))
	return cards, nil
}

func (r *cardStore) Save(ctx context.Context, cards []models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("card_store")
	log.Debug("saving %d cards: key=%s", len(cards), r.key)

	if cards == nil {
		cards = []models.Card{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}

	query, args, err := sqlBuilder.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(r.key, string(data), time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to save cards: %v", err)
		return err
	}
	return nil
}

func (r *cardStore) LastSaved(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx).WithPrefix("card_store")

	query, args, err := sqlBuilder.Select("updated_at").
		From(kvTable).
		Where(squirrel.Eq{"key": r.key}).
		ToSql()
	if err != nil {
		return time.Time{}, err
	}

	var updatedAt time.Time
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		log.Error("failed to read save time: %v", err)
		return time.Time{}, err
	}
	return updatedAt, nil
}
