package testutil

import (
	"context"
	"database/sql"
	"strconv"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/db"
	"github.com/vytor/flashdeck/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// It is limited to one connection so every query sees the same database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB), "failed to apply migrations")
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Cards builds n valid cards with ids 1..n.
func Cards(n int) []models.Card {
	out := make([]models.Card, n)
	for i := range out {
		id := int64(i + 1)
		out[i] = models.Card{
			ID:              id,
			PromptText:      "prompt-" + strconv.FormatInt(id, 10),
			TargetText:      "target-" + strconv.FormatInt(id, 10),
			Transliteration: "translit-" + strconv.FormatInt(id, 10),
		}
	}
	return out
}
