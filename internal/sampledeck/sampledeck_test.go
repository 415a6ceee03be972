package sampledeck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/flashcard"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/sampledeck"
)

func TestCards_AllValid(t *testing.T) {
	cards := sampledeck.Cards()
	require.Len(t, cards, 41)

	for _, c := range cards {
		assert.NoError(t, flashcard.ValidateFields(c.Fields()), "card %d", c.ID)
	}
	assert.Equal(t, models.Card{ID: 1, PromptText: "Hello", TargetText: "أهلا", Transliteration: "Ahlan"}, cards[0])
}

func TestCards_ReturnsCopy(t *testing.T) {
	first := sampledeck.Cards()
	first[0].PromptText = "changed"

	assert.Equal(t, "Hello", sampledeck.Cards()[0].PromptText)
}

func TestParse_Error(t *testing.T) {
	_, err := sampledeck.Parse([]byte("- id: [unterminated"))
	assert.Error(t, err)
}
