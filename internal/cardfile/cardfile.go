// Package cardfile reads and writes the JSON card file used for export,
// import and persistence.
//
// The file is a top-level array of card objects:
//
//	[
//	  {
//	    "id": 1,
//	    "english": "Hello",
//	    "arabic": "أهلا",
//	    "romanization": "Ahlan"
//	  }
//	]
//
// On import, promptText, targetText and transliteration are accepted as
// aliases of english, arabic and romanization. Unknown fields are ignored
// and ids are taken as they are.
package cardfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vytor/flashdeck/internal/models"
)

var (
	// ErrMalformed means the input is not JSON at all.
	ErrMalformed = errors.New("error parsing JSON file")
	// ErrInvalidFormat means the JSON is not a non-empty array.
	ErrInvalidFormat = errors.New("invalid file format: expected an array of card objects")
	// ErrNoValidCards means no element carried all three text fields.
	ErrNoValidCards = errors.New("no valid cards found")
)

// FilenamePrefix starts every export file name.
const FilenamePrefix = "flashcards-"

var (
	promptKeys          = []string{"english", "promptText"}
	targetKeys          = []string{"arabic", "targetText"}
	transliterationKeys = []string{"romanization", "transliteration"}
)

// Encode renders cards as an indented JSON array. An empty deck encodes
// as [] rather than null.
func Encode(cards []models.Card) ([]byte, error) {
	if cards == nil {
		cards = []models.Card{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode cards: %w", err)
	}
	return data, nil
}

// Filename is the export file name for the given moment, dated in UTC.
func Filename(t time.Time) string {
	return FilenamePrefix + t.UTC().Format("2006-01-02") + ".json"
}

// Decode parses an import file. It fails with ErrMalformed,
// ErrInvalidFormat or ErrNoValidCards; otherwise it returns the elements
// that carry all three text fields, in file order.
func Decode(data []byte) ([]models.Card, error) {
	if !json.Valid(data) {
		return nil, ErrMalformed
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil || len(elems) == 0 {
		return nil, ErrInvalidFormat
	}

	cards := make([]models.Card, 0, len(elems))
	for _, raw := range elems {
		if c, ok := decodeCard(raw); ok {
			cards = append(cards, c)
		}
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: each card needs english, arabic, and romanization fields", ErrNoValidCards)
	}
	return cards, nil
}

func decodeCard(raw json.RawMessage) (models.Card, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return models.Card{}, false
	}

	card := models.Card{
		ID:              decodeID(obj["id"]),
		PromptText:      stringField(obj, promptKeys),
		TargetText:      stringField(obj, targetKeys),
		Transliteration: stringField(obj, transliterationKeys),
	}
	if card.PromptText == "" || card.TargetText == "" || card.Transliteration == "" {
		return models.Card{}, false
	}
	return card, true
}

// decodeID returns an integral id as is. A missing, null or unusable id
// (a string, a fraction) becomes 0.
func decodeID(raw json.RawMessage) int64 {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0
	}
	return int64(f)
}

// stringField returns the first non-empty string value among keys.
func stringField(obj map[string]json.RawMessage, keys []string) string {
	for _, k := range keys {
		raw, ok := obj[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
